package manager

import "fmt"

// Severity classifies a Notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Op names the manager operation a Notice reports on.
type Op string

const (
	OpFetch  Op = "fetch"
	OpAdd    Op = "add"
	OpSave   Op = "save"
	OpDelete Op = "delete"
)

// Notice is the single user-facing message an operation produces.
// Err is set for failures so a transport can pick a status code; it is
// never shown to the user.
type Notice struct {
	Op       Op
	Severity Severity
	Message  string
	Err      error
}

// Notifier receives notices. Implementations must be safe for concurrent use
// when the manager is shared.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}

// Result is what HandleAdd, HandleSaveEdit and ConfirmDelete report back.
// Callers continue (navigate, close a dialog) on OK instead of passing a
// success callback.
type Result struct {
	OK      bool
	Message string
	// ID is the document the operation acted on.
	ID string
}

func failureMessage(op Op, label string) string {
	switch op {
	case OpFetch:
		return fmt.Sprintf("Could not load %s. Please try again.", label)
	case OpAdd:
		return fmt.Sprintf("Could not add the %s. Your input was kept, please try again.", label)
	case OpSave:
		return fmt.Sprintf("Could not save the %s. Your changes were kept, please try again.", label)
	case OpDelete:
		return fmt.Sprintf("Could not delete the %s. Please try again.", label)
	}
	return "Something went wrong. Please try again."
}

func successMessage(op Op, label string) string {
	switch op {
	case OpAdd:
		return fmt.Sprintf("The %s was added.", label)
	case OpSave:
		return fmt.Sprintf("The %s was updated.", label)
	case OpDelete:
		return fmt.Sprintf("The %s was deleted.", label)
	}
	return "Done."
}
