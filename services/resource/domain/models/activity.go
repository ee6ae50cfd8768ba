package models

import (
	"strings"
	"time"
)

// ActivityType names the mutation an ActivityRecord describes.
type ActivityType string

const (
	ActivityAdd    ActivityType = "add"
	ActivityEdit   ActivityType = "edit"
	ActivityDelete ActivityType = "delete"
)

// Anonymous is the user id and name recorded when no actor is authenticated.
const Anonymous = "anonymous"

// Activity is one audit-trail entry embedded in a document. Entries are only
// ever appended; the store never rewrites or reorders them.
type Activity struct {
	UserID      string       `json:"userId"`
	UserName    string       `json:"userName"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Datetime    time.Time    `json:"datetime"`
}

// Actor identifies who performed a mutation.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// NewActivity builds an Activity for actor, substituting the anonymous
// sentinel for a missing id and falling back to the email when no display
// name is known.
func NewActivity(actor Actor, typ ActivityType, description string, at time.Time) Activity {
	userID := strings.TrimSpace(actor.ID)
	if userID == "" {
		userID = Anonymous
	}

	userName := strings.TrimSpace(actor.Name)
	if userName == "" {
		userName = strings.TrimSpace(actor.Email)
	}
	if userName == "" || userID == Anonymous {
		userName = Anonymous
	}

	return Activity{
		UserID:      userID,
		UserName:    userName,
		Type:        typ,
		Description: description,
		Datetime:    at.UTC(),
	}
}
