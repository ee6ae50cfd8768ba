// Package manager holds the resource manager: the controller between a
// form-driven client and one document collection. It keeps the list, the
// add and edit forms, queued files and the pending delete, and turns every
// failed round trip into a single notice instead of an error.
package manager

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/ghuser/communityhub/services/resource/application/services"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// Backend performs the persistence side of the manager's operations.
// *services.ResourceService implements it.
type Backend interface {
	List(ctx context.Context, rt models.ResourceType) ([]*models.Document, error)
	Create(ctx context.Context, rt models.ResourceType, actor models.Actor, fields models.Fields, files []models.UploadFile) (*models.Document, error)
	SaveEdit(ctx context.Context, rt models.ResourceType, actor models.Actor, id string, edited models.Fields, expectedVersion int64, files []models.UploadFile) (*services.SaveEditResult, error)
	Delete(ctx context.Context, rt models.ResourceType, actor models.Actor, id string) error
}

// Options configures a Manager. Zero values are valid.
type Options struct {
	Notifier Notifier
	// Actor resolves who performs a mutation. Nil records the anonymous actor.
	Actor func(context.Context) models.Actor
}

// State is a snapshot of the manager. Slices and items are copies.
type State[T models.Item] struct {
	Items             []T
	Loading           bool
	Form              T
	SelectedFiles     []models.UploadFile
	AddOpen           bool
	EditForm          T
	Editing           bool
	EditSelectedFiles []models.UploadFile
	PendingDeleteID   string
}

// Manager drives list, add, edit and delete of one resource type.
// Network calls run without holding the lock; overlapping calls are not
// queued and may overlap at the backend.
type Manager[T models.Item] struct {
	rt       models.ResourceType
	newItem  func() T
	backend  Backend
	notifier Notifier
	actor    func(context.Context) models.Actor

	mu                sync.Mutex
	items             []T
	inflight          int
	form              T
	selectedFiles     []models.UploadFile
	addOpen           bool
	editForm          T
	editing           bool
	editSelectedFiles []models.UploadFile
	pendingDeleteID   string
}

// New returns a Manager for rt whose add form starts as newItem().
func New[T models.Item](rt models.ResourceType, newItem func() T, backend Backend, opts Options) *Manager[T] {
	if opts.Notifier == nil {
		opts.Notifier = discardNotifier{}
	}
	if opts.Actor == nil {
		opts.Actor = func(context.Context) models.Actor { return models.Actor{} }
	}
	return &Manager[T]{
		rt:       rt,
		newItem:  newItem,
		backend:  backend,
		notifier: opts.Notifier,
		actor:    opts.Actor,
		form:     newItem(),
	}
}

// ForResourceType returns a Manager working on the untyped Item interface,
// for callers that only know the resource type at run time.
func ForResourceType(rt models.ResourceType, backend Backend, opts Options) *Manager[models.Item] {
	return New(rt, rt.New, backend, opts)
}

// ResourceType returns the resource type the manager works on.
func (m *Manager[T]) ResourceType() models.ResourceType { return m.rt }

// State returns a copy of the current state.
func (m *Manager[T]) State() State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State[T]{
		Items:             slices.Clone(m.items),
		Loading:           m.inflight > 0,
		Form:              m.form,
		SelectedFiles:     slices.Clone(m.selectedFiles),
		AddOpen:           m.addOpen,
		EditForm:          m.editForm,
		Editing:           m.editing,
		EditSelectedFiles: slices.Clone(m.editSelectedFiles),
		PendingDeleteID:   m.pendingDeleteID,
	}
}

// SetForm replaces the add form.
func (m *Manager[T]) SetForm(form T) {
	m.mu.Lock()
	m.form = form
	m.mu.Unlock()
}

// SetSelectedFiles queues files to upload with the next HandleAdd.
func (m *Manager[T]) SetSelectedFiles(files []models.UploadFile) {
	m.mu.Lock()
	m.selectedFiles = slices.Clone(files)
	m.mu.Unlock()
}

// OpenAdd shows the add panel.
func (m *Manager[T]) OpenAdd() {
	m.mu.Lock()
	m.addOpen = true
	m.mu.Unlock()
}

// CloseAdd hides the add panel without clearing the form.
func (m *Manager[T]) CloseAdd() {
	m.mu.Lock()
	m.addOpen = false
	m.mu.Unlock()
}

// SetEditForm replaces the edit form. It has no effect while no edit is active.
func (m *Manager[T]) SetEditForm(form T) {
	m.mu.Lock()
	if m.editing {
		m.editForm = form
	}
	m.mu.Unlock()
}

// SetEditSelectedFiles queues files to append on the next HandleSaveEdit.
func (m *Manager[T]) SetEditSelectedFiles(files []models.UploadFile) {
	m.mu.Lock()
	m.editSelectedFiles = slices.Clone(files)
	m.mu.Unlock()
}

// FetchItems reloads the collection, newest first. On failure the previous
// items are kept and one notice is sent.
func (m *Manager[T]) FetchItems(ctx context.Context) {
	m.begin()
	defer m.end()

	docs, err := m.backend.List(ctx, m.rt)
	if err != nil {
		m.fail(OpFetch, "", err)
		return
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := models.DecodeDocument(doc, m.newItem)
		if err != nil {
			m.fail(OpFetch, "", err)
			return
		}
		items = append(items, item)
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// HandleAdd uploads the queued files and stores the add form as a new
// document. On success the form is reset, the queue cleared, the add form
// closed and the list refetched. On failure nothing local changes.
func (m *Manager[T]) HandleAdd(ctx context.Context) Result {
	m.mu.Lock()
	form := m.form
	files := slices.Clone(m.selectedFiles)
	m.mu.Unlock()

	if isNil(form) {
		return m.fail(OpAdd, "", fmt.Errorf("%w: empty form", domain.ErrInvalidDocument))
	}
	fields, err := models.ToFields(form)
	if err != nil {
		return m.fail(OpAdd, "", fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err))
	}

	m.begin()
	doc, err := m.backend.Create(ctx, m.rt, m.actor(ctx), fields, files)
	m.end()
	if err != nil {
		return m.fail(OpAdd, "", err)
	}

	m.mu.Lock()
	m.form = m.newItem()
	m.selectedFiles = nil
	m.addOpen = false
	m.mu.Unlock()

	res := m.succeed(OpAdd, doc.ID)
	m.FetchItems(ctx)
	return res
}

// HandleEdit starts editing a deep copy of item, id included, and clears
// files queued by an earlier edit.
func (m *Manager[T]) HandleEdit(item T) {
	clone, err := models.Clone(item, m.newItem)
	if err != nil {
		m.fail(OpSave, item.ItemBase().ID, err)
		return
	}
	m.mu.Lock()
	m.editForm = clone
	m.editing = true
	m.editSelectedFiles = nil
	m.mu.Unlock()
}

// HandleSaveEdit saves the edit form to document id. Queued files are
// uploaded and appended to the form's imageUrls; the stored document is
// diffed against the form to describe the edit record. The version carried
// by the form guards against overwriting a concurrent save.
func (m *Manager[T]) HandleSaveEdit(ctx context.Context, id string) Result {
	m.mu.Lock()
	editing := m.editing
	form := m.editForm
	files := slices.Clone(m.editSelectedFiles)
	m.mu.Unlock()

	if !editing || isNil(form) {
		return m.fail(OpSave, id, domain.ErrNoActiveEdit)
	}

	fields, err := models.ToFields(form)
	if err != nil {
		return m.fail(OpSave, id, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err))
	}

	m.begin()
	_, err = m.backend.SaveEdit(ctx, m.rt, m.actor(ctx), id, fields, form.ItemBase().Version, files)
	m.end()
	if err != nil {
		return m.fail(OpSave, id, err)
	}

	m.clearEdit()
	res := m.succeed(OpSave, id)
	m.FetchItems(ctx)
	return res
}

// HandleCancelEdit drops the edit form and its queued files.
func (m *Manager[T]) HandleCancelEdit() {
	m.clearEdit()
}

// HandleDelete marks id for deletion. Nothing is deleted until ConfirmDelete.
func (m *Manager[T]) HandleDelete(id string) {
	m.mu.Lock()
	m.pendingDeleteID = id
	m.mu.Unlock()
}

// ConfirmDelete deletes the pending document: a final delete record is
// appended to it, then it is removed and the list refetched.
func (m *Manager[T]) ConfirmDelete(ctx context.Context) Result {
	m.mu.Lock()
	id := m.pendingDeleteID
	m.mu.Unlock()

	if id == "" {
		return m.fail(OpDelete, "", domain.ErrNoPendingDelete)
	}

	m.begin()
	err := m.backend.Delete(ctx, m.rt, m.actor(ctx), id)
	m.end()
	if err != nil {
		return m.fail(OpDelete, id, err)
	}

	m.mu.Lock()
	if m.pendingDeleteID == id {
		m.pendingDeleteID = ""
	}
	m.mu.Unlock()

	res := m.succeed(OpDelete, id)
	m.FetchItems(ctx)
	return res
}

// CancelDelete forgets the pending delete.
func (m *Manager[T]) CancelDelete() {
	m.mu.Lock()
	m.pendingDeleteID = ""
	m.mu.Unlock()
}

func (m *Manager[T]) clearEdit() {
	var zero T
	m.mu.Lock()
	m.editForm = zero
	m.editing = false
	m.editSelectedFiles = nil
	m.mu.Unlock()
}

// isNil reports whether item holds no value, including a typed nil pointer.
func isNil(item models.Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (m *Manager[T]) begin() {
	m.mu.Lock()
	m.inflight++
	m.mu.Unlock()
}

func (m *Manager[T]) end() {
	m.mu.Lock()
	m.inflight--
	m.mu.Unlock()
}

func (m *Manager[T]) fail(op Op, id string, err error) Result {
	msg := failureMessage(op, m.rt.UploadFolder)
	if errors.Is(err, domain.ErrConcurrentModification) {
		msg = fmt.Sprintf("The %s was changed by someone else. Reload it and try again.", m.rt.UploadFolder)
	}
	m.notifier.Notify(Notice{Op: op, Severity: SeverityError, Message: msg, Err: err})
	return Result{Message: msg, ID: id}
}

func (m *Manager[T]) succeed(op Op, id string) Result {
	msg := successMessage(op, m.rt.UploadFolder)
	m.notifier.Notify(Notice{Op: op, Severity: SeveritySuccess, Message: msg})
	return Result{OK: true, Message: msg, ID: id}
}
