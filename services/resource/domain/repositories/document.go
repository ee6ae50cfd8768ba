package repositories

import (
	"context"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// AnyVersion disables the optimistic version check on Update.
const AnyVersion int64 = 0

// DocumentStore is the persistence interface for documents addressed by
// (collection, id). The domain layer owns this interface; infrastructure implements it.
type DocumentStore interface {
	// List returns every document in collection, newest first by creation time.
	List(ctx context.Context, collection string) ([]*models.Document, error)

	// Get returns one document or ErrDocumentNotFound.
	Get(ctx context.Context, collection, id string) (*models.Document, error)

	// Create stores fields as a new document whose trail holds exactly activity.
	// The store assigns the id and creation timestamp.
	Create(ctx context.Context, collection string, fields models.Fields, activity models.Activity) (*models.Document, error)

	// Update shallow-merges fields into the document and appends activity in
	// a single write. With expectedVersion other than AnyVersion the write
	// fails with ErrConcurrentModification if the stored version differs.
	Update(ctx context.Context, collection, id string, fields models.Fields, activity models.Activity, expectedVersion int64) (*models.Document, error)

	// Delete removes the document. Returns ErrDocumentNotFound if absent.
	Delete(ctx context.Context, collection, id string) error
}

// ActivityFilter narrows an activity log query. Zero values match everything.
type ActivityFilter struct {
	Collection string
	DocumentID string
	Limit      int
}

// ActivityLog is the durable, append-only log of every recorded activity.
type ActivityLog interface {
	// Record stores entry; recording the same EventID twice is a no-op.
	Record(ctx context.Context, entry models.ActivityLogEntry) error

	// List returns matching entries, newest first.
	List(ctx context.Context, filter ActivityFilter) ([]models.ActivityLogEntry, error)
}
