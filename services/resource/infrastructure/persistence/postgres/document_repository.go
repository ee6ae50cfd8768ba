package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/communityhub/pkg/database"
	"github.com/ghuser/communityhub/pkg/events"
	"github.com/ghuser/communityhub/services/resource/domain"
	domainevents "github.com/ghuser/communityhub/services/resource/domain/events"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/infrastructure/persistence/postgres/db"
)

// DocumentRepository implements repositories.DocumentStore against PostgreSQL.
// Fields are stored as one JSONB object and the audit trail as a JSONB array.
type DocumentRepository struct {
	db  *database.Database
	bus events.TxPublisherFactory
}

// NewDocumentRepository returns a DocumentRepository. When bus is non-nil every
// appended activity is also published as an ActivityRecordedEvent in the same
// transaction as the write.
func NewDocumentRepository(database *database.Database, bus events.TxPublisherFactory) *DocumentRepository {
	return &DocumentRepository{db: database, bus: bus}
}

// List returns every document in collection, newest first.
func (r *DocumentRepository) List(ctx context.Context, collection string) ([]*models.Document, error) {
	rows, err := db.New(r.db.DB()).ListDocuments(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	docs := make([]*models.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := rowToDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Get returns one document or domain.ErrDocumentNotFound.
func (r *DocumentRepository) Get(ctx context.Context, collection, id string) (*models.Document, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}
	row, err := db.New(r.db.DB()).GetDocument(ctx, db.GetDocumentParams{Collection: collection, ID: docID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("query document: %w", err)
	}
	return rowToDocument(row)
}

// Create inserts a new document whose trail holds exactly activity.
func (r *DocumentRepository) Create(ctx context.Context, collection string, fields models.Fields, activity models.Activity) (*models.Document, error) {
	fieldsJSON, activityJSON, err := encodeWrite(fields, activity)
	if err != nil {
		return nil, err
	}

	var doc *models.Document
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row, err := db.New(tx).InsertDocument(ctx, db.InsertDocumentParams{
			ID:         uuid.New(),
			Collection: collection,
			Fields:     fieldsJSON,
			Activity:   activityJSON,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23514" {
				return fmt.Errorf("%w: %s", domain.ErrInvalidDocument, pgErr.ConstraintName)
			}
			return fmt.Errorf("insert document: %w", err)
		}
		if doc, err = rowToDocument(row); err != nil {
			return err
		}
		return r.publishRecorded(tx, doc, activity)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Update merges fields into the stored object and appends activity in one
// statement. A missing row is reported as not found, a version mismatch as a
// concurrent modification.
func (r *DocumentRepository) Update(ctx context.Context, collection, id string, fields models.Fields, activity models.Activity, expectedVersion int64) (*models.Document, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}
	fieldsJSON, activityJSON, err := encodeWrite(fields, activity)
	if err != nil {
		return nil, err
	}

	var doc *models.Document
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.UpdateDocument(ctx, db.UpdateDocumentParams{
			Fields:          fieldsJSON,
			Activity:        activityJSON,
			Collection:      collection,
			ID:              docID,
			ExpectedVersion: expectedVersion,
		})
		if errors.Is(err, sql.ErrNoRows) {
			exists, existsErr := q.DocumentExists(ctx, db.DocumentExistsParams{Collection: collection, ID: docID})
			if existsErr != nil {
				return fmt.Errorf("check document exists: %w", existsErr)
			}
			if exists {
				return domain.ErrConcurrentModification
			}
			return domain.ErrDocumentNotFound
		}
		if err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if doc, err = rowToDocument(row); err != nil {
			return err
		}
		return r.publishRecorded(tx, doc, activity)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the document. Returns domain.ErrDocumentNotFound if absent.
func (r *DocumentRepository) Delete(ctx context.Context, collection, id string) error {
	docID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrDocumentNotFound
	}
	n, err := db.New(r.db.DB()).DeleteDocument(ctx, db.DeleteDocumentParams{Collection: collection, ID: docID})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepository) publishRecorded(tx *sql.Tx, doc *models.Document, activity models.Activity) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ActivityRecordedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Collection: doc.Collection,
		DocumentID: doc.ID,
		Title:      doc.Title(),
		Activity:   activity,
		OccurredAt: time.Now().UTC(),
	}
	msg, err := events.NewJSONMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	if err := events.PublishInTx(r.bus, tx, domainevents.TopicActivityRecorded, msg); err != nil {
		return fmt.Errorf("publish activity recorded: %w", err)
	}
	return nil
}

func encodeWrite(fields models.Fields, activity models.Activity) (json.RawMessage, json.RawMessage, error) {
	fieldsJSON, err := json.Marshal(fields.WithoutReserved())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	activityJSON, err := json.Marshal(activity)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal activity: %w", err)
	}
	return fieldsJSON, activityJSON, nil
}

// rowToDocument maps a db.ResourceDocument to a domain models.Document.
func rowToDocument(row db.ResourceDocument) (*models.Document, error) {
	doc := &models.Document{
		ID:         row.ID.String(),
		Collection: row.Collection,
		Fields:     models.Fields{},
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
		Version:    row.Version,
	}
	if err := json.Unmarshal(row.Fields, &doc.Fields); err != nil {
		return nil, fmt.Errorf("decode fields of %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(row.Activities, &doc.Activities); err != nil {
		return nil, fmt.Errorf("decode activities of %s: %w", doc.ID, err)
	}
	return doc, nil
}
