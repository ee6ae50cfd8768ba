package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghuser/communityhub/pkg/database"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
	"github.com/ghuser/communityhub/services/resource/infrastructure/persistence/postgres/db"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// ActivityLogRepository implements repositories.ActivityLog against PostgreSQL.
type ActivityLogRepository struct {
	db *database.Database
}

func NewActivityLogRepository(database *database.Database) *ActivityLogRepository {
	return &ActivityLogRepository{db: database}
}

// Record inserts entry; a duplicate EventID is ignored.
func (r *ActivityLogRepository) Record(ctx context.Context, entry models.ActivityLogEntry) error {
	activity, err := json.Marshal(entry.Activity)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}
	if err := db.New(r.db.DB()).InsertActivityLog(ctx, db.InsertActivityLogParams{
		EventID:    entry.EventID,
		Collection: entry.Collection,
		DocumentID: entry.DocumentID,
		Title:      entry.Title,
		Activity:   activity,
		RecordedAt: entry.RecordedAt,
	}); err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List returns matching entries, newest first.
func (r *ActivityLogRepository) List(ctx context.Context, filter repositories.ActivityFilter) ([]models.ActivityLogEntry, error) {
	rows, err := db.New(r.db.DB()).ListActivityLog(ctx, db.ListActivityLogParams{
		Collection: filter.Collection,
		DocumentID: filter.DocumentID,
		RowLimit:   int32(ClampLimit(filter.Limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("query activity log: %w", err)
	}
	entries := make([]models.ActivityLogEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.ActivityLogEntry{
			EventID:    row.EventID,
			Collection: row.Collection,
			DocumentID: row.DocumentID,
			Title:      row.Title,
			RecordedAt: row.RecordedAt.UTC(),
		}
		if err := json.Unmarshal(row.Activity, &entry.Activity); err != nil {
			return nil, fmt.Errorf("decode activity %s: %w", row.EventID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ClampLimit maps a requested page size onto [1, 500], defaulting to 50.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultActivityLimit
	case limit > maxActivityLimit:
		return maxActivityLimit
	default:
		return limit
	}
}
