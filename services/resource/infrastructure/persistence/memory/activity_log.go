package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
)

// ActivityLog is an in-process repositories.ActivityLog.
type ActivityLog struct {
	mu      sync.RWMutex
	seen    map[uuid.UUID]struct{}
	entries []models.ActivityLogEntry
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{seen: make(map[uuid.UUID]struct{})}
}

var _ repositories.ActivityLog = (*ActivityLog)(nil)

func (l *ActivityLog) Record(ctx context.Context, entry models.ActivityLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.seen[entry.EventID]; dup {
		return nil
	}
	l.seen[entry.EventID] = struct{}{}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *ActivityLog) List(ctx context.Context, filter repositories.ActivityFilter) ([]models.ActivityLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.ActivityLogEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if filter.Collection != "" && e.Collection != filter.Collection {
			continue
		}
		if filter.DocumentID != "" && e.DocumentID != filter.DocumentID {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
