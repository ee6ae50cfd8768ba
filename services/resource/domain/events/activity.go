package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// TopicActivityRecorded is the Watermill topic published whenever an activity
// is appended to a document (add, edit or delete).
const TopicActivityRecorded = "resource.activity_recorded"

// ActivityRecordedEvent carries one audit record out of the document it was
// appended to. It is published in the same transaction as the document write,
// so a delete record survives even though its document is removed.
type ActivityRecordedEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`  // Schema version; increment on breaking changes
	Collection string          `json:"collection"`
	DocumentID string          `json:"document_id"`
	Title      string          `json:"title"`
	Activity   models.Activity `json:"activity"`
	OccurredAt time.Time       `json:"occurred_at"`
}
