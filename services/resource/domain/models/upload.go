package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadFile is a file queued for upload to the image service.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ActivityLogEntry is an activity copied into the durable activity log,
// outliving the document it was recorded on.
type ActivityLogEntry struct {
	EventID    uuid.UUID `json:"eventId"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"documentId"`
	Title      string    `json:"title"`
	Activity   Activity  `json:"activity"`
	RecordedAt time.Time `json:"recordedAt"`
}
