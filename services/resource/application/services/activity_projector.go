package services

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/ghuser/communityhub/pkg/events"
	"github.com/ghuser/communityhub/pkg/logger"
	"github.com/ghuser/communityhub/services/resource/domain/events"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
)

// ActivityProjector consumes resource.activity_recorded events: it copies
// each record into the durable activity log and drops the cached listing of
// the affected collection. It never writes a listing back: a read taken here
// could predate a delete that commits after the event is published.
type ActivityProjector struct {
	activityLog repositories.ActivityLog
	resources   *ResourceService
	log         logger.Logger
}

// NewActivityProjector returns a projector writing to activityLog. resources
// may be nil, which leaves the listing cache alone.
func NewActivityProjector(activityLog repositories.ActivityLog, resources *ResourceService, log logger.Logger) *ActivityProjector {
	if log == nil {
		log = logger.Discard()
	}
	return &ActivityProjector{activityLog: activityLog, resources: resources, log: log}
}

// Handle is the EventBus handler. It is idempotent: redelivered events hit
// the log's event id dedup.
func (p *ActivityProjector) Handle(ctx context.Context, msg *message.Message) error {
	var evt events.ActivityRecordedEvent
	if err := pkgevents.DecodeJSON(msg, &evt); err != nil {
		return pkgevents.Permanent(err)
	}

	entry := models.ActivityLogEntry{
		EventID:    evt.EventID,
		Collection: evt.Collection,
		DocumentID: evt.DocumentID,
		Title:      evt.Title,
		Activity:   evt.Activity,
		RecordedAt: evt.OccurredAt,
	}
	if err := p.activityLog.Record(ctx, entry); err != nil {
		return fmt.Errorf("record activity %s: %w", evt.EventID, err)
	}
	p.log.InfoContext(ctx, "activity recorded",
		"collection", evt.Collection,
		"document_id", evt.DocumentID,
		"type", string(evt.Activity.Type),
	)

	if p.resources != nil {
		p.resources.DropListing(ctx, evt.Collection)
	}
	return nil
}
