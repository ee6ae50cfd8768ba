package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgevents "github.com/ghuser/communityhub/pkg/events"
	"github.com/ghuser/communityhub/services/resource/application/services"
	resourceevents "github.com/ghuser/communityhub/services/resource/domain/events"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
)

func recordedMessage(t *testing.T, evt resourceevents.ActivityRecordedEvent) *message.Message {
	t.Helper()
	msg, err := pkgevents.NewJSONMessage(evt.EventID.String(), evt.Version, evt)
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	return msg
}

func TestActivityProjector_Handle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc, err := f.svc.Create(ctx, events, aisyah, models.Fields{"title": raw("Kajian")}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, cached := f.cache.entries["events"]; cached {
		t.Fatal("listing should be invalidated by the write")
	}

	evt := resourceevents.ActivityRecordedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Collection: "events",
		DocumentID: doc.ID,
		Title:      "Kajian",
		Activity:   doc.Activities[0],
		OccurredAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	p := services.NewActivityProjector(f.log, f.svc, nil)

	msg := recordedMessage(t, evt)
	for i := 0; i < 2; i++ {
		if err := p.Handle(ctx, msg); err != nil {
			t.Fatalf("Handle #%d: %v", i+1, err)
		}
	}

	entries, err := f.log.List(ctx, repositories.ActivityFilter{DocumentID: doc.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 after redelivery", len(entries))
	}
	if got := entries[0]; got.EventID != evt.EventID || got.Activity.Type != models.ActivityAdd || got.Title != "Kajian" {
		t.Errorf("entry = %+v", got)
	}
	if _, cached := f.cache.entries["events"]; cached {
		t.Error("projector must not write a listing back to the cache")
	}
}

func TestActivityProjector_DropsStaleListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc, err := f.svc.Create(ctx, events, aisyah, models.Fields{"title": raw("Kajian")}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stale, err := f.svc.List(ctx, events)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := f.svc.Delete(ctx, events, aisyah, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// A listing read before the delete committed lands after its invalidation.
	if err := f.cache.Set(ctx, "events", stale); err != nil {
		t.Fatalf("Set: %v", err)
	}

	p := services.NewActivityProjector(f.log, f.svc, nil)
	evt := resourceevents.ActivityRecordedEvent{
		EventID:    uuid.New(),
		Collection: "events",
		DocumentID: doc.ID,
		Title:      "Kajian",
		Activity:   models.NewActivity(aisyah, models.ActivityDelete, `deleted "Kajian"`, time.Now()),
		OccurredAt: time.Now(),
	}
	if err := p.Handle(ctx, recordedMessage(t, evt)); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if _, cached := f.cache.entries["events"]; cached {
		t.Fatal("stale events listing still cached")
	}
	docs, err := f.svc.List(ctx, events)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("listing = %d documents, want the delete to hold", len(docs))
	}
}

func TestActivityProjector_DeleteRecordOutlivesDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc, _ := f.svc.Create(ctx, events, aisyah, models.Fields{"title": raw("Kajian")}, nil)
	if err := f.svc.Delete(ctx, events, aisyah, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	p := services.NewActivityProjector(f.log, nil, nil)
	evt := resourceevents.ActivityRecordedEvent{
		EventID:    uuid.New(),
		Collection: "events",
		DocumentID: doc.ID,
		Title:      "Kajian",
		Activity:   models.NewActivity(aisyah, models.ActivityDelete, `deleted "Kajian"`, time.Now()),
		OccurredAt: time.Now(),
	}
	if err := p.Handle(ctx, recordedMessage(t, evt)); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	history, err := f.svc.History(ctx, repositories.ActivityFilter{Collection: "events", DocumentID: doc.ID})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Activity.Type != models.ActivityDelete {
		t.Errorf("history = %+v, want the delete record", history)
	}
}

func TestActivityProjector_RejectsMalformedPayload(t *testing.T) {
	p := services.NewActivityProjector(newFixture(t).log, nil, nil)
	msg := message.NewMessage(uuid.NewString(), []byte("{not json"))
	err := p.Handle(context.Background(), msg)
	if !errors.Is(err, pkgevents.ErrPermanent) {
		t.Fatalf("expected a permanent error for a malformed payload, got %v", err)
	}
}
