package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/communityhub/services/resource/domain/events"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

func TestActivityRecordedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ActivityRecordedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Collection: "events",
		DocumentID: "doc-1",
		Title:      "Kajian Bulanan",
		Activity:   models.NewActivity(models.Actor{}, models.ActivityDelete, "deleted", time.Now()),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "collection", "document_id", "title", "activity", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q to be present", field)
		}
	}

	var activity map[string]any
	if err := json.Unmarshal(raw["activity"], &activity); err != nil {
		t.Fatalf("activity payload: %v", err)
	}
	if activity["type"] != "delete" || activity["userId"] != models.Anonymous {
		t.Errorf("unexpected activity payload: %v", activity)
	}
}

func TestTopicActivityRecorded(t *testing.T) {
	if events.TopicActivityRecorded != "resource.activity_recorded" {
		t.Fatalf("unexpected topic %q", events.TopicActivityRecorded)
	}
}
