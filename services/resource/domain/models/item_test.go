package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewActivity(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	tests := []struct {
		name     string
		actor    Actor
		wantID   string
		wantName string
	}{
		{"authenticated actor", Actor{ID: "u-1", Name: "Siti"}, "u-1", "Siti"},
		{"name falls back to email", Actor{ID: "u-2", Email: "ahmad@example.org"}, "u-2", "ahmad@example.org"},
		{"no actor is anonymous", Actor{}, Anonymous, Anonymous},
		{"blank id is anonymous even with a name", Actor{ID: "  ", Name: "Ghost"}, Anonymous, Anonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActivity(tt.actor, ActivityAdd, "added", at)
			if a.UserID != tt.wantID {
				t.Errorf("UserID: got %q, want %q", a.UserID, tt.wantID)
			}
			if a.UserName != tt.wantName {
				t.Errorf("UserName: got %q, want %q", a.UserName, tt.wantName)
			}
			if a.Datetime.Location() != time.UTC {
				t.Errorf("expected UTC datetime, got %v", a.Datetime.Location())
			}
			if !a.Datetime.Equal(at) {
				t.Errorf("Datetime: got %v, want %v", a.Datetime, at)
			}
		})
	}
}

func TestActivity_JSONFieldNames(t *testing.T) {
	a := NewActivity(Actor{ID: "u-1", Name: "Siti"}, ActivityEdit, "target: 100 → 200", time.Now())
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"userId", "userName", "type", "description", "datetime"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing JSON field %q", key)
		}
	}
	if _, err := time.Parse(time.RFC3339Nano, m["datetime"].(string)); err != nil {
		t.Errorf("datetime is not ISO-8601: %v", err)
	}
}

func TestToFields_DropsReservedKeys(t *testing.T) {
	created := time.Now()
	ev := &Event{
		Base: Base{
			ID:         "doc-1",
			Title:      "Kajian Bulanan",
			Summary:    "<p>monthly study</p>",
			CreatedAt:  &created,
			Version:    3,
			Activities: []Activity{{Type: ActivityAdd}},
		},
		StartDate: "2025-01-01",
		EndDate:   "2025-01-01",
	}

	fields, err := ToFields(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{FieldID, FieldActivities, FieldCreatedAt, FieldVersion} {
		if _, ok := fields[key]; ok {
			t.Errorf("reserved key %q must be dropped", key)
		}
	}
	if fields.String(FieldTitle) != "Kajian Bulanan" {
		t.Errorf("title: got %q", fields.String(FieldTitle))
	}
	if fields.String("startDate") != "2025-01-01" {
		t.Errorf("startDate: got %q", fields.String("startDate"))
	}
	if _, ok := fields[FieldImageURLs]; ok {
		t.Errorf("nil imageUrls must be left out, got %s", fields[FieldImageURLs])
	}

	ev.ImageURLs = []string{}
	fields, err = ToFields(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(fields[FieldImageURLs]); got != "[]" {
		t.Errorf("explicit empty imageUrls = %q, want []", got)
	}
}

func TestDecodeDocument_RoundTrip(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	doc := &Document{
		ID:         "doc-9",
		Collection: "events",
		Fields: Fields{
			FieldTitle:     json.RawMessage(`"Kajian"`),
			FieldImageURLs: json.RawMessage(`["https://img/1.jpg"]`),
			"startDate":    json.RawMessage(`"2025-01-01"`),
		},
		Activities: []Activity{{UserID: Anonymous, Type: ActivityAdd}},
		CreatedAt:  created,
		Version:    1,
	}

	ev, err := DecodeDocument(doc, func() *Event { return &Event{} })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ID != "doc-9" || ev.Title != "Kajian" || ev.StartDate != "2025-01-01" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if len(ev.ImageURLs) != 1 || ev.ImageURLs[0] != "https://img/1.jpg" {
		t.Fatalf("unexpected imageUrls: %v", ev.ImageURLs)
	}
	if len(ev.Activities) != 1 || ev.Activities[0].Type != ActivityAdd {
		t.Fatalf("unexpected activities: %v", ev.Activities)
	}
	if ev.CreatedAt == nil || !ev.CreatedAt.Equal(created) {
		t.Fatalf("unexpected createdAt: %v", ev.CreatedAt)
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := &News{Base: Base{ID: "n-1", Title: "A", ImageURLs: []string{"https://img/a.jpg"}}}
	cp, err := Clone(orig, func() *News { return &News{} })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cp.ID != "n-1" {
		t.Fatalf("clone must keep the id, got %q", cp.ID)
	}
	cp.ImageURLs[0] = "https://img/b.jpg"
	cp.Title = "B"
	if orig.ImageURLs[0] != "https://img/a.jpg" || orig.Title != "A" {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestFields_WithImageURLs(t *testing.T) {
	f := Fields{FieldTitle: json.RawMessage(`"x"`)}
	g := f.WithImageURLs([]string{"u1", "u2"})
	if _, ok := f[FieldImageURLs]; ok {
		t.Fatal("WithImageURLs must not mutate the receiver")
	}
	if got := g.ImageURLs(); len(got) != 2 || got[0] != "u1" || got[1] != "u2" {
		t.Fatalf("unexpected urls: %v", got)
	}
}

func TestDocument_MarshalJSON_Flattens(t *testing.T) {
	doc := Document{
		ID:     "d-1",
		Fields: Fields{FieldTitle: json.RawMessage(`"T"`), FieldID: json.RawMessage(`"spoofed"`)},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "d-1" {
		t.Errorf("id: got %v, want d-1", m["id"])
	}
	if m["title"] != "T" {
		t.Errorf("title: got %v", m["title"])
	}
	if acts, ok := m["activities"].([]any); !ok || len(acts) != 0 {
		t.Errorf("expected empty activities array, got %v", m["activities"])
	}
}

func TestDocument_UnmarshalJSON_SplitsBookkeeping(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	doc := Document{
		ID:         "d-1",
		Collection: "event",
		Fields:     Fields{FieldTitle: json.RawMessage(`"Kajian"`), "location": json.RawMessage(`"Masjid"`)},
		Activities: []Activity{NewActivity(Actor{}, ActivityAdd, `added "Kajian"`, created)},
		CreatedAt:  created,
		UpdatedAt:  created,
		Version:    3,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := Document{Collection: "event"}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != "d-1" || got.Version != 3 || !got.CreatedAt.Equal(created) || got.Collection != "event" {
		t.Errorf("bookkeeping not restored: %+v", got)
	}
	if len(got.Activities) != 1 || got.Activities[0].Type != ActivityAdd {
		t.Errorf("activities: %+v", got.Activities)
	}
	if len(got.Fields) != 2 || got.Fields.String("location") != "Masjid" {
		t.Errorf("fields: %v", got.Fields)
	}

	if err := json.Unmarshal([]byte(`{"version":"x"}`), &got); err == nil {
		t.Error("expected error for malformed version")
	}
}

func TestResourceTypes(t *testing.T) {
	types := ResourceTypes()
	if len(types) != 5 {
		t.Fatalf("expected 5 resource types, got %d", len(types))
	}
	for i := 1; i < len(types); i++ {
		if types[i-1].Slug >= types[i].Slug {
			t.Fatalf("resource types not sorted: %q before %q", types[i-1].Slug, types[i].Slug)
		}
	}

	rt, ok := LookupResourceType("events")
	if !ok {
		t.Fatal("events must be registered")
	}
	if rt.UploadFolder != "event" {
		t.Errorf("events upload folder: got %q", rt.UploadFolder)
	}
	if _, ok := rt.New().(*Event); !ok {
		t.Errorf("events factory must produce *Event, got %T", rt.New())
	}
	if _, ok := LookupResourceType("payments"); ok {
		t.Error("payments must not be registered")
	}
}
