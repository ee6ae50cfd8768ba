package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// Well-known field names shared by every resource type.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldSummary    = "summary"
	FieldImageURLs  = "imageUrls"
	FieldActivities = "activities"
	FieldCreatedAt  = "createdAt"
	FieldUpdatedAt  = "updatedAt"
	FieldVersion    = "version"
)

// reservedFields are owned by the store and never written through Fields.
var reservedFields = map[string]struct{}{
	FieldID:         {},
	FieldActivities: {},
	FieldCreatedAt:  {},
	FieldUpdatedAt:  {},
	FieldVersion:    {},
}

// IsReservedField reports whether name is store-managed bookkeeping.
func IsReservedField(name string) bool {
	_, ok := reservedFields[name]
	return ok
}

// Fields is the free-form part of a document keyed by JSON field name.
type Fields map[string]json.RawMessage

// Clone returns a shallow copy; raw values are immutable by convention.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// WithoutReserved returns a copy with every store-managed key removed.
func (f Fields) WithoutReserved() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if !IsReservedField(k) {
			out[k] = v
		}
	}
	return out
}

// String decodes a string field, returning "" when absent or not a string.
func (f Fields) String(name string) string {
	var s string
	if raw, ok := f[name]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// ImageURLs decodes the imageUrls field. Absent or malformed values yield nil.
func (f Fields) ImageURLs() []string {
	var urls []string
	if raw, ok := f[FieldImageURLs]; ok {
		_ = json.Unmarshal(raw, &urls)
	}
	return urls
}

// WithImageURLs returns a copy of f with imageUrls replaced by urls.
func (f Fields) WithImageURLs(urls []string) Fields {
	if urls == nil {
		urls = []string{}
	}
	out := f.Clone()
	raw, _ := json.Marshal(urls)
	out[FieldImageURLs] = raw
	return out
}

// Document is a stored record: free-form fields plus store-managed
// bookkeeping (identity, audit trail, timestamps and version).
type Document struct {
	ID         string
	Collection string
	Fields     Fields
	Activities []Activity
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int64
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.Fields.String(FieldTitle)
}

// ImageURLs returns the ordered image URLs; the first is the cover image.
func (d *Document) ImageURLs() []string {
	return d.Fields.ImageURLs()
}

// Flatten renders the document as a single JSON object: fields at the top
// level alongside id, activities, createdAt, updatedAt and version.
func (d *Document) Flatten() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(d.Fields)+5)
	for k, v := range d.Fields {
		if !IsReservedField(k) {
			out[k] = v
		}
	}

	activities := d.Activities
	if activities == nil {
		activities = []Activity{}
	}
	bookkeeping := map[string]any{
		FieldID:         d.ID,
		FieldActivities: activities,
		FieldCreatedAt:  d.CreatedAt,
		FieldUpdatedAt:  d.UpdatedAt,
		FieldVersion:    d.Version,
	}
	for k, v := range bookkeeping {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		out[k] = raw
	}
	return out, nil
}

// MarshalJSON encodes the flattened form.
func (d Document) MarshalJSON() ([]byte, error) {
	flat, err := d.Flatten()
	if err != nil {
		return nil, err
	}
	return json.Marshal(flat)
}

// UnmarshalJSON is the inverse of MarshalJSON. Collection is not part of the
// flattened form and is left untouched.
func (d *Document) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	out := Document{Collection: d.Collection, Fields: make(Fields, len(flat))}
	targets := map[string]any{
		FieldID:         &out.ID,
		FieldActivities: &out.Activities,
		FieldCreatedAt:  &out.CreatedAt,
		FieldUpdatedAt:  &out.UpdatedAt,
		FieldVersion:    &out.Version,
	}
	for k, v := range flat {
		target, reserved := targets[k]
		if !reserved {
			out.Fields[k] = v
			continue
		}
		if err := json.Unmarshal(v, target); err != nil {
			return fmt.Errorf("decode %s: %w", k, err)
		}
	}
	*d = out
	return nil
}
