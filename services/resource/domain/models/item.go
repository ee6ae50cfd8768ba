package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Base is the shape every managed resource shares. Resource variants embed it
// and add their own fields, which stay opaque to the resource manager.
type Base struct {
	ID         string     `json:"id,omitempty"`
	Title      string     `json:"title" validate:"required,max=200"`
	Summary    string     `json:"summary"`
	ImageURLs  []string   `json:"imageUrls" validate:"dive,url"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	Version    int64      `json:"version,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

// ItemBase exposes the shared shape; it is what makes a variant an Item.
func (b *Base) ItemBase() *Base {
	return b
}

// Item is the capability every managed resource variant provides.
// Implemented by pointer types embedding Base (e.g. *Event).
type Item interface {
	ItemBase() *Base
}

// ToFields converts item into store fields, dropping store-managed keys.
// A nil ImageURLs slice leaves imageUrls out entirely, which an edit reads
// as "keep the stored images"; an empty non-nil slice clears them.
func ToFields(item Item) (Fields, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal item: %w", err)
	}
	var fields Fields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal item fields: %w", err)
	}
	fields = fields.WithoutReserved()
	if string(fields[FieldImageURLs]) == "null" {
		delete(fields, FieldImageURLs)
	}
	return fields, nil
}

// DecodeDocument decodes doc into a fresh value produced by newItem.
func DecodeDocument[T Item](doc *Document, newItem func() T) (T, error) {
	item := newItem()
	flat, err := doc.Flatten()
	if err != nil {
		return item, err
	}
	raw, err := json.Marshal(flat)
	if err != nil {
		return item, fmt.Errorf("marshal document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, item); err != nil {
		return item, fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return item, nil
}

// Clone returns a deep copy of item, id included.
func Clone[T Item](item T, newItem func() T) (T, error) {
	out := newItem()
	raw, err := json.Marshal(item)
	if err != nil {
		return out, fmt.Errorf("marshal item: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return out, fmt.Errorf("clone item: %w", err)
	}
	return out, nil
}
