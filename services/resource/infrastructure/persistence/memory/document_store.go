// Package memory provides in-process implementations of the resource
// repositories. State is copied on every read and write so callers never
// share mutable documents with the store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
	"github.com/ghuser/communityhub/services/resource/domain/repositories"
)

// DocumentStore is a mutex-guarded repositories.DocumentStore.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]*models.Document
	now         func() time.Time
}

// NewDocumentStore returns an empty store using the wall clock.
func NewDocumentStore() *DocumentStore {
	return NewDocumentStoreWithClock(time.Now)
}

// NewDocumentStoreWithClock returns an empty store stamping documents with now.
func NewDocumentStoreWithClock(now func() time.Time) *DocumentStore {
	return &DocumentStore{
		collections: make(map[string]map[string]*models.Document),
		now:         now,
	}
}

var _ repositories.DocumentStore = (*DocumentStore)(nil)

func (s *DocumentStore) List(ctx context.Context, collection string) ([]*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*models.Document, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		docs = append(docs, cloneDocument(doc))
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].ID > docs[j].ID
	})
	return docs, nil
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

func (s *DocumentStore) Create(ctx context.Context, collection string, fields models.Fields, activity models.Activity) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	doc := &models.Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Fields:     fields.WithoutReserved(),
		Activities: []models.Activity{activity},
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]*models.Document)
	}
	s.collections[collection][doc.ID] = doc
	return cloneDocument(doc), nil
}

func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields models.Fields, activity models.Activity, expectedVersion int64) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	if expectedVersion != repositories.AnyVersion && doc.Version != expectedVersion {
		return nil, domain.ErrConcurrentModification
	}

	next := cloneDocument(doc)
	for k, v := range fields.WithoutReserved() {
		next.Fields[k] = v
	}
	next.Activities = append(next.Activities, activity)
	next.UpdatedAt = s.now().UTC()
	next.Version++
	s.collections[collection][id] = next
	return cloneDocument(next), nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

// Len reports how many documents collection holds.
func (s *DocumentStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// checkFields rejects values that would not survive a JSON round trip.
func checkFields(fields models.Fields) error {
	for k, v := range fields {
		if !json.Valid(v) {
			return fmt.Errorf("%w: field %q is not valid JSON", domain.ErrInvalidDocument, k)
		}
	}
	return nil
}

func cloneDocument(doc *models.Document) *models.Document {
	out := *doc
	out.Fields = doc.Fields.Clone()
	out.Activities = slices.Clone(doc.Activities)
	return &out
}
