// Package memory provides in-memory storage adapters, used by tests
// and the ephemeral mode.
package memory

import (
	"context"
	"sync"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
)

// Ensure MetadataStore implements the interface.
var _ driven.MetadataStore = (*MetadataStore)(nil)

// MetadataStore is an in-memory implementation of driven.MetadataStore.
// List preserves insertion order.
type MetadataStore struct {
	mu    sync.RWMutex
	docs  map[string]domain.Document
	order []string
}

// NewMetadataStore creates a new in-memory metadata store.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{
		docs: make(map[string]domain.Document),
	}
}

// Put stores a document record.
func (s *MetadataStore) Put(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.docs[doc.ID] = *doc
	return nil
}

// Get retrieves a document by ID.
func (s *MetadataStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// Delete removes a document record.
func (s *MetadataStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	for i, docID := range s.order {
		if docID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all documents in insertion order.
func (s *MetadataStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.docs[id])
	}
	return result, nil
}

// Count returns the number of live documents.
func (s *MetadataStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs), nil
}

// Close releases resources.
func (s *MetadataStore) Close() error {
	return nil
}
