package services

import (
	"context"
	"fmt"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driving"
	"github.com/halcyon-labs/askdoc/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService manages the set of ingested documents.
type LibraryService struct {
	index driven.VectorIndex
	meta  driven.MetadataStore
}

// NewLibraryService creates a new library service.
func NewLibraryService(index driven.VectorIndex, meta driven.MetadataStore) *LibraryService {
	return &LibraryService{
		index: index,
		meta:  meta,
	}
}

// List returns all documents in insertion order.
func (s *LibraryService) List(ctx context.Context) ([]domain.Document, error) {
	return s.meta.List(ctx)
}

// Get retrieves a document by ID.
func (s *LibraryService) Get(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}
	return s.meta.Get(ctx, id)
}

// Delete removes a document's chunks from the vector index and its
// record from the metadata store.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}

	doc, err := s.meta.Get(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.index.DeleteDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("delete chunks for %s: %w", id, err)
	}
	if removed != doc.ChunkCount {
		logger.Warn("Document %s: removed %d chunks, expected %d", id, removed, doc.ChunkCount)
	}

	if err := s.meta.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record for %s: %w", id, err)
	}

	logger.Info("Deleted document %s (%d chunks)", id, removed)
	return nil
}

// Stats reports document and chunk counts from both stores.
func (s *LibraryService) Stats(ctx context.Context) (*domain.Stats, error) {
	docs, err := s.meta.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	totalChunks := 0
	for _, doc := range docs {
		totalChunks += doc.ChunkCount
	}

	indexSize, err := s.index.Size(ctx)
	if err != nil {
		return nil, fmt.Errorf("index size: %w", err)
	}

	stats := &domain.Stats{
		TotalDocuments: len(docs),
		TotalChunks:    totalChunks,
		IndexSize:      indexSize,
		Consistent:     totalChunks == indexSize,
	}
	if !stats.Consistent {
		logger.Warn("Index inconsistency: %d chunks recorded, %d indexed", totalChunks, indexSize)
	}
	return stats, nil
}
