package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halcyon-labs/askdoc/internal/chunker"
	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driving"
	"github.com/halcyon-labs/askdoc/internal/extractors"
	"github.com/halcyon-labs/askdoc/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// embedTimeout bounds a single embedding batch. Past this the provider
// is treated as unavailable rather than slow.
const embedTimeout = 2 * time.Minute

// IngestService runs the ingestion pipeline: extract, chunk, embed,
// index, record.
type IngestService struct {
	extractors *extractors.Registry
	splitter   *chunker.Chunker
	embedder   driven.EmbeddingService
	index      driven.VectorIndex
	meta       driven.MetadataStore
	settings   domain.IngestSettings
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	registry *extractors.Registry,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	meta driven.MetadataStore,
	settings domain.IngestSettings,
) *IngestService {
	settings = settings.WithDefaults()

	return &IngestService{
		extractors: registry,
		splitter: chunker.New(
			chunker.WithChunkSize(settings.ChunkSize),
			chunker.WithOverlap(settings.ChunkOverlap),
			chunker.WithSeparator(settings.Separator),
		),
		embedder: embedder,
		index:    index,
		meta:     meta,
		settings: settings,
	}
}

// Ingest processes one uploaded file end-to-end. On any failure no
// partial state remains visible for the document.
func (s *IngestService) Ingest(ctx context.Context, filename string, raw []byte) (*domain.IngestResult, error) {
	started := time.Now()

	logger.Section("Ingestion")
	logger.Debug("File: %q (%d bytes)", filename, len(raw))

	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	}
	if int64(len(raw)) > s.settings.MaxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidInput, s.settings.MaxFileSize)
	}
	if s.embedder == nil {
		return nil, fmt.Errorf("%w: no embedding service configured", domain.ErrEmbeddingUnavailable)
	}

	extractor, err := s.extractors.Lookup(filename)
	if err != nil {
		return nil, err
	}

	text, err := extractor.Extract(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract %q: %w", filename, err)
	}

	pieces := s.splitter.Split(text)
	pieces = dropEmpty(pieces)
	logger.Debug("Split into %d chunks", len(pieces))

	docID := uuid.New().String()
	doc := &domain.Document{
		ID:         docID,
		Filename:   filename,
		ChunkCount: len(pieces),
		SizeBytes:  int64(len(raw)),
		UploadedAt: time.Now().UTC(),
	}
	if len(pieces) > 0 {
		doc.ContentPreview = domain.Preview(pieces[0])
	}

	// A document whose text yields no usable chunks is still recorded,
	// so it shows up in listings and can be deleted.
	if len(pieces) == 0 {
		if err := s.meta.Put(ctx, doc); err != nil {
			return nil, fmt.Errorf("record document: %w", err)
		}
		return &domain.IngestResult{
			DocumentID: docID,
			ChunkCount: 0,
			Elapsed:    time.Since(started),
		}, nil
	}

	embeddings, err := s.embed(ctx, pieces)
	if err != nil {
		return nil, err
	}
	if len(embeddings) != len(pieces) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d chunks",
			domain.ErrProvider, len(embeddings), len(pieces))
	}

	chunks := make([]domain.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: docID,
			Filename:   filename,
			Index:      i,
			Text:       piece,
			Embedding:  embeddings[i],
		}
	}

	if err := s.index.Insert(ctx, chunks); err != nil {
		return nil, fmt.Errorf("index chunks: %w", err)
	}

	if err := s.meta.Put(ctx, doc); err != nil {
		// Roll back the index so no orphaned chunks remain searchable.
		if _, derr := s.index.DeleteDocument(ctx, docID); derr != nil {
			logger.Warn("Rollback of document %s failed: %v", docID, derr)
			return nil, fmt.Errorf("%w: record failed (%v) and rollback failed (%v)",
				domain.ErrInconsistentState, err, derr)
		}
		return nil, fmt.Errorf("record document: %w", err)
	}

	logger.Info("Ingested %q as %s (%d chunks)", filename, docID, len(chunks))

	return &domain.IngestResult{
		DocumentID: docID,
		ChunkCount: len(chunks),
		Elapsed:    time.Since(started),
	}, nil
}

// embed runs the batch embedding under a deadline, mapping a timeout
// to the provider timeout error.
func (s *IngestService) embed(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, embedTimeout)
	defer cancel()

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: embedding timed out: %v", domain.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	return embeddings, nil
}

// dropEmpty filters out chunks with no content.
func dropEmpty(pieces []string) []string {
	kept := pieces[:0]
	for _, p := range pieces {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}
