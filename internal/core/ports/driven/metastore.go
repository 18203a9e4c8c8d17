package driven

import (
	"context"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

// MetadataStore is the durable record of documents and their chunk
// counts, kept independently of the vector index. Every mutation is
// durable before the call returns, and concurrent mutations are
// serialized by the implementation.
type MetadataStore interface {
	// Put stores a document record.
	Put(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document record, or domain.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns all documents in insertion order. The order is
	// stable within a process lifetime.
	List(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of live documents.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
