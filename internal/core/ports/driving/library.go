package driving

import (
	"context"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

// LibraryService manages the set of ingested documents.
type LibraryService interface {
	// List returns all documents in insertion order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document's chunks from the vector index and its
	// record from the metadata store. Returns domain.ErrNotFound for
	// an unknown ID.
	Delete(ctx context.Context, id string) error

	// Stats reports document and chunk counts from both stores.
	Stats(ctx context.Context) (*domain.Stats, error)
}
