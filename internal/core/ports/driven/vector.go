package driven

import (
	"context"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

// VectorIndex stores chunk embeddings and answers nearest-neighbour
// queries. Implementations must be safe for concurrent use: searches
// may run in parallel, and a delete is atomic with respect to readers
// (a search observes either all of a document's chunks or none).
type VectorIndex interface {
	// Insert appends chunks with their embeddings as one logical
	// batch. It does not deduplicate.
	Insert(ctx context.Context, chunks []domain.Chunk) error

	// Search returns up to k chunks ranked by descending cosine
	// similarity. When documentIDs is non-empty, only chunks belonging
	// to those documents are eligible; filtering happens before
	// ranking, so the result still holds up to k matching entries.
	// Equal scores break ties by insertion order.
	Search(ctx context.Context, query []float32, k int, documentIDs []string) ([]VectorHit, error)

	// DeleteDocument removes every chunk belonging to the document and
	// returns the number removed. After it returns, no search can
	// surface a chunk of that document.
	DeleteDocument(ctx context.Context, documentID string) (int, error)

	// Size returns the total number of chunks currently indexed.
	Size(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// VectorHit is a similarity search result.
type VectorHit struct {
	// Chunk is the matched chunk, including its text and metadata.
	Chunk domain.Chunk

	// Similarity is the cosine similarity score.
	Similarity float64
}
