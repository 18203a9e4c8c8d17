package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
)

// Ensure VectorIndex implements the interface.
var _ driven.VectorIndex = (*VectorIndex)(nil)

// VectorIndex is an in-memory brute-force cosine similarity index.
// Entries keep insertion order, which also serves as the tie-break for
// equal scores. A delete holds the write lock for its whole document,
// so searches observe either all of a document's chunks or none.
type VectorIndex struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
}

// NewVectorIndex creates a new in-memory vector index.
func NewVectorIndex() *VectorIndex {
	return &VectorIndex{}
}

// Insert appends chunks with their embeddings as one batch.
func (idx *VectorIndex) Insert(_ context.Context, chunks []domain.Chunk) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.chunks = append(idx.chunks, chunks...)
	return nil
}

// Search returns up to k chunks ranked by descending cosine similarity.
func (idx *VectorIndex) Search(
	_ context.Context, query []float32, k int, documentIDs []string,
) ([]driven.VectorHit, error) {
	if k <= 0 {
		k = domain.DefaultTopK
	}

	var filter map[string]bool
	if len(documentIDs) > 0 {
		filter = make(map[string]bool, len(documentIDs))
		for _, id := range documentIDs {
			filter[id] = true
		}
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	// Filter before ranking so the result still holds up to k
	// matching entries.
	hits := make([]driven.VectorHit, 0, len(idx.chunks))
	for i := range idx.chunks {
		if filter != nil && !filter[idx.chunks[i].DocumentID] {
			continue
		}
		hits = append(hits, driven.VectorHit{
			Chunk:      idx.chunks[i],
			Similarity: Cosine(query, idx.chunks[i].Embedding),
		})
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// DeleteDocument removes every chunk belonging to the document.
func (idx *VectorIndex) DeleteDocument(_ context.Context, documentID string) (int, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	kept := idx.chunks[:0]
	removed := 0
	for i := range idx.chunks {
		if idx.chunks[i].DocumentID == documentID {
			removed++
			continue
		}
		kept = append(kept, idx.chunks[i])
	}
	idx.chunks = kept
	return removed, nil
}

// Size returns the total number of chunks indexed.
func (idx *VectorIndex) Size(_ context.Context) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks), nil
}

// Close releases resources.
func (idx *VectorIndex) Close() error {
	return nil
}

// Cosine computes the cosine similarity between two vectors.
// Mismatched lengths compare over the shorter prefix; a zero vector
// scores zero.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
