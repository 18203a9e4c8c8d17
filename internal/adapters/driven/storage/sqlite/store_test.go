package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesSchema(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Path())
	require.NoError(t, s.Close())

	// Reopening the same directory must not re-run migrations
	// destructively.
	s2, err := NewStore(dir)
	require.NoError(t, err)
	s2.Close()
}

func TestMetadataStore_PutGetDelete(t *testing.T) {
	s := newTestStore(t)
	meta := s.MetadataStore()
	ctx := context.Background()

	doc := &domain.Document{
		ID:             "doc-1",
		Filename:       "report.pdf",
		ContentPreview: "Q3 revenue was",
		ChunkCount:     4,
		SizeBytes:      2048,
		UploadedAt:     time.Now().UTC(),
	}
	require.NoError(t, meta.Put(ctx, doc))

	got, err := meta.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", got.Filename)
	assert.Equal(t, 4, got.ChunkCount)
	assert.Equal(t, int64(2048), got.SizeBytes)

	require.NoError(t, meta.Delete(ctx, "doc-1"))
	_, err = meta.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetadataStore_DeleteNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.MetadataStore().Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetadataStore_ListStableOrder(t *testing.T) {
	s := newTestStore(t)
	meta := s.MetadataStore()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, meta.Put(ctx, &domain.Document{ID: id, Filename: id + ".txt", UploadedAt: time.Now().UTC()}))
	}

	docs, err := meta.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "c", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "b", docs[2].ID)

	again, err := meta.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, again)
}

func TestVectorIndex_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	idx := s.VectorIndex()
	ctx := context.Background()

	chunks := []domain.Chunk{
		{ID: "c1", DocumentID: "d1", Filename: "a.txt", Index: 0, Text: "alpha", Embedding: []float32{1, 0, 0}},
		{ID: "c2", DocumentID: "d1", Filename: "a.txt", Index: 1, Text: "beta", Embedding: []float32{0, 1, 0}},
		{ID: "c3", DocumentID: "d2", Filename: "b.txt", Index: 0, Text: "gamma", Embedding: []float32{0.9, 0.1, 0}},
	}
	require.NoError(t, idx.Insert(ctx, chunks))

	n, err := idx.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	hits, err := idx.Search(ctx, []float32{1, 0, 0}, 2, nil)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "c1", hits[0].Chunk.ID)
	assert.Equal(t, "alpha", hits[0].Chunk.Text)
	assert.Equal(t, "c3", hits[1].Chunk.ID)
	assert.Equal(t, []float32{1, 0, 0}, hits[0].Chunk.Embedding)
}

func TestVectorIndex_SearchDocumentFilter(t *testing.T) {
	s := newTestStore(t)
	idx := s.VectorIndex()
	ctx := context.Background()

	require.NoError(t, idx.Insert(ctx, []domain.Chunk{
		{ID: "c1", DocumentID: "d1", Index: 0, Text: "near", Embedding: []float32{1, 0}},
		{ID: "c2", DocumentID: "d2", Index: 0, Text: "far", Embedding: []float32{0, 1}},
	}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 5, []string{"d2"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "d2", hits[0].Chunk.DocumentID)
}

func TestVectorIndex_DeleteDocument(t *testing.T) {
	s := newTestStore(t)
	idx := s.VectorIndex()
	ctx := context.Background()

	require.NoError(t, idx.Insert(ctx, []domain.Chunk{
		{ID: "c1", DocumentID: "d1", Index: 0, Text: "x", Embedding: []float32{1, 0}},
		{ID: "c2", DocumentID: "d1", Index: 1, Text: "y", Embedding: []float32{0, 1}},
		{ID: "c3", DocumentID: "d2", Index: 0, Text: "z", Embedding: []float32{1, 1}},
	}))

	removed, err := idx.DeleteDocument(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	hits, err := idx.Search(ctx, []float32{1, 0}, 10, nil)
	require.NoError(t, err)
	for _, h := range hits {
		assert.NotEqual(t, "d1", h.Chunk.DocumentID)
	}

	n, _ := idx.Size(ctx)
	assert.Equal(t, 1, n)
}

func TestFloat32BlobRoundTrip(t *testing.T) {
	in := []float32{0.1, -2.5, 3e8, 0}
	out := bytesToFloat32Slice(float32SliceToBytes(in))
	assert.Equal(t, in, out)

	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}

func TestStore_MetadataAndIndexShareDatabase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.MetadataStore().Put(ctx, &domain.Document{
		ID: "d1", Filename: "a.txt", ChunkCount: 1, UploadedAt: time.Now().UTC(),
	}))
	require.NoError(t, s.VectorIndex().Insert(ctx, []domain.Chunk{
		{ID: "c1", DocumentID: "d1", Index: 0, Text: "x", Embedding: []float32{1}},
	}))

	count, err := s.MetadataStore().Count(ctx)
	require.NoError(t, err)
	size, err := s.VectorIndex().Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, size)
}
