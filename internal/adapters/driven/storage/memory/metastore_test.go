package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

func TestMetadataStore_PutGet(t *testing.T) {
	s := NewMetadataStore()
	ctx := context.Background()

	err := s.Put(ctx, &domain.Document{ID: "doc-1", Filename: "a.txt", ChunkCount: 3})
	require.NoError(t, err)

	doc, err := s.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", doc.Filename)
	assert.Equal(t, 3, doc.ChunkCount)
}

func TestMetadataStore_GetNotFound(t *testing.T) {
	s := NewMetadataStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetadataStore_Delete(t *testing.T) {
	s := NewMetadataStore()
	ctx := context.Background()

	_ = s.Put(ctx, &domain.Document{ID: "doc-1"})
	require.NoError(t, s.Delete(ctx, "doc-1"))

	_, err := s.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetadataStore_DeleteNotFound(t *testing.T) {
	s := NewMetadataStore()
	err := s.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetadataStore_ListInsertionOrder(t *testing.T) {
	s := NewMetadataStore()
	ctx := context.Background()

	_ = s.Put(ctx, &domain.Document{ID: "b"})
	_ = s.Put(ctx, &domain.Document{ID: "a"})
	_ = s.Put(ctx, &domain.Document{ID: "c"})

	docs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)

	// Read paths are idempotent.
	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, docs, again)
}

func TestMetadataStore_Count(t *testing.T) {
	s := NewMetadataStore()
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_ = s.Put(ctx, &domain.Document{ID: "a"})
	_ = s.Put(ctx, &domain.Document{ID: "b"})

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
