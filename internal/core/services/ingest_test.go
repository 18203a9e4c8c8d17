package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/askdoc/internal/adapters/driven/storage/memory"
	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/extractors"
)

func newTestIngestService(embedder *mockEmbeddingService) (*IngestService, *memory.VectorIndex, *memory.MetadataStore) {
	index := memory.NewVectorIndex()
	meta := memory.NewMetadataStore()
	svc := NewIngestService(extractors.Defaults(), embedder, index, meta, domain.IngestSettings{})
	return svc, index, meta
}

func TestIngest_PlainText(t *testing.T) {
	svc, index, meta := newTestIngestService(&mockEmbeddingService{})
	ctx := context.Background()

	result, err := svc.Ingest(ctx, "notes.txt", []byte("The capital of France is Paris."))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.DocumentID)
	assert.Equal(t, 1, result.ChunkCount)
	assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))

	doc, err := meta.Get(ctx, result.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.Filename)
	assert.Equal(t, 1, doc.ChunkCount)
	assert.Equal(t, int64(31), doc.SizeBytes)
	assert.Equal(t, "The capital of France is Paris.", doc.ContentPreview)
	assert.False(t, doc.UploadedAt.IsZero())

	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestIngest_LargeDocumentChunks(t *testing.T) {
	svc, index, _ := newTestIngestService(&mockEmbeddingService{})
	ctx := context.Background()

	// 2500 chars with no separators: hard cuts with overlap yield 3 chunks.
	text := strings.Repeat("a", 2500)
	result, err := svc.Ingest(ctx, "big.txt", []byte(text))
	require.NoError(t, err)
	assert.Equal(t, 3, result.ChunkCount)

	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestIngest_PreviewTruncated(t *testing.T) {
	svc, _, meta := newTestIngestService(&mockEmbeddingService{})
	ctx := context.Background()

	text := strings.Repeat("b", 500)
	result, err := svc.Ingest(ctx, "long.md", []byte(text))
	require.NoError(t, err)

	doc, err := meta.Get(ctx, result.DocumentID)
	require.NoError(t, err)
	assert.Len(t, doc.ContentPreview, domain.PreviewLength+3)
	assert.True(t, strings.HasSuffix(doc.ContentPreview, "..."))
}

func TestIngest_UnsupportedFormat(t *testing.T) {
	svc, index, meta := newTestIngestService(&mockEmbeddingService{})
	ctx := context.Background()

	_, err := svc.Ingest(ctx, "image.png", []byte("not really"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	// Nothing committed.
	count, err := meta.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestIngest_InvalidInput(t *testing.T) {
	svc, _, _ := newTestIngestService(&mockEmbeddingService{})

	_, err := svc.Ingest(context.Background(), "", []byte("content"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngest_EmptyFile_SucceedsWithZeroChunks(t *testing.T) {
	embedder := &mockEmbeddingService{}
	svc, index, meta := newTestIngestService(embedder)
	ctx := context.Background()

	result, err := svc.Ingest(ctx, "empty.txt", []byte{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.ChunkCount)
	assert.Zero(t, embedder.calls)

	doc, err := meta.Get(ctx, result.DocumentID)
	require.NoError(t, err)
	assert.Zero(t, doc.ChunkCount)
	assert.Zero(t, doc.SizeBytes)
	assert.Empty(t, doc.ContentPreview)

	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestIngest_FileTooLarge(t *testing.T) {
	index := memory.NewVectorIndex()
	meta := memory.NewMetadataStore()
	svc := NewIngestService(extractors.Defaults(), &mockEmbeddingService{}, index, meta,
		domain.IngestSettings{MaxFileSize: 10})

	_, err := svc.Ingest(context.Background(), "big.txt", []byte("this is more than ten bytes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngest_EmbeddingFailure_NothingCommitted(t *testing.T) {
	embedder := &mockEmbeddingService{batchErr: errors.New("connection refused")}
	svc, index, meta := newTestIngestService(embedder)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, "doc.txt", []byte("some content"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProvider)

	count, err := meta.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestIngest_EmbeddingTimeout(t *testing.T) {
	embedder := &mockEmbeddingService{batchErr: context.DeadlineExceeded}
	svc, _, _ := newTestIngestService(embedder)

	_, err := svc.Ingest(context.Background(), "doc.txt", []byte("some content"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderTimeout)
}

func TestIngest_MetadataFailure_RollsBackIndex(t *testing.T) {
	index := memory.NewVectorIndex()
	meta := &failingMetadataStore{
		MetadataStore: memory.NewMetadataStore(),
		putErr:        domain.ErrStorage,
	}
	svc := NewIngestService(extractors.Defaults(), &mockEmbeddingService{}, index, meta, domain.IngestSettings{})
	ctx := context.Background()

	_, err := svc.Ingest(ctx, "doc.txt", []byte("some content"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)

	// The inserted chunks were rolled back.
	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestIngest_ConcurrentUploads(t *testing.T) {
	svc, index, meta := newTestIngestService(&mockEmbeddingService{})
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*domain.IngestResult, 2)
	files := []struct {
		name string
		text string
	}{
		{"one.txt", strings.Repeat("x", 1500)},
		{"two.txt", strings.Repeat("y", 300)},
	}

	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.Ingest(ctx, files[i].name, []byte(files[i].text))
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	require.NotNil(t, results[0])
	require.NotNil(t, results[1])
	assert.NotEqual(t, results[0].DocumentID, results[1].DocumentID)

	count, err := meta.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, results[0].ChunkCount+results[1].ChunkCount, size)
}

func TestIngest_NoExtractableText_RecordsEmptyDocument(t *testing.T) {
	registry := extractors.NewRegistry(&stubExtractor{exts: []string{".pdf"}, text: ""})
	index := memory.NewVectorIndex()
	meta := memory.NewMetadataStore()
	svc := NewIngestService(registry, &mockEmbeddingService{}, index, meta, domain.IngestSettings{})
	ctx := context.Background()

	result, err := svc.Ingest(ctx, "scan.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Zero(t, result.ChunkCount)

	doc, err := meta.Get(ctx, result.DocumentID)
	require.NoError(t, err)
	assert.Zero(t, doc.ChunkCount)
	assert.Empty(t, doc.ContentPreview)

	size, err := index.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestIngest_ExtractionFailure(t *testing.T) {
	registry := extractors.NewRegistry(&stubExtractor{exts: []string{".pdf"}, err: domain.ErrExtraction})
	svc := NewIngestService(registry, &mockEmbeddingService{}, memory.NewVectorIndex(),
		memory.NewMetadataStore(), domain.IngestSettings{})

	_, err := svc.Ingest(context.Background(), "broken.pdf", []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestIngest_ChunkMetadata(t *testing.T) {
	embedder := &mockEmbeddingService{}
	svc, index, _ := newTestIngestService(embedder)
	ctx := context.Background()

	text := strings.Repeat("z", 1200)
	result, err := svc.Ingest(ctx, "meta.txt", []byte(text))
	require.NoError(t, err)
	require.Equal(t, 2, result.ChunkCount)

	hits, err := index.Search(ctx, []float32{1, 1, 0}, 10, []string{result.DocumentID})
	require.NoError(t, err)
	require.Len(t, hits, 2)

	for _, hit := range hits {
		assert.Equal(t, result.DocumentID, hit.Chunk.DocumentID)
		assert.Equal(t, "meta.txt", hit.Chunk.Filename)
		assert.NotEmpty(t, hit.Chunk.ID)
		assert.NotEmpty(t, hit.Chunk.Text)
		assert.Len(t, hit.Chunk.Embedding, 3)
	}
}
