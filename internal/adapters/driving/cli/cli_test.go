package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driving"
)

// --- Fake services ---

type fakeIngestService struct {
	result *domain.IngestResult
	err    error
	gotRaw []byte
}

func (f *fakeIngestService) Ingest(_ context.Context, _ string, raw []byte) (*domain.IngestResult, error) {
	f.gotRaw = raw
	return f.result, f.err
}

type fakeAnswerService struct {
	answer  *domain.Answer
	err     error
	gotOpts domain.AskOptions
}

func (f *fakeAnswerService) Ask(_ context.Context, _ string, opts domain.AskOptions) (*domain.Answer, error) {
	f.gotOpts = opts
	return f.answer, f.err
}

type fakeLibraryService struct {
	docs    []domain.Document
	stats   *domain.Stats
	err     error
	deleted []string
}

func (f *fakeLibraryService) List(_ context.Context) ([]domain.Document, error) {
	return f.docs, f.err
}

func (f *fakeLibraryService) Get(_ context.Context, id string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			return &f.docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLibraryService) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeLibraryService) Stats(_ context.Context) (*domain.Stats, error) {
	return f.stats, f.err
}

// execute runs the root command with the given args, restoring
// command state afterwards.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		askTopK = 0
		askDocuments = nil
		askShowText = false
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func setFakeServices(t *testing.T, ingest driving.IngestService, answer driving.AnswerService, library driving.LibraryService) {
	t.Helper()
	SetServices(ingest, answer, library)
	t.Cleanup(func() { SetServices(nil, nil, nil) })
}

// --- Tests ---

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "askdoc version test-1.0.0")
}

func TestStatsCmd(t *testing.T) {
	setFakeServices(t, nil, nil, &fakeLibraryService{
		stats: &domain.Stats{TotalDocuments: 2, TotalChunks: 7, IndexSize: 7, Consistent: true},
	})

	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Documents:  2")
	assert.Contains(t, out, "Chunks:     7")
	assert.Contains(t, out, "Status:     healthy")
}

func TestStatsCmd_NoService(t *testing.T) {
	setFakeServices(t, nil, nil, nil)

	_, err := execute(t, "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestDocumentsListCmd(t *testing.T) {
	setFakeServices(t, nil, nil, &fakeLibraryService{
		docs: []domain.Document{
			{ID: "doc-1", Filename: "a.txt", ChunkCount: 3, UploadedAt: time.Now()},
			{ID: "doc-2", Filename: "b.pdf", ChunkCount: 5, UploadedAt: time.Now()},
		},
	})

	out, err := execute(t, "documents", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "b.pdf")
	assert.Contains(t, out, "Total: 2 documents")
}

func TestDocumentsListCmd_Empty(t *testing.T) {
	setFakeServices(t, nil, nil, &fakeLibraryService{})

	out, err := execute(t, "documents", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents ingested yet.")
}

func TestDocumentsDeleteCmd(t *testing.T) {
	library := &fakeLibraryService{}
	setFakeServices(t, nil, nil, library)

	out, err := execute(t, "documents", "delete", "doc-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted document doc-1")
	assert.Equal(t, []string{"doc-1"}, library.deleted)
}

func TestDocumentsGetCmd_NotFound(t *testing.T) {
	setFakeServices(t, nil, nil, &fakeLibraryService{})

	_, err := execute(t, "documents", "get", "missing")
	require.Error(t, err)
}

func TestAskCmd(t *testing.T) {
	answer := &fakeAnswerService{
		answer: &domain.Answer{
			Text:       "Paris.",
			Confidence: 0.93,
			Sources: []domain.Source{
				{Filename: "france.txt", ChunkIndex: 0, Score: 0.93},
			},
		},
	}
	setFakeServices(t, nil, answer, nil)

	out, err := execute(t, "ask", "What", "is", "the", "capital?", "--top-k", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris.")
	assert.Contains(t, out, "Confidence: 0.93")
	assert.Contains(t, out, "france.txt")
	assert.Equal(t, 3, answer.gotOpts.TopK)
}

func TestAskCmd_DocumentFilter(t *testing.T) {
	answer := &fakeAnswerService{answer: &domain.Answer{Text: "ok"}}
	setFakeServices(t, nil, answer, nil)

	_, err := execute(t, "ask", "question", "--document", "d1", "--document", "d2")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, answer.gotOpts.DocumentIDs)
}

func TestIngestCmd(t *testing.T) {
	ingest := &fakeIngestService{
		result: &domain.IngestResult{DocumentID: "doc-9", ChunkCount: 4, Elapsed: 120 * time.Millisecond},
	}
	setFakeServices(t, ingest, nil, nil)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0600))

	out, err := execute(t, "ingest", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Document ID: doc-9")
	assert.Contains(t, out, "Chunks:      4")
	assert.Equal(t, []byte("hello world"), ingest.gotRaw)
}

func TestIngestCmd_MissingFile(t *testing.T) {
	setFakeServices(t, &fakeIngestService{}, nil, nil)

	_, err := execute(t, "ingest", "/nonexistent/file.txt")
	require.Error(t, err)
}
