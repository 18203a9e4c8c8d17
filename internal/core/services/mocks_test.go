package services

import (
	"context"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
// It returns a deterministic embedding derived from text length so
// different texts produce different vectors.
type mockEmbeddingService struct {
	embedding []float32
	embedErr  error
	batchErr  error
	calls     int
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if m.embedding != nil {
		return m.embedding, nil
	}
	return []float32{float32(len(text)), 1, 0}, nil
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = embedding
	}
	return out, nil
}

func (m *mockEmbeddingService) Dimensions() int              { return 3 }
func (m *mockEmbeddingService) ModelName() string            { return "mock-embed" }
func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error                 { return nil }

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	response   string
	generErr   error
	lastPrompt string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.lastPrompt = prompt
	if m.generErr != nil {
		return "", m.generErr
	}
	return m.response, nil
}

func (m *mockLLMService) ModelName() string            { return "mock-llm" }
func (m *mockLLMService) Ping(_ context.Context) error { return nil }
func (m *mockLLMService) Close() error                 { return nil }

// stubExtractor implements driven.Extractor with a fixed result.
type stubExtractor struct {
	exts []string
	text string
	err  error
}

func (s *stubExtractor) Extensions() []string { return s.exts }

func (s *stubExtractor) Extract(_ context.Context, _ []byte) (string, error) {
	return s.text, s.err
}

// failingMetadataStore wraps a real store and fails Put, for testing
// rollback behaviour.
type failingMetadataStore struct {
	driven.MetadataStore
	putErr error
}

func (f *failingMetadataStore) Put(_ context.Context, _ *domain.Document) error {
	return f.putErr
}
