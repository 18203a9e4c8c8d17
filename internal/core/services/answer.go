package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driving"
	"github.com/halcyon-labs/askdoc/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// answerPrompt grounds the model in the retrieved chunks and tells it
// to admit when the context does not contain the answer.
const answerPrompt = `Use the following pieces of context to answer the question at the end.
If you don't know the answer, just say that you don't know, don't try to make up an answer.

Context: %s

Question: %s

Answer:`

// AnswerService answers questions using retrieval-augmented generation.
type AnswerService struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	llm      driven.LLMService
	settings domain.AskSettings
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	llm driven.LLMService,
	settings domain.AskSettings,
) *AnswerService {
	return &AnswerService{
		embedder: embedder,
		index:    index,
		llm:      llm,
		settings: settings.WithDefaults(),
	}
}

// Ask embeds the question, retrieves the most similar chunks and
// generates an answer grounded in them.
func (s *AnswerService) Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	started := time.Now()

	logger.Section("Question Answering")
	logger.Debug("Question: %q", question)

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
	}
	if s.embedder == nil {
		return nil, fmt.Errorf("%w: no embedding service configured", domain.ErrEmbeddingUnavailable)
	}
	if s.llm == nil {
		return nil, fmt.Errorf("%w: no LLM service configured", domain.ErrLLMUnavailable)
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = s.settings.TopK
	}

	query, err := s.embedder.Embed(ctx, question)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: embedding timed out: %v", domain.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: embed question: %v", domain.ErrProvider, err)
	}

	hits, err := s.index.Search(ctx, query, topK, opts.DocumentIDs)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	logger.Debug("Retrieved %d chunks", len(hits))

	contexts := make([]string, len(hits))
	sources := make([]domain.Source, len(hits))
	for i, hit := range hits {
		contexts[i] = hit.Chunk.Text
		sources[i] = domain.Source{
			Text:       hit.Chunk.Text,
			DocumentID: hit.Chunk.DocumentID,
			Filename:   hit.Chunk.Filename,
			ChunkIndex: hit.Chunk.Index,
			Score:      hit.Similarity,
		}
	}

	prompt := fmt.Sprintf(answerPrompt, strings.Join(contexts, "\n\n"), question)

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: generation timed out: %v", domain.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: generate answer: %v", domain.ErrProvider, err)
	}

	return &domain.Answer{
		Text:       strings.TrimSpace(text),
		Sources:    sources,
		Confidence: confidence(hits),
		Elapsed:    time.Since(started),
	}, nil
}

// confidence derives answer reliability from the top retrieval score,
// clamped to [0,1]. No retrieved chunks means no confidence.
func confidence(hits []driven.VectorHit) float64 {
	if len(hits) == 0 {
		return 0
	}
	top := hits[0].Similarity
	if top < 0 {
		return 0
	}
	if top > 1 {
		return 1
	}
	return top
}
