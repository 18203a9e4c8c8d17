package driving

import (
	"context"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

// AnswerService answers natural-language questions from the index.
type AnswerService interface {
	// Ask embeds the question, retrieves the most similar chunks
	// (honouring the options' document filter), and generates an
	// answer grounded in them. An empty index produces an "I don't
	// know" style answer, not an error.
	Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error)
}
