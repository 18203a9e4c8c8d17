package domain

import "errors"

// Domain errors represent business logic failures.
// Services wrap these with context; callers test with errors.Is.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file extension with no
	// registered extractor.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtraction indicates text could not be extracted from an
	// uploaded file.
	ErrExtraction = errors.New("extraction failed")

	// ErrProvider indicates an embedding or generation call failed.
	ErrProvider = errors.New("provider error")

	// ErrProviderTimeout indicates an embedding or generation call
	// exceeded its deadline.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrStorage indicates a durable write to the metadata store or
	// vector index failed.
	ErrStorage = errors.New("storage error")

	// ErrInconsistentState indicates the vector index and metadata
	// store have diverged.
	ErrInconsistentState = errors.New("inconsistent state")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the generation service is not
	// configured or unreachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
