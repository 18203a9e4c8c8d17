package domain

// Default ingestion and retrieval parameters.
const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the character overlap between chunks.
	DefaultChunkOverlap = 200

	// DefaultSeparator is the preferred chunk boundary marker.
	DefaultSeparator = "\n"

	// DefaultTopK is the number of chunks retrieved per question.
	DefaultTopK = 5

	// DefaultMaxFileSize is the upload size limit in bytes (10 MiB).
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// AIProvider identifies an AI service provider for embeddings or generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// IngestSettings configures the ingestion pipeline.
type IngestSettings struct {
	// ChunkSize is the target chunk length in characters.
	ChunkSize int

	// ChunkOverlap is the character overlap between adjacent chunks.
	ChunkOverlap int

	// Separator is the preferred boundary marker for chunking.
	Separator string

	// MaxFileSize rejects uploads larger than this many bytes.
	MaxFileSize int64
}

// WithDefaults fills zero values from the package defaults.
func (s IngestSettings) WithDefaults() IngestSettings {
	if s.ChunkSize <= 0 {
		s.ChunkSize = DefaultChunkSize
	}
	if s.ChunkOverlap <= 0 {
		s.ChunkOverlap = DefaultChunkOverlap
	}
	if s.Separator == "" {
		s.Separator = DefaultSeparator
	}
	if s.MaxFileSize <= 0 {
		s.MaxFileSize = DefaultMaxFileSize
	}
	return s
}

// AskSettings configures the retrieval query engine.
type AskSettings struct {
	// TopK is the number of chunks retrieved per question.
	TopK int
}

// WithDefaults fills zero values from the package defaults.
func (s AskSettings) WithDefaults() AskSettings {
	if s.TopK <= 0 {
		s.TopK = DefaultTopK
	}
	return s
}

// EmbeddingSettings configures the embedding provider.
type EmbeddingSettings struct {
	// Provider selects the embedding backend.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL overrides the provider's API base URL.
	BaseURL string

	// APIKey authenticates cloud providers.
	APIKey string
}

// IsConfigured returns true if enough is set to create a service.
func (s EmbeddingSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings configures the generation provider.
type LLMSettings struct {
	// Provider selects the generation backend.
	Provider AIProvider

	// Model is the model name.
	Model string

	// BaseURL overrides the provider's API base URL.
	BaseURL string

	// APIKey authenticates cloud providers.
	APIKey string
}

// IsConfigured returns true if enough is set to create a service.
func (s LLMSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// EmbeddingDimensions maps known embedding models to vector sizes.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
		"text-embedding-ada-002": 1536,
		"nomic-embed-text":       768,
		"all-minilm":             384,
		"mxbai-embed-large":      1024,
	}
}
