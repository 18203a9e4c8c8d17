package file

import (
	"os"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyEmbeddingProvider = "embedding.provider"
	KeyEmbeddingModel    = "embedding.model"
	KeyEmbeddingBaseURL  = "embedding.base_url"
	KeyEmbeddingAPIKey   = "embedding.api_key"

	KeyLLMProvider = "llm.provider"
	KeyLLMModel    = "llm.model"
	KeyLLMBaseURL  = "llm.base_url"
	KeyLLMAPIKey   = "llm.api_key"

	KeyIngestChunkSize    = "ingest.chunk_size"
	KeyIngestChunkOverlap = "ingest.chunk_overlap"
	KeyIngestSeparator    = "ingest.separator"
	KeyIngestMaxFileSize  = "ingest.max_file_size"

	KeyAskTopK = "ask.top_k"
)

// envOpenAIAPIKey is checked when no API key is stored in the config file.
const envOpenAIAPIKey = "OPENAI_API_KEY"

// LoadEmbeddingSettings builds embedding settings from the config store.
// Defaults to Ollama when no provider is configured.
func LoadEmbeddingSettings(store driven.ConfigStore) *domain.EmbeddingSettings {
	provider := domain.AIProvider(store.GetString(KeyEmbeddingProvider))
	if provider == "" {
		provider = domain.AIProviderOllama
	}

	apiKey := store.GetString(KeyEmbeddingAPIKey)
	if apiKey == "" && provider == domain.AIProviderOpenAI {
		apiKey = os.Getenv(envOpenAIAPIKey)
	}

	return &domain.EmbeddingSettings{
		Provider: provider,
		Model:    store.GetString(KeyEmbeddingModel),
		BaseURL:  store.GetString(KeyEmbeddingBaseURL),
		APIKey:   apiKey,
	}
}

// LoadLLMSettings builds LLM settings from the config store.
// Defaults to Ollama when no provider is configured.
func LoadLLMSettings(store driven.ConfigStore) *domain.LLMSettings {
	provider := domain.AIProvider(store.GetString(KeyLLMProvider))
	if provider == "" {
		provider = domain.AIProviderOllama
	}

	apiKey := store.GetString(KeyLLMAPIKey)
	if apiKey == "" && provider == domain.AIProviderOpenAI {
		apiKey = os.Getenv(envOpenAIAPIKey)
	}

	return &domain.LLMSettings{
		Provider: provider,
		Model:    store.GetString(KeyLLMModel),
		BaseURL:  store.GetString(KeyLLMBaseURL),
		APIKey:   apiKey,
	}
}

// LoadIngestSettings builds ingestion settings from the config store,
// falling back to package defaults for unset values.
func LoadIngestSettings(store driven.ConfigStore) domain.IngestSettings {
	return domain.IngestSettings{
		ChunkSize:    store.GetInt(KeyIngestChunkSize),
		ChunkOverlap: store.GetInt(KeyIngestChunkOverlap),
		Separator:    store.GetString(KeyIngestSeparator),
		MaxFileSize:  int64(store.GetInt(KeyIngestMaxFileSize)),
	}.WithDefaults()
}

// LoadAskSettings builds question answering settings from the config
// store, falling back to package defaults for unset values.
func LoadAskSettings(store driven.ConfigStore) domain.AskSettings {
	return domain.AskSettings{
		TopK: store.GetInt(KeyAskTopK),
	}.WithDefaults()
}
