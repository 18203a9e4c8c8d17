// Command askdoc is a local document question-answering tool.
// It ingests documents into a SQLite-backed vector index and answers
// questions about them using a configurable AI provider.
package main

import (
	"fmt"
	"os"

	"github.com/halcyon-labs/askdoc/internal/adapters/driven/ai"
	configfile "github.com/halcyon-labs/askdoc/internal/adapters/driven/config/file"
	"github.com/halcyon-labs/askdoc/internal/adapters/driven/storage/sqlite"
	"github.com/halcyon-labs/askdoc/internal/adapters/driving/cli"
	"github.com/halcyon-labs/askdoc/internal/core/services"
	"github.com/halcyon-labs/askdoc/internal/extractors"
	"github.com/halcyon-labs/askdoc/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cli.SetVersion(version)

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	cli.SetConfigStore(configStore)

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	embedder, err := ai.CreateAndValidateEmbeddingService(configfile.LoadEmbeddingSettings(configStore))
	if err != nil {
		logger.Warn("Embedding service unavailable: %v", err)
	}
	if embedder != nil {
		defer embedder.Close()
	}

	llm, err := ai.CreateAndValidateLLMService(configfile.LoadLLMSettings(configStore))
	if err != nil {
		logger.Warn("LLM service unavailable: %v", err)
	}
	if llm != nil {
		defer llm.Close()
	}

	index := store.VectorIndex()
	meta := store.MetadataStore()

	cli.SetServices(
		services.NewIngestService(extractors.Defaults(), embedder, index, meta,
			configfile.LoadIngestSettings(configStore)),
		services.NewAnswerService(embedder, index, llm,
			configfile.LoadAskSettings(configStore)),
		services.NewLibraryService(index, meta),
	)

	return cli.Execute()
}
