package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Ingest documents into the index",
	Long: `Extracts text from each file, splits it into chunks, embeds the
chunks and stores them in the local index. Supported formats: .txt,
.md, .pdf, .docx.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := context.Background()

	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		result, err := ingestService.Ingest(ctx, filepath.Base(path), raw)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}

		cmd.Printf("Ingested %s\n", path)
		cmd.Printf("  Document ID: %s\n", result.DocumentID)
		cmd.Printf("  Chunks:      %d\n", result.ChunkCount)
		cmd.Printf("  Elapsed:     %s\n", result.Elapsed.Round(timePrecision))
	}

	return nil
}
