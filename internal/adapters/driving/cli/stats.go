package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	stats, err := libraryService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	cmd.Printf("Documents:  %d\n", stats.TotalDocuments)
	cmd.Printf("Chunks:     %d\n", stats.TotalChunks)
	cmd.Printf("Index size: %d\n", stats.IndexSize)
	cmd.Printf("Status:     %s\n", stats.Status())

	return nil
}
