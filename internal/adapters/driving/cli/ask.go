package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

// timePrecision rounds durations for display.
const timePrecision = time.Millisecond

// Flags for the ask command.
var (
	askTopK      int
	askDocuments []string
	askShowText  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your documents",
	Long: `Retrieves the chunks most similar to the question and generates an
answer grounded in them, citing the source documents.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "Number of chunks to retrieve (default 5)")
	askCmd.Flags().StringSliceVarP(&askDocuments, "document", "d", nil, "Restrict to the given document IDs")
	askCmd.Flags().BoolVar(&askShowText, "show-sources", false, "Print the text of each source chunk")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	question := strings.Join(args, " ")
	ctx := context.Background()

	answer, err := answerService.Ask(ctx, question, domain.AskOptions{
		TopK:        askTopK,
		DocumentIDs: askDocuments,
	})
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}

	cmd.Println(answer.Text)
	cmd.Println()
	cmd.Printf("Confidence: %.2f  (%s)\n", answer.Confidence, answer.Elapsed.Round(timePrecision))

	if len(answer.Sources) > 0 {
		cmd.Println("\nSources:")
		for i, src := range answer.Sources {
			cmd.Printf("  %d. %s (chunk %d, score %.3f)\n", i+1, src.Filename, src.ChunkIndex, src.Score)
			if askShowText {
				cmd.Printf("     %s\n", src.Text)
			}
		}
	}

	return nil
}
