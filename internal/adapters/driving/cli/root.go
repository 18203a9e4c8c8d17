// Package cli implements the command-line interface. Commands talk to
// the core exclusively through the driving ports, which are injected
// once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/halcyon-labs/askdoc/internal/core/ports/driving"
	"github.com/halcyon-labs/askdoc/internal/logger"
)

// Injected services. Nil until SetServices is called.
var (
	ingestService  driving.IngestService
	answerService  driving.AnswerService
	libraryService driving.LibraryService
)

// verbose enables debug logging on stderr.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "askdoc",
	Short: "Ask questions about your documents",
	Long: `askdoc ingests text, markdown, PDF and Word documents into a local
vector index and answers natural-language questions grounded in them.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
}

// SetServices injects the core services the commands depend on.
func SetServices(ingest driving.IngestService, answer driving.AnswerService, library driving.LibraryService) {
	ingestService = ingest
	answerService = answer
	libraryService = library
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
