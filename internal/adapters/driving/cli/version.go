package cli

import (
	"github.com/spf13/cobra"
)

// version is set from main at startup (build-time via ldflags).
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("askdoc version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion overrides the displayed version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
