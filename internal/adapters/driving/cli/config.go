package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
)

// configStore is injected at startup via SetConfigStore.
var configStore driven.ConfigStore

// configurableKeys documents the recognised settings.
var configurableKeys = []string{
	"embedding.provider",
	"embedding.model",
	"embedding.base_url",
	"embedding.api_key",
	"llm.provider",
	"llm.model",
	"llm.base_url",
	"llm.api_key",
	"ingest.chunk_size",
	"ingest.chunk_overlap",
	"ingest.separator",
	"ingest.max_file_size",
	"ask.top_k",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and change provider and pipeline settings stored in the config file.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

// SetConfigStore injects the configuration store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := append([]string(nil), configurableKeys...)
	sort.Strings(keys)

	for _, key := range keys {
		val, ok := configStore.Get(key)
		if !ok {
			continue
		}
		if strings.HasSuffix(key, "api_key") {
			val = "********"
		}
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if !isConfigurable(key) {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	// Numeric settings are stored as integers.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil && isNumericKey(key) {
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Delete(args[0]); err != nil {
		return fmt.Errorf("failed to remove setting: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func isConfigurable(key string) bool {
	for _, k := range configurableKeys {
		if k == key {
			return true
		}
	}
	return false
}

func isNumericKey(key string) bool {
	switch key {
	case "ingest.chunk_size", "ingest.chunk_overlap", "ingest.max_file_size", "ask.top_k":
		return true
	}
	return false
}
