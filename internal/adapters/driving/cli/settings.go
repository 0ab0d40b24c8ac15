package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the document source, facet behaviour, and search options.

Settings are stored in ~/.digest/config.toml. Use 'digest settings keys' to list
every key and 'digest settings set KEY VALUE' to change one.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting. The value is validated before it is saved.

Examples:
  digest settings set source.kind http
  digest settings set source.location https://example.org/summaries
  digest settings set source.patterns "*_summary_*.json,extra.json"
  digest settings set search.debounce 500ms`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Kind: %s\n", settings.Source.Kind.Description())
	cmd.Printf("  Location: %s\n", settings.Source.Location)
	cmd.Printf("  Manifest: %s\n", orNone(settings.Source.Manifest))
	cmd.Printf("  File list: %s\n", orNone(settings.Source.FileList))
	cmd.Printf("  Patterns: %s\n", orNone(strings.Join(settings.Source.Patterns, ", ")))
	if settings.Source.Concurrency > 0 {
		cmd.Printf("  Concurrency: %d\n", settings.Source.Concurrency)
	} else {
		cmd.Printf("  Concurrency: unbounded\n")
	}
	if settings.Source.Kind == domain.SourceKindHTTP {
		if settings.Source.RequestsPerSecond > 0 {
			cmd.Printf("  Rate limit: %g req/s\n", settings.Source.RequestsPerSecond)
		} else {
			cmd.Printf("  Rate limit: none\n")
		}
		cmd.Printf("  Timeout: %s\n", settings.Source.Timeout)
		cmd.Printf("  Retries: %d\n", settings.Source.Retries)
	} else {
		cmd.Printf("  Watch: %s\n", yesNo(settings.Source.Watch))
	}
	cmd.Println()

	cmd.Println("[Filter]")
	cmd.Printf("  Preserve selection: %s\n", yesNo(settings.Filter.PreserveSelection))
	cmd.Printf("  Duplicates: keep %s\n", settings.Filter.Duplicates)
	cmd.Println()

	search := settings.Search.Defaults
	cmd.Println("[Search]")
	cmd.Printf("  Debounce: %s\n", settings.Search.Debounce)
	cmd.Printf("  Topics: %s\n", yesNo(search.IncludeTopics))
	cmd.Printf("  Positions: %s\n", yesNo(search.IncludePositions))
	cmd.Printf("  Decisions: %s\n", yesNo(search.IncludeDecisions))
	cmd.Printf("  Context: %s\n", yesNo(search.IncludeContext))
	cmd.Printf("  Reasoning: %s\n", yesNo(search.IncludeReasoning))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
