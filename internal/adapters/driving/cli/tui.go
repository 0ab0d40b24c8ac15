package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for digest.

The TUI lists the meeting summaries that pass the current filters and
narrows them as you type.

Controls:
  ↑/k, ↓/j - Navigate documents
  /        - Search
  Enter    - Open document
  f        - Topic and party filters
  s        - Statistics
  r        - Reload documents
  Esc      - Back / Clear search
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Panics inside bubbletea leave the terminal in raw mode without a trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(corpusService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx := commandContext(cmd)
	stop := startBackground(ctx)
	defer stop()

	app.WithContext(ctx)
	if err := app.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
