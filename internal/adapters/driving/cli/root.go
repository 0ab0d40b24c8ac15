package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
	"github.com/verslag-digest/digest/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// refreshTimeout bounds the initial corpus load of one-shot commands.
var refreshTimeout = 30 * time.Second

var (
	corpusService   driving.CorpusService
	settingsService driving.SettingsService

	// backgroundTask runs alongside long-lived commands, e.g. reloading
	// the corpus when source files change.
	backgroundTask func(ctx context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Explore summarised parliamentary meeting reports",
	Long: `Digest aggregates AI-generated summaries of legislative meetings into a
single filterable corpus.

Documents are discovered from a local directory or a remote base URL, either
through a manifest, a plain file list, or filename patterns. The corpus can be
filtered by topic, party, and free text from the command line, the interactive
terminal UI, or an MCP client.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err == nil {
			logger.SetVerbose(verbose)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// SetServices injects the services used by every command.
func SetServices(corpus driving.CorpusService, settings driving.SettingsService) {
	corpusService = corpus
	settingsService = settings
}

// SetBackgroundTask sets the task started by the tui and mcp serve commands.
func SetBackgroundTask(fn func(ctx context.Context) error) {
	backgroundTask = fn
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// loadCorpus refreshes the corpus before a one-shot command reads it.
// A fallback corpus is reported on stderr and is not an error.
func loadCorpus(cmd *cobra.Command) (driving.Snapshot, error) {
	if corpusService == nil {
		return driving.Snapshot{}, errors.New("corpus service not configured")
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), refreshTimeout)
	defer cancel()

	if err := corpusService.Refresh(ctx); err != nil {
		if !errors.Is(err, domain.ErrNoDocuments) {
			return driving.Snapshot{}, fmt.Errorf("failed to load documents: %w", err)
		}
	}

	snap := corpusService.Snapshot()
	if snap.Warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", snap.Warning)
	}
	return snap, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// startBackground runs the background task until the returned stop
// function is called. Stop waits for the task to return.
func startBackground(ctx context.Context) (stop func()) {
	if backgroundTask == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := backgroundTask(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("Background task stopped: %v", err)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
