// Command digest explores AI-generated summaries of parliamentary meetings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/verslag-digest/digest/internal/adapters/driven/config/file"
	"github.com/verslag-digest/digest/internal/adapters/driven/source/filesystem"
	"github.com/verslag-digest/digest/internal/adapters/driven/source/httpsource"
	"github.com/verslag-digest/digest/internal/adapters/driven/storage/memory"
	"github.com/verslag-digest/digest/internal/adapters/driving/cli"
	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening config: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return 1
	}

	// A broken source leaves the settings commands usable so it can be fixed.
	fetcher, err := newFetcher(settings.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (fix with 'digest settings set source.location')\n", err)
		cli.SetServices(nil, settingsService)
	} else {
		loader := services.NewDocumentLoader(fetcher,
			services.NewDefaultDiscovery(fetcher, settings.Source),
			settings.Source.Concurrency)
		store := memory.NewDocumentStoreWithPolicy(settings.Filter.Duplicates)
		corpus := services.NewCorpusService(loader, store, *settings)
		defer corpus.Close()

		if settings.Source.Kind == domain.SourceKindFilesystem && settings.Source.Watch {
			watcher := filesystem.NewWatcher(settings.Source.Location, 0)
			cli.SetBackgroundTask(func(ctx context.Context) error {
				return corpus.Watch(ctx, watcher)
			})
		}
		cli.SetServices(corpus, settingsService)
	}

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// newFetcher builds the transport selected by the source kind.
func newFetcher(source domain.SourceSettings) (driven.Fetcher, error) {
	switch source.Kind {
	case domain.SourceKindHTTP:
		return httpsource.NewFetcher(source.Location, httpsource.Options{
			Timeout:           source.Timeout,
			RequestsPerSecond: source.RequestsPerSecond,
			RetryCount:        source.Retries,
		})
	case domain.SourceKindFilesystem, "":
		return filesystem.NewFetcher(source.Location), nil
	default:
		return nil, fmt.Errorf("%w: unknown source kind %q", domain.ErrInvalidInput, source.Kind)
	}
}
