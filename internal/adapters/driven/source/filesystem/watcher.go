package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/romdo/go-debounce"

	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/logger"
)

// DefaultWatchDebounce batches bursts of file events into one change.
const DefaultWatchDebounce = 250 * time.Millisecond

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// Watcher reports changes to .json files in a directory.
type Watcher struct {
	root string
	wait time.Duration
}

// NewWatcher creates a watcher for root. Events arriving within wait of
// each other are reported once.
func NewWatcher(location string, wait time.Duration) *Watcher {
	if wait <= 0 {
		wait = DefaultWatchDebounce
	}
	return &Watcher{root: ResolveLocation(location), wait: wait}
}

// Watch calls onChange after relevant file events until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	logger.Debug("Watching %s for summary changes", w.root)

	debounced, cancel := debounce.New(w.wait, onChange)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if isRelevant(event) {
				logger.With("file", event.Name, "op", event.Op.String()).Debug("summary change detected")
				debounced()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error: %v", err)
		}
	}
}

// isRelevant reports whether event may change the set of loadable documents.
func isRelevant(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
