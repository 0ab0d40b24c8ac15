// Package filesystem serves summary documents from a local directory.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
)

// Ensure Fetcher implements the source interfaces.
var (
	_ driven.Fetcher = (*Fetcher)(nil)
	_ driven.Lister  = (*Fetcher)(nil)
)

// Fetcher reads resources beneath a root directory.
// Names are resolved relative to the root and cannot escape it.
type Fetcher struct {
	fs   afero.Fs
	root string
}

// NewFetcher creates a fetcher over location on the OS filesystem.
// A file:// prefix on location is accepted.
func NewFetcher(location string) *Fetcher {
	return NewFetcherFs(afero.NewOsFs(), ResolveLocation(location))
}

// NewFetcherFs creates a fetcher over root on the given filesystem.
func NewFetcherFs(base afero.Fs, root string) *Fetcher {
	return &Fetcher{
		fs:   afero.NewBasePathFs(base, root),
		root: root,
	}
}

// Fetch returns the content of the named file.
func (f *Fetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, filepath.FromSlash(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", name, domain.ErrResourceUnavailable, err)
	}
	return data, nil
}

// List returns every .json file beneath the root as a slash-separated
// relative path, sorted. Hidden files and directories are skipped.
func (f *Fetcher) List(ctx context.Context) ([]string, error) {
	var names []string
	err := afero.Walk(f.fs, ".", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == "." {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode().IsRegular() && strings.EqualFold(filepath.Ext(path), ".json") {
			names = append(names, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w: %w", f.root, domain.ErrResourceUnavailable, err)
	}
	sort.Strings(names)
	return names, nil
}

// Location returns the root directory.
func (f *Fetcher) Location() string {
	return f.root
}

// ResolveLocation converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolveLocation(location string) string {
	return strings.TrimPrefix(location, "file://")
}
