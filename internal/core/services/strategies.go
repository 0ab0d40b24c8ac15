package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/gjson"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/logger"
)

// ManifestStrategy reads a manifest resource of the form
// {"files": [...], "count": n, "generated": "..."}. A bare array is accepted too.
type ManifestStrategy struct {
	fetcher driven.Fetcher
	name    string
}

// NewManifestStrategy creates a strategy reading the named manifest.
func NewManifestStrategy(fetcher driven.Fetcher, name string) *ManifestStrategy {
	return &ManifestStrategy{fetcher: fetcher, name: name}
}

// Name identifies the strategy.
func (s *ManifestStrategy) Name() string {
	return "manifest"
}

// Filenames fetches and parses the manifest.
func (s *ManifestStrategy) Filenames(ctx context.Context) ([]string, error) {
	manifest, err := s.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	return manifest.Files, nil
}

// Manifest fetches the manifest with its generation metadata.
func (s *ManifestStrategy) Manifest(ctx context.Context) (*domain.Manifest, error) {
	data, err := s.fetcher.Fetch(ctx, s.name)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest %s: %w", s.name, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("manifest %s: %w", s.name, domain.ErrMalformedDocument)
	}

	root := gjson.ParseBytes(data)
	if root.IsArray() {
		files := stringArray(root)
		return &domain.Manifest{Files: files, Count: len(files)}, nil
	}

	files := root.Get("files")
	if !files.IsArray() {
		return nil, fmt.Errorf("manifest %s has no files array: %w", s.name, domain.ErrMalformedDocument)
	}
	manifest := &domain.Manifest{
		Files: stringArray(files),
		Count: int(root.Get("count").Int()),
	}
	if generated := root.Get("generated").String(); generated != "" {
		if ts, err := time.Parse(time.RFC3339, generated); err == nil {
			manifest.Generated = ts
		} else {
			logger.Debug("Manifest generated timestamp %q not parseable: %v", generated, err)
		}
	}
	if manifest.Count != 0 && manifest.Count != len(manifest.Files) {
		logger.Warn("Manifest count %d does not match %d listed files", manifest.Count, len(manifest.Files))
	}
	return manifest, nil
}

// FileListStrategy reads a resource holding a plain JSON array of filenames.
type FileListStrategy struct {
	fetcher driven.Fetcher
	name    string
}

// NewFileListStrategy creates a strategy reading the named file list.
func NewFileListStrategy(fetcher driven.Fetcher, name string) *FileListStrategy {
	return &FileListStrategy{fetcher: fetcher, name: name}
}

// Name identifies the strategy.
func (s *FileListStrategy) Name() string {
	return "file-list"
}

// Filenames fetches and parses the file list.
func (s *FileListStrategy) Filenames(ctx context.Context) ([]string, error) {
	data, err := s.fetcher.Fetch(ctx, s.name)
	if err != nil {
		return nil, fmt.Errorf("fetch file list %s: %w", s.name, err)
	}
	root := gjson.ParseBytes(data)
	if !gjson.ValidBytes(data) || !root.IsArray() {
		return nil, fmt.Errorf("file list %s: %w", s.name, domain.ErrMalformedDocument)
	}
	return stringArray(root), nil
}

// PatternStrategy consults a static set of configured names.
// Entries containing glob syntax are expanded against the source listing
// when the fetcher can list; literal entries are used as-is.
type PatternStrategy struct {
	fetcher  driven.Fetcher
	patterns []string
}

// NewPatternStrategy creates a strategy over the given names and patterns.
func NewPatternStrategy(fetcher driven.Fetcher, patterns []string) *PatternStrategy {
	return &PatternStrategy{fetcher: fetcher, patterns: patterns}
}

// Name identifies the strategy.
func (s *PatternStrategy) Name() string {
	return "patterns"
}

// Filenames resolves the configured patterns.
func (s *PatternStrategy) Filenames(ctx context.Context) ([]string, error) {
	var listing []string
	listed := false

	var out []string
	for _, pattern := range s.patterns {
		if !isGlob(pattern) {
			out = append(out, pattern)
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			logger.Debug("Skipping invalid pattern %q", pattern)
			continue
		}
		if !listed {
			lister, ok := s.fetcher.(driven.Lister)
			if !ok {
				logger.Debug("Source %s cannot list; skipping glob patterns", s.fetcher.Location())
				listed = true
				continue
			}
			names, err := lister.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("list %s: %w", s.fetcher.Location(), err)
			}
			listing = names
			listed = true
		}
		matches := matchAll(pattern, listing)
		out = append(out, matches...)
	}
	return out, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func matchAll(pattern string, names []string) []string {
	var out []string
	for _, name := range names {
		if ok, _ := doublestar.Match(pattern, name); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func stringArray(r gjson.Result) []string {
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.String && item.String() != "" {
			out = append(out, item.String())
		}
	}
	return out
}

// NewDefaultDiscovery builds the standard chain: manifest, file list, patterns.
func NewDefaultDiscovery(fetcher driven.Fetcher, settings domain.SourceSettings) *SourceDiscovery {
	var strategies []DiscoveryStrategy
	if settings.Manifest != "" {
		strategies = append(strategies, NewManifestStrategy(fetcher, settings.Manifest))
	}
	if settings.FileList != "" {
		strategies = append(strategies, NewFileListStrategy(fetcher, settings.FileList))
	}
	if len(settings.Patterns) > 0 {
		strategies = append(strategies, NewPatternStrategy(fetcher, settings.Patterns))
	}
	return NewSourceDiscovery(strategies...)
}
