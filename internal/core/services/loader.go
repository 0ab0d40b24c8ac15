package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/logger"
)

// DocumentLoader fetches and normalises summary documents.
type DocumentLoader struct {
	fetcher     driven.Fetcher
	discovery   *SourceDiscovery
	concurrency int
	now         func() time.Time
}

// NewDocumentLoader creates a loader reading through fetcher.
// A concurrency of zero or less issues every fetch at once.
func NewDocumentLoader(fetcher driven.Fetcher, discovery *SourceDiscovery, concurrency int) *DocumentLoader {
	return &DocumentLoader{
		fetcher:     fetcher,
		discovery:   discovery,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// LoadOne fetches and decodes a single document.
// Every failure is reported as domain.ErrNotFound wrapping the cause.
func (l *DocumentLoader) LoadOne(ctx context.Context, fd domain.FileDescriptor) (*domain.Document, error) {
	data, err := l.fetcher.Fetch(ctx, fd.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNotFound, fd.Filename, err)
	}
	doc, err := decodePayload(data, fd, l.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return doc, nil
}

// LoadMany loads all descriptors concurrently and waits for every fetch to
// settle. Failed descriptors are omitted; the rest keep descriptor order.
func (l *DocumentLoader) LoadMany(ctx context.Context, fds []domain.FileDescriptor) []domain.Document {
	results := make([]*domain.Document, len(fds))

	var g errgroup.Group
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, fd := range fds {
		g.Go(func() error {
			doc, err := l.LoadOne(ctx, fd)
			if err != nil {
				logger.With("file", fd.Filename).Debug("load failed", "err", err)
				return nil
			}
			results[i] = doc
			return nil
		})
	}
	_ = g.Wait()

	docs := make([]domain.Document, 0, len(fds))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	logger.Debug("Loaded %d of %d documents", len(docs), len(fds))
	return docs
}

// LoadAll discovers and loads every available document.
// It returns domain.ErrNoDocuments when nothing usable was obtained.
func (l *DocumentLoader) LoadAll(ctx context.Context) ([]domain.Document, error) {
	fds := l.discovery.Discover(ctx)
	if len(fds) == 0 {
		return nil, fmt.Errorf("discovery at %s: %w", l.fetcher.Location(), domain.ErrNoDocuments)
	}
	docs := l.LoadMany(ctx, fds)
	if len(docs) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("all %d loads failed: %w", len(fds), domain.ErrNoDocuments)
	}
	return docs, nil
}
