package services

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/logger"
)

// summaryFilename matches {model}_summary_{id}.json with a canonical lowercase id.
var summaryFilename = regexp.MustCompile(`^(.+)_summary_([0-9a-f-]{36})\.json$`)

// ParseFilename extracts the source model and id from a summary filename.
// The boolean is false when the name does not follow the
// {model}_summary_{uuid}.json convention; the descriptor then carries the
// unknown model and the filename without extension as id.
func ParseFilename(name string) (domain.FileDescriptor, bool) {
	base := path.Base(name)
	m := summaryFilename.FindStringSubmatch(base)
	if m == nil || uuid.Validate(m[2]) != nil {
		return domain.FileDescriptor{
			Filename:    name,
			SourceModel: domain.UnknownModel,
			ID:          strings.TrimSuffix(base, path.Ext(base)),
		}, false
	}
	return domain.FileDescriptor{
		Filename:    name,
		SourceModel: m[1],
		ID:          m[2],
	}, true
}

// DiscoveryStrategy produces candidate filenames from one kind of source listing.
type DiscoveryStrategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Filenames returns candidate resource names.
	Filenames(ctx context.Context) ([]string, error)
}

// SourceDiscovery resolves loadable document descriptors through a
// fallback chain of strategies.
type SourceDiscovery struct {
	strategies []DiscoveryStrategy
}

// NewSourceDiscovery creates a discovery chain tried in the given order.
func NewSourceDiscovery(strategies ...DiscoveryStrategy) *SourceDiscovery {
	return &SourceDiscovery{strategies: strategies}
}

// Discover returns the descriptors of the first strategy that yields at
// least one parseable filename. It never fails: strategy errors are logged
// and the next strategy is tried. An empty result means no documents were found.
func (d *SourceDiscovery) Discover(ctx context.Context) []domain.FileDescriptor {
	logger.Section("Source Discovery")
	for _, strategy := range d.strategies {
		if ctx.Err() != nil {
			logger.Debug("Discovery cancelled: %v", ctx.Err())
			break
		}
		names, err := strategy.Filenames(ctx)
		if err != nil {
			logger.Debug("Strategy %s failed: %v", strategy.Name(), err)
			continue
		}
		descriptors := parseAll(names)
		logger.Debug("Strategy %s: %d names, %d usable", strategy.Name(), len(names), len(descriptors))
		if len(descriptors) > 0 {
			return descriptors
		}
	}
	logger.Info("No summary documents discovered")
	return []domain.FileDescriptor{}
}

// parseAll keeps only parseable, distinct filenames in listing order.
func parseAll(names []string) []domain.FileDescriptor {
	seen := make(map[string]bool, len(names))
	out := make([]domain.FileDescriptor, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		fd, ok := ParseFilename(name)
		if !ok {
			logger.With("file", name).Debug("excluding file with unrecognised name")
			continue
		}
		out = append(out, fd)
	}
	return out
}
