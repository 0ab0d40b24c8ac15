package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verslag-digest/digest/internal/core/domain"
)

func TestManifestStrategy_Manifest(t *testing.T) {
	fetcher := newMockFetcher(map[string]string{
		"manifest.json": `{"files": ["a.json", "b.json", 7], "count": 2, "generated": "2025-03-12T08:00:00Z"}`,
	})

	manifest, err := NewManifestStrategy(fetcher, "manifest.json").Manifest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, manifest.Files)
	assert.Equal(t, 2, manifest.Count)
	assert.Equal(t, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC), manifest.Generated)
}

func TestManifestStrategy_BareArray(t *testing.T) {
	fetcher := newMockFetcher(map[string]string{"manifest.json": `["a.json"]`})

	names, err := NewManifestStrategy(fetcher, "manifest.json").Filenames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json"}, names)
}

func TestManifestStrategy_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content map[string]string
		wantErr error
	}{
		{name: "missing", content: map[string]string{}, wantErr: domain.ErrResourceUnavailable},
		{name: "invalid json", content: map[string]string{"manifest.json": `{"files": [`}, wantErr: domain.ErrMalformedDocument},
		{name: "no files array", content: map[string]string{"manifest.json": `{"count": 1}`}, wantErr: domain.ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManifestStrategy(newMockFetcher(tt.content), "manifest.json").Filenames(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileListStrategy(t *testing.T) {
	fetcher := newMockFetcher(map[string]string{
		"files.json": `["x.json", "y.json"]`,
		"bad.json":   `{"files": []}`,
	})

	names, err := NewFileListStrategy(fetcher, "files.json").Filenames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x.json", "y.json"}, names)

	_, err = NewFileListStrategy(fetcher, "bad.json").Filenames(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestPatternStrategy_ExpandsGlobsAgainstListing(t *testing.T) {
	fetcher := &mockListingFetcher{mockFetcher: newMockFetcher(map[string]string{
		summaryFile("deepseek", idB): "{}",
		summaryFile("claude", idA):   "{}",
		"manifest.json":              "{}",
		"nested/x_summary_a.json":    "{}",
	})}

	names, err := NewPatternStrategy(fetcher, []string{"*_summary_*.json", "static.json"}).Filenames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{summaryFile("claude", idA), summaryFile("deepseek", idB), "static.json"}, names)
}

func TestPatternStrategy_RecursiveGlob(t *testing.T) {
	fetcher := &mockListingFetcher{mockFetcher: newMockFetcher(map[string]string{
		"2025/" + summaryFile("deepseek", idA): "{}",
		summaryFile("claude", idB):             "{}",
	})}

	names, err := NewPatternStrategy(fetcher, []string{"**/*_summary_*.json"}).Filenames(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2025/" + summaryFile("deepseek", idA), summaryFile("claude", idB)}, names)
}

func TestPatternStrategy_NonListingFetcherKeepsLiterals(t *testing.T) {
	fetcher := newMockFetcher(nil)

	names, err := NewPatternStrategy(fetcher, []string{"*_summary_*.json", summaryFile("deepseek", idA)}).Filenames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{summaryFile("deepseek", idA)}, names)
}

func TestPatternStrategy_ListError(t *testing.T) {
	fetcher := &mockListingFetcher{mockFetcher: newMockFetcher(nil), listErr: errors.New("denied")}

	_, err := NewPatternStrategy(fetcher, []string{"*.json"}).Filenames(context.Background())

	assert.Error(t, err)
}

func TestPatternStrategy_SkipsInvalidPattern(t *testing.T) {
	fetcher := &mockListingFetcher{mockFetcher: newMockFetcher(map[string]string{"a.json": "{}"})}

	names, err := NewPatternStrategy(fetcher, []string{"[a.json"}).Filenames(context.Background())

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewDefaultDiscovery_FallsBackThroughChain(t *testing.T) {
	settings := domain.DefaultAppSettings().Source

	t.Run("manifest", func(t *testing.T) {
		fetcher := newMockFetcher(map[string]string{
			"manifest.json": `{"files": ["` + summaryFile("deepseek", idA) + `"], "count": 1}`,
			"files.json":    `["` + summaryFile("claude", idB) + `"]`,
		})
		fds := NewDefaultDiscovery(fetcher, settings).Discover(context.Background())
		require.Len(t, fds, 1)
		assert.Equal(t, idA, fds[0].ID)
	})

	t.Run("file list", func(t *testing.T) {
		fetcher := newMockFetcher(map[string]string{
			"files.json": `["` + summaryFile("claude", idB) + `"]`,
		})
		fds := NewDefaultDiscovery(fetcher, settings).Discover(context.Background())
		require.Len(t, fds, 1)
		assert.Equal(t, idB, fds[0].ID)
	})

	t.Run("patterns", func(t *testing.T) {
		fetcher := &mockListingFetcher{mockFetcher: newMockFetcher(map[string]string{
			summaryFile("gemini", idC): "{}",
			"readme.json":              "{}",
		})}
		fds := NewDefaultDiscovery(fetcher, settings).Discover(context.Background())
		require.Len(t, fds, 1)
		assert.Equal(t, "gemini", fds[0].SourceModel)
	})

	t.Run("nothing", func(t *testing.T) {
		fds := NewDefaultDiscovery(newMockFetcher(nil), settings).Discover(context.Background())
		assert.Empty(t, fds)
	})
}
