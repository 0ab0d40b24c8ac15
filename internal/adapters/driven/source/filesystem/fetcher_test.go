package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verslag-digest/digest/internal/core/domain"
)

func memFetcher(t *testing.T, files map[string]string) *Fetcher {
	t.Helper()
	base := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(base, filepath.Join("/data", name), []byte(content), 0644))
	}
	return NewFetcherFs(base, "/data")
}

func TestFetcher_Fetch(t *testing.T) {
	f := memFetcher(t, map[string]string{
		"manifest.json":         `{"files": []}`,
		"2025/a_summary_x.json": `{}`,
	})

	data, err := f.Fetch(context.Background(), "manifest.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"files": []}`, string(data))

	data, err = f.Fetch(context.Background(), "2025/a_summary_x.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestFetcher_FetchErrors(t *testing.T) {
	f := memFetcher(t, map[string]string{"a.json": "{}"})

	tests := []struct {
		name string
		file string
	}{
		{name: "missing", file: "missing.json"},
		{name: "escapes root", file: "../etc/passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Fetch(context.Background(), tt.file)
			assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Fetch(ctx, "a.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_List(t *testing.T) {
	f := memFetcher(t, map[string]string{
		"b_summary_1.json":      "{}",
		"a_summary_2.json":      "{}",
		"notes.txt":             "",
		".hidden.json":          "{}",
		".cache/c.json":         "{}",
		"2025/d_summary_3.JSON": "{}",
	})

	names, err := f.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2025/d_summary_3.JSON", "a_summary_2.json", "b_summary_1.json"}, names)
}

func TestFetcher_ListMissingRoot(t *testing.T) {
	f := NewFetcherFs(afero.NewMemMapFs(), "/nowhere")

	_, err := f.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
}

func TestFetcher_OnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "files.json"), []byte(`["x.json"]`), 0644))

	f := NewFetcher("file://" + dir)

	assert.Equal(t, dir, f.Location())
	data, err := f.Fetch(context.Background(), "files.json")
	require.NoError(t, err)
	assert.Equal(t, `["x.json"]`, string(data))
}

func TestResolveLocation(t *testing.T) {
	assert.Equal(t, "/srv/summaries", ResolveLocation("file:///srv/summaries"))
	assert.Equal(t, "summaries", ResolveLocation("summaries"))
}
