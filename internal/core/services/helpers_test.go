package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// --- Mock implementations ---

// mockFetcher implements driven.Fetcher over an in-memory file map.
type mockFetcher struct {
	mu    sync.Mutex
	files map[string][]byte
	errs  map[string]error
	calls []string
}

func newMockFetcher(files map[string]string) *mockFetcher {
	m := &mockFetcher{
		files: make(map[string][]byte, len(files)),
		errs:  make(map[string]error),
	}
	for name, content := range files {
		m.files[name] = []byte(content)
	}
	return m
}

func (m *mockFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.errs[name]; ok {
		return nil, err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrResourceUnavailable)
	}
	return data, nil
}

func (m *mockFetcher) Location() string {
	return "mock://summaries"
}

func (m *mockFetcher) set(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = []byte(content)
}

func (m *mockFetcher) fetched() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// mockListingFetcher adds driven.Lister to mockFetcher.
type mockListingFetcher struct {
	*mockFetcher
	listErr error
}

func (m *mockListingFetcher) List(_ context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	return names, nil
}

// mockStrategy implements DiscoveryStrategy with canned results.
type mockStrategy struct {
	name  string
	names []string
	err   error
	calls int
}

func (m *mockStrategy) Name() string {
	return m.name
}

func (m *mockStrategy) Filenames(_ context.Context) ([]string, error) {
	m.calls++
	return m.names, m.err
}

// --- Fixtures ---

const (
	idA = "123e4567-e89b-12d3-a456-426614174000"
	idB = "223e4567-e89b-12d3-a456-426614174001"
	idC = "323e4567-e89b-12d3-a456-426614174002"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func topic(name string, parties ...string) domain.Topic {
	positions := make(map[string]domain.Position, len(parties))
	for _, p := range parties {
		positions[p] = domain.PlainPosition(p + " position on " + name)
	}
	return domain.Topic{Name: name, Summary: name + " summary", Positions: positions}
}

func doc(id, date string, topics ...domain.Topic) domain.Document {
	return domain.Document{
		ID:    id,
		Title: "Meeting " + id,
		Date:  mustDate(date),
		Summary: domain.Summary{
			ExecutiveSummary: "Summary of " + id,
			Topics:           topics,
		},
	}
}

// scenarioDocs returns the two-document corpus used by the filter scenarios.
func scenarioDocs() []domain.Document {
	return []domain.Document{
		doc("feb", "2025-02-01", topic("Housing Regulation", "VVD")),
		doc("mar", "2025-03-11", topic("Climate Policy", "VVD", "PVV")),
	}
}

func summaryPayload(id, title, date string) string {
	return fmt.Sprintf(`{
  "executiveSummary": "Executive summary for %[2]s",
  "topics": [
    {"name": "Climate Policy", "summary": "Emission targets", "positions": {"VVD": "Supports targets"}}
  ],
  "decisions": ["Adopt motion"],
  "nextSteps": ["Vote next week"],
  "meetingInfo": {"title": %[2]q, "date": %[3]q, "verslagId": %[1]q},
  "processingInfo": {"aiModel": "deepseek-chat"}
}`, id, title, date)
}

func summaryFile(model, id string) string {
	return model + "_summary_" + id + ".json"
}
