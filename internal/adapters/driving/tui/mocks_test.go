package tui

import (
	"context"
	"sync"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// fakeCorpus implements driving.CorpusService for testing.
type fakeCorpus struct {
	mu          sync.Mutex
	snapshot    driving.Snapshot
	refreshErr  error
	refreshes   int
	selected    []string
	topics      map[string]bool
	parties     map[string]bool
	queries     []string
	listeners   map[int]func(driving.Snapshot)
	nextID      int
	projections map[string]*domain.ProjectedDocument
}

func newFakeCorpus(snap driving.Snapshot) *fakeCorpus {
	return &fakeCorpus{
		snapshot:    snap,
		topics:      make(map[string]bool),
		parties:     make(map[string]bool),
		listeners:   make(map[int]func(driving.Snapshot)),
		projections: make(map[string]*domain.ProjectedDocument),
	}
}

func (f *fakeCorpus) Refresh(_ context.Context) error {
	f.mu.Lock()
	f.refreshes++
	err := f.refreshErr
	f.mu.Unlock()
	return err
}

func (f *fakeCorpus) Merge(_ context.Context, _ []domain.Document) error { return nil }

func (f *fakeCorpus) ToggleTopic(name string, selected bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics[name] = selected
}

func (f *fakeCorpus) ToggleParty(name string, selected bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.parties[name] = selected
}

func (f *fakeCorpus) UpdateSearch(patch domain.SearchPatch) {
	f.UpdateSearchDebounced(patch)
}

func (f *fakeCorpus) UpdateSearchDebounced(patch domain.SearchPatch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if patch.Query != nil {
		f.queries = append(f.queries, *patch.Query)
	}
}

func (f *fakeCorpus) SelectDocument(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = append(f.selected, id)
}

func (f *fakeCorpus) Snapshot() driving.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeCorpus) Document(_ context.Context, id string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCorpus) Project(_ context.Context, id string) (*domain.ProjectedDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if doc, ok := f.projections[id]; ok {
		return doc, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCorpus) Query(_ driving.Query) []domain.ProjectedDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot.Projected
}

func (f *fakeCorpus) Subscribe(fn func(driving.Snapshot)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

// emit publishes snap to every subscriber.
func (f *fakeCorpus) emit(snap driving.Snapshot) {
	f.mu.Lock()
	f.snapshot = snap
	fns := make([]func(driving.Snapshot), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (f *fakeCorpus) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func sampleSnapshot() driving.Snapshot {
	docs := []domain.Document{{ID: "mar", Title: "Klimaat"}, {ID: "feb", Title: "Wonen"}}
	return driving.Snapshot{
		Documents: docs,
		Visible:   docs,
		Projected: []domain.ProjectedDocument{
			{ID: "mar", Title: "Klimaat", FormattedDate: "11 maart 2025"},
			{ID: "feb", Title: "Wonen", FormattedDate: "1 februari 2025"},
		},
		Topics: []domain.TopicFilter{
			{Name: "Climate Policy", Selected: true, Count: 1},
			{Name: "Housing Regulation", Selected: true, Count: 1},
		},
		Parties: []domain.PartyFilter{
			{Name: "VVD", Selected: true, Color: "#1E4B8F", Count: 2},
			{Name: "PVV", Selected: true, Color: "#0C2D57", Count: 1},
		},
		Stats: domain.Stats{TotalDocuments: 2, TotalTopics: 2, UniqueParties: 2, ModelBreakdown: map[string]int{"deepseek": 2}},
	}
}
