package services

import (
	"context"
	"errors"
	"sync"

	"github.com/romdo/go-debounce"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
	"github.com/verslag-digest/digest/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService owns the document store and filter state and keeps the
// derived snapshot current. All mutations are serialised. Listeners are
// called outside the state lock, one snapshot at a time and in recompute
// order; a snapshot overtaken by a newer delivery is dropped. Listeners
// must not mutate the corpus synchronously.
type CorpusService struct {
	loader  *DocumentLoader
	store   driven.DocumentStore
	filters *FilterState
	search  domain.SearchFilter

	mu         sync.RWMutex
	documents  []domain.Document
	selectedID string
	warning    string
	fallback   bool
	generation uint64
	seq        uint64
	snapshot   driving.Snapshot

	listenersMu  sync.Mutex
	listeners    []listener
	nextListener int

	deliverMu sync.Mutex
	delivered uint64

	pendingMu sync.Mutex
	pending   domain.SearchPatch
	debounced func()
	cancel    func()
}

type listener struct {
	id int
	fn func(driving.Snapshot)
}

// NewCorpusService creates a corpus service. The corpus starts empty until
// Refresh or Merge is called.
func NewCorpusService(loader *DocumentLoader, store driven.DocumentStore, settings domain.AppSettings) *CorpusService {
	s := &CorpusService{
		loader:  loader,
		store:   store,
		filters: NewFilterState(settings.Search.Defaults, settings.Filter.PreserveSelection),
		search:  settings.Search.Defaults,
	}
	if settings.Search.Debounce > 0 {
		s.debounced, s.cancel = debounce.New(settings.Search.Debounce, s.flushSearch)
	}
	s.mu.Lock()
	s.recomputeLocked(true)
	s.mu.Unlock()
	return s
}

// Refresh discovers and loads every document and replaces the corpus.
// A load superseded by a later Refresh or Merge is discarded. When nothing
// could be loaded the fallback document is installed and the error wraps
// domain.ErrNoDocuments.
func (s *CorpusService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	logger.Section("Refresh")
	docs, loadErr := s.loader.LoadAll(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logger.Debug("Discarding stale load (generation %d, current %d)", gen, s.generation)
		return nil
	}

	var err error
	if loadErr != nil {
		logger.Warn("Loading failed, using fallback document: %v", loadErr)
		docs = []domain.Document{FallbackDocument()}
		s.warning = FallbackWarning
		s.fallback = true
		err = loadErr
		if !errors.Is(err, domain.ErrNoDocuments) {
			err = errors.Join(domain.ErrNoDocuments, loadErr)
		}
	} else {
		s.warning = ""
		s.fallback = false
	}
	if replaceErr := s.store.ReplaceAll(ctx, docs); replaceErr != nil {
		s.mu.Unlock()
		return replaceErr
	}
	snap := s.reloadLocked(ctx)
	s.mu.Unlock()

	logger.Info("Corpus holds %d documents", len(snap.Documents))
	s.notify(snap)
	return err
}

// Merge adds docs to the corpus, keeping existing documents on id collision.
// Merging into the fallback corpus replaces the fallback document.
func (s *CorpusService) Merge(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	s.mu.Lock()
	s.generation++
	var err error
	if s.fallback {
		err = s.store.ReplaceAll(ctx, docs)
		s.fallback = false
		s.warning = ""
	} else {
		err = s.store.Merge(ctx, docs)
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.reloadLocked(ctx)
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// ToggleTopic sets the selection of a topic facet entry.
func (s *CorpusService) ToggleTopic(name string, selected bool) {
	s.mutate(func() bool { return s.filters.SetTopicSelected(name, selected) })
}

// ToggleParty sets the selection of a party facet entry.
func (s *CorpusService) ToggleParty(name string, selected bool) {
	s.mutate(func() bool { return s.filters.SetPartySelected(name, selected) })
}

// UpdateSearch applies patch to the search filter immediately.
func (s *CorpusService) UpdateSearch(patch domain.SearchPatch) {
	if patch.IsEmpty() {
		return
	}
	s.mutate(func() bool { return s.filters.UpdateSearch(patch) })
}

// UpdateSearchDebounced queues patch and applies it once no further edit
// has arrived for the configured quiescence window. Queued patches are
// combined so only the latest value of each field propagates.
func (s *CorpusService) UpdateSearchDebounced(patch domain.SearchPatch) {
	if s.debounced == nil {
		s.UpdateSearch(patch)
		return
	}
	s.pendingMu.Lock()
	s.pending = s.pending.Combine(patch)
	s.pendingMu.Unlock()
	s.debounced()
}

// flushSearch applies the queued search patch.
func (s *CorpusService) flushSearch() {
	s.pendingMu.Lock()
	patch := s.pending
	s.pending = domain.SearchPatch{}
	s.pendingMu.Unlock()
	s.UpdateSearch(patch)
}

// SelectDocument marks a document as selected. Unknown ids clear the selection.
func (s *CorpusService) SelectDocument(id string) {
	s.mutate(func() bool {
		if !containsID(s.documents, id) {
			id = ""
		}
		changed := s.selectedID != id
		s.selectedID = id
		return changed
	})
}

// Snapshot returns the current derived view.
func (s *CorpusService) Snapshot() driving.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Warning returns the current warning message, empty when none is set.
func (s *CorpusService) Warning() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warning
}

// Document returns a document by id.
func (s *CorpusService) Document(ctx context.Context, id string) (*domain.Document, error) {
	return s.store.Get(ctx, id)
}

// Project returns the display projection of a document by id, whether or
// not it passes the active filters.
func (s *CorpusService) Project(ctx context.Context, id string) (*domain.ProjectedDocument, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	projected := Project(doc)
	return &projected, nil
}

// Query filters the corpus with a fresh filter state seeded from the
// search defaults.
func (s *CorpusService) Query(q driving.Query) []domain.ProjectedDocument {
	s.mu.RLock()
	docs := s.documents
	s.mu.RUnlock()

	state := NewFilterState(s.search, false)
	state.Rebuild(docs)
	state.UpdateSearch(q.Search)

	topics := state.Topics()
	if len(q.Topics) > 0 {
		want := nameSet(q.Topics)
		for i := range topics {
			topics[i].Selected = want[topics[i].Name]
		}
	}
	parties := state.Parties()
	if len(q.Parties) > 0 {
		want := nameSet(q.Parties)
		for i := range parties {
			parties[i].Selected = want[parties[i].Name]
		}
	}

	visible := Visible(docs, topics, parties, state.Search())
	if q.Limit > 0 && len(visible) > q.Limit {
		visible = visible[:q.Limit]
	}
	return ProjectAll(visible)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Subscribe registers fn to receive every new snapshot.
func (s *CorpusService) Subscribe(fn func(driving.Snapshot)) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Watch refreshes the corpus whenever watcher reports a change.
// It blocks until ctx is cancelled or the watcher fails.
func (s *CorpusService) Watch(ctx context.Context, watcher driven.Watcher) error {
	return watcher.Watch(ctx, func() {
		if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("Reload after change failed: %v", err)
		}
	})
}

// Close stops any pending debounced search update.
func (s *CorpusService) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// mutate runs change under the lock and recomputes when it reports a change.
func (s *CorpusService) mutate(change func() bool) {
	s.mu.Lock()
	if !change() {
		s.mu.Unlock()
		return
	}
	s.recomputeLocked(false)
	snap := s.snapshot
	s.mu.Unlock()
	s.notify(snap)
}

// reloadLocked refreshes the cached corpus from the store and rebuilds facets.
func (s *CorpusService) reloadLocked(ctx context.Context) driving.Snapshot {
	docs, err := s.store.List(ctx)
	if err != nil {
		logger.Warn("Listing documents failed: %v", err)
		docs = nil
	}
	s.documents = docs
	if !containsID(docs, s.selectedID) {
		s.selectedID = ""
	}
	s.recomputeLocked(true)
	return s.snapshot
}

// recomputeLocked derives the snapshot from documents, facets and search.
func (s *CorpusService) recomputeLocked(rebuild bool) {
	if rebuild {
		s.filters.Rebuild(s.documents)
	}
	topics := s.filters.Topics()
	parties := s.filters.Parties()
	search := s.filters.Search()
	visible := Visible(s.documents, topics, parties, search)

	s.seq++
	s.snapshot = driving.Snapshot{
		Documents:  s.documents,
		Visible:    visible,
		Projected:  ProjectAll(visible),
		Topics:     topics,
		Parties:    parties,
		Search:     search,
		Stats:      ComputeStats(s.documents),
		SelectedID: s.selectedID,
		Warning:    s.warning,
		Fallback:   s.fallback,
		Generation: s.generation,
		Seq:        s.seq,
	}
}

// notify delivers snap unless a newer snapshot already went out.
func (s *CorpusService) notify(snap driving.Snapshot) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if snap.Seq <= s.delivered {
		logger.Debug("Dropping superseded snapshot %d (delivered %d)", snap.Seq, s.delivered)
		return
	}
	s.delivered = snap.Seq

	s.listenersMu.Lock()
	fns := make([]func(driving.Snapshot), 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l.fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func containsID(docs []domain.Document, id string) bool {
	if id == "" {
		return false
	}
	for i := range docs {
		if docs[i].ID == id {
			return true
		}
	}
	return false
}
