package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Documents are kept sorted by date descending; ties keep insertion order.
type DocumentStore struct {
	mu        sync.RWMutex
	documents []domain.Document
	policy    domain.DuplicatePolicy
}

// NewDocumentStore creates a new in-memory document store where the
// first document seen for an id wins.
func NewDocumentStore() *DocumentStore {
	return NewDocumentStoreWithPolicy(domain.DuplicatePolicyFirst)
}

// NewDocumentStoreWithPolicy creates a store with the given duplicate policy.
// Unknown policies fall back to first-wins.
func NewDocumentStoreWithPolicy(policy domain.DuplicatePolicy) *DocumentStore {
	if !policy.IsValid() {
		policy = domain.DuplicatePolicyFirst
	}
	return &DocumentStore{policy: policy}
}

// ReplaceAll discards current contents and installs docs sorted by date.
func (s *DocumentStore) ReplaceAll(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = normalise(slices.Clone(docs), s.policy)
	return nil
}

// Merge appends docs to the existing set, drops duplicate ids and re-sorts.
// With the first-wins policy an existing document is never replaced.
func (s *DocumentStore) Merge(_ context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]domain.Document, 0, len(s.documents)+len(docs))
	merged = append(merged, s.documents...)
	merged = append(merged, docs...)
	s.documents = normalise(merged, s.policy)
	return nil
}

// Clear removes all documents.
func (s *DocumentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = nil
	return nil
}

// List returns a copy of the ordered contents.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.documents), nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			doc := s.documents[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Len returns the number of documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// normalise deduplicates by id and sorts by date descending, stable.
func normalise(docs []domain.Document, policy domain.DuplicatePolicy) []domain.Document {
	seen := make(map[string]int, len(docs))
	out := make([]domain.Document, 0, len(docs))
	for i := range docs {
		idx, dup := seen[docs[i].ID]
		switch {
		case !dup:
			seen[docs[i].ID] = len(out)
			out = append(out, docs[i])
		case policy == domain.DuplicatePolicyLast:
			out[idx] = docs[i]
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Document) int {
		return b.Date.Compare(a.Date)
	})
	return out
}
