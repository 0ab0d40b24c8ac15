package driven

import (
	"context"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// DocumentStore holds the in-memory corpus.
//
// Contents are ordered by date descending after every mutation, with ties
// kept in load order, and no two documents share an id.
type DocumentStore interface {
	// ReplaceAll discards current contents and installs docs.
	ReplaceAll(ctx context.Context, docs []domain.Document) error

	// Merge appends docs and removes duplicate ids according to the
	// store's duplicate policy.
	Merge(ctx context.Context, docs []domain.Document) error

	// Clear removes all documents.
	Clear(ctx context.Context) error

	// List returns a copy of the ordered contents.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by id.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Len returns the number of documents.
	Len() int
}
