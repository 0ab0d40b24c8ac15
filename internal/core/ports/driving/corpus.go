package driving

import (
	"context"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// CorpusService is the single mutation and read surface of the corpus.
// Presentation adapters send discrete intents and read derived snapshots.
type CorpusService interface {
	// Refresh discovers and loads all documents, replacing the corpus.
	// If nothing could be loaded the fallback document is installed and
	// the returned error wraps domain.ErrNoDocuments.
	Refresh(ctx context.Context) error

	// Merge adds documents to the corpus. Ids already present are kept.
	Merge(ctx context.Context, docs []domain.Document) error

	// ToggleTopic sets the selection of a topic facet entry.
	// Unknown names are ignored.
	ToggleTopic(name string, selected bool)

	// ToggleParty sets the selection of a party facet entry.
	// Unknown names are ignored.
	ToggleParty(name string, selected bool)

	// UpdateSearch shallow-merges patch into the search filter immediately.
	UpdateSearch(patch domain.SearchPatch)

	// UpdateSearchDebounced applies patch after the quiescence window,
	// dropping it if a newer edit arrives first.
	UpdateSearchDebounced(patch domain.SearchPatch)

	// SelectDocument marks a document as selected. Unknown ids clear the selection.
	SelectDocument(id string)

	// Snapshot returns the current derived view.
	Snapshot() Snapshot

	// Document returns a document by id.
	Document(ctx context.Context, id string) (*domain.Document, error)

	// Project returns the display projection of a document by id.
	Project(ctx context.Context, id string) (*domain.ProjectedDocument, error)

	// Query evaluates a one-off filter against the corpus. It leaves the
	// interactive filter state untouched.
	Query(q Query) []domain.ProjectedDocument

	// Subscribe registers fn to receive every new snapshot.
	// The returned function removes the subscription.
	Subscribe(fn func(Snapshot)) (unsubscribe func())
}

// Query is a stateless filter request. Empty Topics or Parties match
// every entry of that facet; unknown names match nothing.
type Query struct {
	Topics  []string
	Parties []string
	Search  domain.SearchPatch
	// Limit caps the result count when positive.
	Limit int
}

// Snapshot is an immutable view of the corpus and everything derived from it.
type Snapshot struct {
	// Documents is the full corpus, date descending.
	Documents []domain.Document

	// Visible is the filtered subset, in corpus order.
	Visible []domain.Document

	// Projected holds a projection per visible document.
	Projected []domain.ProjectedDocument

	// Topics and Parties are the facet lists.
	Topics  []domain.TopicFilter
	Parties []domain.PartyFilter

	// Search is the active search filter.
	Search domain.SearchFilter

	// Stats covers the full corpus.
	Stats domain.Stats

	// SelectedID is the selected document, if any.
	SelectedID string

	// Warning is set while fallback content is in effect.
	Warning string

	// Fallback reports whether the corpus is the built-in fallback document.
	Fallback bool

	// Generation increments on every corpus reload.
	Generation uint64

	// Seq increments on every recompute. Listeners receive snapshots in
	// increasing Seq order; a lower Seq is never delivered after a higher one.
	Seq uint64
}
