// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowse is the filtered document list with the search input.
	ViewBrowse ViewType = iota
	// ViewFacets is the topic and party selection view.
	ViewFacets
	// ViewDocument shows one meeting summary.
	ViewDocument
	// ViewStats shows corpus statistics.
	ViewStats
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowse:
		return "browse"
	case ViewFacets:
		return "facets"
	case ViewDocument:
		return "document"
	case ViewStats:
		return "stats"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SnapshotUpdated carries a new corpus snapshot from the service.
type SnapshotUpdated struct {
	Snapshot driving.Snapshot
}

// RefreshRequested asks the app to reload the corpus.
type RefreshRequested struct{}

// RefreshCompleted signals a corpus reload finished.
// Err wraps domain.ErrNoDocuments when the fallback document was installed.
type RefreshCompleted struct {
	Err error
}

// QueryChanged is sent when the search input value changes.
type QueryChanged struct {
	Query string
}

// DocumentSelected signals a document was opened from the list.
type DocumentSelected struct {
	ID string
}

// DocumentLoaded carries the projection of the opened document.
type DocumentLoaded struct {
	ID       string
	Document *domain.ProjectedDocument
	Err      error
}

// TopicToggled signals a topic facet entry changed selection.
type TopicToggled struct {
	Name     string
	Selected bool
}

// PartyToggled signals a party facet entry changed selection.
type PartyToggled struct {
	Name     string
	Selected bool
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
