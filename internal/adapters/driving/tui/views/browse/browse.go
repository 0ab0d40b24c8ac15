// Package browse provides the main document list view for the TUI.
package browse

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/components/input"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/components/list"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/components/status"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/keymap"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/messages"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// View is the search input, the filtered document list, and the status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.DocumentList
	statusbar *status.Bar

	corpus driving.CorpusService

	snapshot driving.Snapshot
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, corpus driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetBindings(km.BrowseHelp())

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewDocumentList(s),
		statusbar: bar,
		corpus:    corpus,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.QueryChanged:
		if v.corpus != nil {
			v.corpus.UpdateSearchDebounced(domain.QueryPatch(msg.Query))
		}
		return v, nil

	case messages.SnapshotUpdated:
		v.SetSnapshot(msg.Snapshot)
		return v, nil

	case messages.RefreshCompleted:
		v.statusbar.Clear()
		v.err = nil
		v.applyState()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	if v.input.Focused() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.input.Focused() {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter, tea.KeyDown:
			v.input.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Search):
		return v, v.input.Focus()
	case keymap.Matches(keyStr, v.keymap.Select):
		doc := v.list.SelectedDocument()
		if doc == nil {
			return v, nil
		}
		id := doc.ID
		return v, func() tea.Msg { return messages.DocumentSelected{ID: id} }
	case keymap.Matches(keyStr, v.keymap.Facets):
		return v, changeView(messages.ViewFacets)
	case keymap.Matches(keyStr, v.keymap.Stats):
		return v, changeView(messages.ViewStats)
	case keymap.Matches(keyStr, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(keyStr, v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, func() tea.Msg { return messages.RefreshRequested{} }
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyStr, v.keymap.Back):
		if v.input.Value() != "" {
			v.input.Reset()
			if v.corpus != nil {
				v.corpus.UpdateSearch(domain.QueryPatch(""))
			}
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

// SetSnapshot renders a new corpus snapshot.
func (v *View) SetSnapshot(snap driving.Snapshot) {
	v.snapshot = snap
	v.list.SetDocuments(snap.Projected, snap.SelectedID)
	v.input.SetScope(snap.Search)
	v.statusbar.SetCounts(len(snap.Visible), len(snap.Documents))
	v.applyState()
}

// applyState derives the status bar state from the snapshot.
func (v *View) applyState() {
	if v.err != nil || v.statusbar.State() == status.StateLoading {
		return
	}
	if v.snapshot.Fallback {
		v.statusbar.SetState(status.StateFallback)
		return
	}
	v.statusbar.SetState(status.StateReady)
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Digest"), "")

	if v.snapshot.Warning != "" {
		sections = append(sections, v.styles.Warning.Render(v.snapshot.Warning), "")
	}

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-11) // header, input with scope, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search input value.
func (v *View) Query() string {
	return v.input.Value()
}

// InputFocused returns whether the search input has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// SelectedDocument returns the highlighted document.
func (v *View) SelectedDocument() *domain.ProjectedDocument {
	return v.list.SelectedDocument()
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
