package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/keymap"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/messages"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/views/browse"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/views/document"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/views/facets"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/views/stats"
	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	browseView   *browse.View
	facetsView   *facets.View
	documentView *document.View
	statsView    *stats.View

	// updates carries the latest corpus snapshot from the subscription.
	// It holds at most one snapshot; older ones are dropped.
	updates     chan driving.Snapshot
	unsubscribe func()

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The app subscribes to corpus snapshots until Close is called.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		browseView:   browse.NewView(s, km, ports.Corpus),
		facetsView:   facets.NewView(s, km, ports.Corpus),
		documentView: document.NewView(s),
		statsView:    stats.NewView(s),
		updates:      make(chan driving.Snapshot, 1),
		currentView:  messages.ViewBrowse,
	}

	a.publish(ports.Corpus.Snapshot())
	a.unsubscribe = ports.Corpus.Subscribe(a.publish)
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Close removes the snapshot subscription.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// publish hands a snapshot to the event loop, replacing any snapshot
// that has not been consumed yet.
func (a *App) publish(snap driving.Snapshot) {
	for {
		select {
		case a.updates <- snap:
			return
		default:
		}
		select {
		case <-a.updates:
		default:
		}
	}
}

// waitForSnapshot blocks until the next snapshot arrives.
func (a *App) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-a.updates:
			return messages.SnapshotUpdated{Snapshot: snap}
		case <-a.ctx.Done():
			return nil
		}
	}
}

// refresh reloads the corpus.
func (a *App) refresh() tea.Cmd {
	ctx := a.ctx
	corpus := a.ports.Corpus
	return func() tea.Msg {
		return messages.RefreshCompleted{Err: corpus.Refresh(ctx)}
	}
}

// loadDocument projects a document for the detail view.
func (a *App) loadDocument(id string) tea.Cmd {
	ctx := a.ctx
	corpus := a.ports.Corpus
	return func() tea.Msg {
		doc, err := corpus.Project(ctx, id)
		return messages.DocumentLoaded{ID: id, Document: doc, Err: err}
	}
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("digest - meeting summaries"),
		a.browseView.Init(),
		a.waitForSnapshot(),
		a.refresh(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case messages.SnapshotUpdated:
		a.browseView, _ = a.browseView.Update(msg)
		a.facetsView, _ = a.facetsView.Update(msg)
		a.statsView, _ = a.statsView.Update(msg)
		return a, a.waitForSnapshot()

	case messages.RefreshRequested:
		return a, a.refresh()

	case messages.RefreshCompleted:
		if msg.Err != nil && !errors.Is(msg.Err, domain.ErrNoDocuments) {
			a.err = msg.Err
			a.browseView, cmd = a.browseView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.err = nil
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.DocumentSelected:
		a.ports.Corpus.SelectDocument(msg.ID)
		a.documentView.Load(msg.ID)
		a.currentView = messages.ViewDocument
		return a, a.loadDocument(msg.ID)

	case messages.DocumentLoaded:
		a.documentView, cmd = a.documentView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.TopicToggled, messages.PartyToggled:
		// The corpus publishes the resulting snapshot.
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// handleKey routes key presses to the active view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.currentView == messages.ViewHelp {
		keyStr := msg.String()
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) ||
			keymap.Matches(keyStr, a.keymap.Quit) {
			a.currentView = messages.ViewBrowse
		}
		return a, nil
	}
	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewFacets:
		a.facetsView, cmd = a.facetsView.Update(msg)
	case messages.ViewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	case messages.ViewStats:
		a.statsView, cmd = a.statsView.Update(msg)
	case messages.ViewHelp:
		// Help view is static
	}
	return cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewFacets:
		return a.facetsView.View()
	case messages.ViewDocument:
		return a.documentView.View()
	case messages.ViewStats:
		return a.statsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.browseView.View()
	}
}

// viewHelp lists every binding in columns, plus the document scroll keys
// that belong to the viewport rather than the keymap.
func (a *App) viewHelp() string {
	h := help.New()
	h.ShowAll = true
	h.Width = a.width

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		h.View(a.keymap),
		"",
		a.styles.Muted.Render("Document: ↑/↓ PgUp/PgDn scroll, g/G top/bottom"),
		"",
		a.styles.Help.Render("[esc] back"),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.browseView.SetDimensions(width, height)
	a.facetsView.SetDimensions(width, height)
	a.documentView.SetDimensions(width, height)
}
