// Package facets provides the topic and party selection view for the TUI.
package facets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/keymap"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/messages"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// Pane identifies the focused facet list.
type Pane int

const (
	// PaneTopics is the topic list.
	PaneTopics Pane = iota
	// PaneParties is the party list.
	PaneParties
)

// View shows the topic and party facets side by side.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	corpus driving.CorpusService

	topics  []domain.TopicFilter
	parties []domain.PartyFilter

	pane   Pane
	cursor [2]int
	width  int
	height int
}

// NewView creates a new facet view.
func NewView(s *styles.Styles, km *keymap.KeyMap, corpus driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		corpus: corpus,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the facet view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case messages.SnapshotUpdated:
		v.SetSnapshot(msg.Snapshot)
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back), keymap.Matches(keyStr, v.keymap.Facets):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBrowse} }
	case keymap.Matches(keyStr, v.keymap.SwitchPane):
		v.pane = 1 - v.pane
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.cursor[v.pane] > 0 {
			v.cursor[v.pane]--
		}
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.cursor[v.pane] < v.length(v.pane)-1 {
			v.cursor[v.pane]++
		}
	case keymap.Matches(keyStr, v.keymap.Toggle):
		return v, v.toggleCurrent()
	case keymap.Matches(keyStr, v.keymap.ToggleAll):
		v.toggleAll()
	}
	return v, nil
}

// toggleCurrent flips the entry under the cursor.
func (v *View) toggleCurrent() tea.Cmd {
	i := v.cursor[v.pane]
	if i >= v.length(v.pane) {
		return nil
	}

	if v.pane == PaneTopics {
		entry := v.topics[i]
		selected := !entry.Selected
		v.topics[i].Selected = selected
		if v.corpus != nil {
			v.corpus.ToggleTopic(entry.Name, selected)
		}
		return func() tea.Msg { return messages.TopicToggled{Name: entry.Name, Selected: selected} }
	}

	entry := v.parties[i]
	selected := !entry.Selected
	v.parties[i].Selected = selected
	if v.corpus != nil {
		v.corpus.ToggleParty(entry.Name, selected)
	}
	return func() tea.Msg { return messages.PartyToggled{Name: entry.Name, Selected: selected} }
}

// toggleAll clears the focused facet when everything is selected and
// selects everything otherwise.
func (v *View) toggleAll() {
	if v.pane == PaneTopics {
		target := !allTopicsSelected(v.topics)
		for i := range v.topics {
			v.topics[i].Selected = target
			if v.corpus != nil {
				v.corpus.ToggleTopic(v.topics[i].Name, target)
			}
		}
		return
	}

	target := !allPartiesSelected(v.parties)
	for i := range v.parties {
		v.parties[i].Selected = target
		if v.corpus != nil {
			v.corpus.ToggleParty(v.parties[i].Name, target)
		}
	}
}

func allTopicsSelected(topics []domain.TopicFilter) bool {
	for _, t := range topics {
		if !t.Selected {
			return false
		}
	}
	return true
}

func allPartiesSelected(parties []domain.PartyFilter) bool {
	for _, p := range parties {
		if !p.Selected {
			return false
		}
	}
	return true
}

func (v *View) length(p Pane) int {
	if p == PaneTopics {
		return len(v.topics)
	}
	return len(v.parties)
}

// SetSnapshot replaces the facet lists, keeping cursors in range.
func (v *View) SetSnapshot(snap driving.Snapshot) {
	v.topics = append([]domain.TopicFilter(nil), snap.Topics...)
	v.parties = append([]domain.PartyFilter(nil), snap.Parties...)
	for _, p := range []Pane{PaneTopics, PaneParties} {
		if v.cursor[p] >= v.length(p) {
			v.cursor[p] = max(v.length(p)-1, 0)
		}
	}
}

// View renders the facet view.
func (v *View) View() string {
	colWidth := max((v.width-4)/2, 20)

	topicLines := make([]string, 0, len(v.topics))
	for i, t := range v.topics {
		label := v.styles.Normal.Render(t.Name)
		topicLines = append(topicLines, v.renderRow(PaneTopics, i, t.Selected, label, t.Count))
	}

	partyLines := make([]string, 0, len(v.parties))
	for i, p := range v.parties {
		label := v.styles.Party(p.Color).Render(p.Name)
		partyLines = append(partyLines, v.renderRow(PaneParties, i, p.Selected, label, p.Count))
	}

	left := v.renderColumn(PaneTopics, fmt.Sprintf("Topics (%d)", len(v.topics)), topicLines, colWidth)
	right := v.renderColumn(PaneParties, fmt.Sprintf("Parties (%d)", len(v.parties)), partyLines, colWidth)

	help := make([]string, 0, 5)
	for _, b := range v.keymap.FacetHelp() {
		h := b.Help()
		help = append(help, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Filters"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		"",
		v.styles.Help.Render(strings.Join(help, "  ")),
	)
}

func (v *View) renderRow(p Pane, i int, selected bool, label string, count int) string {
	box := v.styles.Muted.Render("[ ]")
	if selected {
		box = v.styles.Checked.Render("[x]")
	}
	cursor := "  "
	if v.pane == p && v.cursor[p] == i {
		cursor = "> "
	}
	return fmt.Sprintf("%s%s %s %s", cursor, box, label, v.styles.Muted.Render(fmt.Sprintf("(%d)", count)))
}

func (v *View) renderColumn(p Pane, title string, lines []string, width int) string {
	heading := v.styles.Muted.Render(title)
	if v.pane == p {
		heading = v.styles.Subtitle.Render(title)
	}

	maxRows := max(v.height-8, 1)
	start := 0
	if v.cursor[p] >= maxRows {
		start = v.cursor[p] - maxRows + 1
	}
	end := min(start+maxRows, len(lines))

	body := v.styles.Muted.Render("(none)")
	if len(lines) > 0 {
		body = strings.Join(lines[start:end], "\n")
	}
	return lipgloss.NewStyle().Width(width).Render(heading + "\n" + body)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Pane returns the focused facet list.
func (v *View) Pane() Pane {
	return v.pane
}

// Cursor returns the cursor index in the focused list.
func (v *View) Cursor() int {
	return v.cursor[v.pane]
}

// Topics returns the topic facet as last rendered.
func (v *View) Topics() []domain.TopicFilter {
	return v.topics
}

// Parties returns the party facet as last rendered.
func (v *View) Parties() []domain.PartyFilter {
	return v.parties
}
