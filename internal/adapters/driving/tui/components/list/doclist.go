// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/core/domain"
)

// linesPerEntry is the rendered height of one document row.
const linesPerEntry = 3

// DocumentList displays projected documents in a navigable list.
type DocumentList struct {
	documents []domain.ProjectedDocument
	selected  int
	styles    *styles.Styles
	width     int
	height    int
}

// NewDocumentList creates a new document list component.
func NewDocumentList(s *styles.Styles) *DocumentList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &DocumentList{
		styles: s,
		width:  80,
		height: 12,
	}
}

// Init initialises the list.
func (l *DocumentList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *DocumentList) Update(msg tea.Msg) (*DocumentList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.documents) > 0 {
				l.selected = len(l.documents) - 1
			}
		}
	}
	return l, nil
}

// View renders the list.
func (l *DocumentList) View() string {
	if len(l.documents) == 0 {
		return l.styles.Muted.Render("No documents match the current filters")
	}

	visible := l.height / linesPerEntry
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.documents))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, l.renderEntry(i, &l.documents[i]))
	}
	return strings.Join(rows, "\n")
}

func (l *DocumentList) renderEntry(index int, doc *domain.ProjectedDocument) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	date := doc.FormattedDate
	maxTitle := l.width - lipgloss.Width(date) - 6
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := truncate(doc.Title, maxTitle)

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitle, title, date))
	} else {
		titleLine = l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitle, title)) +
			l.styles.Muted.Render(date)
	}

	preview := l.styles.Muted.Render("    " + truncate(doc.Preview, l.width-6))
	meta := "    " + l.renderMeta(doc)

	return titleLine + "\n" + preview + "\n" + meta
}

// renderMeta lists counts and the coloured party labels of a document.
func (l *DocumentList) renderMeta(doc *domain.ProjectedDocument) string {
	counts := l.styles.Muted.Render(fmt.Sprintf("%d topics  %d decisions  ", doc.TopicCount, doc.DecisionCount))

	seen := make(map[string]bool)
	var labels []string
	for _, topic := range doc.Topics {
		for _, entry := range topic.Parties {
			if seen[entry.Party] {
				continue
			}
			seen[entry.Party] = true
			labels = append(labels, l.styles.Party(entry.Color).Render(entry.Party))
		}
	}
	return counts + strings.Join(labels, " ")
}

// SetDocuments replaces the list content. The selection moves to the
// document with selectedID when present, otherwise it is clamped.
func (l *DocumentList) SetDocuments(docs []domain.ProjectedDocument, selectedID string) {
	l.documents = docs
	for i := range docs {
		if docs[i].ID == selectedID {
			l.selected = i
			return
		}
	}
	if l.selected >= len(docs) {
		l.selected = max(len(docs)-1, 0)
	}
}

// Documents returns the current documents.
func (l *DocumentList) Documents() []domain.ProjectedDocument {
	return l.documents
}

// Selected returns the index of the highlighted document.
func (l *DocumentList) Selected() int {
	return l.selected
}

// SetSelected sets the highlighted index.
func (l *DocumentList) SetSelected(index int) {
	if index >= 0 && index < len(l.documents) {
		l.selected = index
	}
}

// SelectedDocument returns the highlighted document, or nil if none.
func (l *DocumentList) SelectedDocument() *domain.ProjectedDocument {
	if l.selected < 0 || l.selected >= len(l.documents) {
		return nil
	}
	return &l.documents[l.selected]
}

// MoveUp moves selection up.
func (l *DocumentList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *DocumentList) MoveDown() {
	if l.selected < len(l.documents)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *DocumentList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of documents.
func (l *DocumentList) Count() int {
	return len(l.documents)
}

// IsEmpty returns whether the list is empty.
func (l *DocumentList) IsEmpty() bool {
	return len(l.documents) == 0
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
