// Package input holds the query field shown above the summary list.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/messages"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/core/domain"
)

const (
	queryCharLimit = 256
	labelWidth     = 12
	minFieldWidth  = 20
)

// SearchInput is the free-text query field. Edits are reported as
// messages.QueryChanged; debouncing happens in the corpus service.
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
	width  int
	scope  string
}

// NewSearchInput returns a blurred, empty field.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = "Filter summaries..."
	field.CharLimit = queryCharLimit
	field.Prompt = "/ "

	in := &SearchInput{field: field, styles: s}
	in.SetWidth(62)
	return in
}

func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the field and appends a QueryChanged when the
// text differs afterwards.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	prev := s.field.Value()

	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)

	query := s.field.Value()
	if query == prev {
		return s, cmd
	}
	return s, tea.Batch(cmd, func() tea.Msg { return messages.QueryChanged{Query: query} })
}

// SetScope records which summary sections the query is matched against.
func (s *SearchInput) SetScope(f domain.SearchFilter) {
	var fields []string
	for _, part := range []struct {
		on   bool
		name string
	}{
		{f.IncludeTopics, "topics"},
		{f.IncludePositions, "positions"},
		{f.IncludeDecisions, "decisions"},
		{f.IncludeContext, "context"},
		{f.IncludeReasoning, "reasoning"},
	} {
		if part.on {
			fields = append(fields, part.name)
		}
	}
	if len(fields) == 0 {
		s.scope = "summary only"
		return
	}
	s.scope = strings.Join(fields, ", ")
}

// Scope returns the rendered scope description.
func (s *SearchInput) Scope() string {
	return s.scope
}

func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	row := lipgloss.JoinHorizontal(lipgloss.Top, label, s.styles.InputField.Render(s.field.View()))
	if s.scope == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, s.styles.Muted.Render("  in: "+s.scope))
}

func (s *SearchInput) Value() string { return s.field.Value() }

// SetValue replaces the text without emitting QueryChanged.
func (s *SearchInput) SetValue(value string) { s.field.SetValue(value) }

func (s *SearchInput) Focus() tea.Cmd { return s.field.Focus() }
func (s *SearchInput) Blur() { s.field.Blur() }
func (s *SearchInput) Focused() bool { return s.field.Focused() }
func (s *SearchInput) Reset() { s.field.Reset() }
func (s *SearchInput) Width() int { return s.width }

// SetWidth sizes the field to the terminal, leaving room for the label.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.field.Width = max(width-labelWidth, minFieldWidth)
}
