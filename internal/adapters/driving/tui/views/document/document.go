// Package document provides the meeting summary detail view for the TUI.
package document

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/messages"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/core/domain"
)

// reservedLines is the height taken by the title and help footer.
const reservedLines = 5

// View renders one projected document in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model

	id       string
	document *domain.ProjectedDocument
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new document view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 24-reservedLines),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load marks the view as waiting for document id.
func (v *View) Load(id string) {
	v.id = id
	v.document = nil
	v.err = nil
	v.loading = true
	v.viewport.SetContent("")
	v.viewport.GotoTop()
}

// Update handles messages for the document view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DocumentLoaded:
		if msg.ID != v.id {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		v.document = msg.Document
		v.render()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBrowse} }
		case "g", "home":
			v.viewport.GotoTop()
			return v, nil
		case "G", "end":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// render lays the document out for the current width.
func (v *View) render() {
	if v.document == nil {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(Render(v.styles, v.document, v.width-2))
	v.viewport.GotoTop()
}

// Render lays out a projected document as styled text wrapped to width.
func Render(s *styles.Styles, doc *domain.ProjectedDocument, width int) string {
	width = max(width, 20)
	wrap := lipgloss.NewStyle().Width(width - 2).PaddingLeft(2)

	var b strings.Builder
	meta := doc.FormattedDate
	if doc.Model != "" {
		meta += " | " + doc.Model
	}
	b.WriteString(s.Muted.Render(meta))
	b.WriteString("\n")
	if doc.ProcessingError != "" {
		b.WriteString(s.Warning.Render("Degraded summary: " + doc.ProcessingError))
		b.WriteString("\n")
	}

	if doc.ExecutiveSummary != "" {
		section(&b, s, "Summary")
		b.WriteString(wrap.Render(doc.ExecutiveSummary))
		b.WriteString("\n")
	}

	if doc.HasTopics {
		section(&b, s, fmt.Sprintf("Topics (%d)", doc.TopicCount))
		for _, topic := range doc.Topics {
			b.WriteString("\n  ")
			b.WriteString(s.Normal.Bold(true).Render(topic.Name))
			b.WriteString("\n")
			if topic.Summary != "" {
				b.WriteString(wrap.Render(topic.Summary))
				b.WriteString("\n")
			}
			for _, line := range topic.Context {
				b.WriteString(wrap.Render(s.Muted.Render(line)))
				b.WriteString("\n")
			}
			for _, entry := range topic.Parties {
				label := s.Party(entry.Color).Render(entry.Party)
				b.WriteString(wrap.Render(label + ": " + entry.Statement))
				b.WriteString("\n")
				for _, proposal := range entry.Proposals {
					b.WriteString(wrap.Render("  + " + proposal))
					b.WriteString("\n")
				}
			}
			if topic.Outcome != "" {
				b.WriteString(wrap.Render("Outcome: " + topic.Outcome))
				b.WriteString("\n")
			}
		}
	}

	bullets(&b, s, wrap, "Decisions", doc.Decisions)

	if doc.PoliticalDynamics != "" {
		section(&b, s, "Political dynamics")
		b.WriteString(wrap.Render(doc.PoliticalDynamics))
		b.WriteString("\n")
	}

	bullets(&b, s, wrap, "Next steps", doc.NextSteps)
	return b.String()
}

func section(b *strings.Builder, s *styles.Styles, title string) {
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(title))
	b.WriteString("\n")
}

func bullets(b *strings.Builder, s *styles.Styles, wrap lipgloss.Style, title string, items []string) {
	if len(items) == 0 {
		return
	}
	section(b, s, fmt.Sprintf("%s (%d)", title, len(items)))
	for _, item := range items {
		b.WriteString(wrap.Render("- " + item))
		b.WriteString("\n")
	}
}

// View renders the document view.
func (v *View) View() string {
	title := "Document"
	if v.document != nil {
		title = v.document.Title
	}

	var body string
	switch {
	case v.loading:
		body = v.styles.Muted.Render("Loading document...")
	case v.err != nil:
		body = v.styles.Error.Render("Error: " + v.err.Error())
	default:
		body = v.viewport.View()
	}

	footer := fmt.Sprintf("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back  %3.f%%", v.viewport.ScrollPercent()*100)
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render(title),
		strings.Repeat("─", min(max(v.width-4, 0), 60)),
		body,
		"",
		v.styles.Help.Render(footer),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-reservedLines, 1)
	if v.document != nil {
		v.viewport.SetContent(Render(v.styles, v.document, width-2))
	}
}

// ID returns the id of the document being shown.
func (v *View) ID() string {
	return v.id
}

// Document returns the loaded document.
func (v *View) Document() *domain.ProjectedDocument {
	return v.document
}

// Loading reports whether the view is waiting for a document.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
