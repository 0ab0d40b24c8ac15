package cli

import (
	"encoding/json"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verslag-digest/digest/internal/core/domain"
)

const defaultWidth = 80

// printer renders human output, colouring only when the writer is a terminal.
type printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	width    int
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		width:    terminalWidth(w),
	}
}

func (p *printer) title(s string) string {
	return p.renderer.NewStyle().Bold(true).Render(s)
}

func (p *printer) muted(s string) string {
	return p.renderer.NewStyle().Foreground(lipgloss.Color("#6B7280")).Render(s)
}

func (p *printer) party(name, color string) string {
	return p.renderer.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(name)
}

// wrap hard-wraps text to the output width minus indent.
func (p *printer) wrap(text string, indent int) string {
	width := p.width - indent
	if width < 20 {
		width = 20
	}
	wrapped := p.renderer.NewStyle().Width(width).Render(text)
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = pad + strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// documentParties returns the parties taking a position anywhere in a
// projected document, sorted by name.
func documentParties(doc *domain.ProjectedDocument) []domain.PartyEntry {
	seen := make(map[string]bool)
	var parties []domain.PartyEntry
	for _, topic := range doc.Topics {
		for _, entry := range topic.Parties {
			if seen[entry.Party] {
				continue
			}
			seen[entry.Party] = true
			parties = append(parties, entry)
		}
	}
	slices.SortFunc(parties, func(a, b domain.PartyEntry) int {
		return strings.Compare(a.Party, b.Party)
	})
	return parties
}

func topicNames(doc *domain.ProjectedDocument) []string {
	names := make([]string, 0, len(doc.Topics))
	for _, topic := range doc.Topics {
		names = append(names, topic.Name)
	}
	return names
}
