// Package stats provides the corpus statistics view for the TUI.
package stats

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verslag-digest/digest/internal/adapters/driving/tui/messages"
	"github.com/verslag-digest/digest/internal/adapters/driving/tui/styles"
	"github.com/verslag-digest/digest/internal/core/domain"
)

// View shows corpus-wide statistics.
type View struct {
	styles *styles.Styles
	stats  domain.Stats
}

// NewView creates a new statistics view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SnapshotUpdated:
		v.stats = msg.Snapshot.Stats
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "s", "q":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBrowse} }
		}
	}
	return v, nil
}

// SetStats replaces the statistics shown.
func (v *View) SetStats(stats domain.Stats) {
	v.stats = stats
}

// View renders the statistics view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Corpus Statistics"))
	b.WriteString("\n\n")

	row := func(label string, value any) {
		b.WriteString(fmt.Sprintf("  %-12s %v\n", label, value))
	}
	row("Documents", v.stats.TotalDocuments)
	row("Topics", v.stats.TotalTopics)
	row("Parties", v.stats.UniqueParties)
	if r := v.stats.DateRange; r != nil {
		row("Period", r.Earliest.Format(time.DateOnly)+" - "+r.Latest.Format(time.DateOnly))
	}

	if len(v.stats.ModelBreakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Models"))
		b.WriteString("\n")

		models := make([]string, 0, len(v.stats.ModelBreakdown))
		for m := range v.stats.ModelBreakdown {
			models = append(models, m)
		}
		slices.SortFunc(models, func(x, y string) int {
			return cmp.Or(
				cmp.Compare(v.stats.ModelBreakdown[y], v.stats.ModelBreakdown[x]),
				cmp.Compare(x, y),
			)
		})
		for _, m := range models {
			row(m, v.stats.ModelBreakdown[m])
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[esc] back"))
	return b.String()
}
