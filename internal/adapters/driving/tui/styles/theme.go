// Package styles holds the palette and lipgloss styles shared by all views.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette. The accents follow the Dutch national
// house style so party colours read clearly against them.
type Theme struct {
	Primary    lipgloss.Color // view titles
	Secondary  lipgloss.Color // section headings, highlighted row
	Foreground lipgloss.Color
	Muted      lipgloss.Color // dates, counts, hints
	Success    lipgloss.Color // selected facet entries
	Warning    lipgloss.Color // fallback banner
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color // status bar background
}

// DefaultTheme returns the dark palette used when nothing else is set.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#E17000",
		Secondary:  "#01689B",
		Foreground: "#E5E7EB",
		Muted:      "#6B7280",
		Success:    "#39870C",
		Warning:    "#FFB612",
		Error:      "#D52B1E",
		Border:     "#4B5563",
		Bar:        "#111827",
	}
}

// Styles are the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Checked    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles derives styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		theme:    theme,
		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Secondary).Bold(true),
		Checked:  fg(theme.Success),
		Error:    fg(theme.Error),
		Warning:  fg(theme.Warning).Bold(true),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Help:      fg(theme.Muted).Italic(true),
	}
}

func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

func (s *Styles) Theme() *Theme {
	return s.theme
}

// Party returns a bold label style in the party's colour. Colours that are
// not hex codes fall back to the secondary accent.
func (s *Styles) Party(color string) lipgloss.Style {
	c := s.theme.Secondary
	if strings.HasPrefix(color, "#") && len(color) > 1 {
		c = lipgloss.Color(color)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
