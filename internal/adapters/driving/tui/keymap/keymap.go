// Package keymap holds the key bindings shared by every view.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists every binding. It satisfies bubbles/help.KeyMap.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Browse view.
	Search  key.Binding
	Facets  key.Binding
	Stats   key.Binding
	Refresh key.Binding

	// Facet view.
	Toggle     key.Binding
	ToggleAll  key.Binding
	SwitchPane key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// DefaultKeyMap returns vim-style bindings alongside the arrow keys.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:   bind("q", "quit", "q", "ctrl+c"),
		Help:   bind("?", "help", "?"),
		Back:   bind("esc", "back", "esc"),
		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Select: bind("enter", "open", "enter"),

		Search:  bind("/", "search", "/"),
		Facets:  bind("f", "filters", "f"),
		Stats:   bind("s", "stats", "s"),
		Refresh: bind("r", "reload", "r"),

		Toggle:     bind("space", "toggle", " ", "x"),
		ToggleAll:  bind("a", "all/none", "a"),
		SwitchPane: bind("tab/←/→", "switch list", "tab", "left", "right", "h", "l"),
	}
}

// ShortHelp is the default status bar hint line.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Facets, k.Refresh, k.Help, k.Quit}
}

func (k *KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Search, k.Facets, k.Stats, k.Refresh, k.Quit}
}

func (k *KeyMap) FacetHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.ToggleAll, k.SwitchPane, k.Back}
}

// FullHelp groups bindings into columns for the help screen.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Search, k.Facets, k.Stats, k.Refresh},
		{k.Toggle, k.ToggleAll, k.SwitchPane},
		{k.Help, k.Quit},
	}
}

// Matches reports whether keyStr is one of binding's keys.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
