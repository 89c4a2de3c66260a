package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	next    key.Binding
	prev    key.Binding
	sort    key.Binding
	vendor  key.Binding
	refresh key.Binding
	search  key.Binding
	enter   key.Binding
	back    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		next:    key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next page")),
		prev:    key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "prev page")),
		sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		vendor:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "microsoft")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.prev, k.sort, k.vendor, k.refresh, k.search, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.next, k.prev, k.sort},
		{k.vendor, k.search, k.refresh, k.quit},
	}
}
