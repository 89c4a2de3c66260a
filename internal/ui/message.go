package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wgx/internal/catalog"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPageLoaded MsgKind = iota
)

// pageLoadedMsg is the constructor for [MsgPageLoaded]
func pageLoadedMsg(page *catalog.Page) Msg {
	return Msg{kind: MsgPageLoaded, data: page}
}
