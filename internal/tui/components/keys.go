package components

import "github.com/charmbracelet/bubbles/key"

// QuickJumpKeyMap defines key bindings for the quick-jump finder
type QuickJumpKeyMap struct {
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultQuickJumpKeyMap returns the default quick-jump key bindings
func DefaultQuickJumpKeyMap() QuickJumpKeyMap {
	return QuickJumpKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
	}
}

// GenrePickerKeyMap defines key bindings for the genre picker
type GenrePickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultGenrePickerKeyMap returns the default genre picker key bindings
func DefaultGenrePickerKeyMap() GenrePickerKeyMap {
	return GenrePickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Package-level key map instances
var (
	QuickJumpKeys   = DefaultQuickJumpKeyMap()
	GenrePickerKeys = DefaultGenrePickerKeyMap()
)
