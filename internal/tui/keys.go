package tui

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap defines key bindings for the editing screen
type editorKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Styles key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Styles, k.Next, k.Right, k.Toggle, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Styles, k.Quit},
		{k.Next, k.Prev, k.Left, k.Right, k.Toggle},
	}
}

// presenterKeyMap defines key bindings while a sign is shown
type presenterKeyMap struct {
	Tap  key.Binding
	Exit key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k presenterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Exit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k presenterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tap, k.Exit, k.Quit}}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev color"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "color"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		Styles: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "styles"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show sign"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func newPresenterKeyMap() presenterKeyMap {
	return presenterKeyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("click/space ×3", "edit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
