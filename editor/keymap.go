package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	// MoveBlockUp and MoveBlockDown move the caret's block past one line.
	MoveBlockUp, MoveBlockDown key.Binding

	Undo, Redo key.Binding
	CopyBlock  key.Binding

	// CancelDrag abandons a drag in flight.
	CancelDrag key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		// Terminals vary between alt+arrows and ctrl+shift+arrows.
		MoveBlockUp:   key.NewBinding(key.WithKeys("alt+up", "ctrl+shift+up"), key.WithHelp("alt+↑", "move block up")),
		MoveBlockDown: key.NewBinding(key.WithKeys("alt+down", "ctrl+shift+down"), key.WithHelp("alt+↓", "move block down")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		CopyBlock: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "copy block")),

		CancelDrag: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.MoveBlockUp.Keys()) == 0 && len(k.Undo.Keys()) == 0
}
