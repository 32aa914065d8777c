package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/dragline/buffer"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func altKey(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t, Alt: true} }

func TestUpdateKey_LeftRightCrossLineTerminators(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	m.Buffer().SetCaret(2)

	m, _ = m.Update(keyMsg(tea.KeyRight))
	if got, want := m.Buffer().Caret(), 3; got != want {
		t.Fatalf("caret after right at line end: got %d, want %d", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyLeft))
	if got, want := m.Buffer().Caret(), 2; got != want {
		t.Fatalf("caret after left at line start: got %d, want %d", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyLeft))
	if got, want := m.Buffer().Caret(), 1; got != want {
		t.Fatalf("caret after left: got %d, want %d", got, want)
	}
}

func TestUpdateKey_RightSkipsWholeCluster(t *testing.T) {
	m := New(Config{Text: "éx"})

	m, _ = m.Update(keyMsg(tea.KeyRight))
	if got, want := m.Buffer().Caret(), len("é"); got != want {
		t.Fatalf("caret: got %d, want %d", got, want)
	}
}

func TestUpdateKey_UpDownKeepCellColumn(t *testing.T) {
	m := New(Config{Text: "abcd\nx\nwxyz"})
	m.Buffer().SetCaret(3)

	m, _ = m.Update(keyMsg(tea.KeyDown))
	if got, want := m.Buffer().Caret(), 6; got != want {
		t.Fatalf("caret after down onto short line: got %d, want %d", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyDown))
	if got, want := m.Buffer().Caret(), 8; got != want {
		t.Fatalf("caret after second down: got %d, want %d", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyUp))
	m, _ = m.Update(keyMsg(tea.KeyUp))
	if got, want := m.Buffer().Caret(), 1; got != want {
		t.Fatalf("caret after two ups: got %d, want %d", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyUp))
	if got, want := m.Buffer().Caret(), 1; got != want {
		t.Fatalf("caret after up on first line: got %d, want %d", got, want)
	}
}

func TestUpdateKey_HomeEnd(t *testing.T) {
	m := New(Config{Text: "ab\ncdef"})
	m.Buffer().SetCaret(4)

	m, _ = m.Update(keyMsg(tea.KeyEnd))
	if got, want := m.Buffer().Caret(), 7; got != want {
		t.Fatalf("end: got %d, want %d", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyHome))
	if got, want := m.Buffer().Caret(), 3; got != want {
		t.Fatalf("home: got %d, want %d", got, want)
	}
}

func TestUpdateKey_MoveBlockDownAndUndo(t *testing.T) {
	m := New(Config{Text: "- a\n  - b\n- c"})

	m, _ = m.Update(altKey(tea.KeyDown))
	if got, want := m.Buffer().Text(), "- c\n- a\n  - b"; got != want {
		t.Fatalf("text after move down: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Caret(), 4; got != want {
		t.Fatalf("caret after move down: got %d, want %d", got, want)
	}

	m, _ = m.Update(keyMsg(tea.KeyCtrlZ))
	if got, want := m.Buffer().Text(), "- a\n  - b\n- c"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	m, _ = m.Update(keyMsg(tea.KeyCtrlY))
	if got, want := m.Buffer().Text(), "- c\n- a\n  - b"; got != want {
		t.Fatalf("text after redo: got %q, want %q", got, want)
	}
}

func TestUpdateKey_MoveBlockUpAtTopIsNoOp(t *testing.T) {
	m := New(Config{Text: "# A\nx\n# B"})
	before := m.Buffer().Version()

	m, _ = m.Update(altKey(tea.KeyUp))
	if got := m.Buffer().Version(); got != before {
		t.Fatalf("version: got %d, want %d", got, before)
	}
}

func TestUpdateKey_MoveBlockUpFromDocumentEndIsNoOp(t *testing.T) {
	m := New(Config{Text: "a\nb\n"})
	m.Buffer().SetCaret(m.Buffer().Len())
	before := m.Buffer().Version()

	m, _ = m.Update(altKey(tea.KeyUp))
	if got := m.Buffer().Version(); got != before {
		t.Fatalf("version: got %d, want %d", got, before)
	}
	if got, want := m.Buffer().Text(), "a\nb\n"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdateKey_ReadOnlyBlocksMoves(t *testing.T) {
	m := New(Config{Text: "a\nb", ReadOnly: true})

	m, _ = m.Update(altKey(tea.KeyDown))
	if got, want := m.Buffer().Text(), "a\nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdateKey_IgnoredWhenBlurred(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.Blur()

	m, _ = m.Update(keyMsg(tea.KeyRight))
	if got := m.Buffer().Caret(); got != 0 {
		t.Fatalf("caret: got %d, want 0", got)
	}
}

func TestUpdateKey_CopyBlock(t *testing.T) {
	cb := &fakeClipboard{}
	m := New(Config{Text: "# A\nx\n# B\ny", Clipboard: cb})

	m, _ = m.Update(keyMsg(tea.KeyCtrlB))
	if got, want := cb.text, "# A\nx"; got != want {
		t.Fatalf("clipboard: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Text(), "# A\nx\n# B\ny"; got != want {
		t.Fatalf("text changed by copy: got %q", got)
	}
}

func TestUpdateKey_CopyBlockErrorLeavesDocument(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no clipboard")}
	m := New(Config{Text: "a", Clipboard: cb})

	m, _ = m.Update(keyMsg(tea.KeyCtrlB))
	if got, want := m.Buffer().Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdateKey_OnChangeFiresOncePerChange(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "a\nb",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m, _ = m.Update(keyMsg(tea.KeyDown))
	if got, want := len(events), 1; got != want {
		t.Fatalf("events after caret move: got %d, want %d", got, want)
	}
	if got, want := events[0].Line, 2; got != want {
		t.Fatalf("event line: got %d, want %d", got, want)
	}
	if events[0].Edit != nil {
		t.Fatalf("caret-only event carries an edit: %+v", events[0].Edit)
	}

	m, _ = m.Update(keyMsg(tea.KeyDown))
	if got, want := len(events), 1; got != want {
		t.Fatalf("events after no-op move: got %d, want %d", got, want)
	}

	m, _ = m.Update(altKey(tea.KeyUp))
	if got, want := len(events), 2; got != want {
		t.Fatalf("events after block move: got %d, want %d", got, want)
	}
	if got, want := events[1].Text, "b\na"; got != want {
		t.Fatalf("event text: got %q, want %q", got, want)
	}
	edit := events[1].Edit
	if edit == nil || len(edit.AppliedEdits) != 1 {
		t.Fatalf("block move edit: got %+v", edit)
	}
	if got, want := edit.AppliedEdits[0].DeletedText, "a\nb"; got != want {
		t.Fatalf("deleted text: got %q, want %q", got, want)
	}
	if edit.Source != buffer.ChangeSourceLocal {
		t.Fatalf("edit source: got %v, want local", edit.Source)
	}

	m, _ = m.Update(keyMsg(tea.KeyCtrlZ))
	if got, want := len(events), 3; got != want {
		t.Fatalf("events after undo: got %d, want %d", got, want)
	}
	if events[2].Edit == nil || events[2].Edit.Source != buffer.ChangeSourceHistory {
		t.Fatalf("undo edit: got %+v", events[2].Edit)
	}
}
