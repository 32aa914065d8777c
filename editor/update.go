package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/dragline/drag"
	graphemeutil "github.com/iw2rmb/dragline/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	km := m.cfg.KeyMap

	// The document must not change under a drag; only cancel gets through.
	if m.session.Active() {
		if key.Matches(msg, km.CancelDrag) {
			m.session.Close()
			m.rebuildContent()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Left):
		m.moveCaretLeft()
	case key.Matches(msg, km.Right):
		m.moveCaretRight()
	case key.Matches(msg, km.Up):
		m.moveCaretVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveCaretVertical(1)

	case key.Matches(msg, km.Home):
		m.buf.SetCaret(m.buf.CaretLine().From)
	case key.Matches(msg, km.End):
		m.buf.SetCaret(m.buf.CaretLine().To)

	case key.Matches(msg, km.MoveBlockUp):
		if !m.cfg.ReadOnly {
			m.stepBlock(drag.Up)
		}
	case key.Matches(msg, km.MoveBlockDown):
		if !m.cfg.ReadOnly {
			m.stepBlock(drag.Down)
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.CopyBlock):
		m.copyBlock()
	}

	return m, nil
}

func (m Model) moveCaretLeft() {
	caret := m.buf.Caret()
	line := m.buf.LineAt(caret)
	col := caret - line.From
	if col > 0 {
		m.buf.SetCaret(line.From + graphemeutil.Prev(line.Text, col))
		return
	}
	if line.Number > 1 {
		m.buf.SetCaret(m.buf.Line(line.Number - 1).To)
	}
}

func (m Model) moveCaretRight() {
	caret := m.buf.Caret()
	line := m.buf.LineAt(caret)
	col := caret - line.From
	if col < len(line.Text) {
		m.buf.SetCaret(line.From + graphemeutil.Next(line.Text, col))
		return
	}
	if line.Number < m.buf.LineCount() {
		m.buf.SetCaret(m.buf.Line(line.Number + 1).From)
	}
}

// moveCaretVertical keeps the caret's cell column across lines.
func (m Model) moveCaretVertical(delta int) {
	tw := m.cfg.tabWidth()
	caret := m.buf.Caret()
	line := m.buf.LineAt(caret)
	target := line.Number + delta
	if target < 1 || target > m.buf.LineCount() {
		return
	}
	cell := graphemeutil.CellAtOffset(line.Text, caret-line.From, tw)
	next := m.buf.Line(target)
	m.buf.SetCaret(next.From + graphemeutil.OffsetAtCell(next.Text, cell, tw))
}

// stepBlock moves the caret's block past its neighbouring line.
func (m Model) stepBlock(dir drag.Direction) {
	anchor := m.buf.CaretLine().Number
	block, res, ok := m.resolver.Step(m.buf, anchor, dir)
	if !ok {
		return
	}
	m.buf.ReplaceAll(res.Text)
	m.buf.SetCaret(res.Caret)
	m.cfg.Logger.Debug("block stepped",
		"direction", dir.String(),
		"start", block.Start,
		"end", block.End,
	)
}

// copyBlock writes the caret's block, without its trailing terminator, to
// the clipboard.
func (m Model) copyBlock() {
	if m.cfg.Clipboard == nil {
		return
	}
	block := m.resolver.Resolve(m.buf, m.buf.CaretLine().Number)
	from := m.buf.Line(block.Start).From
	to := m.buf.Line(block.End).To
	s := m.buf.Text()[from:to]
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.cfg.Logger.Warn("copy block failed", "error", err)
	}
}
