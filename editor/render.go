package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/dragline/buffer"
	graphemeutil "github.com/iw2rmb/dragline/internal/grapheme"
)

func (m *Model) renderContent() string {
	lines := m.view.layout
	lineCount := m.buf.LineCount()
	caret := m.buf.Caret()
	caretLine := m.buf.LineAt(caret)
	caretRow := lines.rowOf(caretLine.Number, caret-caretLine.From)
	indicatorRow, indicator := m.indicatorRow()

	out := make([]string, 0, len(lines.rows)+1)
	for i, row := range lines.rows {
		line := m.buf.Line(row.line)
		inSource := m.deco.inSource(line.From)

		marker := ""
		if i == indicatorRow {
			marker = indicator
		}

		var sb strings.Builder
		sb.WriteString(m.renderGutter(gutterRowState{
			row:       row,
			lineCount: lineCount,
			inSource:  inSource,
			caretLine: row.line == caretLine.Number,
			indicator: marker,
		}))

		textStyle := m.cfg.Style.Text
		if inSource {
			textStyle = m.cfg.Style.DragSource
		}
		caretCol := -1
		if m.focused && i == caretRow {
			caretCol = caret - line.From
		}
		sb.WriteString(renderSegment(line, row, textStyle, m.cfg.Style.Cursor, caretCol, m.cfg.tabWidth()))
		out = append(out, sb.String())
	}

	// The end row sits below the last line so "after the last line" stays
	// reachable when the document fills the viewport.
	end := ""
	if indicatorRow == len(lines.rows) {
		end = m.cfg.Style.Indicator.Render(padCells(indicator, m.handleWidth()-1))
	}
	out = append(out, end)

	return strings.Join(out, "\n")
}

// indicatorRow returns the visual row carrying the drop marker, or -1.
func (m *Model) indicatorRow() (int, string) {
	if !m.deco.hasIndicator {
		return -1, ""
	}
	boundary := m.deco.indicator
	line := m.buf.LineAt(boundary)
	if line.From == boundary {
		return m.view.layout.rowOf(line.Number, 0), indicatorBefore
	}
	if boundary >= m.buf.Len() {
		return len(m.view.layout.rows), indicatorBefore
	}
	return -1, ""
}

func renderSegment(
	line buffer.Line,
	row visualRow,
	base lipgloss.Style,
	cursor lipgloss.Style,
	caretCol int,
	tabWidth int,
) string {
	to := row.to
	if to > len(line.Text) {
		to = len(line.Text)
	}
	from := row.from
	if from > to {
		from = to
	}
	seg := line.Text[from:to]

	var sb strings.Builder
	var plain strings.Builder
	flush := func() {
		if plain.Len() == 0 {
			return
		}
		sb.WriteString(base.Render(plain.String()))
		plain.Reset()
	}

	cell := 0
	for _, c := range graphemeutil.Layout(seg, tabWidth) {
		w := graphemeutil.CellWidth(c.Text, cell, tabWidth)
		text := c.Text
		if text == "\t" {
			text = strings.Repeat(" ", w)
		}
		if caretCol == from+c.Offset {
			flush()
			sb.WriteString(cursor.Render(text))
		} else {
			plain.WriteString(text)
		}
		cell += w
	}
	flush()

	if row.last && caretCol == len(line.Text) {
		sb.WriteString(cursor.Render(" "))
	}
	return sb.String()
}
