package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/dragline/internal/grapheme"
)

// indicatorBefore marks the row the dragged block will land above. A drop
// after the last line is marked on the blank end row.
const indicatorBefore = "▔"

// handleWidth returns the width of the handle column, including its
// trailing space.
func (m Model) handleWidth() int {
	w := graphemeutil.Width(m.cfg.handleGlyph(), 1)
	if w < 1 {
		w = 1
	}
	return w + 1
}

// LineNumberWidth returns the line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth(lineCount int) int {
	w := m.handleWidth()
	if m.cfg.ShowLineNums {
		w += LineNumberWidth(lineCount)
	}
	return w
}

type gutterRowState struct {
	row       visualRow
	lineCount int
	inSource  bool
	caretLine bool
	indicator string
}

func (m Model) renderGutter(st gutterRowState) string {
	var sb strings.Builder
	hw := m.handleWidth()

	switch {
	case st.indicator != "":
		sb.WriteString(m.cfg.Style.Indicator.Render(padCells(st.indicator, hw-1)))
	case st.row.segment == 0:
		handle := m.cfg.Style.Handle
		if st.inSource {
			handle = m.cfg.Style.HandleActive
		}
		sb.WriteString(handle.Render(m.cfg.handleGlyph()))
	default:
		sb.WriteString(strings.Repeat(" ", hw-1))
	}
	sb.WriteString(m.cfg.Style.Gutter.Render(" "))

	if m.cfg.ShowLineNums {
		digits := gutterDigits(st.lineCount)
		numStyle := m.cfg.Style.LineNum
		if m.focused && st.caretLine && st.row.segment == 0 {
			numStyle = m.cfg.Style.LineNumActive
		}
		num := fmt.Sprintf("%*s", digits, "")
		if st.row.segment == 0 {
			num = fmt.Sprintf("%*d", digits, st.row.line)
		}
		sb.WriteString(numStyle.Render(num))
		sb.WriteString(m.cfg.Style.Gutter.Render(" "))
	}
	return sb.String()
}

func padCells(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
