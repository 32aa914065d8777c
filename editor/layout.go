package editor

import (
	graphemeutil "github.com/iw2rmb/dragline/internal/grapheme"
)

// visualRow is one terminal row of a (possibly wrapped) document line.
type visualRow struct {
	line int // 1-based document line
	// from and to are byte offsets into the line text: [from, to).
	from, to int
	// segment is the wrap segment index; 0 is the row carrying the handle.
	segment int
	last    bool
}

type layout struct {
	rows []visualRow
	// firstRow[n-1] is the first visual row of line n.
	firstRow []int
}

// buildLayout lays lines out one row each, or wrapped at width cells when
// wrap is set and width is positive.
func buildLayout(lines []string, width int, wrap bool, tabWidth int) layout {
	l := layout{
		rows:     make([]visualRow, 0, len(lines)),
		firstRow: make([]int, len(lines)),
	}
	for i, text := range lines {
		n := i + 1
		l.firstRow[i] = len(l.rows)
		if !wrap || width <= 0 {
			l.rows = append(l.rows, visualRow{line: n, from: 0, to: len(text), last: true})
			continue
		}

		segStart := 0
		segCells := 0
		seg := 0
		for _, c := range graphemeutil.Layout(text, tabWidth) {
			// Tab stops restart on every wrapped row.
			w := graphemeutil.CellWidth(c.Text, segCells, tabWidth)
			if segCells > 0 && segCells+w > width {
				l.rows = append(l.rows, visualRow{line: n, from: segStart, to: c.Offset, segment: seg})
				seg++
				segStart = c.Offset
				segCells = 0
				w = graphemeutil.CellWidth(c.Text, 0, tabWidth)
			}
			segCells += w
		}
		l.rows = append(l.rows, visualRow{line: n, from: segStart, to: len(text), segment: seg, last: true})
	}
	return l
}

// rowOf returns the visual row showing byte col of line n. A col on a wrap
// boundary belongs to the later row; the end of the line belongs to the
// last row.
func (l layout) rowOf(n, col int) int {
	if n < 1 || n > len(l.firstRow) {
		return -1
	}
	r := l.firstRow[n-1]
	for r+1 < len(l.rows) && l.rows[r+1].line == n && col >= l.rows[r+1].from {
		r++
	}
	return r
}
