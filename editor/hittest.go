package editor

import (
	"math"

	"github.com/iw2rmb/dragline/buffer"
	"github.com/iw2rmb/dragline/drag"
	graphemeutil "github.com/iw2rmb/dragline/internal/grapheme"
)

// viewState is the geometry the drag session maps pointers against. The
// Model refreshes it whenever layout or scroll position changes.
//
// Coordinates are in terminal cells relative to the editor's viewport:
// (0,0) is the top-left of the visible region, gutter included.
type viewState struct {
	buf *buffer.Buffer

	layout      layout
	gutterWidth int
	tabWidth    int

	yOffset       int
	width, height int
}

func (v *viewState) inBounds(x, y int) bool {
	if v.width <= 0 || v.height <= 0 {
		return false
	}
	return x >= 0 && x < v.width && y >= 0 && y < v.height
}

// PositionAt maps a pointer to a buffer offset. Rows below the last line,
// still inside the viewport, map to the end of the document so a block can
// be dropped after the last line.
func (v *viewState) PositionAt(p drag.Point) (int, bool) {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if !v.inBounds(x, y) {
		return 0, false
	}
	visual := v.yOffset + y
	if visual >= len(v.layout.rows) {
		return v.buf.Len(), true
	}
	row := v.layout.rows[visual]
	line := v.buf.Line(row.line)

	cell := x - v.gutterWidth
	if cell < 0 {
		return line.From + row.from, true
	}
	if row.to > len(line.Text) || row.from > row.to {
		// Layout is stale; the model rebuilds it on the next sync.
		return line.From, true
	}
	seg := line.Text[row.from:row.to]
	return line.From + row.from + graphemeutil.OffsetAtCell(seg, cell, v.tabWidth), true
}

// ExtentAt returns the screen rows covering the visual row of offset.
func (v *viewState) ExtentAt(offset int) (drag.Extent, bool) {
	line := v.buf.LineAt(offset)
	row := v.layout.rowOf(line.Number, offset-line.From)
	if row < 0 {
		return drag.Extent{}, false
	}
	top := float64(row - v.yOffset)
	return drag.Extent{Top: top, Bottom: top + 1}, true
}

// handleAt returns the identity of the drag handle drawn at (x, y).
func (v *viewState) handleAt(x, y, handleWidth int) (string, bool) {
	if !v.inBounds(x, y) || x >= handleWidth {
		return "", false
	}
	visual := v.yOffset + y
	if visual >= len(v.layout.rows) {
		return "", false
	}
	row := v.layout.rows[visual]
	if row.segment != 0 {
		return "", false
	}
	return drag.HandleID(v.buf.Line(row.line).From), true
}

// pointerAt converts a mouse cell into a drag point at the cell's center,
// so the midpoint rule splits multi-row lines by row.
func pointerAt(x, y int) drag.Point {
	return drag.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
