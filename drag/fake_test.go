package drag

import (
	"math"

	"github.com/iw2rmb/dragline/buffer"
)

// rowMapper lays out one document line per screen row starting at y=0.
type rowMapper struct {
	doc *buffer.Buffer
	// noLineEnd makes ExtentAt fail for line-end offsets that are not also
	// line starts, exercising the next-line fallback.
	noLineEnd bool
}

func (m rowMapper) PositionAt(p Point) (int, bool) {
	if p.Y < 0 || p.X < 0 {
		return 0, false
	}
	row := int(math.Floor(p.Y))
	if row >= m.doc.LineCount() {
		return 0, false
	}
	return m.doc.Line(row + 1).From, true
}

func (m rowMapper) ExtentAt(offset int) (Extent, bool) {
	line := m.doc.LineAt(offset)
	if m.noLineEnd && offset == line.To && line.To != line.From {
		return Extent{}, false
	}
	top := float64(line.Number - 1)
	return Extent{Top: top, Bottom: top + 1}, true
}

// rowPoint returns a point in the upper (before) or lower (after) half of
// the row showing line n.
func rowPoint(n int, lower bool) Point {
	y := float64(n-1) + 0.25
	if lower {
		y = float64(n-1) + 0.75
	}
	return Point{X: 1, Y: y}
}

type command struct {
	op  string
	arg int
	to  int
}

type recordingRenderer struct {
	cmds []command
}

func (r *recordingRenderer) HighlightSource(block Span) {
	r.cmds = append(r.cmds, command{op: "highlight", arg: block.From, to: block.To})
}
func (r *recordingRenderer) ClearSource() { r.cmds = append(r.cmds, command{op: "clear-source"}) }
func (r *recordingRenderer) ShowIndicator(boundary int) {
	r.cmds = append(r.cmds, command{op: "indicator", arg: boundary})
}
func (r *recordingRenderer) ClearIndicator() {
	r.cmds = append(r.cmds, command{op: "clear-indicator"})
}

func (r *recordingRenderer) last() command {
	if len(r.cmds) == 0 {
		return command{}
	}
	return r.cmds[len(r.cmds)-1]
}

type countingSurface struct {
	listeners   map[PointerListener]int
	subscribes  int
	unsubscribe int
}

func (s *countingSurface) Subscribe(l PointerListener) {
	if s.listeners == nil {
		s.listeners = make(map[PointerListener]int)
	}
	s.listeners[l]++
	s.subscribes++
}

func (s *countingSurface) Unsubscribe(l PointerListener) {
	s.listeners[l]--
	if s.listeners[l] <= 0 {
		delete(s.listeners, l)
	}
	s.unsubscribe++
}
