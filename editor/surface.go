package editor

import "github.com/iw2rmb/dragline/drag"

// pointerSurface fans editor-wide mouse motion and releases out to the
// listeners a drag session registers while it is active.
type pointerSurface struct {
	listeners []drag.PointerListener
}

func (s *pointerSurface) Subscribe(l drag.PointerListener) {
	for _, cur := range s.listeners {
		if cur == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

func (s *pointerSurface) Unsubscribe(l drag.PointerListener) {
	for i, cur := range s.listeners {
		if cur == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *pointerSurface) active() bool { return len(s.listeners) > 0 }

func (s *pointerSurface) move(p drag.Point) {
	for _, l := range append([]drag.PointerListener(nil), s.listeners...) {
		l.PointerMove(p)
	}
}

// up delivers a release; listeners unsubscribe themselves while handling it.
func (s *pointerSurface) up(p drag.Point) {
	for _, l := range append([]drag.PointerListener(nil), s.listeners...) {
		l.PointerUp(p)
	}
}

// decorations records what the drag session asked to paint. The renderer
// reads it on the next content rebuild.
type decorations struct {
	source    drag.Span
	hasSource bool

	indicator    int
	hasIndicator bool
}

func (d *decorations) HighlightSource(block drag.Span) {
	d.source = block
	d.hasSource = true
}

func (d *decorations) ClearSource() {
	d.source = drag.Span{}
	d.hasSource = false
}

func (d *decorations) ShowIndicator(boundary int) {
	d.indicator = boundary
	d.hasIndicator = true
}

func (d *decorations) ClearIndicator() {
	d.indicator = 0
	d.hasIndicator = false
}

func (d *decorations) inSource(lineFrom int) bool {
	if !d.hasSource {
		return false
	}
	return lineFrom == d.source.From || (lineFrom > d.source.From && lineFrom < d.source.To)
}
