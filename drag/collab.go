package drag

import "github.com/iw2rmb/dragline/buffer"

// Document is the read side of a line buffer.
type Document interface {
	LineAt(offset int) buffer.Line
	Line(n int) buffer.Line
	LineCount() int
	Len() int
	Lines() []string
	LineTerminator() string
}

// Editable is a Document the session can commit to.
type Editable interface {
	Document
	ReplaceAll(text string)
	SetCaret(offset int)
}

// Point is a pointer position in host screen units. Y grows downward.
type Point struct {
	X, Y float64
}

// Extent is the vertical span of a rendered position.
type Extent struct {
	Top, Bottom float64
}

// CoordinateMapper maps between screen positions and buffer offsets.
type CoordinateMapper interface {
	// PositionAt returns the offset under p; ok is false outside the content.
	PositionAt(p Point) (offset int, ok bool)
	// ExtentAt returns the vertical extent of the row holding offset.
	ExtentAt(offset int) (Extent, bool)
}

// Span is a half-open byte range [From, To).
type Span struct {
	From, To int
}

// Renderer paints drag feedback.
type Renderer interface {
	HighlightSource(block Span)
	ClearSource()
	ShowIndicator(boundary int)
	ClearIndicator()
}

// PointerListener receives pointer events from the whole interaction
// surface while a drag is active. Surfaces may ignore the Outcome.
type PointerListener interface {
	PointerMove(p Point)
	PointerUp(p Point) Outcome
}

// Surface delivers global pointer events to subscribed listeners.
type Surface interface {
	Subscribe(l PointerListener)
	Unsubscribe(l PointerListener)
}
