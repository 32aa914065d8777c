package editor

import (
	"github.com/iw2rmb/dragline/buffer"
	"github.com/iw2rmb/dragline/drag"
)

type ChangeEvent struct {
	Version uint64
	Caret   int
	// Line is the 1-based line holding the caret.
	Line int

	// Edit is the text change behind this event; nil when only the caret
	// moved.
	Edit *buffer.Change

	// Simplest payload; hosts can diff if needed.
	Text string
}

// DropEvent reports a finished drag gesture.
type DropEvent struct {
	Outcome drag.Outcome
	Block   drag.BlockRange
	// Boundary is valid when HasBoundary is true.
	Boundary    int
	HasBoundary bool
	// Version is the buffer version after the gesture.
	Version uint64
}

func buildChangeEvent(b *buffer.Buffer, since uint64) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Caret:   b.Caret(),
		Line:    b.CaretLine().Number,
		Text:    b.Text(),
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter > since {
		ev.Edit = &ch
	}
	return ev
}
