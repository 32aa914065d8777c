package drag

import (
	"io"
	"log/slog"
)

// State is the lifecycle stage of a Session.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateTracking
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateTracking:
		return "tracking"
	default:
		return "idle"
	}
}

// Outcome reports how a pointer-up ended a gesture.
type Outcome int

const (
	// OutcomeNone means there was no active drag.
	OutcomeNone Outcome = iota
	OutcomeCommitted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Drop describes a finished gesture.
type Drop struct {
	Outcome  Outcome
	Block    BlockRange
	Boundary int
	// HasBoundary is false when the gesture ended without a drop target.
	HasBoundary bool
	Result      Result
}

// SessionConfig wires a Session to its host.
type SessionConfig struct {
	Doc      Editable
	Coords   CoordinateMapper
	Renderer Renderer
	Surface  Surface

	// Resolver defaults to NewResolver().
	Resolver *Resolver
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
	// OnDrop is called after every gesture that reached pointer-up.
	OnDrop func(Drop)
}

type dragState struct {
	block   BlockRange
	span    Span
	drop    int
	hasDrop bool
}

// Session tracks one drag gesture at a time. It is not safe for concurrent
// use; hosts deliver events from a single goroutine.
type Session struct {
	cfg   SessionConfig
	state State
	drag  *dragState

	subscribed bool
}

var _ PointerListener = (*Session)(nil)

func NewSession(cfg SessionConfig) *Session {
	if cfg.Resolver == nil {
		cfg.Resolver = NewResolver()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{cfg: cfg}
}

func (s *Session) State() State { return s.state }

// Active reports whether a gesture is in flight.
func (s *Session) Active() bool { return s.drag != nil }

// Block returns the dragged block while a gesture is active.
func (s *Session) Block() (BlockRange, bool) {
	if s.drag == nil {
		return BlockRange{}, false
	}
	return s.drag.block, true
}

// DropBoundary returns the current candidate boundary, if any.
func (s *Session) DropBoundary() (int, bool) {
	if s.drag == nil || !s.drag.hasDrop {
		return 0, false
	}
	return s.drag.drop, true
}

// PointerDown arms a drag from a handle identity. Identities that do not
// resolve to a line, and presses while a drag is active, are ignored.
func (s *Session) PointerDown(handleID string) bool {
	if s.drag != nil {
		s.cfg.Logger.Debug("pointer down ignored", "reason", "drag active", "handle", handleID)
		return false
	}
	doc := s.cfg.Doc
	if doc == nil {
		return false
	}
	lineStart, ok := ParseHandleID(handleID)
	if !ok || lineStart > doc.Len() || doc.LineAt(lineStart).From != lineStart {
		s.cfg.Logger.Debug("pointer down ignored", "reason", "unresolvable anchor", "handle", handleID)
		return false
	}

	anchor := doc.LineAt(lineStart)
	block := s.cfg.Resolver.Resolve(doc, anchor.Number)
	span := block.Span(doc)
	s.drag = &dragState{block: block, span: span}
	s.state = StateArmed

	if s.cfg.Renderer != nil {
		s.cfg.Renderer.HighlightSource(span)
	}
	s.subscribe()
	s.cfg.Logger.Debug("drag armed", "start", block.Start, "end", block.End)
	return true
}

// PointerMove updates the candidate boundary for the pointer at p.
func (s *Session) PointerMove(p Point) {
	if s.drag == nil {
		return
	}
	s.state = StateTracking

	boundary, ok := ResolveBoundary(s.cfg.Doc, s.cfg.Coords, p, s.drag.span)
	if !ok {
		s.clearDrop()
		return
	}
	if s.drag.hasDrop && s.drag.drop == boundary {
		return
	}
	s.drag.drop = boundary
	s.drag.hasDrop = true
	if s.cfg.Renderer != nil {
		s.cfg.Renderer.ShowIndicator(boundary)
	}
}

// PointerUp ends the gesture. The block moves to the last recorded
// boundary; a release outside the content, or with no boundary, cancels.
func (s *Session) PointerUp(p Point) Outcome {
	if s.drag == nil {
		return OutcomeNone
	}
	d := *s.drag
	doc := s.cfg.Doc

	if s.cfg.Coords != nil {
		if _, ok := s.cfg.Coords.PositionAt(p); !ok {
			d.hasDrop = false
		}
	}

	drop := Drop{
		Outcome:     OutcomeCancelled,
		Block:       d.block,
		Boundary:    d.drop,
		HasBoundary: d.hasDrop,
	}
	if d.hasDrop {
		if res, ok := Reorder(doc, d.block, d.drop); ok {
			doc.ReplaceAll(res.Text)
			doc.SetCaret(res.Caret)
			drop.Outcome = OutcomeCommitted
			drop.Result = res
		}
	}

	s.teardown()
	s.cfg.Logger.Debug("drag finished",
		"outcome", drop.Outcome.String(),
		"start", d.block.Start,
		"end", d.block.End,
		"boundary", d.drop,
		"has_boundary", d.hasDrop,
	)
	if s.cfg.OnDrop != nil {
		s.cfg.OnDrop(drop)
	}
	return drop.Outcome
}

// Close force-ends any active gesture without touching the document. Hosts
// call it on teardown.
func (s *Session) Close() {
	if s.drag == nil && !s.subscribed {
		return
	}
	s.teardown()
	s.cfg.Logger.Debug("drag closed")
}

func (s *Session) clearDrop() {
	if !s.drag.hasDrop {
		return
	}
	s.drag.hasDrop = false
	s.drag.drop = 0
	if s.cfg.Renderer != nil {
		s.cfg.Renderer.ClearIndicator()
	}
}

func (s *Session) teardown() {
	if s.cfg.Renderer != nil {
		s.cfg.Renderer.ClearSource()
		s.cfg.Renderer.ClearIndicator()
	}
	s.unsubscribe()
	s.drag = nil
	s.state = StateIdle
}

func (s *Session) subscribe() {
	if s.subscribed || s.cfg.Surface == nil {
		return
	}
	s.cfg.Surface.Subscribe(s)
	s.subscribed = true
}

func (s *Session) unsubscribe() {
	if !s.subscribed {
		return
	}
	s.cfg.Surface.Unsubscribe(s)
	s.subscribed = false
}
