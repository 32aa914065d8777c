package buffer

import (
	"sort"
	"strings"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables history

	// LineEnding fixes the terminator. LineEndingAuto detects it from the
	// initial text.
	LineEnding LineEnding
}

// Buffer is the pure document state: lines, caret, and history.
type Buffer struct {
	lines  []string
	starts []int
	eol    LineEnding

	version uint64
	caret   int

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	eol := opt.LineEnding
	if eol == LineEndingAuto {
		eol = DetectLineEnding(text)
	}
	b := &Buffer{
		eol: eol,
		opt: opt,
	}
	b.setLines(splitLines(text))
	return b
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, b.eol.Sequence())
}

// Len returns the document length in bytes.
func (b *Buffer) Len() int {
	last := len(b.lines) - 1
	return b.starts[last] + len(b.lines[last])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineEnding() LineEnding { return b.eol }

// LineTerminator returns the byte sequence joining lines.
func (b *Buffer) LineTerminator() string { return b.eol.Sequence() }

// LineCount returns the number of lines; never less than 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns line n (1-based), clamped into [1, LineCount].
func (b *Buffer) Line(n int) Line {
	n = clampInt(n, 1, len(b.lines))
	from := b.starts[n-1]
	text := b.lines[n-1]
	return Line{Number: n, From: from, To: from + len(text), Text: text}
}

// LineAt returns the line containing offset. Offsets are clamped into
// [0, Len]; an offset on a terminator belongs to the line it ends.
func (b *Buffer) LineAt(offset int) Line {
	offset = clampInt(offset, 0, b.Len())
	i := sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > offset })
	return b.Line(i)
}

// Lines returns a copy of the line texts.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) Caret() int { return b.caret }

// SetCaret moves the caret, clamped into [0, Len].
func (b *Buffer) SetCaret(offset int) {
	next := clampInt(offset, 0, b.Len())
	if next == b.caret {
		return
	}
	b.caret = next
	b.version++
}

// CaretLine returns the line holding the caret.
func (b *Buffer) CaretLine() Line { return b.LineAt(b.caret) }

// ReplaceAll replaces the whole document as one edit and one undo step.
// Terminators in text are normalized to the buffer's line ending. The caret
// is clamped into the new document; identical text is a no-op.
func (b *Buffer) ReplaceAll(text string) {
	lines := splitLines(text)
	before := b.Text()
	after := strings.Join(lines, b.eol.Sequence())
	if before == after {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	b.setLines(lines)
	b.caret = clampInt(b.caret, 0, b.Len())
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(AppliedEdit{
		From:        0,
		To:          len(before),
		InsertText:  after,
		DeletedText: before,
	})
	b.commitChange(change)
}

func (b *Buffer) setLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	sep := len(b.eol.Sequence())
	starts := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		starts[i] = off
		off += len(l) + sep
	}
	b.lines = lines
	b.starts = starts
}
