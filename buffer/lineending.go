package buffer

import "strings"

// LineEnding specifies the line terminator of a document.
type LineEnding uint8

const (
	// LineEndingAuto detects the terminator from the initial text.
	LineEndingAuto LineEnding = iota
	LineEndingLF
	LineEndingCRLF
	LineEndingCR
)

// String returns a printable name of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	case LineEndingAuto:
		return "auto"
	default:
		return "lf"
	}
}

// Sequence returns the bytes that terminate a line.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding returns the most common terminator in text.
// Text without terminators, and ties with LF, resolve to LF.
func DetectLineEnding(text string) LineEnding {
	lf, crlf, cr := countTerminators(text)

	switch {
	case crlf > lf && crlf >= cr:
		return LineEndingCRLF
	case cr > lf && cr > crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// MixedLineEndings reports whether text uses more than one kind of
// terminator. Loading such text rewrites every line with DetectLineEnding.
func MixedLineEndings(text string) bool {
	kinds := 0
	lf, crlf, cr := countTerminators(text)
	for _, n := range []int{lf, crlf, cr} {
		if n > 0 {
			kinds++
		}
	}
	return kinds > 1
}

func countTerminators(text string) (lf, crlf, cr int) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				crlf++
				i++
				continue
			}
			cr++
		case '\n':
			lf++
		}
	}
	return lf, crlf, cr
}

// splitLines splits text on any terminator, so mixed endings normalize to
// the buffer's own on the next join.
func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
