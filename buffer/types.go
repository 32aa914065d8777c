package buffer

// Line is one logical line of the document.
type Line struct {
	// Number is 1-based.
	Number int
	// From is the byte offset of the first byte of the line.
	From int
	// To is the byte offset just past the last byte, excluding the terminator.
	To   int
	Text string
}

// Len returns the byte length of the line without its terminator.
func (l Line) Len() int { return l.To - l.From }

// IsBlank reports whether the line holds only whitespace.
func (l Line) IsBlank() bool {
	for i := 0; i < len(l.Text); i++ {
		switch l.Text[i] {
		case ' ', '\t', '\v', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
