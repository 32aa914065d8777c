package drag

// Result is the outcome of a committed reorder.
type Result struct {
	Text  string
	Caret int
}

// Reorder moves block so it lands on boundary and returns the new document
// text with the caret at the start of the moved block.
//
// ok is false for degenerate moves: a boundary inside the block, directly
// before it, or directly after it leaves the line order unchanged and must
// not rewrite the buffer.
func Reorder(doc Document, block BlockRange, boundary int) (Result, bool) {
	lines := doc.Lines()
	if len(lines) == 0 {
		lines = []string{""}
	}
	if block.Start < 1 || block.End > len(lines) || block.Len() == 0 {
		return Result{}, false
	}

	target := targetIndex(doc, lines, boundary)
	start := block.Start - 1
	count := block.Len()
	endExclusive := start + count
	if target >= start && target <= endExclusive {
		return Result{}, false
	}

	moved := append([]string(nil), lines[start:endExclusive]...)
	rest := make([]string, 0, len(lines)-count)
	rest = append(rest, lines[:start]...)
	rest = append(rest, lines[endExclusive:]...)

	if target > endExclusive {
		target -= count
	}
	target = clampInt(target, 0, len(rest))

	out := make([]string, 0, len(lines))
	out = append(out, rest[:target]...)
	out = append(out, moved...)
	out = append(out, rest[target:]...)

	eol := doc.LineTerminator()
	caret := 0
	for i := 0; i < target; i++ {
		caret += len(out[i])
		if i < len(out)-1 {
			caret += len(eol)
		}
	}

	return Result{Text: joinLines(out, eol), Caret: caret}, true
}

// targetIndex translates a boundary offset into the 0-based index of the
// line the block is inserted before. A trailing terminator's empty line is
// not a real line, so end-of-document drops land before it.
func targetIndex(doc Document, lines []string, boundary int) int {
	if boundary >= doc.Len() {
		if len(lines) > 1 && lines[len(lines)-1] == "" {
			return len(lines) - 1
		}
		return len(lines)
	}
	if boundary < 0 {
		boundary = 0
	}
	return doc.LineAt(boundary).Number - 1
}

func joinLines(lines []string, eol string) string {
	n := len(eol) * (len(lines) - 1)
	for _, l := range lines {
		n += len(l)
	}
	buf := make([]byte, 0, n)
	for i, l := range lines {
		if i > 0 {
			buf = append(buf, eol...)
		}
		buf = append(buf, l...)
	}
	return string(buf)
}
