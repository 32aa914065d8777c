package drag

// ResolveBoundary maps a pointer position to the line boundary a dragged
// block would land on. The result is a line-start offset ("before this
// line") or doc.Len() ("after the last line").
//
// Boundaries strictly inside suppress are rejected, so a block is never
// offered a drop point within itself. ok is false when the pointer is
// outside the content or the boundary is suppressed.
func ResolveBoundary(doc Document, coords CoordinateMapper, p Point, suppress Span) (int, bool) {
	boundary, ok := candidateBoundary(doc, coords, p)
	if !ok {
		return 0, false
	}
	if boundary > suppress.From && boundary < suppress.To {
		return 0, false
	}
	return boundary, true
}

func candidateBoundary(doc Document, coords CoordinateMapper, p Point) (int, bool) {
	if coords == nil {
		return 0, false
	}
	pos, ok := coords.PositionAt(p)
	if !ok {
		return 0, false
	}

	line := doc.LineAt(pos)
	top, ok := coords.ExtentAt(line.From)
	if !ok {
		return 0, false
	}

	hasNext := line.Number < doc.LineCount()
	bottom := top.Top
	if end, ok := coords.ExtentAt(line.To); ok {
		bottom = end.Bottom
	} else if hasNext {
		if next, ok := coords.ExtentAt(doc.Line(line.Number + 1).From); ok {
			bottom = next.Top
		}
	}

	midpoint := (top.Top + bottom) / 2
	switch {
	case p.Y <= midpoint:
		return line.From, true
	case hasNext:
		return doc.Line(line.Number + 1).From, true
	default:
		return doc.Len(), true
	}
}
