package drag

// Direction is a keyboard move direction.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Step moves the block anchored at line anchor past one neighbouring line
// in dir. It returns the block it moved with the reorder result; ok is
// false at the document edges and on the empty line after a trailing
// terminator.
func (r *Resolver) Step(doc Document, anchor int, dir Direction) (BlockRange, Result, bool) {
	block := r.Resolve(doc, anchor)
	total := doc.LineCount()
	if total > 1 && doc.Line(total).Text == "" {
		total--
	}
	if block.Start > total {
		return block, Result{}, false
	}

	var boundary int
	switch dir {
	case Up:
		if block.Start <= 1 {
			return block, Result{}, false
		}
		boundary = doc.Line(block.Start - 1).From
	default:
		if block.End >= total {
			return block, Result{}, false
		}
		if block.End+2 <= doc.LineCount() {
			boundary = doc.Line(block.End + 2).From
		} else {
			boundary = doc.Len()
		}
	}

	res, ok := Reorder(doc, block, boundary)
	return block, res, ok
}
