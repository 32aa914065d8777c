package drag

// BlockRange is an inclusive, 1-based range of lines that move as a unit.
type BlockRange struct {
	Start int
	End   int
}

// Len returns the number of lines in the range.
func (r BlockRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r BlockRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// Span returns the byte range the block covers in doc: from the start of
// its first line to the start of the line after it, or the end of the
// document when the block reaches the last line.
func (r BlockRange) Span(doc Document) Span {
	from := doc.Line(r.Start).From
	if r.End < doc.LineCount() {
		return Span{From: from, To: doc.Line(r.End + 1).From}
	}
	return Span{From: from, To: doc.Len()}
}

// Scanner decides, for each line after the anchor, whether it joins the
// block and whether scanning stops. A line that is not included always
// stops the scan.
type Scanner func(text string) (include, done bool)

// BlockRule recognizes anchor lines that open a multi-line block.
type BlockRule interface {
	Open(text string) (Scanner, bool)
}

// Resolver expands an anchor line into its block using the first rule that
// recognizes the anchor.
type Resolver struct {
	Rules []BlockRule
}

// DefaultRules returns heading sections followed by nested list items.
func DefaultRules() []BlockRule {
	return []BlockRule{HeadingRule{}, ListRule{TabWidth: 4}}
}

// NewResolver returns a Resolver over rules, or DefaultRules when none are
// given.
func NewResolver(rules ...BlockRule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Resolver{Rules: rules}
}

// Resolve returns the block anchored at line anchor (1-based, clamped).
func (r *Resolver) Resolve(doc Document, anchor int) BlockRange {
	total := doc.LineCount()
	if total < 1 {
		return BlockRange{Start: 1, End: 1}
	}
	anchor = clampInt(anchor, 1, total)
	block := BlockRange{Start: anchor, End: anchor}

	scan, ok := r.open(doc.Line(anchor).Text)
	if !ok {
		return block
	}
	for n := anchor + 1; n <= total; n++ {
		include, done := scan(doc.Line(n).Text)
		if include {
			block.End = n
		}
		if !include || done {
			break
		}
	}

	// The empty line after a trailing terminator is not content.
	if block.End > anchor && block.End == total && total > 1 && doc.Line(total).Text == "" {
		block.End--
	}
	return block
}

func (r *Resolver) open(text string) (Scanner, bool) {
	rules := r.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	for _, rule := range rules {
		if scan, ok := rule.Open(text); ok {
			return scan, true
		}
	}
	return nil, false
}

// ResolveBlock resolves with DefaultRules.
func ResolveBlock(doc Document, anchor int) BlockRange {
	return NewResolver().Resolve(doc, anchor)
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
