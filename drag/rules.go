package drag

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	headingRE = regexp.MustCompile(`^(#{1,6})\s`)
	listRE    = regexp.MustCompile(`^(\s*)([-+*]|\d+[.)])\s`)
	fenceRE   = regexp.MustCompile("^\\s*(`{3,}|~{3,})")
)

// HeadingLevel returns the level of an ATX heading line.
func HeadingLevel(text string) (int, bool) {
	m := headingRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return len(m[1]), true
}

// HeadingRule captures a heading and everything up to the next heading of
// the same or a shallower level.
type HeadingRule struct{}

func (HeadingRule) Open(text string) (Scanner, bool) {
	level, ok := HeadingLevel(text)
	if !ok {
		return nil, false
	}
	return func(line string) (bool, bool) {
		if l, ok := HeadingLevel(line); ok && l <= level {
			return false, true
		}
		return true, false
	}, true
}

// ListRule captures a list item and the lines indented deeper than it.
// Blank lines continue the item.
type ListRule struct {
	// TabWidth is the indentation a tab counts for; zero means 4.
	TabWidth int
}

func (r ListRule) Open(text string) (Scanner, bool) {
	m := listRE.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	base := Indentation(m[1], r.tabWidth())
	return func(line string) (bool, bool) {
		if strings.TrimSpace(line) == "" {
			return true, false
		}
		if Indentation(line, r.tabWidth()) <= base {
			return false, true
		}
		return true, false
	}, true
}

func (r ListRule) tabWidth() int {
	if r.TabWidth <= 0 {
		return 4
	}
	return r.TabWidth
}

// Indentation measures the leading whitespace of text. Tabs count as
// tabWidth, spaces as one; other whitespace counts zero.
func Indentation(text string, tabWidth int) int {
	n := 0
	for _, r := range text {
		switch {
		case r == '\t':
			n += tabWidth
		case r == ' ':
			n++
		case unicode.IsSpace(r):
		default:
			return n
		}
	}
	return n
}

// FenceRule captures a fenced code block through its closing fence. A fence
// left open runs to the end of the document.
type FenceRule struct{}

func (FenceRule) Open(text string) (Scanner, bool) {
	m := fenceRE.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	marker := m[1]
	return func(line string) (bool, bool) {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= len(marker) && strings.Trim(trimmed, marker[:1]) == "" {
			return true, true
		}
		return true, false
	}, true
}

// BlockquoteRule captures consecutive quoted lines.
type BlockquoteRule struct{}

func (BlockquoteRule) Open(text string) (Scanner, bool) {
	if !isQuote(text) {
		return nil, false
	}
	return func(line string) (bool, bool) {
		if isQuote(line) {
			return true, false
		}
		return false, true
	}, true
}

func isQuote(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " "), ">")
}
