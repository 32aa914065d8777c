// Package grapheme measures text in grapheme clusters and terminal cells.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a line laid out from cell 0.
type Cluster struct {
	Text string
	// Offset is the byte offset of the cluster within the line.
	Offset int
	// Cell is the first terminal cell the cluster occupies.
	Cell  int
	Width int
}

// Layout splits text into clusters with tab stops every tabWidth cells.
func Layout(text string, tabWidth int) []Cluster {
	if text == "" {
		return nil
	}
	out := make([]Cluster, 0, len(text))
	g := uniseg.NewGraphemes(text)
	cell := 0
	for g.Next() {
		from, _ := g.Positions()
		s := g.Str()
		w := CellWidth(s, cell, tabWidth)
		out = append(out, Cluster{Text: s, Offset: from, Cell: cell, Width: w})
		cell += w
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the cell width of text starting at cell 0.
func Width(text string, tabWidth int) int {
	w := 0
	for _, c := range Layout(text, tabWidth) {
		w += c.Width
	}
	return w
}

// CellWidth returns the cells one cluster occupies when drawn at cell.
func CellWidth(cluster string, cell, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - cell%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// OffsetAtCell returns the byte offset of the cluster drawn at cell. Cells
// past the end map to len(text).
func OffsetAtCell(text string, cell, tabWidth int) int {
	if cell <= 0 {
		return 0
	}
	for _, c := range Layout(text, tabWidth) {
		if cell < c.Cell+c.Width {
			return c.Offset
		}
	}
	return len(text)
}

// CellAtOffset returns the cell where the cluster containing offset starts.
func CellAtOffset(text string, offset, tabWidth int) int {
	cell := 0
	for _, c := range Layout(text, tabWidth) {
		if offset < c.Offset+len(c.Text) {
			return c.Cell
		}
		cell = c.Cell + c.Width
	}
	return cell
}

// Next returns the byte offset of the cluster boundary after offset.
func Next(text string, offset int) int {
	for _, c := range Layout(text, 1) {
		if c.Offset > offset {
			return c.Offset
		}
	}
	return len(text)
}

// Prev returns the byte offset of the cluster boundary before offset.
func Prev(text string, offset int) int {
	prev := 0
	for _, c := range Layout(text, 1) {
		if c.Offset >= offset {
			break
		}
		prev = c.Offset
	}
	return prev
}
