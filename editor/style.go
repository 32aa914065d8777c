package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	// Handle renders idle drag handles; HandleActive renders the handles of
	// the block being dragged.
	Handle       lipgloss.Style
	HandleActive lipgloss.Style
	// Indicator renders the drop marker in the handle column.
	Indicator lipgloss.Style

	Text       lipgloss.Style
	DragSource lipgloss.Style
	Cursor     lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	accent := lipgloss.Color("39")
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Handle:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		HandleActive:  lipgloss.NewStyle().Foreground(accent),
		Indicator:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Text:          lipgloss.NewStyle(),
		DragSource:    lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
