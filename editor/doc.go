// Package editor provides a Bubble Tea component that hosts drag-to-reorder
// over a buffer.
//
// The component renders a gutter with one drag handle per line, paints the
// dragged block and the drop indicator, maps terminal cells to buffer
// offsets, and routes mouse presses, motion and releases to a drag.Session.
// Keyboard block moves, caret movement and undo/redo are handled as well;
// text entry is left to hosts.
package editor
