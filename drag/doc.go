// Package drag implements drag-to-reorder for line-oriented documents.
//
// A drag starts on a handle identifying a line by its start offset. The
// Resolver expands that line into the block of lines that move together,
// ResolveBoundary turns pointer positions into candidate line boundaries,
// and Reorder computes the new text and caret when the drop is committed.
// Session ties the three together for one gesture at a time.
//
// Nothing in this package renders or reads input devices: hosts supply a
// CoordinateMapper, a Renderer and a Surface.
package drag
