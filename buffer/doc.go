// Package buffer implements the pure, line-oriented document model for dragline.
//
// Lines are numbered from 1. Offsets are byte offsets into the document
// text; a line's To offset excludes its terminator. The document always has
// at least one line: the empty document is a single empty line, and a
// trailing terminator yields a final empty line.
package buffer
