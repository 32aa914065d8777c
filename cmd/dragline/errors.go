package main

import "errors"

var (
	// ErrInvalidLine is returned for a line number outside the document.
	ErrInvalidLine = errors.New("line out of range")
	// ErrNoBoundary is returned when the target lies inside the moved block.
	ErrNoBoundary = errors.New("target is inside the block")
	// ErrNoOp is returned when the move would leave the document unchanged.
	ErrNoOp = errors.New("move leaves the document unchanged")
	// ErrMixedLineEndings is returned by move --write for files that mix
	// terminators, unless --normalize is set.
	ErrMixedLineEndings = errors.New("file mixes line terminators")
)
