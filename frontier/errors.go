package frontier

import "errors"

var (
	// ErrInvalidWidth indicates a grid width below 1.
	ErrInvalidWidth = errors.New("frontier: width must be at least 1")
	// ErrTooWide indicates a frontier that does not fit in a 64-bit State.
	ErrTooWide = errors.New("frontier: 3*width-1 exceeds 63 bits")
	// ErrWidthMismatch indicates a constraint snapshot built for another width.
	ErrWidthMismatch = errors.New("frontier: constraint width differs from encoder width")
)
