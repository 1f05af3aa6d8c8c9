package constraint

import "errors"

var (
	// ErrInvalidWidth indicates a grid width below 1.
	ErrInvalidWidth = errors.New("constraint: width must be at least 1")
	// ErrShape indicates a pre-crease array whose length is not width².
	ErrShape = errors.New("constraint: pre-crease array must have width*width entries")
	// ErrEdgeValue indicates a pre-crease entry other than -1, 0 or 1.
	ErrEdgeValue = errors.New("constraint: pre-crease values must be -1, 0 or 1")
	// ErrCellRange indicates a cell index outside [0, width²).
	ErrCellRange = errors.New("constraint: cell index out of range")
	// ErrTileRange indicates a tile index outside the catalog.
	ErrTileRange = errors.New("constraint: tile index out of range")
	// ErrFrozen indicates a write after Freeze.
	ErrFrozen = errors.New("constraint: mask is frozen")
)
