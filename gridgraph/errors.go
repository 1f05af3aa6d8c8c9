package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a width below 1.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one cell")
	// ErrShape indicates the tile slice does not hold width*width entries.
	ErrShape = errors.New("gridgraph: tile count must equal width*width")
	// ErrTileIndex indicates a tile index outside the catalog.
	ErrTileIndex = errors.New("gridgraph: tile index out of range")
	// ErrConflict indicates two neighboring cells disagree on their shared boundary.
	ErrConflict = errors.New("gridgraph: neighboring tiles disagree")
	// ErrDisallowed indicates a placed tile is excluded by the constraint snapshot.
	ErrDisallowed = errors.New("gridgraph: tile not allowed at cell")
	// ErrWidthMismatch indicates the snapshot and the grid have different widths.
	ErrWidthMismatch = errors.New("gridgraph: snapshot width differs from grid width")
)
