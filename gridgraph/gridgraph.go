package gridgraph

import (
	"github.com/katalvlaran/tilefold/tile"
	"github.com/katalvlaran/tilefold/tiling"
)

// conn4 and conn8 list neighbor directions in catalog order.
var (
	conn4 = []tile.Direction{tile.N, tile.E, tile.S, tile.W}
	conn8 = tile.Directions[:]
)

// NewTileGrid builds a TileGrid from row-major tiles, deep-copying the input.
// Returns ErrEmptyGrid if width < 1, ErrShape if len(tiles) != width²,
// ErrTileIndex if any tile is outside the catalog.
// Complexity: O(w²).
func NewTileGrid(width int, tiles []tile.Index) (*TileGrid, error) {
	if width < 1 {
		return nil, ErrEmptyGrid
	}
	if len(tiles) != width*width {
		return nil, ErrShape
	}
	cp := make([]tile.Index, len(tiles))
	for i, t := range tiles {
		if !t.Valid() {
			return nil, ErrTileIndex
		}
		cp[i] = t
	}
	return &TileGrid{Width: width, Tiles: cp}, nil
}

// FromWitness builds a TileGrid from a found witness.
// A witness without tiles yields ErrShape.
func FromWitness(w tiling.Witness) (*TileGrid, error) {
	return NewTileGrid(w.Width, w.Tiles)
}

// InBounds reports whether (x,y) lies within the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Width
}

// At returns the tile at column x, row y.
func (g *TileGrid) At(x, y int) tile.Index { return g.Tiles[g.index(x, y)] }

// index maps (x,y) to a row-major index: y*Width + x.
func (g *TileGrid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *TileGrid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// neighbor returns the index of the cell in direction d from idx, if any.
func (g *TileGrid) neighbor(idx int, d tile.Direction) (int, bool) {
	x, y := g.Coordinate(idx)
	dx, dy := tile.Offset(d)
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return 0, false
	}
	return g.index(nx, ny), true
}

func directions(c Connectivity) []tile.Direction {
	if c == Conn8 {
		return conn8
	}
	return conn4
}
