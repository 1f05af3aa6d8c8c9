package gridgraph

import (
	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/tile"
)

// earlier lists the directions of neighbors placed before a cell in
// row-major order.
var earlier = [4]tile.Direction{tile.W, tile.NW, tile.N, tile.NE}

// CountTilings counts consistent tilings allowed by mask with a plain
// depth-first search over cells in row-major order. Each placement is checked
// against the already placed W, NW, N and NE neighbors.
//
// It serves as a reference for small widths; the count grows as 36^(w²)
// in the worst case. The count wraps modulo 2⁶⁴.
func CountTilings(mask *constraint.Snapshot) uint64 {
	w := mask.Width()
	g := &TileGrid{Width: w, Tiles: make([]tile.Index, w*w)}
	return g.place(mask, 0)
}

func (g *TileGrid) place(mask *constraint.Snapshot, cell int) uint64 {
	if cell == len(g.Tiles) {
		return 1
	}
	var n uint64
	for t := tile.Index(0); t < tile.Count; t++ {
		if !mask.IsAllowed(cell, t) || !g.fits(cell, t) {
			continue
		}
		g.Tiles[cell] = t
		n += g.place(mask, cell+1)
	}
	return n
}

func (g *TileGrid) fits(cell int, t tile.Index) bool {
	for _, d := range earlier {
		v, ok := g.neighbor(cell, d)
		if !ok {
			continue
		}
		if tile.Boundary(t, d) != tile.Boundary(g.Tiles[v], tile.Opposite(d)) {
			return false
		}
	}
	return true
}
