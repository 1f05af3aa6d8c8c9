package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/tile"
)

// Conflicts returns every neighboring pair whose shared boundary differs,
// each pair reported once from the cell with the smaller index.
// Boundaries facing outside the grid are unconstrained.
// Complexity: O(w²·8).
func (g *TileGrid) Conflicts() []Conflict {
	var out []Conflict
	for u, tu := range g.Tiles {
		for _, d := range conn8 {
			v, ok := g.neighbor(u, d)
			if !ok || v < u {
				continue
			}
			got := tile.Boundary(tu, d)
			want := tile.Boundary(g.Tiles[v], tile.Opposite(d))
			if got != want {
				out = append(out, Conflict{Cell: u, Neighbor: v, Dir: d, Got: got, Want: want})
			}
		}
	}
	return out
}

// Validate checks the grid for conflicts and, if mask is non-nil, that every
// tile is allowed at its cell. It returns nil for a consistent tiling.
func (g *TileGrid) Validate(mask *constraint.Snapshot) error {
	if c := g.Conflicts(); len(c) > 0 {
		return fmt.Errorf("%w: %s", ErrConflict, c[0])
	}
	if mask == nil {
		return nil
	}
	if mask.Width() != g.Width {
		return fmt.Errorf("%w: %d vs %d", ErrWidthMismatch, mask.Width(), g.Width)
	}
	for i, t := range g.Tiles {
		if !mask.IsAllowed(i, t) {
			return fmt.Errorf("%w: tile %d at cell %d", ErrDisallowed, t, i)
		}
	}
	return nil
}
