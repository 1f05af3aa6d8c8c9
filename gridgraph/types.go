package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilefold/tile"
)

// Connectivity selects which boundaries join cells: orthogonal only (Conn4)
// or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 follows N, E, S, W boundaries.
	Conn4 Connectivity = iota
	// Conn8 follows all eight boundaries.
	Conn8
)

// Conflict describes one disagreement between neighboring cells.
type Conflict struct {
	Cell     int            // row-major index of the first cell
	Neighbor int            // row-major index of the cell in direction Dir
	Dir      tile.Direction // direction from Cell to Neighbor
	Got      uint8          // Cell's boundary value in Dir
	Want     uint8          // Neighbor's boundary value in Opposite(Dir)
}

func (c Conflict) String() string {
	return fmt.Sprintf("cell %d %s=%d, cell %d %s=%d",
		c.Cell, c.Dir, c.Got, c.Neighbor, tile.Opposite(c.Dir), c.Want)
}

// TileGrid is a w×w tiling. It is immutable once built.
// Tiles holds the tile at (x,y) at index y*Width+x.
type TileGrid struct {
	Width int
	Tiles []tile.Index
}
