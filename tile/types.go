package tile

import "fmt"

// Direction is one of the eight compass directions around a vertex.
// The numeric order is N, NE, E, SE, S, SW, W, NW (clockwise from north)
// and matches the column order of the catalog.
type Direction int

const (
	// N points to the cell above (y-1).
	N Direction = iota
	// NE points to the upper-right cell.
	NE
	// E points to the cell on the right (x+1).
	E
	// SE points to the lower-right cell.
	SE
	// S points to the cell below (y+1).
	S
	// SW points to the lower-left cell.
	SW
	// W points to the cell on the left (x-1).
	W
	// NW points to the upper-left cell.
	NW
)

// NumDirections is the number of compass directions per tile.
const NumDirections = 8

// Directions lists all directions in catalog order.
var Directions = [NumDirections]Direction{N, NE, E, SE, S, SW, W, NW}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// offsets[d] is the (dx, dy) step for direction d; north is -y.
var offsets = [NumDirections][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Valid reports whether d is one of the eight directions.
func (d Direction) Valid() bool {
	return d >= N && d <= NW
}

// String returns the compass abbreviation ("N", "NE", ...).
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back, e.g. Opposite(NE) == SW.
func Opposite(d Direction) Direction {
	mustDirection(d)
	return (d + 4) % NumDirections
}

// Offset returns the grid step (dx, dy) of d.
func Offset(d Direction) (dx, dy int) {
	mustDirection(d)
	return offsets[d][0], offsets[d][1]
}

// Index identifies a tile of the catalog, 0 ≤ Index < Count.
type Index uint8

// Valid reports whether t names a catalog tile.
func (t Index) Valid() bool {
	return int(t) < Count
}

// Unknown marks an unconstrained direction in an Edges assignment.
const Unknown int8 = -1

// Edges is a partial assignment of the eight boundary bits of one vertex:
// each entry is Unknown, 0 or 1.
type Edges [NumDirections]int8

// Unconstrained returns an Edges value with every direction Unknown.
func Unconstrained() Edges {
	return Edges{Unknown, Unknown, Unknown, Unknown, Unknown, Unknown, Unknown, Unknown}
}

// Valid reports whether every entry is Unknown, 0 or 1.
func (e Edges) Valid() bool {
	for _, v := range e {
		if v != Unknown && v != 0 && v != 1 {
			return false
		}
	}
	return true
}

// Admits reports whether tile t agrees with every constrained direction of e.
func (e Edges) Admits(t Index) bool {
	for d, v := range e {
		if v == Unknown {
			continue
		}
		if uint8(v) != Boundary(t, Direction(d)) {
			return false
		}
	}
	return true
}

func mustDirection(d Direction) {
	if !d.Valid() {
		panic(fmt.Sprintf("tile: direction %d out of range", int(d)))
	}
}
