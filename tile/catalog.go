package tile

import "fmt"

// Count is the number of tiles in the catalog.
const Count = 36

// Zero is the all-zero tile (no crease leaves the vertex).
const Zero Index = 0

// Full is the all-one tile (creases in all eight directions).
const Full Index = Count - 1

// catalog[t][d] is the boundary bit of tile t in direction d.
// Rows are sorted lexicographically by their bit pattern.
var catalog = [Count][NumDirections]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 1},
	{0, 0, 1, 0, 0, 0, 1, 0}, {0, 0, 1, 0, 0, 1, 1, 1},
	{0, 0, 1, 0, 1, 1, 0, 1}, {0, 0, 1, 1, 1, 0, 0, 1},
	{0, 1, 0, 0, 0, 1, 0, 0}, {0, 1, 0, 0, 1, 0, 1, 1},
	{0, 1, 0, 0, 1, 1, 1, 0}, {0, 1, 0, 1, 0, 1, 0, 1},
	{0, 1, 0, 1, 1, 0, 1, 0}, {0, 1, 0, 1, 1, 1, 1, 1},
	{0, 1, 1, 0, 1, 0, 0, 1}, {0, 1, 1, 1, 0, 0, 1, 0},
	{0, 1, 1, 1, 0, 1, 1, 1}, {0, 1, 1, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 1, 0, 0, 0}, {1, 0, 0, 1, 0, 0, 1, 1},
	{1, 0, 0, 1, 0, 1, 1, 0}, {1, 0, 0, 1, 1, 1, 0, 0},
	{1, 0, 1, 0, 0, 1, 0, 1}, {1, 0, 1, 0, 1, 0, 1, 0},
	{1, 0, 1, 0, 1, 1, 1, 1}, {1, 0, 1, 1, 0, 1, 0, 0},
	{1, 0, 1, 1, 1, 0, 1, 1}, {1, 0, 1, 1, 1, 1, 1, 0},
	{1, 1, 0, 0, 1, 0, 0, 1}, {1, 1, 0, 1, 0, 0, 1, 0},
	{1, 1, 0, 1, 0, 1, 1, 1}, {1, 1, 0, 1, 1, 1, 0, 1},
	{1, 1, 1, 0, 0, 1, 0, 0}, {1, 1, 1, 0, 1, 0, 1, 1},
	{1, 1, 1, 0, 1, 1, 1, 0}, {1, 1, 1, 1, 0, 1, 0, 1},
	{1, 1, 1, 1, 1, 0, 1, 0}, {1, 1, 1, 1, 1, 1, 1, 1},
}

// Boundary returns 1 if a crease leaves tile t in direction d, else 0.
// It panics if t or d is out of range.
func Boundary(t Index, d Direction) uint8 {
	if !t.Valid() {
		panic(fmt.Sprintf("tile: index %d out of range [0,%d)", t, Count))
	}
	mustDirection(d)
	return catalog[t][d]
}

// Pattern returns the eight boundary bits of tile t in direction order.
func Pattern(t Index) [NumDirections]uint8 {
	if !t.Valid() {
		panic(fmt.Sprintf("tile: index %d out of range [0,%d)", t, Count))
	}
	return catalog[t]
}

// Catalog returns a copy of the whole table, indexed [tile][direction].
func Catalog() [Count][NumDirections]uint8 { return catalog }

// Degree returns the number of creases leaving tile t.
func Degree(t Index) int {
	n := 0
	for _, b := range Pattern(t) {
		n += int(b)
	}
	return n
}

// Lookup returns the tile whose pattern equals p, if any.
func Lookup(p [NumDirections]uint8) (Index, bool) {
	for t := range catalog {
		if catalog[t] == p {
			return Index(t), true
		}
	}
	return 0, false
}
