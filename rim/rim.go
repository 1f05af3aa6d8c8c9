package rim

import (
	"fmt"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/tile"
)

// EdgesPerVertex is the number of inward edges of a non-corner ring vertex.
const EdgesPerVertex = 3

// MaxFold is the largest fold value.
const MaxFold = 1<<EdgesPerVertex - 1

// inward[side] lists the inward edge directions of a ring vertex on side.
var inward = [4][EdgesPerVertex]tile.Direction{
	{tile.SE, tile.S, tile.SW}, // top
	{tile.SW, tile.W, tile.NW}, // right
	{tile.NW, tile.N, tile.NE}, // bottom
	{tile.NE, tile.E, tile.SE}, // left
}

// Size returns the number of ring vertices around a width×width grid.
func Size(width int) int { return 4 * (width + 1) }

// position returns the ring coordinates of vertex out. Cells sit at ring
// coordinates 1..width in both axes.
func position(width, out int) (x, y int) {
	n := width + 1
	side, mod := out/n, out%n
	switch side {
	case 0:
		return mod, 0
	case 1:
		return n, mod
	case 2:
		return n - mod, n
	}
	return 0, n - mod
}

func check(width int, folds []int) error {
	if width < 1 {
		return ErrInvalidWidth
	}
	if len(folds) != Size(width) {
		return fmt.Errorf("%w: got %d, want %d", ErrRingLength, len(folds), Size(width))
	}
	for i, f := range folds {
		if f < 0 || f > MaxFold {
			return fmt.Errorf("%w: vertex %d has %d", ErrFoldValue, i, f)
		}
	}
	return nil
}

// PreCrease converts ring folds into width² per-cell edge assignments.
// Directions not reached by any ring edge stay tile.Unknown.
func PreCrease(width int, folds []int) ([]tile.Edges, error) {
	if err := check(width, folds); err != nil {
		return nil, err
	}
	edges := make([]tile.Edges, width*width)
	for i := range edges {
		edges[i] = tile.Unconstrained()
	}
	last := width - 1
	edges[0][tile.NW] = 0
	edges[last][tile.NE] = 0
	edges[width*last][tile.SW] = 0
	edges[width*width-1][tile.SE] = 0

	n := width + 1
	for out, f := range folds {
		if out%n == 0 {
			continue
		}
		rx, ry := position(width, out)
		for j, d := range inward[out/n] {
			dx, dy := tile.Offset(d)
			x, y := rx-1+dx, ry-1+dy
			if x < 0 || x > last || y < 0 || y > last {
				continue
			}
			edges[x+y*width][tile.Opposite(d)] = int8(f >> j & 1)
		}
	}
	return edges, nil
}

// Mask compiles ring folds directly into a constraint mask.
func Mask(width int, folds []int) (*constraint.Mask, error) {
	edges, err := PreCrease(width, folds)
	if err != nil {
		return nil, err
	}
	return constraint.FromPreCrease(width, edges)
}

// Corners returns the corner value of each side: bit 2 of the first
// non-corner vertex on that side, in side order top, right, bottom, left.
func Corners(width int, folds []int) ([4]uint8, error) {
	var c [4]uint8
	if err := check(width, folds); err != nil {
		return c, err
	}
	for i := range c {
		c[i] = uint8(folds[i*(width+1)+1] >> 2 & 1)
	}
	return c, nil
}
