package frontier

import (
	"fmt"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/tile"
)

// Checker decides and applies tile placements for one grid width under one
// constraint snapshot. It holds no mutable state and is safe for concurrent use.
type Checker struct {
	enc  Encoder
	mask *constraint.Snapshot
}

// NewChecker binds an encoder to a constraint snapshot of the same width.
func NewChecker(enc Encoder, mask *constraint.Snapshot) (*Checker, error) {
	if mask == nil || mask.Width() != enc.Width() {
		return nil, ErrWidthMismatch
	}
	return &Checker{enc: enc, mask: mask}, nil
}

// Encoder returns the checker's encoder.
func (c *Checker) Encoder() Encoder { return c.enc }

// incoming lists the directions compared against the frontier, in check order.
var incoming = [4]tile.Direction{tile.W, tile.NW, tile.N, tile.NE}

// CanPlace reports whether tile t may be placed at cell given frontier s.
//
// The constraint snapshot is consulted first. Then each load-bearing
// incoming direction must match the frontier bit: the top row has no N, NE
// or NW neighbour, column 0 has no W or NW neighbour and the last column has
// no NE neighbour.
func (c *Checker) CanPlace(cell int, t tile.Index, s State) bool {
	if !c.mask.IsAllowed(cell, t) {
		return false
	}
	w := c.enc.width
	x, y := cell%w, cell/w
	for _, d := range incoming {
		if !loadBearing(d, x, y, w) {
			continue
		}
		if tile.Boundary(t, d) != c.enc.Bit(s, c.enc.Index(d, x)) {
			return false
		}
	}
	return true
}

func loadBearing(d tile.Direction, x, y, w int) bool {
	switch d {
	case tile.W:
		return x > 0
	case tile.NW:
		return x > 0 && y > 0
	case tile.N:
		return y > 0
	case tile.NE:
		return x < w-1 && y > 0
	}
	panic(fmt.Sprintf("frontier: %s is not an incoming direction", d))
}

// Advance returns the frontier after placing tile t at cell on state s.
//
// The SE bit carried from the previous cell moves into this cell's NW slot,
// where the next row reads it. Then E, SW, S and SE are written for the
// right, lower-left, lower and lower-right neighbours; columns at the grid
// edges skip the writes that have no neighbour.
func (c *Checker) Advance(cell int, t tile.Index, s State) State {
	e := c.enc
	w := e.width
	x := cell % w
	p := tile.Pattern(t)

	next := e.SetBit(s, e.Index(tile.NW, x), e.Bit(s, e.Carry()))
	if x < w-1 {
		next = e.SetBit(next, e.Index(tile.E, x), p[tile.E])
	}
	if x > 0 {
		next = e.SetBit(next, e.Index(tile.SW, x), p[tile.SW])
	}
	next = e.SetBit(next, e.Index(tile.S, x), p[tile.S])
	if x < w-1 {
		next = e.SetBit(next, e.Carry(), p[tile.SE])
	}
	return next & e.Mask()
}
