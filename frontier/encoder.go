package frontier

import (
	"fmt"

	"github.com/katalvlaran/tilefold/tile"
)

// State is a frontier word. Only the low Encoder.Bits() bits are meaningful.
type State uint64

// maxBits keeps 1<<Bits representable as a State.
const maxBits = 63

// Encoder maps frontier slots to bit positions for one grid width.
// It is a small value type and safe for concurrent use.
type Encoder struct {
	width int
	bits  int
}

// NewEncoder returns the encoder for a width×width grid.
func NewEncoder(width int) (Encoder, error) {
	if width < 1 {
		return Encoder{}, ErrInvalidWidth
	}
	bits := 3*width - 1
	if bits > maxBits {
		return Encoder{}, fmt.Errorf("%w: width %d needs %d bits", ErrTooWide, width, bits)
	}
	return Encoder{width: width, bits: bits}, nil
}

// Width returns the grid width.
func (e Encoder) Width() int { return e.width }

// Bits returns the number of meaningful frontier bits, 3w−1.
func (e Encoder) Bits() int { return e.bits }

// Size returns the number of distinct frontier states, 2^(3w−1).
func (e Encoder) Size() uint64 { return 1 << e.bits }

// Mask returns a State with every meaningful bit set.
func (e Encoder) Mask() State { return State(e.Size() - 1) }

// Carry returns the slot holding the SE bit of the most recently placed
// cell, 3w−2.
func (e Encoder) Carry() int { return e.bits - 1 }

// Index returns the bit position of the edge leaving column x in direction d.
//
// The incoming directions N, NE, NW and W are the slots read when a cell is
// approached; E, SW, S and SE are the slots written after a tile is placed,
// and alias the incoming slot of the neighbour that will read them. Results
// saturate into [0, 3w−2] at the left and right grid edges.
func (e Encoder) Index(d tile.Direction, x int) int {
	switch d {
	case tile.N, tile.S:
		return 3 * x
	case tile.NE:
		return min(3*x+1, 3*e.width-3)
	case tile.NW:
		return max(3*x-1, 0)
	case tile.W:
		return max(3*x-2, 0)
	case tile.E:
		return min(e.Index(tile.W, x+1), e.Carry())
	case tile.SW:
		return max(e.Index(tile.NE, x-1), 0)
	case tile.SE:
		return e.Carry()
	}
	panic(fmt.Sprintf("frontier: direction %d out of range", int(d)))
}

// Bit returns bit i of s.
func (Encoder) Bit(s State, i int) uint8 {
	return uint8(s>>uint(i)) & 1
}

// SetBit returns s with bit i set to v (0 or 1).
func (Encoder) SetBit(s State, i int, v uint8) State {
	return s&^(1<<uint(i)) | State(v&1)<<uint(i)
}
