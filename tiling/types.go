package tiling

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/tilefold/tile"
)

// Sentinel errors for tiling operations.
var (
	// ErrNilMask indicates New was called without a constraint snapshot.
	ErrNilMask = errors.New("tiling: constraint snapshot is nil")
	// ErrStateSpaceTooLarge indicates 3w−1 exceeds the configured bit ceiling.
	ErrStateSpaceTooLarge = errors.New("tiling: frontier state space exceeds the configured ceiling")
	// ErrBudgetExceeded indicates a step left more live states than allowed.
	ErrBudgetExceeded = errors.New("tiling: live state budget exceeded")
	// ErrCanceled indicates the context ended before the sweep finished.
	ErrCanceled = errors.New("tiling: search canceled")
	// ErrUnknownMode indicates a Mode outside the three result modes.
	ErrUnknownMode = errors.New("tiling: unknown result mode")
)

// NoSolution is the witness string reported when no tiling exists.
const NoSolution = "No CP"

// Mode selects what the sweep aggregates per frontier state.
type Mode int

const (
	// ModeCount sums the number of partial tilings reaching each state.
	ModeCount Mode = iota
	// ModeExists records only whether a state is reachable.
	ModeExists
	// ModeWitness keeps one partial tiling (certificate) per state.
	ModeWitness
)

// String returns "count", "exists" or "witness".
func (m Mode) String() string {
	switch m {
	case ModeCount:
		return "count"
	case ModeExists:
		return "exists"
	case ModeWitness:
		return "witness"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Witness is a complete tiling proving that one exists.
type Witness struct {
	// Width is the grid width.
	Width int
	// Tiles holds w² tile indices in row-major order; nil if none was found.
	Tiles []tile.Index
	// Corners carries the four ring-corner values supplied with WithCorners.
	Corners [4]uint8
}

// Found reports whether the witness holds a tiling.
func (w Witness) Found() bool { return w.Tiles != nil }

// At returns the tile placed at column x, row y.
func (w Witness) At(x, y int) tile.Index { return w.Tiles[y*w.Width+x] }

// String encodes the tiling as two decimal digits per cell, or NoSolution.
func (w Witness) String() string {
	if !w.Found() {
		return NoSolution
	}
	var sb strings.Builder
	sb.Grow(2 * len(w.Tiles))
	for _, t := range w.Tiles {
		fmt.Fprintf(&sb, "%02d", t)
	}
	return sb.String()
}

// Stats describes one sweep.
type Stats struct {
	// Cells is the number of cells swept.
	Cells int
	// PeakLive is the largest number of reachable states after any cell.
	PeakLive int
	// Expansions counts successful (state, tile) placements.
	Expansions uint64
	// ExhaustedAt is the first cell after which no state was reachable, or -1.
	ExhaustedAt int
	// Elapsed is the wall-clock duration of the sweep.
	Elapsed time.Duration
}

// Result is produced once per Run. Only the field matching Mode is set.
type Result struct {
	Mode    Mode
	Count   uint64
	Exists  bool
	Witness Witness
	Stats   Stats
}
