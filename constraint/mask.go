package constraint

import (
	"fmt"

	"github.com/katalvlaran/tilefold/tile"
)

// allowSet is a 36-bit set of tile indices; bit t set means tile t allowed.
type allowSet uint64

const allTiles allowSet = 1<<tile.Count - 1

func (s allowSet) has(t tile.Index) bool { return s&(1<<t) != 0 }

// Mask records, for every cell of a width×width grid, the tiles that may be
// placed there. The zero value is not usable; construct with NewMask or
// FromPreCrease. A Mask is not safe for concurrent writes.
type Mask struct {
	width  int
	cells  []allowSet
	frozen bool
}

// NewMask returns a mask for a width×width grid with every tile allowed.
func NewMask(width int) (*Mask, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	cells := make([]allowSet, width*width)
	for i := range cells {
		cells[i] = allTiles
	}
	return &Mask{width: width, cells: cells}, nil
}

// FromPreCrease compiles per-cell partial edge assignments into a Mask.
// edges must hold width² entries in row-major cell order.
func FromPreCrease(width int, edges []tile.Edges) (*Mask, error) {
	m, err := NewMask(width)
	if err != nil {
		return nil, err
	}
	if len(edges) != width*width {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShape, len(edges), width*width)
	}
	for cell, e := range edges {
		if !e.Valid() {
			return nil, fmt.Errorf("%w: cell %d has %v", ErrEdgeValue, cell, e)
		}
		var s allowSet
		for t := tile.Index(0); t < tile.Count; t++ {
			if e.Admits(t) {
				s |= 1 << t
			}
		}
		m.cells[cell] = s
	}
	return m, nil
}

// Width returns the grid width.
func (m *Mask) Width() int { return m.width }

// SetAllowed allows or forbids tile t at cell.
func (m *Mask) SetAllowed(cell int, t tile.Index, allowed bool) error {
	if m.frozen {
		return ErrFrozen
	}
	if cell < 0 || cell >= len(m.cells) {
		return fmt.Errorf("%w: %d", ErrCellRange, cell)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrTileRange, t)
	}
	if allowed {
		m.cells[cell] |= 1 << t
	} else {
		m.cells[cell] &^= 1 << t
	}
	return nil
}

// Restrict narrows cell to exactly the given tiles.
func (m *Mask) Restrict(cell int, tiles ...tile.Index) error {
	for t := tile.Index(0); t < tile.Count; t++ {
		if err := m.SetAllowed(cell, t, false); err != nil {
			return err
		}
	}
	for _, t := range tiles {
		if err := m.SetAllowed(cell, t, true); err != nil {
			return err
		}
	}
	return nil
}

// IsAllowed reports whether tile t may be placed at cell. Out-of-range
// arguments report false.
func (m *Mask) IsAllowed(cell int, t tile.Index) bool {
	if cell < 0 || cell >= len(m.cells) || !t.Valid() {
		return false
	}
	return m.cells[cell].has(t)
}

// Freeze takes an immutable snapshot and locks the mask against writes.
// Calling Freeze again returns an equal snapshot.
func (m *Mask) Freeze() *Snapshot {
	m.frozen = true
	cells := make([]allowSet, len(m.cells))
	copy(cells, m.cells)
	return &Snapshot{width: m.width, cells: cells}
}

// Snapshot is the read-only view of a Mask used during a search.
// It is safe for concurrent use.
type Snapshot struct {
	width int
	cells []allowSet
}

// Unconstrained returns a snapshot allowing every tile on a width×width grid.
func Unconstrained(width int) (*Snapshot, error) {
	m, err := NewMask(width)
	if err != nil {
		return nil, err
	}
	return m.Freeze(), nil
}

// Width returns the grid width.
func (s *Snapshot) Width() int { return s.width }

// Cells returns width².
func (s *Snapshot) Cells() int { return len(s.cells) }

// IsAllowed reports whether tile t may be placed at cell.
func (s *Snapshot) IsAllowed(cell int, t tile.Index) bool {
	return s.cells[cell].has(t)
}

// Allowed returns the number of tiles allowed at cell.
func (s *Snapshot) Allowed(cell int) int {
	n := 0
	for t := tile.Index(0); t < tile.Count; t++ {
		if s.cells[cell].has(t) {
			n++
		}
	}
	return n
}

// EmptyCell returns the first cell that allows no tile, or -1.
func (s *Snapshot) EmptyCell() int {
	for i, c := range s.cells {
		if c == 0 {
			return i
		}
	}
	return -1
}
