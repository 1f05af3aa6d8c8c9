package rim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilefold/rim"
	"github.com/katalvlaran/tilefold/tile"
	"github.com/katalvlaran/tilefold/tiling"
)

// repeat builds a ring whose sides all carry the same folds; side[0] is the
// corner slot and is ignored by PreCrease.
func repeat(side ...int) []int {
	var ring []int
	for i := 0; i < 4; i++ {
		ring = append(ring, side...)
	}
	return ring
}

// TestPreCrease_Errors verifies input validation.
func TestPreCrease_Errors(t *testing.T) {
	cases := []struct {
		name  string
		width int
		folds []int
		err   error
	}{
		{"ZeroWidth", 0, repeat(0), rim.ErrInvalidWidth},
		{"EmptyRing", 2, nil, rim.ErrRingLength},
		{"ShortRing", 2, repeat(0, 0), rim.ErrRingLength},
		{"Negative", 1, repeat(0, -1), rim.ErrFoldValue},
		{"TooLarge", 1, repeat(0, 8), rim.ErrFoldValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rim.PreCrease(tc.width, tc.folds)
			assert.ErrorIs(t, err, tc.err)
			_, err = rim.Corners(tc.width, tc.folds)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSize checks the ring length.
func TestSize(t *testing.T) {
	assert.Equal(t, 8, rim.Size(1))
	assert.Equal(t, 32, rim.Size(7))
}

// TestPreCrease_CornerCells checks that the outward diagonal of every
// corner cell is forced to 0 and the other ring-facing edges follow folds.
func TestPreCrease_CornerCells(t *testing.T) {
	edges, err := rim.PreCrease(2, repeat(0, 0, 0))
	require.NoError(t, err)
	require.Len(t, edges, 4)

	u := tile.Unknown
	want := []tile.Edges{
		{0, 0, u, u, u, 0, 0, 0},
		{0, 0, 0, 0, u, u, u, 0},
		{u, u, u, 0, 0, 0, 0, 0},
		{u, 0, 0, 0, 0, 0, u, u},
	}
	assert.Equal(t, want, edges)
}

// TestPreCrease_Bits checks which fold bit lands on which cell edge.
func TestPreCrease_Bits(t *testing.T) {
	edges, err := rim.PreCrease(2, repeat(0, 1, 4))
	require.NoError(t, err)

	u := tile.Unknown
	want := []tile.Edges{
		{0, 1, u, u, u, 1, 0, 0},
		{0, 0, 0, 1, u, u, u, 1},
		{u, u, u, 1, 0, 0, 0, 1},
		{u, 1, 0, 0, 0, 1, u, u},
	}
	assert.Equal(t, want, edges)
}

// TestPreCrease_SingleCell checks w=1, where every ring side touches cell 0.
func TestPreCrease_SingleCell(t *testing.T) {
	edges, err := rim.PreCrease(1, repeat(0, 6))
	require.NoError(t, err)
	assert.Equal(t, []tile.Edges{{1, 0, 1, 0, 1, 0, 1, 0}}, edges)
}

// TestCorners reads bit 2 of the first vertex on each side.
func TestCorners(t *testing.T) {
	c, err := rim.Corners(1, repeat(0, 6))
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{1, 1, 1, 1}, c)

	c, err = rim.Corners(2, []int{0, 4, 0, 0, 1, 7, 0, 5, 0, 0, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{1, 0, 1, 0}, c)
}

// TestMask_Solve runs the compiled mask through the solver; each ring below
// forces a unique tiling.
func TestMask_Solve(t *testing.T) {
	cases := []struct {
		name  string
		width int
		folds []int
		want  string
	}{
		{"Cross", 1, repeat(0, 6), "21"},
		{"Flat", 2, repeat(0, 0, 0), "00000000"},
		{"Lattice", 2, repeat(0, 2, 2), "21212121"},
		{"Diamond", 2, repeat(0, 1, 4), "06010106"},
		{"FlatThree", 3, repeat(0, 0, 0, 0), "000000000000000000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := rim.Mask(tc.width, tc.folds)
			require.NoError(t, err)
			s, err := tiling.New(m.Freeze(), tiling.WithWorkers(2))
			require.NoError(t, err)

			n, err := s.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, uint64(1), n)

			w, err := s.Witness(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.String())
		})
	}
}
