package tiling_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/gridgraph"
	"github.com/katalvlaran/tilefold/tile"
	"github.com/katalvlaran/tilefold/tiling"
)

// unconstrained returns an all-allowed snapshot or fails the test.
func unconstrained(t testing.TB, w int) *constraint.Snapshot {
	t.Helper()
	snap, err := constraint.Unconstrained(w)
	require.NoError(t, err)
	return snap
}

// flatCorner pins cell 0 to the flat tile and forces the edges its
// neighbors share with it to 0.
func flatCorner(t testing.TB, w int) *constraint.Snapshot {
	t.Helper()
	edges := make([]tile.Edges, w*w)
	for i := range edges {
		edges[i] = tile.Unconstrained()
	}
	edges[0] = tile.Edges{}
	edges[1][tile.W] = 0
	edges[w][tile.N] = 0
	edges[w+1][tile.NW] = 0
	m, err := constraint.FromPreCrease(w, edges)
	require.NoError(t, err)
	return m.Freeze()
}

func newSolver(t testing.TB, snap *constraint.Snapshot, opts ...tiling.Option) *tiling.Solver {
	t.Helper()
	s, err := tiling.New(snap, opts...)
	require.NoError(t, err)
	return s
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies configuration errors surface before any sweep.
func TestNew_Errors(t *testing.T) {
	_, err := tiling.New(nil)
	assert.ErrorIs(t, err, tiling.ErrNilMask)

	_, err = tiling.New(unconstrained(t, 8))
	assert.ErrorIs(t, err, tiling.ErrStateSpaceTooLarge)

	_, err = tiling.New(unconstrained(t, 2), tiling.WithMaxBits(4))
	assert.ErrorIs(t, err, tiling.ErrStateSpaceTooLarge)

	s, err := tiling.New(unconstrained(t, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, s.Width())
}

// TestOptions_Panics checks that nonsensical option values panic.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { tiling.WithWorkers(0) })
	assert.Panics(t, func() { tiling.WithMaxBits(0) })
	assert.Panics(t, func() { tiling.WithMaxBits(64) })
	assert.Panics(t, func() { tiling.WithMaxLiveStates(-1) })
	assert.Panics(t, func() { tiling.WithLogger(nil) })
	assert.Panics(t, func() { tiling.WithTracerProvider(nil) })
}

// TestMode_String covers the mode names.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "count", tiling.ModeCount.String())
	assert.Equal(t, "exists", tiling.ModeExists.String())
	assert.Equal(t, "witness", tiling.ModeWitness.String())
	assert.Equal(t, "Mode(7)", tiling.Mode(7).String())
}

//----------------------------------------------------------------------------//
// Counting
//----------------------------------------------------------------------------//

// TestCount_Unconstrained pins the totals for small widths across worker counts.
func TestCount_Unconstrained(t *testing.T) {
	cases := []struct {
		width int
		want  uint64
	}{
		{1, 36},
		{2, 28288},
		{3, 129683456},
		{4, 3572283867136},
		{5, 600667225001558016},
	}
	for _, tc := range cases {
		for _, workers := range []int{1, 3, 8} {
			s := newSolver(t, unconstrained(t, tc.width), tiling.WithWorkers(workers))
			n, err := s.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, n, "w=%d workers=%d", tc.width, workers)
		}
	}
}

// TestCount_PreCrease covers a single-cell pre-crease and a fully flat grid.
func TestCount_PreCrease(t *testing.T) {
	north := tile.Unconstrained()
	north[tile.N] = 1
	m, err := constraint.FromPreCrease(1, []tile.Edges{north})
	require.NoError(t, err)
	n, err := newSolver(t, m.Freeze()).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(20), n)

	for w := 1; w <= 4; w++ {
		flat := make([]tile.Edges, w*w)
		m, err := constraint.FromPreCrease(w, flat)
		require.NoError(t, err)
		r, err := tiling.Solve(context.Background(), m.Freeze(), tiling.ModeWitness)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("00", w*w), r.Witness.String(), "w=%d", w)
	}
}

// TestCount_FlatCorner restricts cell 0 to the flat tile.
func TestCount_FlatCorner(t *testing.T) {
	cases := []struct {
		width int
		want  uint64
	}{
		{2, 528},
		{3, 2097152},
	}
	for _, tc := range cases {
		s := newSolver(t, flatCorner(t, tc.width), tiling.WithWorkers(4))
		n, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tc.want, n)

		w, err := s.Witness(context.Background())
		require.NoError(t, err)
		require.True(t, w.Found())
		for _, ti := range w.Tiles {
			assert.Equal(t, tile.Zero, ti)
		}
	}
}

// TestSolver_MatchesEnumerator compares all three modes with the depth-first
// enumerator on random 2×2 masks.
func TestSolver_MatchesEnumerator(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 12; trial++ {
		m, err := constraint.NewMask(2)
		require.NoError(t, err)
		for cell := 0; cell < 4; cell++ {
			for ti := tile.Index(0); ti < tile.Count; ti++ {
				require.NoError(t, m.SetAllowed(cell, ti, rng.Intn(2) == 0))
			}
		}
		snap := m.Freeze()
		want := gridgraph.CountTilings(snap)
		s := newSolver(t, snap, tiling.WithWorkers(1+trial%4))

		n, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, n, "trial %d", trial)

		ok, err := s.Exists(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want > 0, ok, "trial %d", trial)

		w, err := s.Witness(context.Background())
		require.NoError(t, err)
		require.Equal(t, want > 0, w.Found(), "trial %d", trial)
		if w.Found() {
			g, err := gridgraph.FromWitness(w)
			require.NoError(t, err)
			assert.NoError(t, g.Validate(snap), "trial %d", trial)
		}
	}
}

//----------------------------------------------------------------------------//
// Witness
//----------------------------------------------------------------------------//

// TestWitness_Deterministic checks that worker count never changes the witness.
func TestWitness_Deterministic(t *testing.T) {
	for w := 1; w <= 4; w++ {
		snap := unconstrained(t, w)
		base, err := newSolver(t, snap, tiling.WithWorkers(1)).Witness(context.Background())
		require.NoError(t, err)
		require.True(t, base.Found())
		require.Len(t, base.Tiles, w*w)

		g, err := gridgraph.FromWitness(base)
		require.NoError(t, err)
		assert.Empty(t, g.Conflicts())

		for _, workers := range []int{2, 5, 16} {
			got, err := newSolver(t, snap, tiling.WithWorkers(workers)).Witness(context.Background())
			require.NoError(t, err)
			assert.Equal(t, base.String(), got.String(), "w=%d workers=%d", w, workers)
		}
	}
}

// TestWitness_String covers encoding, At and the no-solution sentinel.
func TestWitness_String(t *testing.T) {
	w := tiling.Witness{Width: 2, Tiles: []tile.Index{0, 7, 21, 35}}
	assert.Equal(t, "00072135", w.String())
	assert.Equal(t, tile.Index(21), w.At(0, 1))
	assert.Equal(t, tiling.NoSolution, tiling.Witness{Width: 2}.String())
}

// TestWitness_Corners attaches ring corners only to a found witness.
func TestWitness_Corners(t *testing.T) {
	corners := [4]uint8{1, 0, 1, 0}
	w, err := newSolver(t, unconstrained(t, 2), tiling.WithCorners(corners)).Witness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, corners, w.Corners)

	m, err := constraint.NewMask(2)
	require.NoError(t, err)
	require.NoError(t, m.Restrict(0))
	w, err = newSolver(t, m.Freeze(), tiling.WithCorners(corners)).Witness(context.Background())
	require.NoError(t, err)
	assert.False(t, w.Found())
	assert.Equal(t, [4]uint8{}, w.Corners)
}

//----------------------------------------------------------------------------//
// Exhaustion and budgets
//----------------------------------------------------------------------------//

// TestRun_EmptyCell checks that an unsatisfiable cell is a normal result.
func TestRun_EmptyCell(t *testing.T) {
	m, err := constraint.NewMask(2)
	require.NoError(t, err)
	require.NoError(t, m.Restrict(3))
	s := newSolver(t, m.Freeze())

	for _, mode := range []tiling.Mode{tiling.ModeCount, tiling.ModeExists, tiling.ModeWitness} {
		r, err := s.Run(context.Background(), mode)
		require.NoError(t, err, mode.String())
		assert.Equal(t, mode, r.Mode)
		assert.Zero(t, r.Count)
		assert.False(t, r.Exists)
		assert.Equal(t, tiling.NoSolution, r.Witness.String())
		assert.Equal(t, 3, r.Stats.ExhaustedAt)
		assert.Equal(t, 4, r.Stats.Cells)
	}
}

// TestRun_Stats checks the bookkeeping of a complete sweep.
func TestRun_Stats(t *testing.T) {
	r, err := newSolver(t, unconstrained(t, 2)).Run(context.Background(), tiling.ModeCount)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Stats.Cells)
	assert.Equal(t, -1, r.Stats.ExhaustedAt)
	assert.Positive(t, r.Stats.PeakLive)
	assert.LessOrEqual(t, r.Stats.PeakLive, 1<<5)
	assert.GreaterOrEqual(t, r.Stats.Expansions, uint64(tile.Count))
}

// TestRun_Budget aborts when a step leaves too many live states.
func TestRun_Budget(t *testing.T) {
	s := newSolver(t, unconstrained(t, 3), tiling.WithMaxLiveStates(1))
	_, err := s.Count(context.Background())
	assert.ErrorIs(t, err, tiling.ErrBudgetExceeded)

	s = newSolver(t, flatCorner(t, 2), tiling.WithMaxLiveStates(1<<5))
	_, err = s.Count(context.Background())
	assert.NoError(t, err)
}

// TestRun_Canceled returns ErrCanceled wrapping the context error.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSolver(t, unconstrained(t, 2)).Exists(ctx)
	assert.ErrorIs(t, err, tiling.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_UnknownMode rejects a mode outside the three result modes.
func TestRun_UnknownMode(t *testing.T) {
	_, err := newSolver(t, unconstrained(t, 1)).Run(context.Background(), tiling.Mode(9))
	assert.ErrorIs(t, err, tiling.ErrUnknownMode)
}
