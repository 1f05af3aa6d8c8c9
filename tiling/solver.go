package tiling

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/frontier"
	"github.com/katalvlaran/tilefold/tile"
)

const tracerName = "github.com/katalvlaran/tilefold/tiling"

// Solver runs frontier sweeps over one constraint snapshot.
// It is immutable after New; concurrent Runs allocate their own tables.
type Solver struct {
	mask   *constraint.Snapshot
	chk    *frontier.Checker
	opts   options
	tracer trace.Tracer
}

// New validates the configuration and returns a Solver.
//
// Errors (all before any table is allocated):
//   - ErrNilMask if mask is nil.
//   - ErrStateSpaceTooLarge if 3w−1 exceeds the bit ceiling (WithMaxBits).
func New(mask *constraint.Snapshot, opts ...Option) (*Solver, error) {
	if mask == nil {
		return nil, ErrNilMask
	}
	o := gatherOptions(opts)
	w := mask.Width()
	if bits := 3*w - 1; bits > o.maxBits {
		return nil, fmt.Errorf("%w: width %d needs %d bits, ceiling is %d",
			ErrStateSpaceTooLarge, w, bits, o.maxBits)
	}
	enc, err := frontier.NewEncoder(w)
	if err != nil {
		return nil, err
	}
	chk, err := frontier.NewChecker(enc, mask)
	if err != nil {
		return nil, err
	}
	return &Solver{
		mask:   mask,
		chk:    chk,
		opts:   o,
		tracer: o.tracerTP.Tracer(tracerName),
	}, nil
}

// Width returns the grid width.
func (s *Solver) Width() int { return s.mask.Width() }

// Count returns the number of consistent tilings (modulo 2⁶⁴).
func (s *Solver) Count(ctx context.Context) (uint64, error) {
	r, err := s.Run(ctx, ModeCount)
	return r.Count, err
}

// Exists reports whether at least one consistent tiling exists.
func (s *Solver) Exists(ctx context.Context) (bool, error) {
	r, err := s.Run(ctx, ModeExists)
	return r.Exists, err
}

// Witness returns the first tiling by ascending frontier state and tile
// index. A Witness with Found() == false means no tiling exists.
func (s *Solver) Witness(ctx context.Context) (Witness, error) {
	r, err := s.Run(ctx, ModeWitness)
	return r.Witness, err
}

// Run sweeps every cell and reduces the final table according to mode.
//
// Steps:
//  1. Seed state 0 in buffer 0.
//  2. For each cell: check ctx, reset the other buffer, sweep, swap.
//  3. Stop early once no state is reachable (every later table stays empty).
//  4. Reduce the current buffer.
func (s *Solver) Run(ctx context.Context, mode Mode) (Result, error) {
	enc := s.chk.Encoder()
	tab := newTable(mode, enc.Size())
	if tab == nil {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	w := s.mask.Width()
	cells := w * w
	log := s.opts.logger.With("mode", mode.String(), "width", w)
	ctx, span := s.tracer.Start(ctx, "tiling.Run", trace.WithAttributes(
		attribute.String("tilefold.mode", mode.String()),
		attribute.Int("tilefold.width", w),
		attribute.Int("tilefold.workers", s.opts.workers),
	))
	defer span.End()

	start := time.Now()
	res := Result{Mode: mode, Witness: Witness{Width: w}, Stats: Stats{ExhaustedAt: -1}}
	fail := func(outcome string, err error) (Result, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.opts.metrics.observeRun(mode, outcome, time.Since(start))
		log.Warn("Sweep aborted.", "cell", res.Stats.Cells, "error", err)
		return Result{}, err
	}

	tab.seed()
	cur := 0 // current buffer index; flipped once per cell
	for cell := 0; cell < cells; cell++ {
		if err := ctx.Err(); err != nil {
			return fail("canceled", fmt.Errorf("%w at cell %d: %w", ErrCanceled, cell, err))
		}
		next := 1 - cur
		tab.reset(next)
		expanded, err := s.sweep(cell, tab, cur, next)
		if err != nil {
			return fail("error", err)
		}
		cur = next

		live := tab.live(cur)
		res.Stats.Cells++
		res.Stats.Expansions += expanded
		res.Stats.PeakLive = max(res.Stats.PeakLive, live)
		s.opts.metrics.observeCell(live, expanded)
		span.AddEvent("cell", trace.WithAttributes(
			attribute.Int("tilefold.cell", cell),
			attribute.Int("tilefold.live", live),
		))
		log.Debug("Cell swept.", "cell", cell, "live", live, "expanded", expanded)

		if live == 0 {
			res.Stats.ExhaustedAt = cell
			log.Debug("No reachable state left.", "cell", cell)
			break
		}
		if s.opts.maxLive > 0 && live > s.opts.maxLive {
			return fail("budget", fmt.Errorf("%w: %d live states after cell %d, budget %d",
				ErrBudgetExceeded, live, cell, s.opts.maxLive))
		}
	}
	if res.Stats.ExhaustedAt < 0 && cur != cells%2 {
		panic(fmt.Sprintf("tiling: buffer %d current after %d cells", cur, cells))
	}

	tab.reduce(cur, &res)
	if res.Witness.Found() {
		res.Witness.Corners = s.opts.corners
	}
	res.Stats.Elapsed = time.Since(start)

	s.opts.metrics.observeRun(mode, "ok", res.Stats.Elapsed)
	span.SetAttributes(attribute.Bool("tilefold.found", found(res)))
	log.Info("Sweep finished.",
		"found", found(res),
		"count", res.Count,
		"peak_live", res.Stats.PeakLive,
		"expansions", res.Stats.Expansions,
		"elapsed", res.Stats.Elapsed)
	return res, nil
}

// sweep expands every reachable state of buffer cur at cell into buffer next.
// Chunks of the state range run on at most opts.workers goroutines; the
// return of g.Wait is the barrier before the buffers swap.
func (s *Solver) sweep(cell int, tab table, cur, next int) (uint64, error) {
	size := s.chk.Encoder().Size()
	chunk := max(size/uint64(s.opts.workers*chunksPerWorker), minChunk)

	var g errgroup.Group
	g.SetLimit(s.opts.workers)
	var expanded atomic.Uint64
	for lo := uint64(0); lo < size; lo += chunk {
		hi := min(lo+chunk, size)
		g.Go(func() error {
			var n uint64
			for k := lo; k < hi; k++ {
				from := frontier.State(k)
				if !tab.reachable(cur, from) {
					continue
				}
				for t := tile.Index(0); t < tile.Count; t++ {
					if !s.chk.CanPlace(cell, t, from) {
						continue
					}
					tab.merge(cur, next, from, s.chk.Advance(cell, t, from), t)
					n++
				}
			}
			expanded.Add(n)
			return nil
		})
	}
	err := g.Wait()
	return expanded.Load(), err
}

func found(r Result) bool {
	switch r.Mode {
	case ModeCount:
		return r.Count > 0
	case ModeExists:
		return r.Exists
	}
	return r.Witness.Found()
}

// Solve is a shorthand for New followed by Run.
func Solve(ctx context.Context, mask *constraint.Snapshot, mode Mode, opts ...Option) (Result, error) {
	s, err := New(mask, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx, mode)
}
