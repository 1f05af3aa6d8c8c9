package tiling

import (
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxBits caps the frontier at 20 bits (w ≤ 7, 2²⁰ states per table).
	DefaultMaxBits = 20

	// DefaultMaxLiveStates of 0 means no live-state budget.
	DefaultMaxLiveStates = 0

	// chunksPerWorker splits each step into this many chunks per worker so
	// uneven state densities still balance.
	chunksPerWorker = 8

	// minChunk keeps tiny steps from spawning a goroutine per state.
	minChunk = 256
)

const (
	panicWorkersInvalid = "tiling: WithWorkers: n must be >= 1"
	panicMaxBitsInvalid = "tiling: WithMaxBits: bits must be in [1,63]"
	panicMaxLiveInvalid = "tiling: WithMaxLiveStates: n must be >= 0"
	panicLoggerNil      = "tiling: WithLogger: logger must be non-nil"
	panicTracerNil      = "tiling: WithTracerProvider: provider must be non-nil"
)

// Option configures a Solver. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	workers  int
	maxBits  int
	maxLive  int
	logger   *slog.Logger
	metrics  *Metrics
	tracerTP trace.TracerProvider
	corners  [4]uint8
}

func defaultOptions() options {
	return options{
		workers:  runtime.GOMAXPROCS(0),
		maxBits:  DefaultMaxBits,
		maxLive:  DefaultMaxLiveStates,
		logger:   slog.New(slog.DiscardHandler),
		tracerTP: otel.GetTracerProvider(),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWorkers sets the number of goroutines sweeping each cell.
// Default: runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = n }
}

// WithMaxBits sets the largest frontier (3w−1 bits) New accepts.
func WithMaxBits(bits int) Option {
	if bits < 1 || bits > 63 {
		panic(panicMaxBitsInvalid)
	}
	return func(o *options) { o.maxBits = bits }
}

// WithMaxLiveStates aborts a run with ErrBudgetExceeded when a step leaves
// more than n reachable states. 0 disables the budget.
func WithMaxLiveStates(n int) Option {
	if n < 0 {
		panic(panicMaxLiveInvalid)
	}
	return func(o *options) { o.maxLive = n }
}

// WithLogger sets the structured logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics records sweep metrics into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider sets the OpenTelemetry provider. Default: the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic(panicTracerNil)
	}
	return func(o *options) { o.tracerTP = tp }
}

// WithCorners attaches the four ring-corner values to witness results.
func WithCorners(c [4]uint8) Option {
	return func(o *options) { o.corners = c }
}
