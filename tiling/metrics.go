package tiling

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Solver.
// All methods are nil-safe so a Solver without metrics pays one branch.
type Metrics struct {
	runs       *prometheus.CounterVec
	cells      prometheus.Counter
	expansions prometheus.Counter
	live       prometheus.Gauge
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tilefold_runs_total",
			Help: "Completed or aborted sweeps by mode and outcome",
		}, []string{"mode", "outcome"}),
		cells: f.NewCounter(prometheus.CounterOpts{
			Name: "tilefold_cells_swept_total",
			Help: "Cells swept across all runs",
		}),
		expansions: f.NewCounter(prometheus.CounterOpts{
			Name: "tilefold_expansions_total",
			Help: "Successful (state, tile) placements across all runs",
		}),
		live: f.NewGauge(prometheus.GaugeOpts{
			Name: "tilefold_live_states",
			Help: "Reachable frontier states after the most recent cell",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tilefold_run_duration_seconds",
			Help:    "Sweep duration by mode",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
		}, []string{"mode"}),
	}
}

func (m *Metrics) observeCell(live int, expanded uint64) {
	if m == nil {
		return
	}
	m.cells.Inc()
	m.expansions.Add(float64(expanded))
	m.live.Set(float64(live))
}

func (m *Metrics) observeRun(mode Mode, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(mode.String(), outcome).Inc()
	m.duration.WithLabelValues(mode.String()).Observe(elapsed.Seconds())
}
