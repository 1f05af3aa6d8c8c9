package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilefold/tiling"
)

// config holds the values bound to command-line flags.
type config struct {
	logLevel   string
	logFormat  string
	width      int
	workers    int
	maxBits    int
	maxLive    int
	preCrease  string
	folds      []int
	timeout    time.Duration
	metricsOut string
}

// newRootCmd builds the command tree. Results go to out, logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "tilefold",
		Short:         "Count, detect or find crease tilings of a square grid",
		SilenceUsage:  true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	pf.IntVarP(&cfg.width, "width", "w", 0, "grid width in cells")
	pf.IntVar(&cfg.workers, "workers", 0, "goroutines per cell sweep (0 = GOMAXPROCS)")
	pf.IntVar(&cfg.maxBits, "max-bits", tiling.DefaultMaxBits, "largest frontier in bits (3w-1) to accept")
	pf.IntVar(&cfg.maxLive, "max-live", tiling.DefaultMaxLiveStates, "abort when a step leaves more live states (0 = no limit)")
	pf.StringVar(&cfg.preCrease, "pre-crease", "", "YAML file with width and per-cell edges or ring folds")
	pf.IntSliceVar(&cfg.folds, "folds", nil, "ring fold values, 4*(width+1) entries in [0,7]")
	pf.DurationVar(&cfg.timeout, "timeout", 0, "abort the search after this long (0 = none)")
	pf.StringVar(&cfg.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile after the run")

	root.AddCommand(
		newModeCmd(cfg, tiling.ModeCount, "count", "Count consistent tilings"),
		newModeCmd(cfg, tiling.ModeExists, "exists", "Report whether a consistent tiling exists"),
		newModeCmd(cfg, tiling.ModeWitness, "find", "Print one consistent tiling"),
	)
	return root
}

func newModeCmd(cfg *config, mode tiling.Mode, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [edges...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, mode, args)
		},
	}
}

// run resolves the input, sweeps once and prints the result.
func run(cmd *cobra.Command, cfg *config, mode tiling.Mode, args []string) error {
	logger := newLogger(cfg.logLevel, cfg.logFormat, cmd.ErrOrStderr())

	p, err := resolve(cfg, args)
	if err != nil {
		return err
	}
	if cfg.maxBits < 1 || cfg.maxBits > 63 {
		return fmt.Errorf("--max-bits must be in [1,63], got %d", cfg.maxBits)
	}
	if cfg.maxLive < 0 {
		return fmt.Errorf("--max-live must be >= 0, got %d", cfg.maxLive)
	}

	reg := prometheus.NewRegistry()
	opts := []tiling.Option{
		tiling.WithLogger(logger),
		tiling.WithMaxBits(cfg.maxBits),
		tiling.WithMaxLiveStates(cfg.maxLive),
		tiling.WithCorners(p.corners),
		tiling.WithMetrics(tiling.NewMetrics(reg)),
	}
	if cfg.workers > 0 {
		opts = append(opts, tiling.WithWorkers(cfg.workers))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	r, err := tiling.Solve(ctx, p.mask, mode, opts...)
	if cfg.metricsOut != "" {
		if werr := prometheus.WriteToTextfile(cfg.metricsOut, reg); werr != nil {
			logger.Error("Failed to write metrics.", slog.String("path", cfg.metricsOut), slog.Any("error", werr))
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch mode {
	case tiling.ModeCount:
		fmt.Fprintf(out, "COUNT: %d\n", r.Count)
	case tiling.ModeExists:
		fmt.Fprintf(out, "EXISTS: %t\n", r.Exists)
	case tiling.ModeWitness:
		fmt.Fprintf(out, "CPSTR: %s\n", r.Witness)
		c := r.Witness.Corners
		fmt.Fprintf(out, "CORNERS: %d %d %d %d\n", c[0], c[1], c[2], c[3])
	}
	logger.Info("Done.", "mode", mode.String(), "elapsed", r.Stats.Elapsed)
	return nil
}
