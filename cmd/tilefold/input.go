package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilefold/constraint"
	"github.com/katalvlaran/tilefold/rim"
	"github.com/katalvlaran/tilefold/tile"
)

var (
	errNoWidth        = errors.New("width is required (--width or the pre-crease file)")
	errWidthConflict  = errors.New("--width differs from the pre-crease file")
	errManyInputs     = errors.New("give at most one of pre-crease cells, folds, or positional edges")
	errCellLength     = errors.New("each pre-crease cell needs 8 values")
	errPositionalSize = errors.New("positional edges must hold 8*width*width values")
)

// preCreaseFile is the YAML layout accepted by --pre-crease.
//
//	width: 2
//	cells:
//	  - [0, 0, -1, -1, -1, 0, 0, 0]
//	  - ...
//
// or, for a ring assignment:
//
//	width: 2
//	folds: [0, 1, 4, 0, 1, 4, 0, 1, 4, 0, 1, 4]
type preCreaseFile struct {
	Width int     `yaml:"width"`
	Cells [][]int `yaml:"cells"`
	Folds []int   `yaml:"folds"`
}

func loadPreCrease(path string) (*preCreaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pre-crease file: %w", err)
	}
	var f preCreaseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pre-crease file %s: %w", path, err)
	}
	return &f, nil
}

// problem is a resolved solver input.
type problem struct {
	mask    *constraint.Snapshot
	corners [4]uint8
}

// resolve merges the flag, file and positional inputs into one problem.
func resolve(cfg *config, args []string) (*problem, error) {
	width := cfg.width
	var (
		cells  [][]int
		folds  = cfg.folds
		inputs int
	)
	if cfg.preCrease != "" {
		f, err := loadPreCrease(cfg.preCrease)
		if err != nil {
			return nil, err
		}
		if width != 0 && f.Width != 0 && width != f.Width {
			return nil, fmt.Errorf("%w: %d vs %d", errWidthConflict, width, f.Width)
		}
		if f.Width != 0 {
			width = f.Width
		}
		if len(f.Cells) > 0 {
			cells = f.Cells
			inputs++
		}
		if len(f.Folds) > 0 {
			if len(folds) > 0 {
				inputs++
			}
			folds = f.Folds
		}
	}
	if len(folds) > 0 {
		inputs++
	}
	if len(args) > 0 {
		inputs++
	}
	if inputs > 1 {
		return nil, errManyInputs
	}
	if width == 0 {
		return nil, errNoWidth
	}

	var p problem
	switch {
	case len(folds) > 0:
		m, err := rim.Mask(width, folds)
		if err != nil {
			return nil, err
		}
		if p.corners, err = rim.Corners(width, folds); err != nil {
			return nil, err
		}
		p.mask = m.Freeze()
	case len(cells) > 0 || len(args) > 0:
		if len(args) > 0 {
			var err error
			if cells, err = splitPositional(width, args); err != nil {
				return nil, err
			}
		}
		edges, err := toEdges(cells)
		if err != nil {
			return nil, err
		}
		m, err := constraint.FromPreCrease(width, edges)
		if err != nil {
			return nil, err
		}
		p.mask = m.Freeze()
	default:
		snap, err := constraint.Unconstrained(width)
		if err != nil {
			return nil, err
		}
		p.mask = snap
	}
	return &p, nil
}

func splitPositional(width int, args []string) ([][]int, error) {
	if width < 1 || len(args) != 8*width*width {
		return nil, fmt.Errorf("%w: got %d", errPositionalSize, len(args))
	}
	cells := make([][]int, width*width)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		cells[i/8] = append(cells[i/8], v)
	}
	return cells, nil
}

func toEdges(cells [][]int) ([]tile.Edges, error) {
	edges := make([]tile.Edges, len(cells))
	for i, c := range cells {
		if len(c) != tile.NumDirections {
			return nil, fmt.Errorf("%w: cell %d has %d", errCellLength, i, len(c))
		}
		for d, v := range c {
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("%w: cell %d has %d", constraint.ErrEdgeValue, i, v)
			}
			edges[i][d] = int8(v)
		}
	}
	return edges, nil
}
