// Command tilefold counts, detects or finds tilings of a w×w grid with the
// 36-tile crease catalog.
//
// Usage:
//
//	tilefold count  --width 3
//	tilefold exists --pre-crease input.yaml
//	tilefold find   --width 7 --folds 0,1,4,...
//	tilefold find   --width 1 -- 1 -1 -1 -1 -1 -1 -1 -1
//
// Positional arguments, when present, are 8·w² pre-crease values (-1, 0 or 1)
// in row-major cell order and N, NE, E, SE, S, SW, W, NW direction order.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
