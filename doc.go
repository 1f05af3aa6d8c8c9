// Package tilefold counts, detects and finds consistent tilings of a w×w grid
// of crease-pattern vertices, using a frontier (profile) dynamic program.
//
// What is a tiling here?
//
//	Every cell of the grid holds one of 36 tiles. A tile says, for each of the
//	eight compass directions, whether a crease leaves the vertex that way.
//	Neighboring cells (diagonals included) must agree on the crease between
//	them. Per-cell constraints can forbid tiles, either directly or through
//	partial edge assignments ("pre-crease") or a fold assignment on the ring
//	around the grid.
//
// Under the hood, everything is organized under these subpackages:
//
//	tile/          the 36-tile catalog, directions and partial edge assignments
//	constraint/    per-cell allowed-tile masks, write-once then frozen
//	frontier/      the 3w−1 bit frontier state, placement check and transition
//	tiling/        the parallel sweep in count, exists and witness modes
//	gridgraph/     witness validation, crease components, brute-force reference
//	rim/           ring fold assignment to pre-crease edges and corner values
//	cmd/tilefold/  command-line front end
//
// Quick ASCII example (w=2, tile 21 everywhere):
//
//	  │   │
//	──┼───┼──
//	  │   │
//	──┼───┼──
//	  │   │
//
//	is one of the 28288 tilings of the 2×2 grid.
//
//	go install github.com/katalvlaran/tilefold/cmd/tilefold@latest
package tilefold
