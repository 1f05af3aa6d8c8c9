// Package tile holds the fixed catalog of 36 local crease patterns used by
// the tilefold search.
//
// What:
//
//   - A tile describes one grid vertex: for each of the eight compass
//     directions (N, NE, E, SE, S, SW, W, NW) it says whether a crease line
//     leaves the vertex in that direction (1) or not (0).
//   - The catalog is closed: tiles are identified by an Index in [0, 36) and
//     the table is never mutated at runtime.
//   - Edges is a partial assignment over the eight directions (-1 means
//     "unconstrained"), the unit in which pre-crease information arrives.
//
// Why:
//
//   - Every other package (constraint, frontier, tiling, gridgraph) reads
//     boundary bits through Boundary, so the table lives in exactly one place.
//
// Contracts:
//
//   - Boundary panics on an out-of-range tile or direction: both are
//     programming errors, not runtime conditions.
//   - Tile 0 has every boundary bit 0; tile 35 has every bit 1.
//   - Every tile has an even number of set bits.
//
// Complexity: all lookups are O(1).
package tile
