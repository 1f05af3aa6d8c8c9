// Package gridgraph treats a completed tiling as a grid graph of cells.
//
// What:
//
//   - TileGrid wraps w×w tile indices in row-major order.
//   - Conflicts lists every pair of neighboring cells whose shared
//     boundary disagrees; Validate turns the first one into an error.
//   - CreaseComponents groups cells joined by set boundaries.
//   - CountTilings enumerates tilings by plain depth-first search.
//
// Why:
//
//   - Independent check of a witness produced by the frontier sweep.
//   - Reference count for small widths when testing the sweep.
//
// Complexity:
//
//   - Conflicts, CreaseComponents: O(w²·d), Memory: O(w²) (d = 4 or 8).
//   - CountTilings: O(36^(w²)) worst case; practical for w ≤ 2 unconstrained.
//
// Errors:
//
//   - ErrEmptyGrid: width below 1.
//   - ErrShape: tile count differs from width².
//   - ErrTileIndex: a tile index outside the catalog.
//   - ErrConflict: neighboring cells disagree on a shared boundary.
//   - ErrDisallowed: a tile is excluded by the constraint snapshot.
package gridgraph
