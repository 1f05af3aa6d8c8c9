// Package frontier encodes the boundary ("mate") between placed and unplaced
// cells of a row-major sweep over a width×width grid, and decides and applies
// single-tile placements against it.
//
// What:
//
//   - State is a 3w−1 bit word. Each bit is the already-decided value of one
//     crease edge that a future cell will have to agree with.
//   - Encoder maps (direction, column) to a bit position and reads/writes
//     single bits by value; a State is never mutated in place.
//   - Checker.CanPlace compares a tile's W, NW, N and NE bits against the
//     frontier (the join condition with the upper-left neighbourhood).
//   - Checker.Advance writes the tile's E, SW, S and SE bits into the slots
//     the next cells will read, producing the successor State.
//
// Bit layout for column x (w = width):
//
//	3x      N of cell x   (written as S by the cell above)
//	3x+1    NE of cell x  (written as SW by the upper-right cell)
//	        W of cell x+1 (written as E by cell x, before the above)
//	3x−1    NW of cell x  (copied from the SE carry slot)
//	3w−2    SE carry slot (SE of the previous cell in the row)
//
// Indices saturate at the grid edges, so no index reaches 3w−1.
//
// Complexity: every operation is O(1).
package frontier
