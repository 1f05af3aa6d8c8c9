// Package constraint implements the per-cell allow/deny model consulted by
// the tilefold search before any frontier comparison.
//
// What:
//
//   - Mask is a mutable builder: for each of the w×w cells it records which
//     of the 36 catalog tiles may be placed there. NewMask allows everything.
//   - FromPreCrease compiles w×w partial edge assignments (tile.Edges) into a
//     Mask: a tile is allowed iff it agrees with every constrained direction.
//   - Freeze returns an immutable Snapshot; after it the Mask rejects further
//     writes with ErrFrozen. The search only ever reads a Snapshot.
//
// Errors:
//
//   - ErrInvalidWidth: width < 1.
//   - ErrShape: pre-crease slice length differs from w².
//   - ErrEdgeValue: a pre-crease entry is not -1, 0 or 1.
//   - ErrCellRange / ErrTileRange: SetAllowed outside the grid or catalog.
//   - ErrFrozen: SetAllowed after Freeze.
//
// Complexity: SetAllowed/IsAllowed O(1); FromPreCrease O(w²·36·8).
package constraint
