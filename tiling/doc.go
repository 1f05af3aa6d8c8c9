// Package tiling is the frontier dynamic-programming driver of tilefold.
//
// What:
//
//   - Sweeps the cells of a w×w grid in row-major order. For each cell it
//     expands every reachable frontier state with every placeable tile and
//     merges the successor into the next of two tables; then the tables swap.
//   - Three result modes share the sweep:
//     – ModeCount:   number of consistent tilings (uint64, wraps modulo 2⁶⁴);
//     – ModeExists:  whether at least one tiling exists;
//     – ModeWitness: the first tiling, by ascending frontier state and then
//     ascending tile index, as a sequence of w² tile indices.
//
// Concurrency:
//
//   - Each cell's state range is split into chunks run on an errgroup limited
//     to the configured number of workers; Wait is the barrier between cells.
//   - The current table is read-only during a step. Writes into the next
//     table are merged per key: atomic add (count), atomic flag (exists), or a
//     per-state mutex keeping the smallest (source state, tile) writer
//     (witness), so results do not depend on the worker count.
//   - Cancellation and budgets are checked only between cells.
//
// Errors:
//
//   - ErrNilMask, ErrStateSpaceTooLarge: configuration, returned by New.
//   - ErrCanceled, ErrBudgetExceeded: returned by Run between cells.
//   - No tiling is not an error: Count 0, Exists false, Witness not found.
//
// Complexity: O(w² · 2^(3w−1) · 36) time, O(2^(3w−1)) memory per table
// (times w² for witness certificates).
package tiling
