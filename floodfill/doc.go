// Package floodfill answers percolation queries on a fixed open mask by
// breadth-first search.
//
// It is the slow, obviously-correct counterpart of package percolation:
// every query walks the grid from scratch, so it never suffers from
// incremental-state bugs such as backwash. Use it to cross-check an
// incremental engine, not in a trial loop.
//
// Complexity:
//
//   - New:        O(n²) time and memory (deep copy).
//   - FullSites:  O(n²) time and memory.
//   - Percolates: O(n²).
//
// Errors:
//
//   - ErrEmptyGrid: mask has no rows or no columns.
//   - ErrNonSquare: mask is not n×n.
package floodfill
