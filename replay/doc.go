// Package replay drives a percolation grid from a recorded open sequence.
//
// Script format (whitespace separated, blank lines ignored):
//
//	3
//	1 1
//	2 1
//	3 1
//
// The first non-blank line is the grid size n; every following line is one
// "row col" pair to open, 1-based.
//
// Run opens the sites in order and reports a Step after each one. With
// Options.Verify every step is cross-checked against a flood-fill of the
// current open mask; any disagreement in IsFull or Percolates aborts the run
// with a *MismatchError.
package replay
