// Package percolation models site percolation on an n×n square lattice.
//
// What:
//
//   - Percolation holds an n×n grid of sites, each open or blocked. Sites are
//     addressed by 1-based (row, col); (1, 1) is the upper-left site.
//   - Open(row, col) opens a blocked site and joins it with its open
//     von Neumann neighbours (left, right, up, down).
//   - IsFull(row, col) reports whether an open path links the site to the top row.
//   - Percolates() reports whether an open path links the top row to the bottom row.
//
// How:
//
//	Two union-find forests of n²+1 elements share the site indices
//	0..n²-1. Element n² is a virtual anchor: in the top forest it is joined
//	to every open top-row site, in the bottom forest to every open
//	bottom-row site. Site-to-site links go into both forests.
//
//	          top forest                 bottom forest
//	           (anchor)
//	          /   |    \
//	       (1,1) (1,2) (1,3)          (1,1) (1,2) (1,3)
//	        ...                          ...
//	       (3,1) (3,2) (3,3)          (3,1) (3,2) (3,3)
//	                                    \    |    /
//	                                     (anchor)
//
//	IsFull asks only the top forest. A single forest holding both anchors
//	would merge them the moment the grid percolates, after which every
//	bottom-connected site would also look connected to the top ("backwash").
//
// Percolation flag:
//
//	The flag is sticky. After each Open the new site is tested against
//	both anchors; once both hold the flag is set and never recomputed.
//	With Options.Pruning the test is skipped while fewer than n sites are
//	open, since a top-to-bottom path needs at least n sites.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              amortised O(α(n²)).
//   - IsOpen:            O(1).
//   - IsFull:            amortised O(α(n²)).
//   - NumberOfOpenSites: O(1).
//   - Percolates:        O(1).
//
// Errors:
//
//   - ErrInvalidSize: n ≤ 0 passed to New, or n² too large for an int.
//   - ErrOutOfRange:  row or col outside [1, n]; returned as *CoordinateError
//     naming the argument. The grid is left untouched.
//
// A Percolation is not safe for concurrent use. Run independent trials on
// independent values instead.
package percolation
