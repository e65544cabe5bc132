// Package percolation is a toolkit for studying site percolation on square
// lattices: an incremental connectivity engine, a Monte Carlo threshold
// estimator and the pieces around them.
//
// What is site percolation?
//
//	Each site of an n×n grid is open with probability p. The grid
//	percolates when open sites form a path, through edge-adjacent
//	neighbours, from the top row to the bottom row. For large n the
//	probability of percolation jumps from ~0 to ~1 around a critical
//	p* ≈ 0.5927; estimating p* is the classic Monte Carlo exercise.
//
// Under the hood the module is organised into small packages:
//
//	unionfind/   — weighted quick-union forest with path halving
//	percolation/ — the grid engine: Open, IsOpen, IsFull, Percolates
//	floodfill/   — BFS oracle over a fixed open mask, for cross-checks
//	stats/       — streaming mean/stddev, mergeable across workers
//	estimator/   — parallel, reproducible Monte Carlo threshold estimate
//	replay/      — drive a grid from a recorded "row col" script
//	report/      — text and JSON renderings of an estimate
//	cmd/percolate — the command-line front end
//
// Quick ASCII example (3×3, '.' open, '#' blocked):
//
//	. # #
//	. . #
//	# . .
//
//	percolates: (1,1)→(2,1)→(2,2)→(3,2).
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
package percolation
