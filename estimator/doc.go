// Package estimator estimates the site-percolation threshold p* of an n×n
// grid by Monte Carlo simulation.
//
// Each trial builds a fresh grid, opens uniformly random blocked sites until
// the grid percolates, and records the fraction of open sites. Estimate runs
// T independent trials and reports the sample mean, sample standard
// deviation and the 95% confidence interval mean ± 1.96·stddev/√T.
//
// Parallelism:
//
//	Trials share nothing, so they run on a bounded worker pool. Trial i
//	draws from its own RNG stream derived from (Seed, i); trials are grouped
//	into fixed-size batches, each with its own stats.Accumulator, merged in
//	batch order at the end. The result for a given seed is therefore the
//	same for any worker count.
//
// Site selection:
//
//   - Permutation (default): shuffle all n² sites once and open them in
//     order. Every step opens a blocked site.
//   - Rejection: draw (row, col) uniformly and open it; draws that hit an
//     open site are wasted. Same distribution, slower near p*.
//
// Errors:
//
//   - ErrInvalidSize:     n < 1.
//   - ErrInvalidTrials:   trials < 1.
//   - ErrUnknownStrategy: Strategy not Permutation or Rejection.
//   - ErrNoPercolation:   a Factory system stayed blocked with every site open.
//   - ctx.Err() when Options.Ctx is cancelled between trials.
package estimator
