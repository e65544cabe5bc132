// Package stats provides the sample statistics used to summarise Monte Carlo
// trials: mean, sample standard deviation and a normal-approximation
// confidence interval.
//
// Accumulator is a streaming (Welford) accumulator. Independent workers may
// each fill their own Accumulator and combine them with Merge at the end;
// the result equals feeding every sample through a single Accumulator, up
// to floating-point rounding.
//
// Conventions:
//
//   - Variance is the sample variance with divisor n-1.
//   - With fewer than two samples the variance (and standard deviation) is 0,
//     not NaN: a single trial carries no spread information.
//
// Errors:
//
//   - ErrEmptySample:   Mean/StdDev over an empty slice.
//   - ErrInvalidTrials: ConfidenceInterval with trials < 1.
package stats
