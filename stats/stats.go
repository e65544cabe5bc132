package stats

import (
	"fmt"
	"math"
)

// Add folds one sample into the accumulator.
// Complexity: O(1).
func (a *Accumulator) Add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Merge folds another accumulator into a (Chan et al. pairwise update).
// Complexity: O(1).
func (a *Accumulator) Merge(b Accumulator) {
	if b.n == 0 {
		return
	}
	if a.n == 0 {
		*a = b
		return
	}
	n := a.n + b.n
	delta := b.mean - a.mean
	a.mean += delta * float64(b.n) / float64(n)
	a.m2 += b.m2 + delta*delta*float64(a.n)*float64(b.n)/float64(n)
	a.n = n
}

// Count returns the number of samples seen.
func (a *Accumulator) Count() int {
	return a.n
}

// Mean returns the sample mean, 0 when empty.
func (a *Accumulator) Mean() float64 {
	return a.mean
}

// Variance returns the sample variance (divisor n-1), 0 for n < 2.
func (a *Accumulator) Variance() float64 {
	if a.n < 2 {
		return 0
	}

	return a.m2 / float64(a.n-1)
}

// StdDev returns the sample standard deviation, 0 for n < 2.
func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	var acc Accumulator
	for _, x := range xs {
		acc.Add(x)
	}

	return acc.Mean(), nil
}

// StdDev returns the sample standard deviation of xs (0 for a single sample).
func StdDev(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	var acc Accumulator
	for _, x := range xs {
		acc.Add(x)
	}

	return acc.StdDev(), nil
}

// ConfidenceInterval returns mean ± z·stddev/√trials.
// Returns ErrInvalidTrials if trials < 1.
func ConfidenceInterval(mean, stddev float64, trials int, z float64) (lo, hi float64, err error) {
	if trials < 1 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	half := z * stddev / math.Sqrt(float64(trials))

	return mean - half, mean + half, nil
}
