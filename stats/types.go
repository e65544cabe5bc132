package stats

import "errors"

// Z95 is the two-sided 95% standard normal quantile.
const Z95 = 1.96

// Sentinel errors for stats helpers.
var (
	// ErrEmptySample indicates a statistic was requested over zero samples.
	ErrEmptySample = errors.New("stats: sample must not be empty")
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("stats: trials must be at least 1")
)

// Accumulator keeps count, running mean and the sum of squared deviations (m2).
// The zero value is ready to use.
type Accumulator struct {
	n    int
	mean float64
	m2   float64
}
