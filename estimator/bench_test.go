package estimator_test

import (
	"testing"

	"github.com/katalvlaran/percolation/estimator"
)

// BenchmarkEstimate_Permutation runs 64 trials on a 64×64 grid per iteration.
func BenchmarkEstimate_Permutation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = estimator.Estimate(64, 64, estimator.WithSeed(int64(i+1)))
	}
}

// BenchmarkEstimate_Rejection is BenchmarkEstimate_Permutation with rejection sampling.
func BenchmarkEstimate_Rejection(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = estimator.Estimate(64, 64, estimator.WithSeed(int64(i+1)), estimator.WithStrategy(estimator.Rejection))
	}
}
