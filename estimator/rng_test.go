package estimator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
)

// TestTrialRNG_Reproducible checks same (seed, trial) gives the same stream
// and neighbouring trials differ.
func TestTrialRNG_Reproducible(t *testing.T) {
	a := trialRNG(11, 3).Int63()
	b := trialRNG(11, 3).Int63()
	require.Equal(t, a, b)
	require.NotEqual(t, a, trialRNG(11, 4).Int63())
	require.NotEqual(t, a, trialRNG(12, 3).Int63())
}

// TestTrialRNG_ZeroSeed maps seed 0 onto defaultSeed.
func TestTrialRNG_ZeroSeed(t *testing.T) {
	require.Equal(t, trialRNG(defaultSeed, 0).Int63(), trialRNG(0, 0).Int63())
}

// TestRunTrial_Strategies runs one trial of each strategy on a small grid.
func TestRunTrial_Strategies(t *testing.T) {
	for _, st := range []Strategy{Permutation, Rejection} {
		sys, err := newGrid(5)
		require.NoError(t, err)
		x, err := runTrial(sys, trialRNG(1, 0), st)
		require.NoError(t, err)
		require.True(t, sys.Percolates())
		require.Equal(t, float64(sys.NumberOfOpenSites())/25, x)
	}

	sys, _ := newGrid(2)
	_, err := runTrial(sys, trialRNG(1, 0), Strategy(7))
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

// blockedSystem wraps a grid but never reports percolation.
type blockedSystem struct {
	percolation.System
}

func (blockedSystem) Percolates() bool { return false }

// TestRunTrial_NeverPercolates stops once every site is open and reports
// ErrNoPercolation instead of a 1.0 sample.
func TestRunTrial_NeverPercolates(t *testing.T) {
	for _, st := range []Strategy{Permutation, Rejection} {
		grid, err := newGrid(4)
		require.NoError(t, err)
		sys := blockedSystem{grid}
		x, err := runTrial(sys, trialRNG(1, 0), st)
		require.ErrorIs(t, err, ErrNoPercolation, st.String())
		require.Zero(t, x)
		require.Equal(t, 16, sys.NumberOfOpenSites())
	}

	_, err := Estimate(3, 4, WithWorkers(2), WithFactory(func(n int) (percolation.System, error) {
		grid, err := newGrid(n)
		return blockedSystem{grid}, err
	}))
	require.ErrorIs(t, err, ErrNoPercolation)
}
