package estimator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/percolation/percolation"
)

// runTrial opens random blocked sites of sys until it percolates and returns
// the open fraction. A system still blocked with all n² sites open yields
// ErrNoPercolation.
func runTrial(sys percolation.System, rng *rand.Rand, strategy Strategy) (float64, error) {
	n := sys.Size()
	sites := n * n
	switch strategy {
	case Permutation:
		for _, idx := range rng.Perm(sites) {
			if err := sys.Open(idx/n+1, idx%n+1); err != nil {
				return 0, err
			}
			if sys.Percolates() {
				break
			}
		}
	case Rejection:
		for !sys.Percolates() && sys.NumberOfOpenSites() < sites {
			row, col := rng.Intn(n)+1, rng.Intn(n)+1
			open, err := sys.IsOpen(row, col)
			if err != nil {
				return 0, err
			}
			if open {
				continue
			}
			if err = sys.Open(row, col); err != nil {
				return 0, err
			}
		}
	default:
		return 0, ErrUnknownStrategy
	}

	if !sys.Percolates() {
		return 0, fmt.Errorf("%w: %d×%d grid", ErrNoPercolation, n, n)
	}
	return float64(sys.NumberOfOpenSites()) / float64(sites), nil
}

// newGrid is the default Factory.
func newGrid(n int) (percolation.System, error) {
	return percolation.New(n)
}
