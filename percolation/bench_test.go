package percolation_test

import (
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkOpenUntilPercolates opens a shuffled 200×200 grid until it percolates.
// Complexity: O(n²·α(n²)) per iteration.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	order := randomOrder(n, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := percolation.New(n)
		for _, st := range order {
			_ = p.Open(st.Row, st.Col)
			if p.Percolates() {
				break
			}
		}
	}
}

// BenchmarkOpenNoShortcuts is BenchmarkOpenUntilPercolates with pruning and
// the connected-check disabled.
func BenchmarkOpenNoShortcuts(b *testing.B) {
	const n = 200
	order := randomOrder(n, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := percolation.New(n, percolation.WithPruning(false), percolation.WithSkipConnected(false))
		for _, st := range order {
			_ = p.Open(st.Row, st.Col)
			if p.Percolates() {
				break
			}
		}
	}
}
