package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
)

// BenchmarkUnionConnected measures a mixed union/query workload on 1e6 elements.
// Complexity: O(ops·α(n)).
func BenchmarkUnionConnected(b *testing.B) {
	const n = 1_000_000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, 4096)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		uf, _ := unionfind.New(n)
		b.StartTimer()
		for _, p := range pairs {
			uf.Union(p[0], p[1])
			_ = uf.Connected(p[1], p[0])
		}
	}
}
