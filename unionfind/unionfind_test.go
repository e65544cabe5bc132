package unionfind_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

// TestNew_Singletons checks that a fresh forest has n components of size 1.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	require.Equal(t, 5, uf.Len())
	require.Equal(t, 5, uf.Count())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, uf.Find(i))
		require.Equal(t, 1, uf.SizeOf(i))
	}
}

// TestNew_InvalidSize ensures a negative size is rejected and zero is accepted.
func TestNew_InvalidSize(t *testing.T) {
	_, err := unionfind.New(-1)
	require.ErrorIs(t, err, unionfind.ErrInvalidSize)

	uf, err := unionfind.New(0)
	require.NoError(t, err)
	require.Equal(t, 0, uf.Count())
}

// TestUnion_MergesAndCounts walks through a short sequence of unions.
func TestUnion_MergesAndCounts(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	require.False(t, uf.Connected(1, 2))
	require.True(t, uf.Union(1, 2))
	require.True(t, uf.Connected(1, 2))
	require.True(t, uf.Union(2, 3))
	require.True(t, uf.Connected(1, 3))
	require.Equal(t, 3, uf.SizeOf(1))

	// Redundant union is a no-op.
	require.False(t, uf.Union(3, 1))
	require.Equal(t, 8, uf.Count())

	require.True(t, uf.Union(4, 5))
	require.False(t, uf.Connected(1, 4))
	require.Equal(t, 7, uf.Count())
}

// TestUnion_SmallerUnderLarger verifies the size heuristic picks the bigger root.
func TestUnion_SmallerUnderLarger(t *testing.T) {
	uf, _ := unionfind.New(4)
	uf.Union(0, 1)
	uf.Union(0, 2)
	root := uf.Find(0)

	// {3} is smaller, so it must hang under the existing root.
	uf.Union(3, 0)
	require.Equal(t, root, uf.Find(3))
	require.Equal(t, 4, uf.SizeOf(3))
}

// TestValidate covers both edges of the index range.
func TestValidate(t *testing.T) {
	uf, _ := unionfind.New(3)
	require.NoError(t, uf.Validate(0))
	require.NoError(t, uf.Validate(2))
	for _, p := range []int{-1, 3} {
		err := uf.Validate(p)
		require.True(t, errors.Is(err, unionfind.ErrIndexOutOfRange), "p=%d", p)
	}
	require.Panics(t, func() { uf.Find(3) })
}

// TestRandomUnions_MatchNaiveLabels compares the forest with a naive
// relabelling implementation under random unions.
func TestRandomUnions_MatchNaiveLabels(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(7))
	uf, _ := unionfind.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	components := n

	for step := 0; step < 300; step++ {
		p, q := rng.Intn(n), rng.Intn(n)
		merged := uf.Union(p, q)
		if lp, lq := label[p], label[q]; lp != lq {
			require.True(t, merged)
			for i := range label {
				if label[i] == lq {
					label[i] = lp
				}
			}
			components--
		} else {
			require.False(t, merged)
		}

		a, b := rng.Intn(n), rng.Intn(n)
		require.Equal(t, label[a] == label[b], uf.Connected(a, b))
	}
	require.Equal(t, components, uf.Count())
}
