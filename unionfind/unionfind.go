package unionfind

import "fmt"

// New returns a forest of n singleton components {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n < 0. New(0) is a valid, empty forest.
//
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements in the forest.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
// Complexity: O(1).
func (uf *UF) Count() int {
	return uf.count
}

// Validate returns ErrIndexOutOfRange (wrapped with p) unless 0 <= p < Len().
// Find, Union and Connected do not validate; like slice indexing they panic
// on an out-of-range element, so callers holding untrusted indices check here first.
func (uf *UF) Validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, len(uf.parent))
	}

	return nil
}

// Find returns the root of the component containing p, pointing every
// visited node at its grandparent on the way up (path halving).
//
// Complexity: amortised O(α(n)).
func (uf *UF) Find(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Union merges the components containing p and q and reports whether a merge
// happened. Joining two elements that are already connected is a no-op and
// returns false.
//
// The smaller tree is linked under the larger one; on a tie p's root stays root.
//
// Complexity: amortised O(α(n)).
func (uf *UF) Union(p, q int) bool {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return false
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true
}

// Connected reports whether p and q belong to the same component.
// Complexity: amortised O(α(n)).
func (uf *UF) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// SizeOf returns the number of elements in p's component.
func (uf *UF) SizeOf(p int) int {
	return uf.size[uf.Find(p)]
}
