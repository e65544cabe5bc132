package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a negative element count.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// UF is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UF struct {
	parent []int
	size   []int
	count  int
}
