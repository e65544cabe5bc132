// Package unionfind provides a fixed-size disjoint-set (union-find) forest
// over the integers 0..n-1.
//
// What:
//
//   - New(n) builds n singleton components.
//   - Union(p, q) merges the components containing p and q.
//   - Find(p) returns the canonical root of p's component.
//   - Connected(p, q) reports whether p and q share a component.
//   - Count() reports how many components remain.
//
// Why:
//
//   - Incremental connectivity: edges only ever arrive, never leave, so a
//     forest with union by size and path halving answers every query in
//     amortised O(α(n)) time instead of re-running a BFS.
//   - Percolation, Kruskal's MST and image labelling all reduce to this.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Find:      amortised O(α(n)).
//   - Union:     amortised O(α(n)).
//   - Connected: amortised O(α(n)).
//
// Errors:
//
//   - ErrInvalidSize: n < 0 passed to New.
//   - ErrIndexOutOfRange: returned by Validate for an element outside [0, n).
//     Find, Union, Connected and SizeOf panic on such elements, as a slice would.
//
// The structure is not safe for concurrent mutation. Find mutates the
// forest (path halving), so even concurrent readers must be serialised.
package unionfind
