package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolation/unionfind"
)

// neighborOffsets lists (dRow, dCol) for left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Percolation is an n×n site grid with incremental top/bottom connectivity.
// Topology is fixed at construction; connectivity only grows.
type Percolation struct {
	n          int
	anchor     int    // index n² in both forests
	open       []bool // row-major, index (row-1)*n + (col-1)
	openSites  int
	percolates bool
	top        *unionfind.UF // anchor ~ open top-row sites
	bottom     *unionfind.UF // anchor ~ open bottom-row sites
	opts       Options
}

var _ System = (*Percolation)(nil)

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidSize if n ≤ 0 or if n²+1 does not fit in an int.
//
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if n > (math.MaxInt-1)/n {
		return nil, fmt.Errorf("%w: %d×%d sites overflow int", ErrInvalidSize, n, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sites := n * n
	top, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}
	bottom, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	return &Percolation{
		n:      n,
		anchor: sites,
		open:   make([]bool, sites),
		top:    top,
		bottom: bottom,
		opts:   o,
	}, nil
}

// Size returns n.
func (p *Percolation) Size() int {
	return p.n
}

// Open opens site (row, col) if it is blocked and links it to its open
// neighbours. Opening an open site is a no-op.
// Returns *CoordinateError if row or col is outside [1, n].
//
// Complexity: amortised O(α(n²)).
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	site := p.index(row, col)
	if p.open[site] {
		return nil
	}

	p.open[site] = true
	p.openSites++
	p.connect(row, col, site)

	if p.percolates {
		return nil
	}
	if p.opts.Pruning && p.openSites < p.n {
		return nil
	}
	if p.top.Connected(site, p.anchor) && p.bottom.Connected(site, p.anchor) {
		p.percolates = true
	}

	return nil
}

// connect joins site with its open neighbours in both forests, and with the
// anchors when it lies on the top or bottom row.
func (p *Percolation) connect(row, col, site int) {
	// A 1×1 grid: the only site is both top and bottom row.
	if p.n == 1 {
		p.top.Union(site, p.anchor)
		p.bottom.Union(site, p.anchor)
		p.percolates = true
		return
	}

	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !p.inBounds(r, c) {
			continue
		}
		nb := p.index(r, c)
		if !p.open[nb] {
			continue
		}
		p.link(p.top, site, nb)
		p.link(p.bottom, site, nb)
	}

	if row == 1 {
		p.link(p.top, site, p.anchor)
	}
	if row == p.n {
		p.link(p.bottom, site, p.anchor)
	}
}

// link unions a and b in uf, consulting Connected first when SkipConnected is set.
func (p *Percolation) link(uf *unionfind.UF, a, b int) {
	if p.opts.SkipConnected && uf.Connected(a, b) {
		return
	}
	uf.Union(a, b)
}

// IsOpen reports whether site (row, col) is open.
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether site (row, col) is connected to the top row through
// open sites. Only the top forest is consulted.
//
// Complexity: amortised O(α(n²)).
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.top.Connected(p.index(row, col), p.anchor), nil
}

// NumberOfOpenSites returns how many sites have been opened.
func (p *Percolation) NumberOfOpenSites() int {
	return p.openSites
}

// Percolates reports whether the top and bottom rows are connected.
// Once true it stays true.
func (p *Percolation) Percolates() bool {
	return p.percolates
}

// OpenFraction returns NumberOfOpenSites() / n².
func (p *Percolation) OpenFraction() float64 {
	return float64(p.openSites) / float64(len(p.open))
}

// OpenMask returns a copy of the open state, indexed [row-1][col-1].
func (p *Percolation) OpenMask() [][]bool {
	mask := make([][]bool, p.n)
	for r := 0; r < p.n; r++ {
		mask[r] = make([]bool, p.n)
		copy(mask[r], p.open[r*p.n:(r+1)*p.n])
	}

	return mask
}

// validate checks both coordinates before anything is touched.
func (p *Percolation) validate(row, col int) error {
	if row < 1 || row > p.n {
		return &CoordinateError{Arg: "row", Value: row, N: p.n}
	}
	if col < 1 || col > p.n {
		return &CoordinateError{Arg: "col", Value: col, N: p.n}
	}

	return nil
}

func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// index maps 1-based (row, col) to the row-major forest element.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + col - 1
}
