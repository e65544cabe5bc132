package replay

import (
	"fmt"

	"github.com/katalvlaran/percolation/floodfill"
	"github.com/katalvlaran/percolation/percolation"
)

// Run builds an n×n grid, opens every entry of s in order and calls fn with
// the resulting Step. A non-nil error from fn stops the run and is returned.
// Grid errors (bad size, coordinate out of range) are returned annotated
// with the script line.
func Run(s *Script, opts Options, fn func(Step) error) (*percolation.Percolation, error) {
	p, err := percolation.New(s.N, opts.Grid...)
	if err != nil {
		return nil, err
	}

	for i, e := range s.Entries {
		if err = p.Open(e.Row, e.Col); err != nil {
			return p, fmt.Errorf("replay: line %d: %w", e.Line, err)
		}
		// Coordinates were validated by Open; these cannot fail.
		open, _ := p.IsOpen(e.Row, e.Col)
		full, _ := p.IsFull(e.Row, e.Col)
		step := Step{
			Index:      i,
			Entry:      e,
			Open:       open,
			Full:       full,
			Percolates: p.Percolates(),
			OpenSites:  p.NumberOfOpenSites(),
		}
		if opts.Verify {
			if err = verify(p, i); err != nil {
				return p, err
			}
		}
		if fn != nil {
			if err = fn(step); err != nil {
				return p, err
			}
		}
	}

	return p, nil
}

// verify compares every site's fullness and the percolation flag with a
// flood fill of the current open mask.
func verify(p *percolation.Percolation, step int) error {
	g, err := floodfill.New(p.OpenMask())
	if err != nil {
		return err
	}
	full := g.FullSites()
	want := false
	n := p.Size()
	for c := 0; c < n; c++ {
		want = want || full[n-1][c]
	}
	if got := p.Percolates(); got != want {
		return &MismatchError{Step: step, Field: "percolates", Got: got, Want: want}
	}
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			got, _ := p.IsFull(r, c)
			if got != full[r-1][c-1] {
				return &MismatchError{
					Step:  step,
					Site:  percolation.Site{Row: r, Col: c},
					Field: "full",
					Got:   got,
					Want:  full[r-1][c-1],
				}
			}
		}
	}

	return nil
}
