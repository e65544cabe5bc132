package percolation

import (
	"errors"
	"fmt"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid dimension below 1 or too large to index.
	ErrInvalidSize = errors.New("percolation: grid size must be greater than 0")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: coordinate out of range")
)

// CoordinateError reports which coordinate was out of range.
// It matches ErrOutOfRange under errors.Is.
type CoordinateError struct {
	Arg   string // "row" or "col"
	Value int
	N     int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("percolation: %s %d is not between 1 and %d", e.Arg, e.Value, e.N)
}

// Unwrap returns ErrOutOfRange.
func (e *CoordinateError) Unwrap() error {
	return ErrOutOfRange
}

// Site addresses one cell of the grid, 1-based.
type Site struct {
	Row, Col int
}

// System is the contract trial drivers need from a percolation grid.
// *Percolation satisfies it.
type System interface {
	Open(row, col int) error
	IsOpen(row, col int) (bool, error)
	Percolates() bool
	NumberOfOpenSites() int
	Size() int
}

// Options tunes internal shortcuts. None of them changes observable results.
//
//   - Pruning:       skip the percolation test while fewer than n sites are open.
//   - SkipConnected: skip a union when both sites are already connected.
type Options struct {
	Pruning       bool
	SkipConnected bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables both shortcuts.
func DefaultOptions() Options {
	return Options{
		Pruning:       true,
		SkipConnected: true,
	}
}

// WithPruning toggles the open-count lower bound on the percolation test.
func WithPruning(on bool) Option {
	return func(o *Options) {
		o.Pruning = on
	}
}

// WithSkipConnected toggles the connected-check before each neighbour union.
func WithSkipConnected(on bool) Option {
	return func(o *Options) {
		o.SkipConnected = on
	}
}
