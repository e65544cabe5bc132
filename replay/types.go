package replay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// Sentinel errors for replay.
var (
	// ErrMissingSize indicates the script has no size line.
	ErrMissingSize = errors.New("replay: missing grid size")
	// ErrMalformedLine indicates a line that is not a valid integer tuple.
	ErrMalformedLine = errors.New("replay: malformed line")
	// ErrMismatch indicates the engine disagreed with the flood-fill check.
	ErrMismatch = errors.New("replay: engine disagrees with flood fill")
)

// LineError locates a parse failure. It matches ErrMalformedLine.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("replay: line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("replay: line %d %q: want \"row col\"", e.Line, e.Text)
}

// Is reports ErrMalformedLine.
func (e *LineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// Unwrap returns the underlying conversion error, if any.
func (e *LineError) Unwrap() error {
	return e.Err
}

// MismatchError describes the first disagreement found by Verify.
type MismatchError struct {
	Step  int
	Site  percolation.Site // zero when the disagreement is on Percolates
	Field string           // "full" or "percolates"
	Got   bool
	Want  bool
}

func (e *MismatchError) Error() string {
	if e.Field == "percolates" {
		return fmt.Sprintf("replay: step %d: percolates=%v, flood fill says %v", e.Step, e.Got, e.Want)
	}
	return fmt.Sprintf("replay: step %d: site (%d,%d) full=%v, flood fill says %v",
		e.Step, e.Site.Row, e.Site.Col, e.Got, e.Want)
}

// Unwrap returns ErrMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Entry is one site to open, with its source line.
type Entry struct {
	percolation.Site
	Line int
}

// Script is a parsed open sequence.
type Script struct {
	N       int
	Entries []Entry
}

// Step is the grid state right after opening one site.
type Step struct {
	Index      int // 0-based position in the script
	Entry      Entry
	Open       bool
	Full       bool
	Percolates bool
	OpenSites  int
}

// Options configures Run.
//
//   - Verify: cross-check every step against a flood fill (O(n²) per step).
//   - Grid:   options passed to percolation.New.
type Options struct {
	Verify bool
	Grid   []percolation.Option
}
