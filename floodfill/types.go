package floodfill

import "errors"

// Sentinel errors for floodfill construction.
var (
	// ErrEmptyGrid indicates the mask has no rows or no columns.
	ErrEmptyGrid = errors.New("floodfill: mask must have at least one row and one column")
	// ErrNonSquare indicates rows of the wrong length.
	ErrNonSquare = errors.New("floodfill: mask must be n×n")
)

// Grid is an immutable n×n open mask. open[r][c] is site (r+1, c+1).
type Grid struct {
	n    int
	open [][]bool
}
