package floodfill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mask builds an open mask from rows of '#' (blocked) and '.' (open).
func mask(rows ...string) [][]bool {
	m := make([][]bool, len(rows))
	for r, s := range rows {
		m[r] = make([]bool, len(s))
		for c, ch := range s {
			m[r][c] = ch == '.'
		}
	}

	return m
}

// TestFullSites_Backwash checks that bottom sites reached only through the
// bottom row are not full.
//
//	. # #
//	. # #
//	. # .
func TestFullSites_Backwash(t *testing.T) {
	g, err := New(mask(
		".##",
		".##",
		".#.",
	))
	require.NoError(t, err)
	require.True(t, g.Percolates())

	full := g.FullSites()
	require.True(t, full[2][0])
	require.False(t, full[2][2], "(3,3) is isolated from the top")
}

// TestPercolates_Winding follows a path that doubles back upward.
//
//	. # . . .
//	. # . # .
//	. . . # .
//	# # # # .
//	# # # # .
func TestPercolates_Winding(t *testing.T) {
	g, err := New(mask(
		".#...",
		".#.#.",
		"...#.",
		"####.",
		"####.",
	))
	require.NoError(t, err)
	require.True(t, g.Percolates())
	require.True(t, g.FullSites()[4][4])
}

// TestPercolates_DiagonalDoesNotCount ensures only von Neumann neighbours link.
func TestPercolates_DiagonalDoesNotCount(t *testing.T) {
	g, err := New(mask(
		".#",
		"#.",
	))
	require.NoError(t, err)
	require.False(t, g.Percolates())
}

// TestNew_InvalidMasks covers the construction errors.
func TestNew_InvalidMasks(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = New([][]bool{{}})
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = New(mask("..", "."))
	require.ErrorIs(t, err, ErrNonSquare)
	_, err = New(mask("...", "..."))
	require.ErrorIs(t, err, ErrNonSquare)
}

// TestNew_CopiesInput ensures later edits to the caller's mask are not observed.
func TestNew_CopiesInput(t *testing.T) {
	m := mask("#")
	g, err := New(m)
	require.NoError(t, err)
	m[0][0] = true
	require.False(t, g.Percolates())
	require.Equal(t, 1, g.Size())
}
