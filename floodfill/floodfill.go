package floodfill

// offsets are the von Neumann neighbours as (dRow, dCol): up, right, down, left.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// New copies mask into a Grid. mask[r][c] reports whether site (r+1, c+1) is open.
// Returns ErrEmptyGrid or ErrNonSquare for malformed masks.
func New(mask [][]bool) (*Grid, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(mask)
	open := make([][]bool, n)
	for r, row := range mask {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		open[r] = make([]bool, n)
		copy(open[r], row)
	}

	return &Grid{n: n, open: open}, nil
}

// Size returns n.
func (g *Grid) Size() int {
	return g.n
}

// FullSites returns, for every site, whether an open path reaches it from
// the top row. Indexed [row-1][col-1].
//
// Multi-source BFS seeded with every open top-row site.
func (g *Grid) FullSites() [][]bool {
	full := make([][]bool, g.n)
	for r := range full {
		full[r] = make([]bool, g.n)
	}

	queue := make([][2]int, 0, g.n)
	for c := 0; c < g.n; c++ {
		if g.open[0][c] {
			full[0][c] = true
			queue = append(queue, [2]int{0, c})
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			r, c := u[0]+d[0], u[1]+d[1]
			if r < 0 || r >= g.n || c < 0 || c >= g.n {
				continue
			}
			if !g.open[r][c] || full[r][c] {
				continue
			}
			full[r][c] = true
			queue = append(queue, [2]int{r, c})
		}
	}

	return full
}

// Percolates reports whether any bottom-row site is full.
func (g *Grid) Percolates() bool {
	full := g.FullSites()
	for _, f := range full[g.n-1] {
		if f {
			return true
		}
	}

	return false
}
