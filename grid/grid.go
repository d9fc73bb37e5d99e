package grid

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Grid is a rows×cols mapping of cells with fixed dimensions.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: index = row*cols + col
}

// New allocates a rows×cols grid and fills every cell's cost with fill,
// visiting cells in row-major order so a seeded rng reproduces the grid.
// A nil fill means RegularFill.
// Returns ErrBadDimensions if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, fill FillFunc, rng *rand.Rand) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	if fill == nil {
		fill = RegularFill
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &g.cells[g.index(r, c)]
			cell.Point = Point{Row: r, Col: c}
			cell.Cost = fill(rng)
		}
	}

	return g, nil
}

// FromCosts builds a grid from explicit per-cell costs. A negative value
// marks a blocked cell (stored with cost 1).
// Returns ErrBadDimensions for an empty input, ErrNonRectangular for ragged rows.
// Complexity: O(rows×cols).
func FromCosts(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrBadDimensions
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(rows, cols, RegularFill, nil)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			cell := &g.cells[g.index(r, c)]
			if v < 0 {
				cell.Blocked = true
				continue
			}
			cell.Cost = v
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Cell(p Point) (*Cell, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return &g.cells[g.index(p.Row, p.Col)], nil
}

// At returns the cell at p, or nil when p is out of bounds.
func (g *Grid) At(p Point) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.index(p.Row, p.Col)]
}

// IsTraversable reports whether p is in bounds and not blocked.
func (g *Grid) IsTraversable(p Point) bool {
	c := g.At(p)
	return c != nil && !c.Blocked
}

// Neighbors returns the in-bounds orthogonal neighbors of p in the fixed
// order up, down, left, right. Blocked and visited cells are included;
// filtering is the caller's business.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		if q := p.Add(d[0], d[1]); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Block turns p into a wall. Out-of-bounds points are ignored.
func (g *Grid) Block(p Point) {
	if c := g.At(p); c != nil {
		c.Blocked = true
	}
}

// Carve opens p as a maze passage: cost 0 and unblocked.
// Out-of-bounds points are ignored.
func (g *Grid) Carve(p Point) {
	if c := g.At(p); c != nil {
		c.Cost = 0
		c.Blocked = false
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Reset clears Visited and Parent on every cell so the grid can be
// traversed again. Costs and walls are untouched.
// Complexity: O(rows×cols).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Clone returns a deep copy, bookkeeping included.
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Costs returns a fresh rows×cols matrix of cell costs.
func (g *Grid) Costs() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = g.cells[g.index(r, c)].Cost
		}
	}
	return out
}

// String renders one line per row: '#' for walls, '.' for carved
// passages (cost 0), otherwise the cost.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := &g.cells[g.index(r, c)]
			switch {
			case cell.Blocked:
				sb.WriteByte('#')
			case cell.Cost == 0:
				sb.WriteByte('.')
			default:
				sb.WriteString(strconv.Itoa(cell.Cost))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (row,col) to its row-major slot.
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}
