package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates rows or cols smaller than 1.
	ErrBadDimensions = errors.New("grid: rows and cols must be at least 1")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Directions lists the orthogonal offsets in neighbor order:
// up, down, left, right. This order is the search tie-break.
var Directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Cell is one square of the grid.
//
// Cost is read-only to traversals; only generators and the maze carver
// write it. Cost 0 marks a carved maze passage.
type Cell struct {
	Point
	Cost    int
	Blocked bool // maze wall; never a source, destination or traversal target
	Visited bool

	parent    Point
	hasParent bool
}

// Parent returns the cell's parent and whether one has been set.
func (c *Cell) Parent() (Point, bool) {
	return c.parent, c.hasParent
}

// SetParent records p as the parent unless one is already set.
// The first caller wins; it reports whether p was recorded.
func (c *Cell) SetParent(p Point) bool {
	if c.hasParent {
		return false
	}
	c.parent, c.hasParent = p, true
	return true
}

// reset clears the traversal bookkeeping.
func (c *Cell) reset() {
	c.Visited = false
	c.parent, c.hasParent = Point{}, false
}
