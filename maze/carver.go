package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrBadStart indicates a carving start outside the grid or on a cell
// that is not an uncarved wall.
var ErrBadStart = errors.New("maze: bad start point")

// roomSteps are the offsets between neighbouring rooms.
var roomSteps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Carver is a resumable maze carver. Each Step handles the top stack frame:
// it either opens one new room or backtracks one room.
type Carver struct {
	g      *grid.Grid
	rng    *rand.Rand
	log    logrus.FieldLogger
	stack  []grid.Point
	dirs   [4][2]int
	carved int
	steps  int
}

// NewCarver carves start and returns a carver ready to Step.
// Returns ErrBadStart if start lies outside g or is not blocked: carving
// only opens walls of a NewBase grid.
func NewCarver(g *grid.Grid, start grid.Point, opts ...Option) (*Carver, error) {
	if g == nil || !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v out of bounds", ErrBadStart, start)
	}
	if !g.At(start).Blocked {
		return nil, fmt.Errorf("%w: %v is already open", ErrBadStart, start)
	}
	cfg := newConfig(opts...)
	c := &Carver{
		g:     g,
		rng:   cfg.rng,
		log:   cfg.log,
		stack: make([]grid.Point, 0, g.Size()/4+1),
		dirs:  roomSteps,
	}
	c.open(start)
	c.stack = append(c.stack, start)

	return c, nil
}

// Step advances carving by one stack frame and reports whether carving
// has finished. Calling Step after completion is a no-op returning true.
func (c *Carver) Step() bool {
	n := len(c.stack)
	if n == 0 {
		return true
	}
	c.steps++
	cur := c.stack[n-1]

	c.rng.Shuffle(len(c.dirs), func(i, j int) {
		c.dirs[i], c.dirs[j] = c.dirs[j], c.dirs[i]
	})
	for _, d := range c.dirs {
		target := cur.Add(d[0], d[1])
		cell := c.g.At(target)
		if cell == nil || !cell.Blocked {
			continue
		}
		c.open(target)
		c.open(cur.Add(d[0]/2, d[1]/2)) // wall between the two rooms
		c.stack = append(c.stack, target)
		return false
	}

	// dead end: backtrack
	c.stack = c.stack[:n-1]
	if len(c.stack) == 0 {
		c.log.WithFields(logrus.Fields{
			"rows":   c.g.Rows(),
			"cols":   c.g.Cols(),
			"carved": c.carved,
			"steps":  c.steps,
		}).Debug("maze: carving complete")
		return true
	}
	return false
}

// Run steps until carving finishes.
func (c *Carver) Run() {
	for !c.Step() {
	}
}

// Done reports whether carving has finished.
func (c *Carver) Done() bool { return len(c.stack) == 0 }

// Carved returns the number of cells opened so far.
func (c *Carver) Carved() int { return c.carved }

// Depth returns the current stack depth.
func (c *Carver) Depth() int { return len(c.stack) }

func (c *Carver) open(p grid.Point) {
	if cell := c.g.At(p); cell != nil && (cell.Blocked || cell.Cost != 0) {
		c.g.Carve(p)
		c.carved++
	}
}

// Carve carves g from start to completion.
func Carve(g *grid.Grid, start grid.Point, opts ...Option) error {
	c, err := NewCarver(g, start, opts...)
	if err != nil {
		return err
	}
	c.Run()
	return nil
}

// NewBase returns a rows×cols grid with every cell at cost 1 and blocked,
// ready to be carved.
func NewBase(rows, cols int) (*grid.Grid, error) {
	g, err := grid.New(rows, cols, grid.RegularFill, nil)
	if err != nil {
		return nil, err
	}
	g.Each(func(c *grid.Cell) { c.Blocked = true })
	return g, nil
}

// New builds a rows×cols maze carved from a uniformly random row of
// column 0. Mazes anchor to the left edge; carve a NewBase grid from
// another start to change that. Dimensions below 3 are accepted but give
// degenerate mazes.
func New(rows, cols int, opts ...Option) (*grid.Grid, error) {
	g, err := NewBase(rows, cols)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	start := grid.Point{Row: cfg.rng.Intn(rows), Col: 0}
	// start draw and carving share one RNG
	if err = Carve(g, start, WithRand(cfg.rng), WithLogger(cfg.log)); err != nil {
		return nil, err
	}
	return g, nil
}
