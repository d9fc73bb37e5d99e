package search

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// entryArity is the shape of frontier entries: (priority, row, col).
const entryArity = 3

// costFunc computes the priority of a neighbor entry.
type costFunc func(running, cellCost int, next, dst grid.Point) int

// accumulate: f = running + cellCost.
func accumulate(running, cellCost int, _, _ grid.Point) int {
	return running + cellCost
}

// withManhattan: f = running + cellCost + Manhattan(next, dst).
func withManhattan(running, cellCost int, next, dst grid.Point) int {
	return running + cellCost + grid.Manhattan(next, dst)
}

// Engine is the traversal state machine for one search.
// It is not safe for concurrent use.
type Engine struct {
	alg  Algorithm
	opts Options
	cost costFunc
	log  logrus.FieldLogger

	status   Status
	g        *grid.Grid
	src, dst grid.Point
	fr       frontier.Container[frontier.Tuple]
	visited  mapset.Set[grid.Point]
	order    []grid.Point
	path     []grid.Point
	pathCost int
	steps    int
}

// New returns an Idle engine for alg.
// Returns ErrUnknownAlgorithm for an unsupported alg.
func New(alg Algorithm, opts ...Option) (*Engine, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fr, err := frontier.NewTuples(alg.Frontier(), entryArity)
	if err != nil {
		return nil, err
	}
	cost := accumulate
	if alg == AStar {
		cost = withManhattan
	}

	return &Engine{
		alg:     alg,
		opts:    o,
		cost:    cost,
		log:     o.Logger.WithField("algorithm", alg.String()),
		fr:      fr,
		visited: mapset.New[grid.Point](),
	}, nil
}

// Algorithm returns the engine's algorithm.
func (e *Engine) Algorithm() Algorithm { return e.alg }

// Status returns the current state.
func (e *Engine) Status() Status { return e.status }

// Visited reports whether this engine has visited p.
func (e *Engine) Visited(p grid.Point) bool { return e.visited.Has(p) }

// Pending returns the number of frontier entries, stale ones included.
func (e *Engine) Pending() int { return e.fr.Len() }

// Start binds the engine to g and seeds the frontier with the source.
//
// Preconditions (ErrPrecondition otherwise):
//   - g is non-nil and both endpoints are in bounds;
//   - src is not blocked;
//   - with WithStrictEndpoints, dst is not blocked either.
//
// g should carry no Visited/Parent state from an earlier traversal; call
// g.Reset first when reusing a grid.
func (e *Engine) Start(g *grid.Grid, src, dst grid.Point) error {
	if e.status != Idle {
		return fmt.Errorf("%w: status %v", ErrAlreadyStarted, e.status)
	}
	if g == nil {
		return fmt.Errorf("%w: grid is nil", ErrPrecondition)
	}
	if !g.InBounds(src) || !g.InBounds(dst) {
		return fmt.Errorf("%w: endpoints %v→%v outside %d×%d grid", ErrPrecondition, src, dst, g.Rows(), g.Cols())
	}
	if !g.IsTraversable(src) {
		return fmt.Errorf("%w: source %v is blocked", ErrPrecondition, src)
	}
	if e.opts.StrictEndpoints && !g.IsTraversable(dst) {
		return fmt.Errorf("%w: destination %v is blocked", ErrPrecondition, dst)
	}

	e.g, e.src, e.dst = g, src, dst
	start := g.At(src)
	start.SetParent(src) // the source is its own parent
	if err := e.push(src, start.Cost); err != nil {
		return err
	}
	e.status = Running
	e.log.WithFields(logrus.Fields{"source": src, "destination": dst}).Debug("search: started")

	return nil
}

// Step pops one frontier entry and advances the state machine.
//
//   - Idle: returns ErrNotStarted.
//   - Found/Exhausted: returns the terminal status and no events.
//   - Empty frontier: transitions to Exhausted.
//   - Stale entry (cell already visited): discarded, Stale set.
//   - Destination: marks it visited, reconstructs the path, transitions to
//     Found and returns visited + path events.
//   - Otherwise: marks the cell visited and pushes its open neighbors.
func (e *Engine) Step() (StepResult, error) {
	switch e.status {
	case Idle:
		return StepResult{Status: Idle}, ErrNotStarted
	case Found, Exhausted:
		return StepResult{Status: e.status}, nil
	}

	if e.fr.IsEmpty() {
		e.finish(Exhausted)
		return StepResult{Status: Exhausted}, nil
	}
	top, err := e.fr.Pop()
	if err != nil {
		return StepResult{Status: e.status}, err
	}
	e.steps++

	p := grid.Point{Row: top[1], Col: top[2]}
	res := StepResult{Status: Running, Current: p, Popped: true}
	cell := e.g.At(p)
	if cell.Visited {
		res.Stale = true
		return res, nil
	}

	cell.Visited = true
	e.visited.Put(p)
	e.order = append(e.order, p)
	e.opts.OnVisit(p)
	res.Events = append(res.Events, Event{Cell: p, Role: RoleVisited})

	if p == e.dst {
		if err = e.reconstruct(); err != nil {
			return res, err
		}
		e.finish(Found)
		res.Status = Found
		for _, q := range e.path {
			res.Events = append(res.Events, Event{Cell: q, Role: RolePath})
		}
		return res, nil
	}

	for _, q := range e.g.Neighbors(p) {
		nc := e.g.At(q)
		if nc.Visited || nc.Blocked {
			continue
		}
		nc.SetParent(p)
		if err = e.push(q, e.cost(top[0], nc.Cost, q, e.dst)); err != nil {
			return res, err
		}
	}

	return res, nil
}

// Run steps until the search ends or ctx is cancelled. The context is
// checked once per step; a nil ctx means context.Background(). On
// cancellation the partial Result is returned with ctx.Err().
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.status == Idle {
		return nil, ErrNotStarted
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for !e.status.Terminal() {
		select {
		case <-ctx.Done():
			return e.Result(), ctx.Err()
		default:
		}
		if _, err := e.Step(); err != nil {
			return e.Result(), err
		}
	}
	return e.Result(), nil
}

// Result snapshots the traversal. Slices are copies.
func (e *Engine) Result() *Result {
	r := &Result{
		Algorithm: e.alg,
		Status:    e.status,
		Order:     append([]grid.Point(nil), e.order...),
		Steps:     e.steps,
	}
	if e.status == Found {
		r.Path = append([]grid.Point(nil), e.path...)
		r.Cost = e.pathCost
	}
	return r
}

func (e *Engine) push(p grid.Point, priority int) error {
	if err := e.fr.Push(frontier.Tuple{priority, p.Row, p.Col}); err != nil {
		return err
	}
	e.opts.OnPush(p, priority)
	return nil
}

// reconstruct walks parent links from the destination back to the source.
// A chain longer than the grid, or one that ends early, means parents were
// left over from another traversal.
func (e *Engine) reconstruct() error {
	path := make([]grid.Point, 0, grid.Manhattan(e.src, e.dst)+1)
	cost := 0
	for cur := e.dst; ; {
		c := e.g.At(cur)
		path = append(path, cur)
		cost += c.Cost
		if cur == e.src {
			break
		}
		parent, ok := c.Parent()
		if !ok || len(path) > e.g.Size() {
			return fmt.Errorf("%w: stuck at %v", ErrBrokenPath, cur)
		}
		cur = parent
	}
	// reverse to get source → destination
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	e.path, e.pathCost = path, cost

	return nil
}

func (e *Engine) finish(s Status) {
	e.status = s
	e.fr.Clear()
	e.log.WithFields(logrus.Fields{
		"status":  s.String(),
		"steps":   e.steps,
		"visited": e.visited.Size(),
		"path":    len(e.path),
	}).Debug("search: finished")
}
