package search

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrUnknownAlgorithm is returned for an unsupported algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrPrecondition is returned when Start is called with a nil grid,
	// an out-of-bounds endpoint, or a blocked source.
	ErrPrecondition = errors.New("search: precondition violated")

	// ErrAlreadyStarted is returned when Start is called twice on one engine.
	ErrAlreadyStarted = errors.New("search: engine already started")

	// ErrNotStarted is returned by Step and Run before Start.
	ErrNotStarted = errors.New("search: engine not started")

	// ErrBrokenPath is returned when parent links from the destination do
	// not reach the source.
	ErrBrokenPath = errors.New("search: parent chain does not reach source")
)

// Algorithm selects the traversal strategy.
type Algorithm int

const (
	// BFS expands cells in level order.
	BFS Algorithm = iota
	// DFS expands the most recently discovered cell first.
	DFS
	// UCSMin expands the lowest accumulated cost first.
	UCSMin
	// UCSMax expands the highest accumulated cost first. Not a shortest-path
	// algorithm; kept as a contrasting variant.
	UCSMax
	// AStar expands the lowest accumulated cost plus Manhattan distance first.
	AStar
)

var algorithmNames = [...]string{
	BFS:    "bfs",
	DFS:    "dfs",
	UCSMin: "ucs-min",
	UCSMax: "ucs-max",
	AStar:  "a*",
}

// String returns the canonical name of a.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// Frontier returns the container kind a uses.
func (a Algorithm) Frontier() frontier.Kind {
	switch a {
	case BFS:
		return frontier.KindQueue
	case DFS:
		return frontier.KindStack
	case UCSMax:
		return frontier.KindMaxTupleHeap
	default:
		return frontier.KindMinTupleHeap
	}
}

// ParseAlgorithm maps a canonical name (case-insensitive) to an Algorithm.
// "astar" is accepted as an alias of "a*".
func ParseAlgorithm(name string) (Algorithm, error) {
	if strings.EqualFold(name, "astar") {
		return AStar, nil
	}
	for a, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status is the engine state.
type Status int

const (
	// Idle: created, not started.
	Idle Status = iota
	// Running: started, frontier not yet resolved.
	Running
	// Found: destination reached and path reconstructed.
	Found
	// Exhausted: frontier emptied without reaching the destination.
	Exhausted
)

// String names s.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether s is Found or Exhausted.
func (s Status) Terminal() bool {
	return s == Found || s == Exhausted
}

// Role tells a renderer how to draw an event's cell.
type Role int

const (
	// RoleVisited marks a cell expanded by the search.
	RoleVisited Role = iota
	// RolePath marks a cell on the reconstructed path.
	RolePath
)

// String names r.
func (r Role) String() string {
	if r == RolePath {
		return "path"
	}
	return "visited"
}

// Event is one rendering notification.
type Event struct {
	Cell grid.Point
	Role Role
}

// StepResult describes one Step.
type StepResult struct {
	Status  Status
	Current grid.Point // cell popped this step; zero when nothing was popped
	Popped  bool       // an entry was popped this step
	Stale   bool       // the popped entry was a visited duplicate and was discarded
	Events  []Event
}

// Result is the outcome of a traversal so far.
type Result struct {
	Algorithm Algorithm
	Status    Status
	Path      []grid.Point // source → destination inclusive; nil unless Found
	Order     []grid.Point // cells in visit order
	Cost      int          // sum of cell costs along Path, endpoints included
	Steps     int          // frontier pops, stale ones included
}

// Options holds hooks and knobs for an Engine.
type Options struct {
	// OnVisit is called when a cell is marked visited.
	OnVisit func(p grid.Point)

	// OnPush is called for each frontier push with the entry's priority.
	OnPush func(p grid.Point, priority int)

	// StrictEndpoints makes Start reject a blocked destination. By default a
	// blocked destination is accepted and the search ends Exhausted.
	StrictEndpoints bool

	// Logger receives debug diagnostics.
	Logger logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Options)

// DefaultOptions returns no-op hooks, lenient endpoints and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		OnVisit: func(grid.Point) {},
		OnPush:  func(grid.Point, int) {},
		Logger:  l,
	}
}

// WithOnVisit registers a callback run whenever a cell is marked visited.
func WithOnVisit(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush registers a callback run for every frontier push.
func WithOnPush(fn func(p grid.Point, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithStrictEndpoints rejects a blocked destination at Start with ErrPrecondition.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.StrictEndpoints = true
	}
}

// WithLogger routes engine diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
