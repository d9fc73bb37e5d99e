package session

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/generator"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrNoEndpoints indicates a traversal was requested before both
	// source and destination were selected.
	ErrNoEndpoints = fmt.Errorf("session: source and destination required: %w", search.ErrPrecondition)

	// ErrInvalidCell indicates an endpoint outside the grid or on a wall.
	ErrInvalidCell = errors.New("session: cell is not selectable")
)

// Selection reports what a Select call did.
type Selection int

const (
	// Ignored: the cell was not selectable; nothing changed.
	Ignored Selection = iota
	// SourceSet: the cell became the source.
	SourceSet
	// DestinationSet: the cell became the destination.
	DestinationSet
	// Cleared: both endpoints were cleared.
	Cleared
)

// String names s.
func (s Selection) String() string {
	switch s {
	case SourceSet:
		return "source"
	case DestinationSet:
		return "destination"
	case Cleared:
		return "cleared"
	default:
		return "ignored"
	}
}

// Session owns one board and its selection state.
type Session struct {
	cfg Config
	rng *rand.Rand
	log logrus.FieldLogger
	g   *grid.Grid

	src, dst       grid.Point
	hasSrc, hasDst bool
}

// New validates the configuration and generates the first grid.
//
// Errors: search.ErrUnknownAlgorithm, generator.ErrUnknownKind,
// grid.ErrBadDimensions (all wrapped).
func New(opts ...Option) (*Session, error) {
	st := newSettings(opts...)
	if err := validAlgorithm(st.cfg.Algorithm); err != nil {
		return nil, err
	}
	seed := st.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg: st.cfg,
		rng: rand.New(rand.NewSource(seed)),
		log: st.log,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the current configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the board. The session keeps ownership; callers may read it
// and call Reset but must not search it concurrently with the session.
func (s *Session) Grid() *grid.Grid { return s.g }

// Regenerate replaces the grid with a fresh one of the configured kind and
// size and clears the selection. The session RNG advances, so successive
// boards differ while the whole sequence stays reproducible for a fixed
// seed.
func (s *Session) Regenerate() error {
	g, err := generator.Create(s.cfg.Kind, s.cfg.Rows, s.cfg.Cols,
		generator.WithRand(s.rng), generator.WithLogger(s.log))
	if err != nil {
		return err
	}
	s.g = g
	s.ClearEndpoints()
	s.log.WithFields(logrus.Fields{
		"kind": s.cfg.Kind.String(),
		"rows": s.cfg.Rows,
		"cols": s.cfg.Cols,
	}).Debug("session: board generated")

	return nil
}

// Resize regenerates the board at rows×cols. On error the previous board
// and dimensions are kept.
func (s *Session) Resize(rows, cols int) error {
	prevRows, prevCols := s.cfg.Rows, s.cfg.Cols
	s.cfg.Rows, s.cfg.Cols = rows, cols
	if err := s.Regenerate(); err != nil {
		s.cfg.Rows, s.cfg.Cols = prevRows, prevCols
		return err
	}
	return nil
}

// SetKind switches the generator and regenerates the board. On error the
// previous board and kind are kept.
func (s *Session) SetKind(k generator.Kind) error {
	prev := s.cfg.Kind
	s.cfg.Kind = k
	if err := s.Regenerate(); err != nil {
		s.cfg.Kind = prev
		return err
	}
	return nil
}

// SetAlgorithm selects the algorithm used by the next traversal.
func (s *Session) SetAlgorithm(a search.Algorithm) error {
	if err := validAlgorithm(a); err != nil {
		return err
	}
	s.cfg.Algorithm = a
	return nil
}

// IsValid reports whether p can be chosen as an endpoint: inside the grid
// and not a wall.
func (s *Session) IsValid(p grid.Point) bool {
	return s.g.IsTraversable(p)
}

// Select applies one click of the selection cycle at p.
func (s *Session) Select(p grid.Point) Selection {
	if !s.IsValid(p) {
		return Ignored
	}
	switch {
	case !s.hasSrc:
		s.src, s.hasSrc = p, true
		return SourceSet
	case !s.hasDst:
		s.dst, s.hasDst = p, true
		return DestinationSet
	default:
		s.ClearEndpoints()
		return Cleared
	}
}

// SetSource sets the source directly.
func (s *Session) SetSource(p grid.Point) error {
	if !s.IsValid(p) {
		return fmt.Errorf("%w: source %v", ErrInvalidCell, p)
	}
	s.src, s.hasSrc = p, true
	return nil
}

// SetDestination sets the destination directly.
func (s *Session) SetDestination(p grid.Point) error {
	if !s.IsValid(p) {
		return fmt.Errorf("%w: destination %v", ErrInvalidCell, p)
	}
	s.dst, s.hasDst = p, true
	return nil
}

// ClearEndpoints forgets both source and destination.
func (s *Session) ClearEndpoints() {
	s.src, s.dst = grid.Point{}, grid.Point{}
	s.hasSrc, s.hasDst = false, false
}

// Source returns the selected source, if any.
func (s *Session) Source() (grid.Point, bool) { return s.src, s.hasSrc }

// Destination returns the selected destination, if any.
func (s *Session) Destination() (grid.Point, bool) { return s.dst, s.hasDst }

// Begin resets the grid and returns a started engine for the configured
// algorithm, ready to Step. Extra options are applied after the session's
// logger.
func (s *Session) Begin(opts ...search.Option) (*search.Engine, error) {
	if !s.hasSrc || !s.hasDst {
		return nil, ErrNoEndpoints
	}
	s.g.Reset()
	e, err := search.New(s.cfg.Algorithm, s.engineOptions(opts)...)
	if err != nil {
		return nil, err
	}
	if err = e.Start(s.g, s.src, s.dst); err != nil {
		return nil, err
	}
	return e, nil
}

// Traverse resets the grid and streams the events of a fresh search
// between the selected endpoints.
func (s *Session) Traverse(opts ...search.Option) (iter.Seq2[search.Event, error], error) {
	if !s.hasSrc || !s.hasDst {
		return nil, ErrNoEndpoints
	}
	s.g.Reset()
	e, err := search.New(s.cfg.Algorithm, s.engineOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return e.Traverse(s.g, s.src, s.dst)
}

// Solve runs a fresh search between the selected endpoints to completion.
func (s *Session) Solve(ctx context.Context, opts ...search.Option) (*search.Result, error) {
	e, err := s.Begin(opts...)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

func (s *Session) engineOptions(extra []search.Option) []search.Option {
	return append([]search.Option{search.WithLogger(s.log)}, extra...)
}

// FitDimensions converts a drawing area in pixels into whole cells of
// cellPx per edge. Partial cells at the right and bottom are dropped.
//
// Errors: grid.ErrBadDimensions when cellPx < 1 or the area holds less
// than one full cell in either direction.
func FitDimensions(widthPx, heightPx, cellPx int) (rows, cols int, err error) {
	if cellPx < 1 {
		return 0, 0, fmt.Errorf("%w: cell size %d", grid.ErrBadDimensions, cellPx)
	}
	rows, cols = heightPx/cellPx, widthPx/cellPx
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %d×%d px holds no %d px cell", grid.ErrBadDimensions, widthPx, heightPx, cellPx)
	}
	return rows, cols, nil
}

func validAlgorithm(a search.Algorithm) error {
	_, err := search.ParseAlgorithm(a.String())
	return err
}
