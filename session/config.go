package session

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/generator"
	"github.com/katalvlaran/gridpath/search"
)

// Default board settings.
const (
	DefaultRows     = 21
	DefaultCols     = 41
	DefaultCellSize = 26 // pixels per cell edge, used by FitDimensions callers
)

// Config describes the board a Session manages.
type Config struct {
	Rows      int
	Cols      int
	Kind      generator.Kind
	Algorithm search.Algorithm

	// Seed fixes the generator RNG. Zero means seed from the clock.
	Seed int64
}

// DefaultConfig returns a DefaultRows×DefaultCols maze searched with a*.
func DefaultConfig() Config {
	return Config{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		Kind:      generator.Maze,
		Algorithm: search.AStar,
	}
}

// Option customizes New.
type Option func(*settings)

type settings struct {
	cfg Config
	log logrus.FieldLogger
}

func newSettings(opts ...Option) settings {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithDimensions sets the board size in cells.
func WithDimensions(rows, cols int) Option {
	return func(s *settings) { s.cfg.Rows, s.cfg.Cols = rows, cols }
}

// WithKind selects the grid generator.
func WithKind(k generator.Kind) Option {
	return func(s *settings) { s.cfg.Kind = k }
}

// WithAlgorithm selects the search algorithm.
func WithAlgorithm(a search.Algorithm) Option {
	return func(s *settings) { s.cfg.Algorithm = a }
}

// WithSeed makes grid generation reproducible.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.cfg.Seed = seed }
}

// WithLogger routes session, generator and engine diagnostics to l.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *settings) { s.log = l }
}
