package maze

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures the carver.
type Option func(*config)

type config struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// newConfig resolves options; without WithSeed/WithRand the RNG is seeded
// from the clock, and logs go nowhere.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.log = l
	}
	return cfg
}

// WithSeed makes carving reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger routes carver diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}
