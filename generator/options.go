// SPDX-License-Identifier: MIT
// Package: gridpath/generator
//
// options.go: functional options and resolved configuration.
//
// Contract:
//   • Options mutate a generatorConfig; later options override earlier ones.
//   • WithRand/WithLogger panic on nil (programmer error, surfaced early).
//   • Determinism is explicit: seed via WithSeed or WithRand.

package generator

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Option customizes Create.
type Option func(*generatorConfig)

// generatorConfig is the single source of truth for generator knobs.
type generatorConfig struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// newGeneratorConfig applies opts over defaults: clock-seeded RNG and a
// discarding logger.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{}
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

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithLogger routes generator diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.log = l
	}
}
