package search

import (
	"context"
	"iter"

	"github.com/katalvlaran/gridpath/grid"
)

// Traverse starts the engine on g and returns a lazy sequence of rendering
// events: one RoleVisited event per newly visited cell, then, if the
// destination is reached, one RolePath event per path cell from source to
// destination. The sequence ends at Found or Exhausted; breaking out of
// the loop abandons the search between steps.
//
// Start errors are returned directly. A failure while stepping is yielded
// as a final (zero Event, err) pair.
//
// An engine traverses once; restart with a new engine.
func (e *Engine) Traverse(g *grid.Grid, src, dst grid.Point) (iter.Seq2[Event, error], error) {
	if err := e.Start(g, src, dst); err != nil {
		return nil, err
	}
	return func(yield func(Event, error) bool) {
		for !e.status.Terminal() {
			res, err := e.Step()
			if err != nil {
				yield(Event{}, err)
				return
			}
			for _, ev := range res.Events {
				if !yield(ev, nil) {
					return
				}
			}
		}
	}, nil
}

// Search runs alg from src to dst on g to completion and returns the
// result. It is New + Start + Run with a background context.
func Search(g *grid.Grid, alg Algorithm, src, dst grid.Point, opts ...Option) (*Result, error) {
	e, err := New(alg, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.Start(g, src, dst); err != nil {
		return nil, err
	}
	return e.Run(context.Background())
}
