package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// allAlgorithms lists every supported algorithm.
var allAlgorithms = []search.Algorithm{
	search.BFS, search.DFS, search.UCSMin, search.UCSMax, search.AStar,
}

// requireValidPath asserts path runs src→dst through traversable cells,
// each consecutive pair orthogonally adjacent, without repeats.
func requireValidPath(t *testing.T, g *grid.Grid, path []grid.Point, src, dst grid.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, src, path[0], "path must start at source")
	require.Equal(t, dst, path[len(path)-1], "path must end at destination")
	seen := make(map[grid.Point]bool, len(path))
	for i, p := range path {
		require.True(t, g.IsTraversable(p), "path cell %v must be traversable", p)
		require.False(t, seen[p], "path revisits %v", p)
		seen[p] = true
		if i > 0 {
			require.Equal(t, 1, grid.Manhattan(path[i-1], p), "cells %v and %v are not adjacent", path[i-1], p)
		}
	}
}

// pathCost sums cell costs along path.
func pathCost(g *grid.Grid, path []grid.Point) int {
	total := 0
	for _, p := range path {
		total += g.At(p).Cost
	}
	return total
}

// cheapestCost relaxes node-weighted distances until nothing changes.
// Independent of the engine; fine for small grids.
func cheapestCost(g *grid.Grid, src, dst grid.Point) int {
	const inf = int(^uint(0) >> 1)
	dist := make(map[grid.Point]int)
	g.Each(func(c *grid.Cell) { dist[c.Point] = inf })
	dist[src] = g.At(src).Cost
	for changed := true; changed; {
		changed = false
		g.Each(func(c *grid.Cell) {
			if c.Blocked || dist[c.Point] == inf {
				return
			}
			for _, q := range g.Neighbors(c.Point) {
				nc := g.At(q)
				if nc.Blocked {
					continue
				}
				if d := dist[c.Point] + nc.Cost; d < dist[q] {
					dist[q] = d
					changed = true
				}
			}
		})
	}
	return dist[dst]
}
