package search_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/generator"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func regular(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, grid.RegularFill, nil)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Construction and preconditions
//----------------------------------------------------------------------------//

func TestNew_UnknownAlgorithm(t *testing.T) {
	e, err := search.New(search.Algorithm(99))
	assert.Nil(t, e)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.New(search.Algorithm(-1))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestStart_Preconditions(t *testing.T) {
	g, err := grid.FromCosts([][]int{
		{1, 1, -1},
		{1, 1, 1},
	})
	require.NoError(t, err)
	wall := grid.Point{Row: 0, Col: 2}

	cases := []struct {
		name     string
		g        *grid.Grid
		src, dst grid.Point
		opts     []search.Option
	}{
		{"NilGrid", nil, grid.Point{}, grid.Point{}, nil},
		{"SourceOutOfBounds", g, grid.Point{Row: -1}, grid.Point{}, nil},
		{"DestinationOutOfBounds", g, grid.Point{}, grid.Point{Row: 2, Col: 0}, nil},
		{"BlockedSource", g, wall, grid.Point{}, nil},
		{"StrictBlockedDestination", g, grid.Point{}, wall, []search.Option{search.WithStrictEndpoints()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := search.New(search.BFS, tc.opts...)
			require.NoError(t, err)
			assert.ErrorIs(t, e.Start(tc.g, tc.src, tc.dst), search.ErrPrecondition)
			assert.Equal(t, search.Idle, e.Status(), "failed Start must leave the engine Idle")
		})
	}
}

func TestEngine_Lifecycle(t *testing.T) {
	g := regular(t, 2, 2)
	e, err := search.New(search.DFS)
	require.NoError(t, err)
	assert.Equal(t, search.DFS, e.Algorithm())

	_, err = e.Step()
	assert.ErrorIs(t, err, search.ErrNotStarted)
	_, err = e.Run(context.Background())
	assert.ErrorIs(t, err, search.ErrNotStarted)

	require.NoError(t, e.Start(g, grid.Point{}, grid.Point{Row: 1, Col: 1}))
	assert.Equal(t, search.Running, e.Status())
	assert.Equal(t, 1, e.Pending())
	assert.ErrorIs(t, e.Start(g, grid.Point{}, grid.Point{}), search.ErrAlreadyStarted)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.Status)
	assert.Equal(t, 0, e.Pending(), "frontier is cleared at a terminal state")

	// terminal states are sticky and quiet
	step, err := e.Step()
	require.NoError(t, err)
	assert.Equal(t, search.Found, step.Status)
	assert.Empty(t, step.Events)
	assert.False(t, step.Popped)
}

//----------------------------------------------------------------------------//
// Scenario: 5×5 regular grid, (0,0) → (4,4)
//----------------------------------------------------------------------------//

func TestSearch_FiveByFive(t *testing.T) {
	src, dst := grid.Point{Row: 0, Col: 0}, grid.Point{Row: 4, Col: 4}
	for _, alg := range allAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := regular(t, 5, 5)
			res, err := search.Search(g, alg, src, dst)
			require.NoError(t, err)
			require.Equal(t, search.Found, res.Status)
			requireValidPath(t, g, res.Path, src, dst)
			assert.GreaterOrEqual(t, len(res.Path), 9)
			assert.Equal(t, len(res.Path), res.Cost, "unit costs: cost equals cell count")
			assert.Equal(t, dst, res.Order[len(res.Order)-1])
			assert.GreaterOrEqual(t, res.Steps, len(res.Order))

			switch alg {
			case search.BFS, search.UCSMin, search.AStar:
				assert.Len(t, res.Path, 9)
			}
		})
	}
}

// TestBFS_Completeness: on open grids BFS corner to corner always finds a
// path of Manhattan+1 cells.
func TestBFS_Completeness(t *testing.T) {
	for rows := 1; rows <= 8; rows++ {
		for cols := 1; cols <= 8; cols++ {
			g := regular(t, rows, cols)
			src, dst := grid.Point{}, grid.Point{Row: rows - 1, Col: cols - 1}
			res, err := search.Search(g, search.BFS, src, dst)
			require.NoError(t, err)
			require.Equal(t, search.Found, res.Status, "%dx%d", rows, cols)
			requireValidPath(t, g, res.Path, src, dst)
			assert.Len(t, res.Path, grid.Manhattan(src, dst)+1, "%dx%d", rows, cols)
		}
	}
}

func TestSearch_SourceIsDestination(t *testing.T) {
	for _, alg := range allAlgorithms {
		g := regular(t, 3, 3)
		p := grid.Point{Row: 1, Col: 1}
		res, err := search.Search(g, alg, p, p)
		require.NoError(t, err)
		assert.Equal(t, search.Found, res.Status)
		assert.Equal(t, []grid.Point{p}, res.Path)
		assert.Equal(t, 1, res.Steps)
	}
}

//----------------------------------------------------------------------------//
// Unreachable destinations
//----------------------------------------------------------------------------//

func TestSearch_BlockedDestination(t *testing.T) {
	g, err := generator.Create(generator.Maze, 9, 9, generator.WithSeed(4))
	require.NoError(t, err)

	var src, wall grid.Point
	foundSrc, foundWall := false, false
	g.Each(func(c *grid.Cell) {
		if !c.Blocked && !foundSrc {
			src, foundSrc = c.Point, true
		}
		if c.Blocked && !foundWall {
			wall, foundWall = c.Point, true
		}
	})
	require.True(t, foundSrc && foundWall)

	for _, alg := range allAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g.Reset()
			e, err := search.New(alg)
			require.NoError(t, err)
			require.NoError(t, e.Start(g, src, wall))
			res, err := e.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, search.Exhausted, res.Status)
			assert.Nil(t, res.Path)
			assert.False(t, g.At(wall).Visited, "blocked destination must never be visited")
			assert.False(t, e.Visited(wall))

			// the whole maze is one component, so everything open was visited
			open := 0
			g.Each(func(c *grid.Cell) {
				if !c.Blocked {
					open++
				}
			})
			assert.Len(t, res.Order, open)
		})
	}
}

func TestSearch_Disconnected(t *testing.T) {
	g, err := grid.FromCosts([][]int{
		{1, 1, -1, 1},
		{1, 1, -1, 1},
	})
	require.NoError(t, err)
	res, err := search.Search(g, search.AStar, grid.Point{}, grid.Point{Row: 1, Col: 3})
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Status)
	assert.Len(t, res.Order, 4)
	assert.Zero(t, res.Cost)
}

//----------------------------------------------------------------------------//
// Weighted and maze grids
//----------------------------------------------------------------------------//

// TestUCSMin_OptimalOnWeighted compares ucs-min against an independent
// relaxation on random weighted grids.
func TestUCSMin_OptimalOnWeighted(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := generator.Create(generator.Weighted, 10, 12, generator.WithSeed(seed))
		require.NoError(t, err)
		src, dst := grid.Point{Row: 9, Col: 0}, grid.Point{Row: 2, Col: 11}
		want := cheapestCost(g, src, dst)

		res, err := search.Search(g, search.UCSMin, src, dst)
		require.NoError(t, err)
		require.Equal(t, search.Found, res.Status)
		requireValidPath(t, g, res.Path, src, dst)
		assert.Equal(t, pathCost(g, res.Path), res.Cost)
		assert.Equal(t, want, res.Cost, "seed %d", seed)
	}
}

// TestSearch_WeightedValidForAll: every algorithm returns a valid path whose
// cost is never below the optimum.
func TestSearch_WeightedValidForAll(t *testing.T) {
	base, err := generator.Create(generator.Weighted, 9, 9, generator.WithSeed(21))
	require.NoError(t, err)
	src, dst := grid.Point{Row: 0, Col: 8}, grid.Point{Row: 8, Col: 0}
	best := cheapestCost(base, src, dst)

	for _, alg := range allAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := base.Clone()
			res, err := search.Search(g, alg, src, dst)
			require.NoError(t, err)
			require.Equal(t, search.Found, res.Status)
			requireValidPath(t, g, res.Path, src, dst)
			assert.GreaterOrEqual(t, res.Cost, best)
		})
	}
}

// TestSearch_MazeUniquePath: a perfect maze has exactly one simple path
// between two open cells, so every algorithm must return it.
func TestSearch_MazeUniquePath(t *testing.T) {
	g, err := generator.Create(generator.Maze, 15, 21, generator.WithSeed(7))
	require.NoError(t, err)
	comps := g.Components()
	require.Len(t, comps, 1)
	open := comps[0]
	src, dst := open[0], open[len(open)-1]

	var want []grid.Point
	for _, alg := range allAlgorithms {
		g.Reset()
		res, err := search.Search(g, alg, src, dst)
		require.NoError(t, err)
		require.Equal(t, search.Found, res.Status, alg.String())
		requireValidPath(t, g, res.Path, src, dst)
		if want == nil {
			want = res.Path
			continue
		}
		assert.Equal(t, want, res.Path, alg.String())
	}
}

//----------------------------------------------------------------------------//
// Stepping, events, hooks, cancellation
//----------------------------------------------------------------------------//

// TestStep_LazyDeletion: on an open grid BFS pushes interior cells more than
// once; the duplicates surface as stale steps.
func TestStep_LazyDeletion(t *testing.T) {
	g := regular(t, 3, 3)
	e, err := search.New(search.BFS)
	require.NoError(t, err)
	require.NoError(t, e.Start(g, grid.Point{}, grid.Point{Row: 2, Col: 2}))

	stale := 0
	for !e.Status().Terminal() {
		res, err := e.Step()
		require.NoError(t, err)
		if res.Stale {
			stale++
			assert.Empty(t, res.Events)
			assert.True(t, res.Popped)
		}
	}
	r := e.Result()
	assert.Equal(t, 3, stale)
	assert.Equal(t, r.Steps, len(r.Order)+stale)
}

func TestTraverse_Events(t *testing.T) {
	g := regular(t, 4, 4)
	e, err := search.New(search.UCSMin)
	require.NoError(t, err)
	src, dst := grid.Point{Row: 3, Col: 0}, grid.Point{Row: 0, Col: 3}
	events, err := e.Traverse(g, src, dst)
	require.NoError(t, err)

	var visited, path []grid.Point
	for ev, err := range events {
		require.NoError(t, err)
		switch ev.Role {
		case search.RoleVisited:
			require.Empty(t, path, "visited events precede path events")
			visited = append(visited, ev.Cell)
		case search.RolePath:
			path = append(path, ev.Cell)
		}
	}
	res := e.Result()
	assert.Equal(t, search.Found, e.Status())
	assert.Equal(t, res.Order, visited)
	assert.Equal(t, res.Path, path)
	requireValidPath(t, g, path, src, dst)

	_, err = e.Traverse(g, src, dst)
	assert.ErrorIs(t, err, search.ErrAlreadyStarted)
}

func TestTraverse_Abandon(t *testing.T) {
	g := regular(t, 6, 6)
	e, err := search.New(search.BFS)
	require.NoError(t, err)
	events, err := e.Traverse(g, grid.Point{}, grid.Point{Row: 5, Col: 5})
	require.NoError(t, err)

	n := 0
	for range events {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, search.Running, e.Status())
	assert.Len(t, e.Result().Order, 3)
}

func TestTraverse_PreconditionError(t *testing.T) {
	e, err := search.New(search.BFS)
	require.NoError(t, err)
	seq, err := e.Traverse(nil, grid.Point{}, grid.Point{})
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, search.ErrPrecondition)
}

func TestStep_BrokenPath(t *testing.T) {
	g := regular(t, 3, 3)
	dst := grid.Point{Row: 2, Col: 2}
	// leftover parent from an earlier run pointing at itself
	g.At(dst).SetParent(dst)

	e, err := search.New(search.BFS)
	require.NoError(t, err)
	require.NoError(t, e.Start(g, grid.Point{}, dst))
	_, err = e.Run(context.Background())
	assert.ErrorIs(t, err, search.ErrBrokenPath)
}

func TestRun_Cancelled(t *testing.T) {
	g := regular(t, 10, 10)
	e, err := search.New(search.DFS)
	require.NoError(t, err)
	require.NoError(t, e.Start(g, grid.Point{}, grid.Point{Row: 9, Col: 9}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, search.Running, res.Status)
	assert.Zero(t, res.Steps)
}

func TestRun_NilContext(t *testing.T) {
	g := regular(t, 4, 4)
	e, err := search.New(search.BFS)
	require.NoError(t, err)
	require.NoError(t, e.Start(g, grid.Point{}, grid.Point{Row: 3, Col: 3}))

	var ctx context.Context // nil
	res, err := e.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.Status)
	assert.Len(t, res.Path, 7)
}

func TestHooks(t *testing.T) {
	g := regular(t, 3, 3)
	var visits []grid.Point
	pushes := map[grid.Point][]int{}
	res, err := search.Search(g, search.AStar, grid.Point{}, grid.Point{Row: 0, Col: 2},
		search.WithOnVisit(func(p grid.Point) { visits = append(visits, p) }),
		search.WithOnPush(func(p grid.Point, prio int) { pushes[p] = append(pushes[p], prio) }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, visits)

	// seed: cost(source) = 1
	assert.Equal(t, []int{1}, pushes[grid.Point{}])
	// (0,1) from (0,0): 1 + 1 + Manhattan((0,1),(0,2)) = 3
	assert.Equal(t, 3, pushes[grid.Point{Row: 0, Col: 1}][0])
	// (1,0) from (0,0): 1 + 1 + Manhattan((1,0),(0,2)) = 5
	assert.Equal(t, 5, pushes[grid.Point{Row: 1, Col: 0}][0])
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	g := regular(t, 2, 2)
	_, err := search.Search(g, search.UCSMax, grid.Point{}, grid.Point{Row: 1, Col: 1}, search.WithLogger(l))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "search: started")
	assert.Contains(t, out, "search: finished")
	assert.Contains(t, out, "algorithm=ucs-max")
	assert.Contains(t, out, "status=found")
}

//----------------------------------------------------------------------------//
// Names
//----------------------------------------------------------------------------//

func TestAlgorithmNames(t *testing.T) {
	want := map[search.Algorithm]struct {
		name string
		kind frontier.Kind
	}{
		search.BFS:    {"bfs", frontier.KindQueue},
		search.DFS:    {"dfs", frontier.KindStack},
		search.UCSMin: {"ucs-min", frontier.KindMinTupleHeap},
		search.UCSMax: {"ucs-max", frontier.KindMaxTupleHeap},
		search.AStar:  {"a*", frontier.KindMinTupleHeap},
	}
	for alg, w := range want {
		assert.Equal(t, w.name, alg.String())
		assert.Equal(t, w.kind, alg.Frontier())
		got, err := search.ParseAlgorithm(w.name)
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	got, err := search.ParseAlgorithm("AStar")
	require.NoError(t, err)
	assert.Equal(t, search.AStar, got)

	_, err = search.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(7)", search.Algorithm(7).String())

	for s, name := range map[search.Status]string{
		search.Idle: "idle", search.Running: "running", search.Found: "found", search.Exhausted: "exhausted",
	} {
		assert.Equal(t, name, s.String())
	}
	assert.Equal(t, "path", search.RolePath.String())
	assert.Equal(t, "visited", fmt.Sprint(search.RoleVisited))
}
