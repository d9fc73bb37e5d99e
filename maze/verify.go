package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors reported by Verify.
var (
	// ErrNoPassages indicates a grid without any carved cell.
	ErrNoPassages = errors.New("maze: no carved cells")
	// ErrCycle indicates two carved cells joined by more than one path.
	ErrCycle = errors.New("maze: carved cells contain a cycle")
	// ErrDisconnected indicates carved cells split into several regions.
	ErrDisconnected = errors.New("maze: carved cells are disconnected")
)

// Stats summarises the carved passages of a grid.
type Stats struct {
	Carved     int // cells with cost 0 and not blocked
	Edges      int // orthogonal adjacencies between carved cells
	Components int // connected regions of carved cells
}

// Verify checks that the carved cells of g form a spanning tree: one
// connected component with exactly Carved-1 edges. Edges are unioned into
// disjoint sets; an edge whose ends already share a set closes a cycle.
// The returned Stats are filled even when an error is reported.
// Complexity: O(rows×cols·α(rows×cols)).
func Verify(g *grid.Grid) (Stats, error) {
	var st Stats
	sets := make(map[grid.Point]*disjoint.Element)
	g.Each(func(c *grid.Cell) {
		if isPassage(c) {
			sets[c.Point] = disjoint.NewElement()
		}
	})
	st.Carved = len(sets)
	if st.Carved == 0 {
		return st, ErrNoPassages
	}

	var cycleAt *grid.Point
	g.Each(func(c *grid.Cell) {
		from, ok := sets[c.Point]
		if !ok {
			return
		}
		// right and down cover every undirected adjacency once
		for _, q := range []grid.Point{c.Point.Add(0, 1), c.Point.Add(1, 0)} {
			to, ok := sets[q]
			if !ok {
				continue
			}
			st.Edges++
			if from.Find() == to.Find() {
				if cycleAt == nil {
					p := q
					cycleAt = &p
				}
				continue
			}
			disjoint.Union(from, to)
		}
	})

	roots := make(map[*disjoint.Element]struct{})
	for _, e := range sets {
		roots[e.Find()] = struct{}{}
	}
	st.Components = len(roots)

	switch {
	case cycleAt != nil:
		return st, fmt.Errorf("%w: closed at %v", ErrCycle, *cycleAt)
	case st.Components > 1:
		return st, fmt.Errorf("%w: %d regions", ErrDisconnected, st.Components)
	}
	return st, nil
}

func isPassage(c *grid.Cell) bool {
	return !c.Blocked && c.Cost == 0
}
