package generator

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// Method names used as error prefixes.
const (
	MethodCreate    = "Create"
	MethodParseKind = "ParseKind"
)

// Kind selects how a grid is filled.
type Kind int

const (
	// Regular fills every cell with cost 1.
	Regular Kind = iota
	// Weighted fills every cell with a random cost in [1,10].
	Weighted
	// Maze carves a perfect maze into an all-wall grid.
	Maze
)

var kindNames = [...]string{Regular: "regular", Weighted: "weighted", Maze: "maze"}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps "regular", "weighted" or "maze" (any case) to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, generatorErrorf(MethodParseKind, fmt.Errorf("%w: %q", ErrUnknownKind, name))
}

// Fill returns the per-cell cost policy of k, or nil for Maze, whose
// costs come from carving rather than a fill function.
func (k Kind) Fill() grid.FillFunc {
	switch k {
	case Regular:
		return grid.RegularFill
	case Weighted:
		return grid.WeightedFill
	default:
		return nil
	}
}

// Create builds a rows×cols grid of the given kind.
//
// Errors:
//   - ErrUnknownKind for an unsupported kind.
//   - grid.ErrBadDimensions when rows or cols < 1.
//
// Complexity: O(rows×cols) time and memory.
func Create(kind Kind, rows, cols int, opts ...Option) (*grid.Grid, error) {
	cfg := newGeneratorConfig(opts...)

	var (
		g   *grid.Grid
		err error
	)
	switch kind {
	case Regular, Weighted:
		g, err = grid.New(rows, cols, kind.Fill(), cfg.rng)
	case Maze:
		g, err = maze.New(rows, cols, maze.WithRand(cfg.rng), maze.WithLogger(cfg.log))
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, generatorErrorf(MethodCreate, err)
	}

	cfg.log.WithFields(logrus.Fields{
		"kind": kind.String(),
		"rows": rows,
		"cols": cols,
	}).Debug("generator: grid created")

	return g, nil
}
