package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/node"
)

// ErrUnknownStrategy indicates an unsupported search strategy.
var ErrUnknownStrategy = errors.New("frontier: unknown strategy")

// Frontier holds discovered nodes awaiting expansion.
type Frontier interface {
	// Push adds n to the frontier.
	Push(n *node.Node)
	// Pop removes and returns the next node, or (nil, false) when empty.
	Pop() (*node.Node, bool)
	// Len returns the number of pending nodes.
	Len() int
}

// HeuristicFunc scores a cell by its estimated distance to the goal.
type HeuristicFunc func(c grid.Cell) float64

// Strategy selects a frontier discipline.
type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
	Greedy
	AStar
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{BreadthFirst, DepthFirst, Greedy, AStar}

// String returns the short strategy name.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case Greedy:
		return "greedy"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Informed reports whether the strategy orders nodes by a heuristic.
func (s Strategy) Informed() bool {
	return s == Greedy || s == AStar
}

// ParseStrategy maps a name to a Strategy, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depth", "depth-first":
		return DepthFirst, nil
	case "greedy", "greed", "best-first":
		return Greedy, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return BreadthFirst, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New returns an empty frontier for s. Informed strategies score nodes with
// h; a nil h scores every cell as 0.
func New(s Strategy, h HeuristicFunc) (Frontier, error) {
	switch s {
	case BreadthFirst:
		return NewFIFO(), nil
	case DepthFirst:
		return NewLIFO(), nil
	case Greedy:
		return NewGreedy(h), nil
	case AStar:
		return NewAStar(h), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}
