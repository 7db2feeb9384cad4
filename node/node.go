package node

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalk/grid"
)

// ErrNegativeCost indicates a negative step cost passed to Child.
var ErrNegativeCost = errors.New("node: step cost must be non-negative")

// Node is one state in the search tree.
type Node struct {
	position grid.Cell
	parent   *Node
	action   grid.Action
	cost     int
	depth    int
}

// Root returns a parentless node at c with zero cost.
func Root(c grid.Cell) *Node {
	return &Node{position: c, action: grid.NoAction}
}

// Child returns the node reached from n by move a at the given step cost.
// Returns grid.ErrUnknownAction for a move outside the four directions.
func (n *Node) Child(a grid.Action, stepCost int) (*Node, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %v", grid.ErrUnknownAction, a)
	}
	if stepCost < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCost, stepCost)
	}
	next, _ := n.position.Move(a)
	return &Node{
		position: next,
		parent:   n,
		action:   a,
		cost:     n.cost + stepCost,
		depth:    n.depth + 1,
	}, nil
}

// Position returns the cell of n.
func (n *Node) Position() grid.Cell { return n.position }

// Parent returns the parent of n, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Action returns the move that produced n, or grid.NoAction for a root.
func (n *Node) Action() grid.Action { return n.action }

// Cost returns the cumulative cost from the root.
func (n *Node) Cost() int { return n.cost }

// Depth returns the number of moves from the root.
func (n *Node) Depth() int { return n.depth }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Reverses reports whether move a would directly undo the move that
// produced n. Always false for a root.
func (n *Node) Reverses(a grid.Action) bool {
	return n.action != grid.NoAction && a == n.action.Opposite()
}

// Nodes returns the chain from n up to the root, n first.
func (n *Node) Nodes() []*Node {
	out := make([]*Node, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Cells returns the cells from n up to the root, n first.
func (n *Node) Cells() []grid.Cell {
	out := make([]grid.Cell, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		out = append(out, cur.position)
	}
	return out
}

// Actions returns the moves from the root down to n, in applied order.
// A root yields an empty slice.
func (n *Node) Actions() []grid.Action {
	out := make([]grid.Action, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur.action
	}
	return out
}

// String formats n as "(x,y) action cost".
func (n *Node) String() string {
	return fmt.Sprintf("%v %v %d", n.position, n.action, n.cost)
}
