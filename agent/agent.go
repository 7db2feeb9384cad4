package agent

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalk/distance"
	"github.com/katalvlaran/mazewalk/frontier"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/node"
)

// moveCost is the uniform cost of one move.
const moveCost = 1

// Agent runs one search at a time over a grid it exclusively mutates.
type Agent struct {
	grid *grid.Grid
	opts Options
	log  *zap.Logger

	strategy frontier.Strategy
	frontier frontier.Frontier
	explored map[grid.Cell]struct{}
	order    []grid.Cell
	state    State
	pops     int
	result   *node.Node
}

// New returns an Idle agent over g.
func New(g *grid.Grid, opts ...Option) (*Agent, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Agent{
		grid:     g,
		opts:     o,
		log:      o.Logger,
		explored: make(map[grid.Cell]struct{}),
	}, nil
}

// Start selects a strategy and metric, rescoring the grid if the metric
// changed, and seeds a fresh frontier with a root node at the start cell.
// The explored set is cleared. No node is expanded until Step.
//
// On error neither the grid nor the agent changes; a running search stays
// resumable with its old settings.
func (a *Agent) Start(s frontier.Strategy, m distance.Metric) error {
	// 1) Validate both choices before touching any state.
	if !m.Valid() {
		return fmt.Errorf("%w: %v", distance.ErrUnknownMetric, m)
	}
	f, err := frontier.New(s, a.heuristic)
	if err != nil {
		return err
	}

	// 2) Commit: rescore the grid, then reset the run.
	if err = a.grid.SetMetric(m); err != nil {
		return err
	}
	a.strategy = s
	a.frontier = f
	a.explored = make(map[grid.Cell]struct{})
	a.order = nil
	a.pops = 0
	a.result = nil
	a.state = Running
	a.frontier.Push(node.Root(a.grid.Start()))

	a.log.Debug("search started",
		zap.Stringer("strategy", s),
		zap.Stringer("metric", m),
		zap.Stringer("start", a.grid.Start()),
		zap.Stringer("goal", a.grid.Goal()),
	)
	return nil
}

// heuristic reads the precomputed goal distance of c from the grid.
func (a *Agent) heuristic(c grid.Cell) float64 {
	h, err := a.grid.Heuristic(c)
	if err != nil {
		return 0
	}
	return h
}

// Step pops up to budget nodes from the frontier (budget <= 0: no limit).
//
// Returns:
//
//   - (true, goal, nil) when the goal is expanded.
//   - (false, last, nil) when the budget runs out; call Step again to resume.
//   - (false, nil, nil) when the frontier is empty; the goal is unreachable.
//
// The budget counts every pop, including stale duplicates of explored cells.
//
// Complexity:
//   - Time:   O(b·log F) for b pops with informed frontiers of size F,
//     O(b) for FIFO and LIFO.
//   - Memory: O(F + E) for the frontier and the explored set.
func (a *Agent) Step(budget int) (bool, *node.Node, error) {
	switch {
	case a.state == Idle:
		return false, nil, ErrNotStarted
	case a.state.Terminal():
		return false, nil, fmt.Errorf("%w: %v", ErrFinished, a.state)
	}

	remaining := budget
	for {
		// 1) Pop; an empty frontier ends the search.
		n, ok := a.frontier.Pop()
		if !ok {
			a.state = Exhausted
			a.log.Debug("frontier exhausted",
				zap.Stringer("strategy", a.strategy),
				zap.Int("expanded", len(a.order)),
				zap.Int("pops", a.pops),
			)
			return false, nil, nil
		}
		a.pops++

		// 2) Expand unless the cell was reached earlier by a cheaper or
		//    earlier node.
		if _, seen := a.explored[n.Position()]; !seen {
			found, err := a.expand(n)
			if err != nil {
				return false, nil, err
			}
			if found {
				return true, n, nil
			}
		}

		// 3) Charge the budget.
		if budget > 0 {
			remaining--
			if remaining == 0 {
				a.log.Debug("search paused",
					zap.Stringer("at", n.Position()),
					zap.Int("frontier", a.frontier.Len()),
				)
				return false, n, nil
			}
		}
	}
}

// expand handles a node whose cell has not been explored yet. It reports
// whether n reached the goal.
//
// Complexity: O(1) per child, O(d) on success to mark a path of depth d.
func (a *Agent) expand(n *node.Node) (bool, error) {
	pos := n.Position()
	if err := a.grid.MarkSearched(pos); err != nil {
		return false, err
	}
	a.opts.OnVisit(n)

	// Goal test on expansion, never on push.
	goal, err := a.grid.IsGoal(pos)
	if err != nil {
		return false, err
	}
	if goal {
		for _, c := range n.Cells() {
			if err = a.grid.MarkOnPath(c); err != nil {
				return false, err
			}
		}
		a.state = Succeeded
		a.result = n
		a.log.Debug("goal reached",
			zap.Stringer("strategy", a.strategy),
			zap.Stringer("goal", pos),
			zap.Int("cost", n.Cost()),
			zap.Int("expanded", len(a.order)),
			zap.Int("pops", a.pops),
		)
		return true, nil
	}

	a.explored[pos] = struct{}{}
	a.order = append(a.order, pos)

	// Children in the fixed Up, Down, Left, Right order.
	moves, err := a.grid.LegalMoves(pos)
	if err != nil {
		return false, err
	}
	for _, mv := range moves {
		if a.opts.PruneReversals && n.Reverses(mv) {
			continue // target is the parent cell, already explored
		}
		child, err := n.Child(mv, moveCost)
		if err != nil {
			return false, err
		}
		if err = a.grid.SetPathCost(child.Position(), child.Cost()); err != nil {
			return false, err
		}
		a.opts.OnPush(child)
		a.frontier.Push(child)
	}
	return false, nil
}

// Run starts a search and steps it without a budget.
func (a *Agent) Run(s frontier.Strategy, m distance.Metric) (bool, *node.Node, error) {
	if err := a.Start(s, m); err != nil {
		return false, nil, err
	}
	return a.Step(Unbounded)
}

// Reset abandons the current search, returns to Idle and restores the grid
// to its snapshot. Start must be called before the next Step.
func (a *Agent) Reset() {
	a.frontier = nil
	a.explored = make(map[grid.Cell]struct{})
	a.order = nil
	a.pops = 0
	a.result = nil
	a.state = Idle
	a.grid.Reset()
}

// Grid returns the grid the agent searches.
func (a *Agent) Grid() *grid.Grid { return a.grid }

// Strategy returns the strategy of the last Start.
func (a *Agent) Strategy() frontier.Strategy { return a.strategy }

// State returns the lifecycle phase.
func (a *Agent) State() State { return a.state }

// Result returns the goal node of a successful run, or nil.
func (a *Agent) Result() *node.Node { return a.result }

// Explored returns the expanded cells in expansion order. The goal cell is
// never included.
func (a *Agent) Explored() []grid.Cell {
	out := make([]grid.Cell, len(a.order))
	copy(out, a.order)
	return out
}

// Pops returns how many nodes were taken off the frontier in this run,
// duplicates included.
func (a *Agent) Pops() int { return a.pops }

// FrontierSize returns the number of pending nodes, or 0 when Idle.
func (a *Agent) FrontierSize() int {
	if a.frontier == nil {
		return 0
	}
	return a.frontier.Len()
}
