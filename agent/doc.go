// Package agent is the maze search engine. It owns a frontier and an
// explored set and drives them over a grid.Grid one bounded batch of
// expansions at a time.
//
// Lifecycle:
//
//	a, _ := agent.New(g, agent.WithLogger(log))
//	_ = a.Start(frontier.AStar, distance.Manhattan)  // seed, no expansion yet
//	for {
//	    done, n, err := a.Step(5)                    // at most 5 pops
//	    ...                                          // redraw, then resume
//	}
//	a.Reset()                                        // back to Idle, grid restored
//
// Step pops up to budget nodes (budget <= 0 means no limit). For each pop:
//
//  1. A cell already in the explored set is discarded.
//  2. Otherwise the cell is marked searched on the grid.
//  3. If it is the goal, every cell of the path is marked on-path and Step
//     returns (true, goal node).
//  4. Otherwise the cell joins the explored set and one child per legal move
//     (Up, Down, Left, Right) is pushed with cost+1, after writing that cost
//     to the grid. With reversal pruning on, a move that undoes the parent's
//     last move is skipped.
//
// When the budget runs out Step returns (false, last popped node) and the
// search can be resumed. An empty frontier returns (false, nil): the goal is
// unreachable and the run is over.
//
// Reversal pruning:
//
//	A reversing child always targets the grandparent cell, which was
//	expanded to create its parent and is therefore already explored. So
//	pruning never changes which cells are expanded, in what order, or the
//	returned path; it only saves the pops that duplicate suppression would
//	otherwise spend. It is on by default.
//
// Errors:
//
//   - ErrGridNil: New got a nil grid.
//   - ErrNotStarted: Step was called before Start.
//   - ErrFinished: Step was called after the goal was found or the frontier
//     ran dry; call Start again.
//   - frontier.ErrUnknownStrategy, distance.ErrUnknownMetric: from Start.
//
// An Agent is single-threaded: it never blocks or spawns goroutines, and it
// must not share its grid with another concurrently running Agent.
package agent
