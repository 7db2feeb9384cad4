// Package mazewalk is a step-wise maze search engine for 2-D tile grids.
//
// An agent explores a rectangular grid of walls and open cells from a start
// cell to a goal cell with one of four strategies: breadth-first,
// depth-first, greedy best-first and A*. Searches advance in batches of
// frontier pops so a front end can render progress between calls, and every
// expansion is written back into the grid as a searched or on-path mark.
//
// Packages:
//
//	distance/      heuristic metrics (none, Manhattan, Euclidean)
//	grid/          tiles, layout parsing and rendering, moves, marks, reset
//	node/          immutable search-tree nodes and path reconstruction
//	frontier/      FIFO, LIFO, greedy and A* pending-node containers
//	agent/         the search lifecycle: Start, Step, Run, Reset
//	config/        YAML scenarios
//	cmd/mazewalk/  command-line runner and strategy comparison
//
// Quick start:
//
//	g, _ := grid.Parse(layout)
//	a, _ := agent.New(g)
//	found, goal, _ := a.Run(frontier.AStar, distance.Manhattan)
//	if found {
//		fmt.Println(goal.Actions())
//	}
//	fmt.Print(g)
//
// Everything is single-threaded: an Agent owns its Grid for the duration of a
// search and neither type is safe for concurrent use.
package mazewalk
