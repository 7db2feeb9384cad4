// Package frontier implements the pending-work containers behind the four
// maze search strategies.
//
// What:
//
//   - Frontier is the shared contract: Push, Pop, Len.
//   - FIFO (breadth-first): Pop returns the earliest pushed node.
//   - LIFO (depth-first): Pop returns the most recently pushed node.
//   - Greedy (best-first): Pop returns the node whose cell has the smallest
//     heuristic distance to the goal.
//   - AStar: Pop returns the node minimizing heuristic + cumulative cost.
//
// Determinism:
//
//	Greedy and AStar break equal keys by insertion order: among nodes with
//	the minimum key, the one pushed first is popped first. This is the
//	order a linear scan over the pushed sequence would produce; a binary
//	heap keyed by (key, sequence) gives the same order in O(log n).
//
// Complexity:
//
//   - FIFO, LIFO: Push and Pop O(1) amortized.
//   - Greedy, AStar: Push and Pop O(log n).
//
// Pop on an empty frontier returns (nil, false); it never panics.
//
// Errors:
//
//   - ErrUnknownStrategy: New or ParseStrategy got an unsupported strategy.
package frontier
