// Package distance computes the heuristic distance between two grid cells.
//
// What:
//
//   - Metric selects how distance is measured: None, Manhattan or Euclidean.
//   - Distance(ax, ay, bx, by, m) returns a non-negative estimate.
//
// Why:
//
//   - Informed strategies (greedy best-first, A*) order their frontier by
//     this estimate. Both Manhattan and Euclidean never overestimate the
//     true number of moves on a 4-connected unit-cost grid, so A* stays
//     cost-optimal under either.
//   - None returns 0 everywhere, degrading informed strategies into
//     uninformed ones with no tie-break preference.
//
// Complexity: O(1) time and memory.
//
// Errors:
//
//   - ErrUnknownMetric: the metric is not one of the values above.
package distance
