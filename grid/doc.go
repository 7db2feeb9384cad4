// Package grid models a rectangular maze of tiles that a search engine
// queries and marks while it explores.
//
// What:
//
//   - Grid stores one Tile per cell, row-major, with exactly one Start and
//     one Goal cell. Cells are addressed by Cell{X: column, Y: row}.
//   - Each Tile carries its Kind (Wall, Open, Start, Goal), the heuristic
//     distance to the goal under the active metric, the running path cost
//     written by a search, and the Visited / OnPath display flags.
//   - A pristine snapshot is kept from construction. Reset restores it,
//     undoing search progress. Edit, SetStart and SetGoal write through to
//     the snapshot, so structural changes survive a Reset.
//
// Construction:
//
//   - Parse / Read: a textual layout, one rune per tile:
//     '#' wall, ' ' open, 'A' start, 'B' goal.
//   - NewBordered: explicit dimensions, walls on the border, open inside.
//   - NewRandom: NewBordered plus interior walls scattered at a density.
//
// Moves:
//
//	LegalMoves enumerates Up, Down, Left, Right in that fixed order and keeps
//	a move iff the neighbor is in bounds and not a wall. The fixed order
//	makes exploration reproducible.
//
// Complexity:
//
//   - Classify, LegalMoves, Mark*, SetPathCost, Edit: O(1).
//   - Reset, SetMetric, SetGoal, Clone: O(W×H).
//   - Reachable, ShortestPathLength: O(W×H) time and memory.
//
// Errors:
//
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrUnknownAction: a move outside {Up, Down, Left, Right}.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile, ErrMissingStart,
//     ErrMissingGoal, ErrDuplicateEndpoint: invalid layouts.
//   - ErrInvalidEndpoint: an edit that would remove or duplicate an endpoint.
//   - ErrTooSmall, ErrBadDensity: invalid procedural parameters.
//   - distance.ErrUnknownMetric: an unsupported metric option.
//
// A Grid is not safe for concurrent use. Searches over the same maze must be
// serialized or run on independent copies obtained from Clone.
package grid
