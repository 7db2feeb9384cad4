// Package node provides the immutable search-tree node used by the maze
// search engine.
//
// A Node records a grid cell, the move that produced it, its parent and the
// cumulative move cost from the root. Nodes are never mutated after
// construction, so any number of frontier entries may share a parent chain,
// and reconstructing a path is a read-only walk towards the root.
//
// Cells and Nodes return the chain goal-first (leaf → … → root), the order
// in which the walk discovers it. Actions returns the moves root-first, the
// order in which they are applied.
package node
