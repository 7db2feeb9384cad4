package frontier

import (
	"container/heap"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/node"
)

// Priority is a min-key frontier with insertion-order tie-breaking.
// Greedy and AStar differ only in the key function.
type Priority struct {
	key  func(n *node.Node) float64
	pq   itemPQ
	next uint64
}

// NewGreedy returns a frontier ordered by h(position).
func NewGreedy(h HeuristicFunc) *Priority {
	h = orZero(h)
	return &Priority{key: func(n *node.Node) float64 {
		return h(n.Position())
	}}
}

// NewAStar returns a frontier ordered by h(position) + cost.
func NewAStar(h HeuristicFunc) *Priority {
	h = orZero(h)
	return &Priority{key: func(n *node.Node) float64 {
		return h(n.Position()) + float64(n.Cost())
	}}
}

func orZero(h HeuristicFunc) HeuristicFunc {
	if h != nil {
		return h
	}
	return func(_ grid.Cell) float64 { return 0 }
}

// Push scores n once and adds it to the heap.
func (p *Priority) Push(n *node.Node) {
	heap.Push(&p.pq, &item{n: n, key: p.key(n), seq: p.next})
	p.next++
}

// Pop removes the node with the smallest key, earliest pushed first on ties.
func (p *Priority) Pop() (*node.Node, bool) {
	if p.pq.Len() == 0 {
		return nil, false
	}
	it := heap.Pop(&p.pq).(*item)
	return it.n, true
}

// Len returns the number of pending nodes.
func (p *Priority) Len() int { return p.pq.Len() }

// item is a scored heap entry. seq is the push sequence number.
type item struct {
	n   *node.Node
	key float64
	seq uint64
}

// itemPQ is a min-heap of *item ordered by (key, seq).
type itemPQ []*item

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by key, then by push order.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
