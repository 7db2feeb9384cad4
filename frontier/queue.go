package frontier

import "github.com/katalvlaran/mazewalk/node"

// FIFO is a first-in first-out frontier.
type FIFO struct {
	items []*node.Node
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO() *FIFO {
	return &FIFO{}
}

// Push appends n at the tail.
func (q *FIFO) Push(n *node.Node) {
	q.items = append(q.items, n)
}

// Pop removes the head.
func (q *FIFO) Pop() (*node.Node, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	n := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return n, true
}

// Len returns the number of queued nodes.
func (q *FIFO) Len() int { return len(q.items) }

// LIFO is a last-in first-out frontier.
type LIFO struct {
	items []*node.Node
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO() *LIFO {
	return &LIFO{}
}

// Push places n on top.
func (s *LIFO) Push(n *node.Node) {
	s.items = append(s.items, n)
}

// Pop removes the top.
func (s *LIFO) Pop() (*node.Node, bool) {
	last := len(s.items) - 1
	if last < 0 {
		return nil, false
	}
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n, true
}

// Len returns the number of stacked nodes.
func (s *LIFO) Len() int { return len(s.items) }
