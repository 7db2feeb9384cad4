package grid

// Reachable returns every non-wall cell reachable from c through 4-connected
// moves, in breadth-first order starting with c itself. No pruning is
// applied, so the result is the true connected component of c.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Reachable(c Cell) ([]Cell, error) {
	_, order, err := g.sweep(c)
	return order, err
}

// ShortestPathLength returns the fewest moves from `from` to `to`, and false
// if `to` cannot be reached.
func (g *Grid) ShortestPathLength(from, to Cell) (int, bool, error) {
	if _, err := g.lookup(to); err != nil {
		return 0, false, err
	}
	dist, _, err := g.sweep(from)
	if err != nil {
		return 0, false, err
	}
	d := dist[g.index(to)]
	if d < 0 {
		return 0, false, nil
	}
	return d, true, nil
}

// sweep runs a breadth-first search from c over non-wall cells. It returns
// the move count per row-major index (-1 when unreached) and the visit order.
func (g *Grid) sweep(c Cell) ([]int, []Cell, error) {
	start, err := g.lookup(c)
	if err != nil {
		return nil, nil, err
	}
	dist := make([]int, len(g.tiles))
	for i := range dist {
		dist[i] = -1
	}
	if start.Kind == Wall {
		return dist, nil, nil
	}

	queue := []Cell{c}
	dist[g.index(c)] = 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		moves, _ := g.LegalMoves(u)
		for _, a := range moves {
			v, _ := u.Move(a)
			vi := g.index(v)
			if dist[vi] >= 0 {
				continue
			}
			dist[vi] = dist[g.index(u)] + 1
			queue = append(queue, v)
		}
	}
	return dist, queue, nil
}
