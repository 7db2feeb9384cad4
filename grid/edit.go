package grid

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/distance"
)

// isEndpoint reports whether c is the start or goal cell.
func (g *Grid) isEndpoint(c Cell) bool {
	return c == g.start || c == g.goal
}

// MarkSearched flags c as expanded. Endpoints and on-path cells are left
// unchanged.
func (g *Grid) MarkSearched(c Cell) error {
	t, err := g.lookup(c)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) || t.OnPath {
		return nil
	}
	t.Visited = true
	return nil
}

// MarkOnPath flags c as part of the goal path, clearing Visited so the two
// flags stay exclusive. Endpoints are left unchanged.
func (g *Grid) MarkOnPath(c Cell) error {
	t, err := g.lookup(c)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) {
		return nil
	}
	t.OnPath = true
	t.Visited = false
	return nil
}

// ClearOnPath removes the on-path flag from c. Endpoints are left unchanged.
func (g *Grid) ClearOnPath(c Cell) error {
	t, err := g.lookup(c)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) {
		return nil
	}
	t.OnPath = false
	return nil
}

// SetPathCost overwrites the running cost shown for c.
func (g *Grid) SetPathCost(c Cell, cost int) error {
	t, err := g.lookup(c)
	if err != nil {
		return err
	}
	t.PathCost = cost
	return nil
}

// Edit changes the kind of c in both the live grid and the snapshot, so a
// later Reset keeps the edit. Only Wall and Open may be written, and never
// over an endpoint; use SetStart and SetGoal to move those.
func (g *Grid) Edit(c Cell, k Kind) error {
	t, err := g.lookup(c)
	if err != nil {
		return err
	}
	if g.isEndpoint(c) || (k != Wall && k != Open) {
		return fmt.Errorf("%w: %v at %v", ErrInvalidEndpoint, k, c)
	}
	t.Kind = k
	g.pristine[g.index(c)].Kind = k
	return nil
}

// Reset restores every tile to the snapshot: kinds and heuristics come back,
// path costs and flags are cleared. Structural edits are kept.
func (g *Grid) Reset() {
	copy(g.tiles, g.pristine)
}

// SetMetric switches the heuristic metric and rescores every tile.
func (g *Grid) SetMetric(m distance.Metric) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %v", distance.ErrUnknownMetric, m)
	}
	if m == g.metric {
		return nil
	}
	g.metric = m
	return g.recompute()
}

// SetStart moves the start to c. The old start becomes Open.
func (g *Grid) SetStart(c Cell) error {
	if _, err := g.lookup(c); err != nil {
		return err
	}
	if c == g.goal {
		return fmt.Errorf("%w: start on goal %v", ErrDuplicateEndpoint, c)
	}
	g.relocate(g.start, c, Start)
	g.start = c
	return nil
}

// SetGoal moves the goal to c, makes the old goal Open and rescores every
// tile against the new goal.
func (g *Grid) SetGoal(c Cell) error {
	if _, err := g.lookup(c); err != nil {
		return err
	}
	if c == g.start {
		return fmt.Errorf("%w: goal on start %v", ErrDuplicateEndpoint, c)
	}
	g.relocate(g.goal, c, Goal)
	g.goal = c
	return g.recompute()
}

// relocate writes kind k at to and Open at from, live and pristine.
func (g *Grid) relocate(from, to Cell, k Kind) {
	fi, ti := g.index(from), g.index(to)
	for _, tiles := range [][]Tile{g.tiles, g.pristine} {
		tiles[fi].Kind = Open
		tiles[ti].Kind = k
		tiles[ti].Visited = false
		tiles[ti].OnPath = false
	}
}
