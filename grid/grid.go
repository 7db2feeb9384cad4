package grid

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazewalk/distance"
)

// Grid is a rectangular maze with one start and one goal cell.
// Tiles are stored row-major; pristine mirrors them as of the last
// construction or structural edit.
type Grid struct {
	width, height int
	tiles         []Tile
	pristine      []Tile
	start, goal   Cell
	metric        distance.Metric
}

// newGrid allocates a width×height grid of walls.
func newGrid(width, height int, metric distance.Metric) *Grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Tile{Kind: Wall, PathCost: UnsetCost}
	}
	return &Grid{width: width, height: height, tiles: tiles, metric: metric}
}

// fromKinds builds a grid from a rectangular matrix of kinds, locating the
// unique start and goal.
//
// Complexity: O(W·H) time and memory, heuristics included.
func fromKinds(kinds [][]Kind, opts []Option) (*Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	// 1) Shape checks.
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for y, row := range kinds {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// 2) Copy kinds, counting endpoints.
	g := newGrid(w, h, o.Metric)
	var starts, goals int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			k := kinds[y][x]
			switch k {
			case Start:
				starts++
				g.start = Cell{x, y}
			case Goal:
				goals++
				g.goal = Cell{x, y}
			}
			g.tiles[g.index(Cell{x, y})].Kind = k
		}
	}
	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case goals == 0:
		return nil, ErrMissingGoal
	case starts > 1 || goals > 1:
		return nil, fmt.Errorf("%w: %d starts, %d goals", ErrDuplicateEndpoint, starts, goals)
	}

	// 3) Score tiles and take the pristine copy.
	if err = g.snapshot(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewBordered builds a width×height grid with walls on the border and open
// cells inside, then places start and goal. Endpoints may sit anywhere in
// bounds, border included, but must differ.
func NewBordered(width, height int, start, goal Cell, opts ...Option) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, width, height)
	}
	kinds := make([][]Kind, height)
	for y := range kinds {
		kinds[y] = make([]Kind, width)
		for x := range kinds[y] {
			if x > 0 && y > 0 && x < width-1 && y < height-1 {
				kinds[y][x] = Open
			}
		}
	}
	for _, c := range []Cell{start, goal} {
		if c.X < 0 || c.Y < 0 || c.X >= width || c.Y >= height {
			return nil, fmt.Errorf("%w: endpoint %v in %d×%d", ErrOutOfBounds, c, width, height)
		}
	}
	if start == goal {
		return nil, fmt.Errorf("%w: both at %v", ErrDuplicateEndpoint, start)
	}
	kinds[start.Y][start.X] = Start
	kinds[goal.Y][goal.X] = Goal

	return fromKinds(kinds, opts)
}

// NewRandom builds a bordered grid and turns each interior open cell into a
// wall with probability density. The result may be unsolvable.
//
// Complexity: O(W·H), one rng draw per interior open cell.
func NewRandom(width, height int, start, goal Cell, density float64, rng *rand.Rand, opts ...Option) (*Grid, error) {
	if density < 0 || density >= 1 || rng == nil {
		return nil, fmt.Errorf("%w: density=%v", ErrBadDensity, density)
	}
	g, err := NewBordered(width, height, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	for i := range g.tiles {
		if g.tiles[i].Kind != Open {
			continue
		}
		if rng.Float64() < density {
			g.tiles[i].Kind = Wall
			g.pristine[i].Kind = Wall
		}
	}
	return g, nil
}

// snapshot recomputes heuristics and copies the live tiles into pristine.
func (g *Grid) snapshot() error {
	if err := g.recompute(); err != nil {
		return err
	}
	g.pristine = make([]Tile, len(g.tiles))
	copy(g.pristine, g.tiles)
	return nil
}

// recompute scores every tile, live and pristine, against the goal.
func (g *Grid) recompute() error {
	for i := range g.tiles {
		c := g.Coordinate(i)
		h, err := distance.Distance(c.X, c.Y, g.goal.X, g.goal.Y, g.metric)
		if err != nil {
			return err
		}
		g.tiles[i].Heuristic = h
		if g.pristine != nil {
			g.pristine[i].Heuristic = h
		}
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// Metric returns the metric the heuristics were computed with.
func (g *Grid) Metric() distance.Metric { return g.metric }

// InBounds reports whether c lies within the grid. O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to its row-major index: Y*width + X.
func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{idx % g.width, idx / g.width}
}

// lookup returns the live tile at c or ErrOutOfBounds.
func (g *Grid) lookup(c Cell) (*Tile, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.width, g.height)
	}
	return &g.tiles[g.index(c)], nil
}

// Classify returns the Kind of c.
func (g *Grid) Classify(c Cell) (Kind, error) {
	t, err := g.lookup(c)
	if err != nil {
		return Wall, err
	}
	return t.Kind, nil
}

// Tile returns a copy of the tile at c.
func (g *Grid) Tile(c Cell) (Tile, error) {
	t, err := g.lookup(c)
	if err != nil {
		return Tile{}, err
	}
	return *t, nil
}

// Heuristic returns the precomputed distance from c to the goal.
func (g *Grid) Heuristic(c Cell) (float64, error) {
	t, err := g.lookup(c)
	if err != nil {
		return 0, err
	}
	return t.Heuristic, nil
}

// IsGoal reports whether c is the goal cell.
func (g *Grid) IsGoal(c Cell) (bool, error) {
	k, err := g.Classify(c)
	if err != nil {
		return false, err
	}
	return k == Goal, nil
}

// LegalMoves lists the moves from c whose target is in bounds and not a
// wall, in the order Up, Down, Left, Right.
//
// Complexity: O(1); at most four neighbors are inspected.
func (g *Grid) LegalMoves(c Cell) ([]Action, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.width, g.height)
	}
	moves := make([]Action, 0, len(Actions))
	for _, a := range Actions {
		n, _ := c.Move(a)
		if !g.InBounds(n) || g.tiles[g.index(n)].Kind == Wall {
			continue
		}
		moves = append(moves, a)
	}
	return moves, nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Cell, t Tile)) {
	for i, t := range g.tiles {
		fn(g.Coordinate(i), t)
	}
}

// Clone returns an independent deep copy, including search markings.
// O(W·H).
func (g *Grid) Clone() *Grid {
	c := *g
	c.tiles = make([]Tile, len(g.tiles))
	copy(c.tiles, g.tiles)
	c.pristine = make([]Tile, len(g.pristine))
	copy(c.pristine, g.pristine)
	return &c
}
