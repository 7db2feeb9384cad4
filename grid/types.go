package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalk/distance"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrUnknownAction indicates a move outside the four-direction action set.
	ErrUnknownAction = errors.New("grid: unknown action")
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownTile indicates a layout rune that maps to no Kind.
	ErrUnknownTile = errors.New("grid: unknown tile symbol")
	// ErrMissingStart indicates a layout without a start cell.
	ErrMissingStart = errors.New("grid: layout has no start cell")
	// ErrMissingGoal indicates a layout without a goal cell.
	ErrMissingGoal = errors.New("grid: layout has no goal cell")
	// ErrDuplicateEndpoint indicates more than one start or goal, or start == goal.
	ErrDuplicateEndpoint = errors.New("grid: start and goal must be unique and distinct")
	// ErrInvalidEndpoint indicates an edit that would overwrite or create an endpoint.
	ErrInvalidEndpoint = errors.New("grid: start and goal cannot be edited directly")
	// ErrTooSmall indicates procedural dimensions below 3×3.
	ErrTooSmall = errors.New("grid: bordered grids need at least 3 rows and 3 columns")
	// ErrBadDensity indicates a wall density outside [0,1) or a nil random source.
	ErrBadDensity = errors.New("grid: wall density must be in [0,1) with a non-nil source")
)

// Layout and display symbols.
const (
	WallSymbol     = '#'
	OpenSymbol     = ' '
	StartSymbol    = 'A'
	GoalSymbol     = 'B'
	PathSymbol     = '-'
	SearchedSymbol = '?'
	MarkerSymbol   = '*'
)

// UnsetCost is the PathCost of a tile no search has reached yet.
const UnsetCost = -1

// Kind classifies a tile. Only Wall blocks movement.
type Kind uint8

const (
	Wall Kind = iota
	Open
	Start
	Goal
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Symbol returns the layout rune for k.
func (k Kind) Symbol() rune {
	switch k {
	case Open:
		return OpenSymbol
	case Start:
		return StartSymbol
	case Goal:
		return GoalSymbol
	default:
		return WallSymbol
	}
}

// KindOf maps a layout rune to its Kind.
func KindOf(r rune) (Kind, error) {
	switch r {
	case WallSymbol:
		return Wall, nil
	case OpenSymbol:
		return Open, nil
	case StartSymbol:
		return Start, nil
	case GoalSymbol:
		return Goal, nil
	default:
		return Wall, fmt.Errorf("%w: %q", ErrUnknownTile, r)
	}
}

// Action is one of the four axis-aligned moves, or NoAction for a root.
type Action uint8

const (
	NoAction Action = iota
	Up
	Down
	Left
	Right
)

// Actions lists the moves in enumeration order.
var Actions = [4]Action{Up, Down, Left, Right}

// Valid reports whether a is one of the four moves.
func (a Action) Valid() bool {
	return a >= Up && a <= Right
}

// Opposite returns the move that undoes a. NoAction and unknown values map
// to NoAction.
func (a Action) Opposite() Action {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoAction
	}
}

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case NoAction:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Cell is a zero-based (column, row) coordinate.
type Cell struct {
	X, Y int
}

// Move returns the neighbor of c in direction a. Rows grow downwards, so Up
// decrements Y. Bounds are not checked.
func (c Cell) Move(a Action) (Cell, error) {
	if !a.Valid() {
		return c, fmt.Errorf("%w: %v", ErrUnknownAction, a)
	}
	switch a {
	case Up:
		return Cell{c.X, c.Y - 1}, nil
	case Down:
		return Cell{c.X, c.Y + 1}, nil
	case Left:
		return Cell{c.X - 1, c.Y}, nil
	default: // Right
		return Cell{c.X + 1, c.Y}, nil
	}
}

// String formats c as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tile is the persistent state of one cell.
type Tile struct {
	Kind Kind
	// Heuristic is the distance to the goal under the grid metric.
	Heuristic float64
	// PathCost is the last cost a search pushed for this cell, or UnsetCost.
	PathCost int
	// Visited is set when a search expands the cell.
	Visited bool
	// OnPath is set for cells on the reconstructed goal path. It takes
	// precedence over Visited.
	OnPath bool
}

// HasPathCost reports whether a search has written a cost to the tile.
func (t Tile) HasPathCost() bool {
	return t.PathCost != UnsetCost
}

// Option configures grid construction.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Metric scores every tile's Heuristic. Defaults to Manhattan.
	Metric distance.Metric

	err error
}

// DefaultOptions returns Options with the Manhattan metric.
func DefaultOptions() Options {
	return Options{Metric: distance.Manhattan}
}

// WithMetric selects the heuristic metric. An unknown metric is recorded and
// surfaced as distance.ErrUnknownMetric by the constructor.
func WithMetric(m distance.Metric) Option {
	return func(o *Options) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: %v", distance.ErrUnknownMetric, m)
			return
		}
		o.Metric = m
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
