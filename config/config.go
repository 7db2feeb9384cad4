package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazewalk/agent"
	"github.com/katalvlaran/mazewalk/distance"
	"github.com/katalvlaran/mazewalk/frontier"
	"github.com/katalvlaran/mazewalk/grid"
)

// Sentinel errors for scenario validation.
var (
	ErrNoMaze        = errors.New("config: neither layout nor dimensions given")
	ErrAmbiguousMaze = errors.New("config: layout excludes generated-maze fields")
	ErrBadBudget     = errors.New("config: budget must be >= 0")
	ErrBadTrials     = errors.New("config: trials must be >= 1")
)

// AllStrategies selects every search strategy.
const AllStrategies = "all"

// Point is a cell coordinate in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Cell converts p to a grid cell.
func (p Point) Cell() grid.Cell { return grid.Cell{X: p.X, Y: p.Y} }

// Scenario describes one maze and how to search it.
type Scenario struct {
	Name string `yaml:"name"`

	// Layout is a maze in the grid text format.
	Layout string `yaml:"layout"`

	// Width and Height build a bordered maze when Layout is empty.
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Start  *Point `yaml:"start"`
	Goal   *Point `yaml:"goal"`

	// Density in [0,1) scatters interior walls; Seed makes them repeatable.
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
	Trials  int     `yaml:"trials"`

	Strategy       string `yaml:"strategy"`
	Metric         string `yaml:"metric"`
	Budget         int    `yaml:"budget"`
	PruneReversals bool   `yaml:"prune_reversals"`
}

// Default returns the scenario values used for fields a document omits.
func Default() Scenario {
	return Scenario{
		Trials:         1,
		Strategy:       frontier.AStar.String(),
		Metric:         distance.Manhattan.String(),
		Budget:         agent.Unbounded,
		PruneReversals: true,
	}
}

// Load decodes and validates a scenario.
func Load(r io.Reader) (*Scenario, error) {
	sc := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&sc); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile opens pn and decodes it with Load.
func LoadFile(pn string) (*Scenario, error) {
	file, err := os.Open(pn)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// Validate checks names and ranges without building the maze.
func (sc *Scenario) Validate() error {
	sized := sc.Width != 0 || sc.Height != 0
	switch {
	case sc.Layout == "" && !sized:
		return ErrNoMaze
	case sc.Layout != "" && sized:
		return fmt.Errorf("%w: width/height", ErrAmbiguousMaze)
	}
	if sc.Layout != "" {
		if f := sc.generatorField(); f != "" {
			return fmt.Errorf("%w: %s", ErrAmbiguousMaze, f)
		}
	}
	if sc.Layout == "" && (sc.Density < 0 || sc.Density >= 1) {
		return fmt.Errorf("%w: density=%v", grid.ErrBadDensity, sc.Density)
	}
	if sc.Budget < 0 {
		return fmt.Errorf("%w: got %d", ErrBadBudget, sc.Budget)
	}
	if sc.Trials < 1 {
		return fmt.Errorf("%w: got %d", ErrBadTrials, sc.Trials)
	}
	if _, err := sc.MetricValue(); err != nil {
		return err
	}
	_, err := sc.Strategies()
	return err
}

// generatorField names the first generated-maze field set alongside a
// layout, or returns "".
func (sc *Scenario) generatorField() string {
	switch {
	case sc.Start != nil:
		return "start"
	case sc.Goal != nil:
		return "goal"
	case sc.Density != 0:
		return "density"
	case sc.Seed != 0:
		return "seed"
	default:
		return ""
	}
}

// MetricValue parses the metric name.
func (sc *Scenario) MetricValue() (distance.Metric, error) {
	return distance.ParseMetric(sc.Metric)
}

// Strategies parses the strategy name; "all" yields every strategy.
func (sc *Scenario) Strategies() ([]frontier.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(sc.Strategy), AllStrategies) {
		out := make([]frontier.Strategy, len(frontier.Strategies))
		copy(out, frontier.Strategies)
		return out, nil
	}
	s, err := frontier.ParseStrategy(sc.Strategy)
	if err != nil {
		return nil, err
	}
	return []frontier.Strategy{s}, nil
}

// AgentOptions returns the agent options the scenario implies.
func (sc *Scenario) AgentOptions(log *zap.Logger) []agent.Option {
	return []agent.Option{
		agent.WithReversalPruning(sc.PruneReversals),
		agent.WithLogger(log),
	}
}

// BuildGrid builds the maze of the first trial.
func (sc *Scenario) BuildGrid() (*grid.Grid, error) {
	return sc.BuildTrial(0)
}

// BuildTrial builds the maze of trial i. Inline layouts are the same for
// every trial; generated mazes use Seed+i.
func (sc *Scenario) BuildTrial(i int) (*grid.Grid, error) {
	m, err := sc.MetricValue()
	if err != nil {
		return nil, err
	}
	if sc.Layout != "" {
		return grid.Parse(sc.Layout, grid.WithMetric(m))
	}

	start := grid.Cell{X: 1, Y: 1}
	if sc.Start != nil {
		start = sc.Start.Cell()
	}
	goal := grid.Cell{X: sc.Width - 2, Y: sc.Height - 2}
	if sc.Goal != nil {
		goal = sc.Goal.Cell()
	}
	if sc.Density == 0 {
		return grid.NewBordered(sc.Width, sc.Height, start, goal, grid.WithMetric(m))
	}
	rng := rand.New(rand.NewSource(sc.Seed + int64(i)))
	return grid.NewRandom(sc.Width, sc.Height, start, goal, sc.Density, rng, grid.WithMetric(m))
}
