package agent_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/mazewalk/agent"
	"github.com/katalvlaran/mazewalk/distance"
	"github.com/katalvlaran/mazewalk/frontier"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/node"
)

// open5 is the 5×5 walled grid with a fully open 3×3 interior.
func open5(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewBordered(5, 5, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 3, Y: 3})
	require.NoError(t, err)
	return g
}

func newAgent(t *testing.T, g *grid.Grid, opts ...agent.Option) *agent.Agent {
	t.Helper()
	a, err := agent.New(g, opts...)
	require.NoError(t, err)
	return a
}

// randomMazes yields n seeded 12×10 mazes with 30% interior walls.
func randomMazes(t *testing.T, n int) []*grid.Grid {
	t.Helper()
	out := make([]*grid.Grid, 0, n)
	for seed := int64(0); seed < int64(n); seed++ {
		g, err := grid.NewRandom(12, 10, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 10, Y: 8}, 0.3, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		out = append(out, g)
	}
	return out
}

type runResult struct {
	found    bool
	path     []grid.Cell
	explored []grid.Cell
	pops     int
}

func run(t *testing.T, g *grid.Grid, s frontier.Strategy, m distance.Metric, budget int, opts ...agent.Option) runResult {
	t.Helper()
	a := newAgent(t, g, opts...)
	require.NoError(t, a.Start(s, m))
	for {
		found, n, err := a.Step(budget)
		require.NoError(t, err)
		if found {
			return runResult{true, n.Cells(), a.Explored(), a.Pops()}
		}
		if n == nil {
			assert.Equal(t, agent.Exhausted, a.State())
			return runResult{false, nil, a.Explored(), a.Pops()}
		}
		require.Equal(t, agent.Running, a.State())
	}
}

//----------------------------------------------------------------------------//
// Reference scenario
//----------------------------------------------------------------------------//

func TestBFS_OpenFiveByFive(t *testing.T) {
	g := open5(t)
	a := newAgent(t, g)

	found, goal, err := a.Run(frontier.BreadthFirst, distance.Manhattan)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, agent.Succeeded, a.State())
	assert.Same(t, goal, a.Result())

	assert.Equal(t, 4, goal.Cost())
	assert.Equal(t, []grid.Action{grid.Down, grid.Down, grid.Right, grid.Right}, goal.Actions())
	assert.Equal(t, []grid.Cell{
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 3},
		{X: 2, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 2},
	}, a.Explored())

	want := "" +
		"#####\n" +
		"#A??#\n" +
		"#-??#\n" +
		"#--B#\n" +
		"#####\n"
	assert.Equal(t, want, g.String())

	tile, err := g.Tile(g.Goal())
	require.NoError(t, err)
	assert.Equal(t, 4, tile.PathCost)
	tile, err = g.Tile(g.Start())
	require.NoError(t, err)
	assert.False(t, tile.Visited)
	assert.False(t, tile.OnPath)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

func TestDeterminism(t *testing.T) {
	for _, g := range randomMazes(t, 10) {
		for _, s := range frontier.Strategies {
			first := run(t, g.Clone(), s, distance.Manhattan, agent.Unbounded)
			second := run(t, g.Clone(), s, distance.Manhattan, agent.Unbounded)
			assert.Equal(t, first, second, "strategy %v", s)
		}
	}
}

func TestCompletenessAndUnreachability(t *testing.T) {
	sealed, err := grid.Parse("" +
		"#######\n" +
		"#A  #B#\n" +
		"# # ###\n" +
		"#######\n")
	require.NoError(t, err)

	var reachable, unreachable int
	for _, g := range append(randomMazes(t, 40), sealed) {
		_, ok, err := g.ShortestPathLength(g.Start(), g.Goal())
		require.NoError(t, err)
		component, err := g.Reachable(g.Start())
		require.NoError(t, err)

		for _, s := range frontier.Strategies {
			for _, m := range []distance.Metric{distance.None, distance.Manhattan, distance.Euclidean} {
				res := run(t, g.Clone(), s, m, agent.Unbounded)
				assert.Equal(t, ok, res.found, "strategy %v metric %v\n%s", s, m, g)
				if !ok {
					assert.ElementsMatch(t, component, res.explored, "strategy %v metric %v", s, m)
				}
			}
		}
		if ok {
			reachable++
		} else {
			unreachable++
		}
	}
	require.NotZero(t, reachable)
	require.NotZero(t, unreachable)
}

func TestCostOptimality(t *testing.T) {
	cases := []struct {
		s frontier.Strategy
		m distance.Metric
	}{
		{frontier.BreadthFirst, distance.Manhattan},
		{frontier.AStar, distance.Manhattan},
		{frontier.AStar, distance.Euclidean},
		{frontier.AStar, distance.None},
	}
	for _, g := range randomMazes(t, 40) {
		want, ok, err := g.ShortestPathLength(g.Start(), g.Goal())
		require.NoError(t, err)
		if !ok {
			continue
		}
		for _, tc := range cases {
			a := newAgent(t, g.Clone())
			found, n, err := a.Run(tc.s, tc.m)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, want, n.Cost(), "%v/%v", tc.s, tc.m)
			assert.Equal(t, want, len(n.Cells())-1, "%v/%v", tc.s, tc.m)
		}
	}
}

func TestStepEquivalence(t *testing.T) {
	for _, g := range randomMazes(t, 15) {
		for _, s := range frontier.Strategies {
			whole := run(t, g.Clone(), s, distance.Euclidean, agent.Unbounded)
			single := run(t, g.Clone(), s, distance.Euclidean, 1)
			batched := run(t, g.Clone(), s, distance.Euclidean, 7)
			assert.Equal(t, whole, single, "strategy %v budget 1", s)
			assert.Equal(t, whole, batched, "strategy %v budget 7", s)
		}
	}
}

func TestStep_PauseReturnsLastPopped(t *testing.T) {
	a := newAgent(t, open5(t))
	require.NoError(t, a.Start(frontier.BreadthFirst, distance.Manhattan))
	assert.Equal(t, 1, a.FrontierSize())

	found, n, err := a.Step(1)
	require.NoError(t, err)
	assert.False(t, found)
	require.NotNil(t, n)
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, n.Position())
	assert.True(t, n.IsRoot())
	assert.Equal(t, 2, a.FrontierSize())

	found, n, err = a.Step(2)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, grid.Cell{X: 2, Y: 1}, n.Position())
	assert.Equal(t, 3, a.Pops())
	assert.Equal(t, agent.Running, a.State())
}

func TestNoReversalInPaths(t *testing.T) {
	for _, prune := range []bool{true, false} {
		for _, g := range randomMazes(t, 20) {
			for _, s := range frontier.Strategies {
				a := newAgent(t, g.Clone(), agent.WithReversalPruning(prune))
				found, n, err := a.Run(s, distance.Manhattan)
				require.NoError(t, err)
				if !found {
					continue
				}
				acts := n.Actions()
				for i := 1; i < len(acts); i++ {
					assert.NotEqual(t, acts[i-1].Opposite(), acts[i], "prune=%v %v step %d", prune, s, i)
				}
			}
		}
	}
}

// Pruning reversals never changes expansions or paths, only saves pops.
func TestReversalPruning_ResultNeutral(t *testing.T) {
	for _, g := range randomMazes(t, 20) {
		for _, s := range frontier.Strategies {
			on := run(t, g.Clone(), s, distance.Manhattan, agent.Unbounded, agent.WithReversalPruning(true))
			off := run(t, g.Clone(), s, distance.Manhattan, agent.Unbounded, agent.WithReversalPruning(false))
			assert.Equal(t, off.found, on.found, "strategy %v", s)
			assert.Equal(t, off.path, on.path, "strategy %v", s)
			assert.Equal(t, off.explored, on.explored, "strategy %v", s)
			assert.LessOrEqual(t, on.pops, off.pops, "strategy %v", s)
		}
	}
}

// With no heuristic every informed key ties or equals depth, so greedy and
// A* degrade to breadth-first order.
func TestNoneMetric_DegradesToBreadthFirst(t *testing.T) {
	for _, g := range randomMazes(t, 10) {
		bfs := run(t, g.Clone(), frontier.BreadthFirst, distance.None, agent.Unbounded)
		for _, s := range []frontier.Strategy{frontier.Greedy, frontier.AStar} {
			got := run(t, g.Clone(), s, distance.None, agent.Unbounded)
			assert.Equal(t, bfs.explored, got.explored, "strategy %v", s)
			assert.Equal(t, bfs.path, got.path, "strategy %v", s)
		}
	}
}

//----------------------------------------------------------------------------//
// Lifecycle
//----------------------------------------------------------------------------//

func TestReset_Idempotent(t *testing.T) {
	g := open5(t)
	wall := grid.Cell{X: 2, Y: 2}
	require.NoError(t, g.Edit(wall, grid.Wall))

	a := newAgent(t, g)
	found, _, err := a.Run(frontier.DepthFirst, distance.Manhattan)
	require.NoError(t, err)
	require.True(t, found)

	a.Reset()
	once := g.String()
	a.Reset()
	assert.Equal(t, once, g.String())
	assert.Equal(t, agent.Idle, a.State())
	assert.Zero(t, a.FrontierSize())
	assert.Empty(t, a.Explored())
	assert.Nil(t, a.Result())

	g.Each(func(c grid.Cell, tile grid.Tile) {
		assert.False(t, tile.Visited, "cell %v", c)
		assert.False(t, tile.OnPath, "cell %v", c)
	})
	k, err := g.Classify(wall)
	require.NoError(t, err)
	assert.Equal(t, grid.Wall, k, "edits survive Reset")

	_, _, err = a.Step(1)
	assert.ErrorIs(t, err, agent.ErrNotStarted)
}

func TestStep_Errors(t *testing.T) {
	_, err := agent.New(nil)
	assert.ErrorIs(t, err, agent.ErrGridNil)

	a := newAgent(t, open5(t))
	_, _, err = a.Step(1)
	assert.ErrorIs(t, err, agent.ErrNotStarted)

	assert.ErrorIs(t, a.Start(frontier.Strategy(7), distance.Manhattan), frontier.ErrUnknownStrategy)
	assert.ErrorIs(t, a.Start(frontier.BreadthFirst, distance.Metric(7)), distance.ErrUnknownMetric)
	assert.Equal(t, agent.Idle, a.State())

	found, _, err := a.Run(frontier.Greedy, distance.Manhattan)
	require.NoError(t, err)
	require.True(t, found)
	_, _, err = a.Step(1)
	assert.ErrorIs(t, err, agent.ErrFinished)
}

func TestStart_FailureLeavesStateUntouched(t *testing.T) {
	t.Run("Idle", func(t *testing.T) {
		g := open5(t)
		a := newAgent(t, g)
		before := g.String()

		assert.ErrorIs(t, a.Start(frontier.Strategy(9), distance.Euclidean), frontier.ErrUnknownStrategy)
		assert.Equal(t, agent.Idle, a.State())
		assert.Equal(t, distance.Manhattan, g.Metric())
		h, err := g.Heuristic(grid.Cell{X: 1, Y: 1})
		require.NoError(t, err)
		assert.Equal(t, 4.0, h)
		assert.Equal(t, before, g.String())
	})

	t.Run("Running", func(t *testing.T) {
		want := run(t, open5(t), frontier.AStar, distance.Manhattan, agent.Unbounded)

		g := open5(t)
		a := newAgent(t, g)
		require.NoError(t, a.Start(frontier.AStar, distance.Manhattan))
		_, _, err := a.Step(3)
		require.NoError(t, err)
		pending, explored := a.FrontierSize(), a.Explored()

		assert.ErrorIs(t, a.Start(frontier.Strategy(9), distance.Euclidean), frontier.ErrUnknownStrategy)
		assert.ErrorIs(t, a.Start(frontier.BreadthFirst, distance.Metric(7)), distance.ErrUnknownMetric)
		assert.Equal(t, agent.Running, a.State())
		assert.Equal(t, frontier.AStar, a.Strategy())
		assert.Equal(t, distance.Manhattan, g.Metric())
		assert.Equal(t, pending, a.FrontierSize())
		assert.Equal(t, explored, a.Explored())

		// the interrupted run finishes exactly as an uninterrupted one
		found, n, err := a.Step(agent.Unbounded)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, want.path, n.Cells())
		assert.Equal(t, want.explored, a.Explored())
		assert.Equal(t, want.pops, a.Pops())
	})
}

func TestExhausted_IsTerminal(t *testing.T) {
	g, err := grid.Parse("" +
		"#####\n" +
		"#A#B#\n" +
		"#####\n")
	require.NoError(t, err)
	a := newAgent(t, g)

	found, n, err := a.Run(frontier.AStar, distance.Manhattan)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, n)
	assert.Equal(t, agent.Exhausted, a.State())
	assert.Equal(t, []grid.Cell{{X: 1, Y: 1}}, a.Explored())

	_, _, err = a.Step(agent.Unbounded)
	assert.ErrorIs(t, err, agent.ErrFinished)

	// a fresh Start makes the agent usable again
	require.NoError(t, g.Edit(grid.Cell{X: 2, Y: 1}, grid.Open))
	found, _, err = a.Run(frontier.AStar, distance.Manhattan)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestStart_RescoresGrid(t *testing.T) {
	g := open5(t)
	a := newAgent(t, g)
	require.NoError(t, a.Start(frontier.Greedy, distance.Euclidean))
	assert.Equal(t, distance.Euclidean, g.Metric())
	assert.Equal(t, frontier.Greedy, a.Strategy())
	assert.Same(t, g, a.Grid())

	h, err := g.Heuristic(grid.Cell{X: 1, Y: 3})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, h, 1e-9)
}

func TestHooks(t *testing.T) {
	var visited, pushed []*node.Node
	a := newAgent(t, open5(t),
		agent.WithOnVisit(func(n *node.Node) { visited = append(visited, n) }),
		agent.WithOnPush(func(n *node.Node) { pushed = append(pushed, n) }),
	)
	found, goal, err := a.Run(frontier.BreadthFirst, distance.Manhattan)
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, visited, len(a.Explored())+1)
	assert.Same(t, goal, visited[len(visited)-1])
	for i, c := range a.Explored() {
		assert.Equal(t, c, visited[i].Position())
	}
	assert.NotEmpty(t, pushed)
	for _, n := range pushed {
		assert.False(t, n.IsRoot())
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := newAgent(t, open5(t), agent.WithLogger(zap.New(core)), agent.WithLogger(nil))

	require.NoError(t, a.Start(frontier.AStar, distance.Manhattan))
	_, _, err := a.Step(2)
	require.NoError(t, err)
	found, _, err := a.Step(agent.Unbounded)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, 1, logs.FilterMessage("search started").Len())
	assert.Equal(t, 1, logs.FilterMessage("search paused").Len())
	goal := logs.FilterMessage("goal reached").All()
	require.Len(t, goal, 1)
	assert.Equal(t, int64(4), goal[0].ContextMap()["cost"])
	assert.Equal(t, "astar", goal[0].ContextMap()["strategy"])
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", agent.Idle.String())
	assert.Equal(t, "exhausted", agent.Exhausted.String())
	assert.True(t, agent.Succeeded.Terminal())
	assert.False(t, agent.Running.Terminal())
}
