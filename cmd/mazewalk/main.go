// Command mazewalk runs the search agent over a maze scenario and prints the
// explored grid, or compares every strategy over seeded random mazes.
//
//	mazewalk -config examples/detour.yaml
//	mazewalk -config examples/compare.yaml -compare
//	mazewalk -strategy dfs -budget 5 -v
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalk/agent"
	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/distance"
	"github.com/katalvlaran/mazewalk/frontier"
	"github.com/katalvlaran/mazewalk/grid"
)

// fallback is used when no -config is given.
const fallback = `
name: default
width: 24
height: 12
density: 0.25
seed: 1
trials: 20
strategy: all
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mazewalk:", err)
		os.Exit(1)
	}
}

// run writes reports to out and flag usage or parse errors to errOut.
func run(args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("mazewalk", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var (
		pn       = fs.String("config", "", "scenario YAML file")
		strategy = fs.String("strategy", "", "override strategy: bfs, dfs, greedy, astar or all")
		metric   = fs.String("metric", "", "override metric: none, manhattan or euclidean")
		budget   = fs.Int("budget", -1, "override step budget (0: unbounded)")
		compare  = fs.Bool("compare", false, "run every trial and print statistics")
		verbose  = fs.Bool("v", false, "log search events")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, err := loadScenario(*pn)
	if err != nil {
		return err
	}
	if *strategy != "" {
		sc.Strategy = *strategy
	}
	if *metric != "" {
		sc.Metric = *metric
	}
	if *budget >= 0 {
		sc.Budget = *budget
	}
	if err = sc.Validate(); err != nil {
		return err
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if *compare {
		return compareStrategies(out, sc, log)
	}
	return single(out, sc, log)
}

func loadScenario(pn string) (*config.Scenario, error) {
	if pn == "" {
		return config.Load(strings.NewReader(fallback))
	}
	return config.LoadFile(pn)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// single runs each selected strategy once on the first maze of sc.
func single(out io.Writer, sc *config.Scenario, log *zap.Logger) error {
	ss, err := sc.Strategies()
	if err != nil {
		return err
	}
	m, err := sc.MetricValue()
	if err != nil {
		return err
	}
	for _, s := range ss {
		g, err := sc.BuildGrid()
		if err != nil {
			return err
		}
		res, err := search(g, s, m, sc, log)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "== %s ==\n", s)
		if err = g.Render(out); err != nil {
			return err
		}
		fmt.Fprintln(out, res.summary())
	}
	return nil
}

// outcome is what one search reports.
type outcome struct {
	found    bool
	cost     int
	optimum  int
	solvable bool
	explored int
	pops     int
	steps    int
}

func (o outcome) summary() string {
	var b strings.Builder
	switch {
	case o.found:
		fmt.Fprintf(&b, "found: cost %d (optimum %d)", o.cost, o.optimum)
	case o.solvable:
		fmt.Fprintf(&b, "not found, yet the goal is %d moves away", o.optimum)
	default:
		b.WriteString("no path")
	}
	fmt.Fprintf(&b, ", explored %s cells, %s pops, %s steps",
		humanize.Comma(int64(o.explored)), humanize.Comma(int64(o.pops)), humanize.Comma(int64(o.steps)))
	return b.String()
}

// search runs s on g with the scenario budget, one Step call per batch.
func search(g *grid.Grid, s frontier.Strategy, m distance.Metric, sc *config.Scenario, log *zap.Logger) (outcome, error) {
	var o outcome
	var err error
	o.optimum, o.solvable, err = g.ShortestPathLength(g.Start(), g.Goal())
	if err != nil {
		return o, err
	}

	a, err := agent.New(g, sc.AgentOptions(log.With(zap.String("scenario", sc.Name)))...)
	if err != nil {
		return o, err
	}
	if err = a.Start(s, m); err != nil {
		return o, err
	}
	for {
		o.steps++
		found, n, err := a.Step(sc.Budget)
		if err != nil {
			return o, err
		}
		if found {
			o.found = true
			o.cost = n.Cost()
			break
		}
		if n == nil {
			break
		}
		log.Debug("batch done", zap.Stringer("at", n.Position()), zap.Int("step", o.steps))
	}
	o.explored = len(a.Explored())
	o.pops = a.Pops()
	return o, nil
}

// compareStrategies runs every trial of sc through each strategy and prints
// per-strategy statistics.
func compareStrategies(out io.Writer, sc *config.Scenario, log *zap.Logger) error {
	ss, err := sc.Strategies()
	if err != nil {
		return err
	}
	m, err := sc.MetricValue()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d trials, metric %s\n", sc.Trials, m)
	fmt.Fprintf(out, "%-8s %8s %10s %10s %10s %8s\n", "strategy", "solved", "mean pops", "median", "max", "ratio")
	for _, s := range ss {
		var pops, ratios []float64
		solved, solvable := 0, 0
		for i := 0; i < sc.Trials; i++ {
			g, err := sc.BuildTrial(i)
			if err != nil {
				return err
			}
			o, err := search(g, s, m, sc, log)
			if err != nil {
				return err
			}
			pops = append(pops, float64(o.pops))
			if o.solvable {
				solvable++
			}
			if o.found {
				solved++
				if o.optimum > 0 {
					ratios = append(ratios, float64(o.cost)/float64(o.optimum))
				}
			}
		}
		row, err := summarize(pops, ratios)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-8s %8s %s\n", s, fmt.Sprintf("%d/%d", solved, solvable), row)
	}
	return nil
}

// summarize formats mean, median and max pops and the mean cost ratio.
func summarize(pops, ratios []float64) (string, error) {
	mean, err := stats.Mean(pops)
	if err != nil {
		return "", err
	}
	median, err := stats.Median(pops)
	if err != nil {
		return "", err
	}
	hi, err := stats.Max(pops)
	if err != nil {
		return "", err
	}
	ratio := "-"
	if len(ratios) > 0 {
		r, err := stats.Mean(ratios)
		if err != nil {
			return "", err
		}
		ratio = fmt.Sprintf("%.2f", r)
	}
	return fmt.Sprintf("%10s %10s %10s %8s",
		humanize.Commaf(mean), humanize.Commaf(median), humanize.Comma(int64(hi)), ratio), nil
}
