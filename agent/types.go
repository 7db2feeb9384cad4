package agent

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalk/node"
)

// Sentinel errors for engine misuse.
var (
	// ErrGridNil is returned when New is given a nil grid.
	ErrGridNil = errors.New("agent: grid is nil")
	// ErrNotStarted is returned by Step before Start.
	ErrNotStarted = errors.New("agent: search not started")
	// ErrFinished is returned by Step after a terminal result.
	ErrFinished = errors.New("agent: search already finished")
)

// Unbounded is the Step budget that runs until a terminal result.
const Unbounded = 0

// State is the engine lifecycle phase.
type State int

const (
	// Idle: no search has been started since construction or Reset.
	Idle State = iota
	// Running: the frontier is seeded and Step may be called.
	Running
	// Succeeded: the goal was reached.
	Succeeded
	// Exhausted: the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further Step is allowed.
func (s State) Terminal() bool {
	return s == Succeeded || s == Exhausted
}

// Option configures an Agent.
type Option func(*Options)

// Options holds engine parameters and observation hooks.
type Options struct {
	// PruneReversals skips children that undo their parent's last move.
	PruneReversals bool

	// Logger receives Debug events for start, pause, success and exhaustion.
	Logger *zap.Logger

	// OnVisit is called for every node whose cell is expanded, including
	// the goal node.
	OnVisit func(n *node.Node)

	// OnPush is called for every child pushed onto the frontier.
	OnPush func(n *node.Node)
}

// DefaultOptions returns Options with reversal pruning on, a no-op logger and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		PruneReversals: true,
		Logger:         zap.NewNop(),
		OnVisit:        func(*node.Node) {},
		OnPush:         func(*node.Node) {},
	}
}

// WithReversalPruning turns immediate-reversal pruning on or off.
func WithReversalPruning(on bool) Option {
	return func(o *Options) {
		o.PruneReversals = on
	}
}

// WithLogger sets the event logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a hook run on every expansion.
func WithOnVisit(fn func(n *node.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush registers a hook run on every pushed child.
func WithOnPush(fn func(n *node.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
