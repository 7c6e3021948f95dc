package astar

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/gridroute/lattice"
)

// Sentinel errors returned by FindPath and FindPaths.
var (
	// ErrUnreachable indicates the frontier emptied before the goal was reached.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrExpansionLimit indicates the search stopped at WithMaxExpansions.
	// It wraps ErrUnreachable so callers may treat both alike.
	ErrExpansionLimit = fmt.Errorf("%w: expansion limit reached", ErrUnreachable)

	// ErrNilGeometry indicates a nil *lattice.Geometry.
	ErrNilGeometry = fmt.Errorf("%w: geometry is nil", lattice.ErrInvalidGeometry)

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a coordinate to the goal.
// It must never overestimate for FindPath to stay optimal.
type Heuristic func(from, goal lattice.Coordinate) float64

// Observer is notified once at the end of every search with its outcome.
// Implementations must be safe for concurrent use when shared by FindPaths.
type Observer interface {
	ObserveSearch(res Result, err error)
}

// Stats counts the work done by one search.
type Stats struct {
	Expanded   int // nodes moved to the closed set
	Discovered int // nodes inserted into the frontier, start included
	Relaxed    int // decrease-key updates of queued nodes
}

// Result is the outcome of FindPath.
// Path runs from the snapped start to the snapped goal, both inclusive.
type Result struct {
	Path  []lattice.Coordinate
	Cost  float64
	Found bool
	Stats Stats
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Heuristic overrides the default cell-unit Euclidean estimate when non-nil.
	Heuristic Heuristic

	// MaxExpansions, if > 0, caps the number of expanded nodes.
	MaxExpansions int

	// Workers bounds the parallel searches of FindPaths.
	Workers int

	// Observer, if non-nil, receives the outcome of every search.
	Observer Observer

	// OnExpand is called with every coordinate moved to the closed set
	// and its accumulated cost.
	OnExpand func(c lattice.Coordinate, g float64)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the default heuristic
//   - no expansion cap
//   - runtime.NumCPU() workers
//   - no observer and a no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  runtime.NumCPU(),
		OnExpand: func(lattice.Coordinate, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0: cap at n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithWorkers sets how many searches FindPaths runs at once; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithObserver registers an Observer for search outcomes.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithOnExpand registers a callback run for every expanded coordinate.
func WithOnExpand(fn func(c lattice.Coordinate, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
