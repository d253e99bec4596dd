package gridpath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Pathfinder finds a route between two positions. The returned path excludes
// origin, ends with target when it is reachable, and is empty when target is
// unreachable or equal to origin. Consecutive positions, origin included,
// are adjacent.
type Pathfinder interface {
	Find(origin Position, target Position) []Position
}

// PathfinderFunc adapts an ordinary function to the Pathfinder interface.
type PathfinderFunc func(origin Position, target Position) []Position

// Find calls f(origin, target).
func (f PathfinderFunc) Find(origin Position, target Position) []Position {
	return f(origin, target)
}

// ErrExpansionLimit is returned by Bounded.Search when the expansion budget
// runs out before the target is reached.
var ErrExpansionLimit = errors.New("expansion limit reached")

// Result contains the outcome of a search
type Result struct {
	Path     []Position
	Cost     float64
	Expanded int
	// Found is true when target was reached, including origin == target,
	// which distinguishes "already there" from "unreachable".
	Found bool
}

// Options defines parameters shared by every strategy.
type Options struct {
	Logger          *slog.Logger
	Metrics         *Metrics
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger that receives one debug record per search.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics records every search in m.
func WithMetrics(m *Metrics) Option {
	return func(options *Options) { options.Metrics = m }
}

// WithWorkers specifies how many searches FindAll runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Logger:          slog.New(slog.DiscardHandler),
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// ctxPollInterval is how many loop iterations pass between context checks.
const ctxPollInterval = 64

// AStar is the reference Pathfinder. It is safe for concurrent use when the
// Oracle and Heuristic are.
type AStar struct {
	oracle    Oracle
	heuristic Heuristic
	options   Options
}

var _ Pathfinder = (*AStar)(nil)

// NewAStar creates an A* pathfinder over oracle guided by heuristic.
func NewAStar(oracle Oracle, heuristic Heuristic, options ...Option) *AStar {
	return &AStar{
		oracle:    oracle,
		heuristic: heuristic,
		options:   applyOptions(options),
	}
}

// Find returns the cheapest route from origin to target, or an empty path.
func (a *AStar) Find(origin Position, target Position) []Position {
	result, _ := a.Search(context.Background(), origin, target)
	return result.Path
}

// Search executes the A* search and reports diagnostics alongside the path.
// The only error it returns is ctx.Err() when ctx is cancelled mid-search.
func (a *AStar) Search(ctx context.Context, origin Position, target Position) (Result, error) {
	return a.run(ctx, "astar", origin, target, 0)
}

func (a *AStar) run(ctx context.Context, strategy string, origin, target Position, limit int) (Result, error) {
	started := time.Now()
	s := newSearch(a.oracle, a.heuristic, origin, target, limit)

	var err error
	for iteration := 1; !s.step(); iteration++ {
		if iteration%ctxPollInterval == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
	}

	result := s.result()
	outcome := s.outcome()
	switch {
	case err != nil:
		outcome = OutcomeCanceled
	case s.limited:
		err = fmt.Errorf("%w: %d nodes expanded", ErrExpansionLimit, s.expanded)
	}

	a.options.Metrics.observe(strategy, outcome, s.expanded, time.Since(started))
	a.options.Logger.Debug("search finished",
		"strategy", strategy,
		"origin", origin,
		"target", target,
		"outcome", outcome,
		"expanded", s.expanded,
		"nodes", s.nodes.len(),
		"length", len(result.Path),
	)
	return result, err
}
