package gridpath

import (
	"container/list"
	"context"
	"time"

	"github.com/pdrpinto/gridpath/internal"
)

// BreadthFirst finds a route with the fewest steps, treating every move as
// cost 1. It ignores heuristics entirely.
type BreadthFirst struct {
	oracle  Oracle
	options Options
}

var _ Pathfinder = (*BreadthFirst)(nil)

// NewBreadthFirst creates a breadth-first pathfinder over oracle.
func NewBreadthFirst(oracle Oracle, options ...Option) *BreadthFirst {
	return &BreadthFirst{oracle: oracle, options: applyOptions(options)}
}

// Find returns a route with the fewest steps, or an empty path.
func (b *BreadthFirst) Find(origin Position, target Position) []Position {
	result, _ := b.Search(context.Background(), origin, target)
	return result.Path
}

// Search runs the breadth-first search. Result.Cost is the number of steps.
func (b *BreadthFirst) Search(ctx context.Context, origin Position, target Position) (Result, error) {
	started := time.Now()
	cameFrom := map[Position]Position{}
	visited := map[Position]bool{origin: true}
	queue := list.New()
	queue.PushBack(origin)

	var err error
	expanded := 0
	found := origin == target
	for !found && queue.Len() > 0 {
		if expanded%ctxPollInterval == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
		current := queue.Remove(queue.Front()).(Position)
		expanded++
		for _, next := range current.Neighbors() {
			if visited[next] || !b.oracle.Traversable(next) {
				continue
			}
			visited[next] = true
			cameFrom[next] = current
			if next == target {
				found = true
				break
			}
			queue.PushBack(next)
		}
	}

	result := Result{Expanded: expanded, Found: found && err == nil}
	outcome := OutcomeUnreachable
	switch {
	case err != nil:
		outcome = OutcomeCanceled
	case origin == target:
		outcome = OutcomeTrivial
	case found:
		outcome = OutcomeFound
		result.Path = internal.ReconstructPath(func(p Position) (Position, bool) {
			parent, ok := cameFrom[p]
			return parent, ok
		}, target, origin)
		result.Cost = float64(len(result.Path))
	}

	b.options.Metrics.observe("bfs", outcome, expanded, time.Since(started))
	b.options.Logger.Debug("search finished",
		"strategy", "bfs",
		"origin", origin,
		"target", target,
		"outcome", outcome,
		"expanded", expanded,
		"length", len(result.Path),
	)
	return result, err
}
