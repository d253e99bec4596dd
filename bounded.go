package gridpath

import "context"

// Bounded is an A* pathfinder that gives up after a fixed number of node
// expansions. It trades completeness for bounded latency: an unreachable
// target otherwise forces the whole reachable region to be explored.
type Bounded struct {
	engine        *AStar
	maxExpansions int
}

var _ Pathfinder = (*Bounded)(nil)

// NewBounded creates a pathfinder that expands at most maxExpansions nodes per
// search. A non-positive limit disables the bound.
func NewBounded(oracle Oracle, heuristic Heuristic, maxExpansions int, options ...Option) *Bounded {
	return &Bounded{
		engine:        NewAStar(oracle, heuristic, options...),
		maxExpansions: maxExpansions,
	}
}

// Find returns the cheapest route, or an empty path when target is
// unreachable or the budget ran out.
func (b *Bounded) Find(origin Position, target Position) []Position {
	result, _ := b.Search(context.Background(), origin, target)
	return result.Path
}

// Search is like AStar.Search but returns an error wrapping ErrExpansionLimit
// when the budget is exhausted.
func (b *Bounded) Search(ctx context.Context, origin Position, target Position) (Result, error) {
	return b.engine.run(ctx, "bounded", origin, target, b.maxExpansions)
}
