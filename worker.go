package gridpath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one origin/target pair submitted to FindAll.
type Query struct {
	Origin Position
	Target Position
}

// FindAll runs the queries through pathfinder on a bounded pool of
// goroutines and returns the paths in query order. Each search owns its own
// state; pathfinder's oracle and heuristic must be safe for concurrent use.
// It returns ctx.Err() if ctx is cancelled before every query has started.
func FindAll(ctx context.Context, pathfinder Pathfinder, queries []Query, options ...Option) ([][]Position, error) {
	searchOptions := applyOptions(options)
	paths := make([][]Position, len(queries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			paths[i] = pathfinder.Find(query.Origin, query.Target)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	searchOptions.Logger.Debug("batch finished", "queries", len(queries), "workers", searchOptions.NumberOfWorkers)
	return paths, nil
}
