// Package gridpath finds the shortest walkable route between two cells of a
// 2D grid.
//
// The grid itself is supplied by the caller through an Oracle, which reports
// whether a Position may be entered, and a Heuristic, which estimates the cost
// between two positions. Movement uses the Moore neighbourhood: every cell has
// eight neighbours, orthogonal and diagonal.
//
// It exposes three entry points:
//
//   - Pathfinder: the single-method contract, Find(origin, target).
//   - AStar.Search: run the A* engine to completion and get a Result with diagnostics.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// AStar is the reference strategy; BreadthFirst and Bounded are alternatives
// that satisfy the same contract. All search state is owned by one call, so
// independent searches may run concurrently (see FindAll) as long as the
// Oracle and Heuristic are safe to query from several goroutines.
package gridpath
