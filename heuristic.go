package gridpath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Heuristic returns the estimated cost from one position to another. It is
// used both as the step cost between adjacent cells and as the remaining
// distance to the target, so it must be non-negative, admissible and
// consistent for the engine to return optimal paths.
type Heuristic func(from Position, to Position) float64

// ErrUnknownHeuristic is returned by ParseHeuristic for unrecognised names.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Chebyshev is the number of king moves between two cells. Every step,
// diagonal or not, costs 1.
func Chebyshev(from, to Position) float64 {
	return float64(max(abs(from.X-to.X), abs(from.Y-to.Y)))
}

// Manhattan is the taxicab distance. A diagonal step costs 2.
func Manhattan(from, to Position) float64 {
	return float64(abs(from.X-to.X) + abs(from.Y-to.Y))
}

// Euclidean is the straight-line distance.
func Euclidean(from, to Position) float64 {
	return math.Hypot(float64(from.X-to.X), float64(from.Y-to.Y))
}

// Octile is the exact 8-connected distance when a diagonal step costs sqrt(2).
func Octile(from, to Position) float64 {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

var heuristics = map[string]Heuristic{
	"chebyshev": Chebyshev,
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"octile":    Octile,
}

// HeuristicNames lists the names accepted by ParseHeuristic.
var HeuristicNames = []string{"chebyshev", "manhattan", "euclidean", "octile"}

// ParseHeuristic looks up a stock heuristic by name, case-insensitively.
func ParseHeuristic(name string) (Heuristic, error) {
	h, ok := heuristics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q: must be one of %v", ErrUnknownHeuristic, name, HeuristicNames)
	}
	return h, nil
}
