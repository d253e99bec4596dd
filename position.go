package gridpath

import "fmt"

// Position is an immutable grid coordinate. It is comparable and is used as a
// map key throughout the engine.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Adjacent reports whether q is one of the eight cells surrounding p.
func (p Position) Adjacent(q Position) bool {
	if p == q {
		return false
	}
	return abs(p.X-q.X) <= 1 && abs(p.Y-q.Y) <= 1
}

// MooreOffsets lists the eight neighbour offsets in scan order: dx outer,
// dy inner, both from -1 to 1.
var MooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the Moore neighbourhood of p in MooreOffsets order.
func (p Position) Neighbors() [8]Position {
	var out [8]Position
	for i, d := range MooreOffsets {
		out[i] = p.Add(d[0], d[1])
	}
	return out
}

// Oracle reports whether a position may be entered.
type Oracle interface {
	Traversable(pos Position) bool
}

// TraversableFunc adapts an ordinary function to the Oracle interface.
type TraversableFunc func(pos Position) bool

// Traversable calls f(pos).
func (f TraversableFunc) Traversable(pos Position) bool { return f(pos) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
