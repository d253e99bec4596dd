// Package grid provides a bounded, rectangular traversability oracle that can
// be parsed from and rendered to ASCII maps.
//
// Map syntax, one row per line, top row is y = 0:
//
//	#  blocked cell
//	.  open cell
//	S  open cell marking the origin
//	T  open cell marking the target
//
// Blank lines and lines starting with ';' are ignored.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/gridpath"
)

// Cell glyphs.
const (
	Blocked = '#'
	Open    = '.'
	Origin  = 'S'
	Target  = 'T'
	Step    = '*'
)

// ErrInvalidMap is returned by Parse for malformed maps.
var ErrInvalidMap = errors.New("invalid map")

// Grid is a W×H world where every cell is either open or blocked. Cells
// outside the bounds are never traversable, which keeps every search finite.
// A Grid is safe for concurrent reads.
type Grid struct {
	Width, Height int
	blocked       []bool
	marks         map[rune]gridpath.Position
}

var _ gridpath.Oracle = (*Grid)(nil)

// New returns a fully open grid.
func New(width, height int) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		blocked: make([]bool, width*height),
		marks:   make(map[rune]gridpath.Position),
	}
}

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos gridpath.Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Traversable implements gridpath.Oracle.
func (g *Grid) Traversable(pos gridpath.Position) bool {
	return g.InBounds(pos) && !g.blocked[g.index(pos)]
}

// Block marks the given cells as not traversable. Out of bounds cells are ignored.
func (g *Grid) Block(cells ...gridpath.Position) {
	for _, pos := range cells {
		if g.InBounds(pos) {
			g.blocked[g.index(pos)] = true
		}
	}
}

// Unblock marks the given cells as traversable.
func (g *Grid) Unblock(cells ...gridpath.Position) {
	for _, pos := range cells {
		if g.InBounds(pos) {
			g.blocked[g.index(pos)] = false
		}
	}
}

// Walls returns every blocked cell in row-major order.
func (g *Grid) Walls() []gridpath.Position {
	var walls []gridpath.Position
	for i, b := range g.blocked {
		if b {
			walls = append(walls, gridpath.Position{X: i % g.Width, Y: i / g.Width})
		}
	}
	return walls
}

// Mark returns the position of the S or T marker found by Parse.
func (g *Grid) Mark(glyph rune) (gridpath.Position, bool) {
	pos, ok := g.marks[glyph]
	return pos, ok
}

func (g *Grid) index(pos gridpath.Position) int { return pos.Y*g.Width + pos.X }

// Parse reads an ASCII map. All rows must have the same width.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidMap)
	}

	width := len(rows[0])
	g := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidMap, y, len(row), width)
		}
		for x, glyph := range row {
			pos := gridpath.Position{X: x, Y: y}
			switch glyph {
			case Blocked:
				g.Block(pos)
			case Open:
			case Origin, Target:
				if _, dup := g.marks[glyph]; dup {
					return nil, fmt.Errorf("%w: duplicate %q marker at %v", ErrInvalidMap, glyph, pos)
				}
				g.marks[glyph] = pos
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrInvalidMap, glyph, pos)
			}
		}
	}
	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Render draws the grid with origin, target and each path waypoint marked.
func (g *Grid) Render(origin, target gridpath.Position, path []gridpath.Position) string {
	cells := make([][]byte, g.Height)
	for y := range cells {
		cells[y] = make([]byte, g.Width)
		for x := range cells[y] {
			cells[y][x] = Open
			if !g.Traversable(gridpath.Position{X: x, Y: y}) {
				cells[y][x] = Blocked
			}
		}
	}
	put := func(pos gridpath.Position, glyph byte) {
		if g.InBounds(pos) {
			cells[pos.Y][pos.X] = glyph
		}
	}
	for _, pos := range path {
		put(pos, Step)
	}
	put(origin, Origin)
	put(target, Target)

	var b strings.Builder
	for _, row := range cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
