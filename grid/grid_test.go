package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
)

type point = gridpath.Position

func TestParse(t *testing.T) {
	g, err := grid.ParseString(`
; a comment
S.#
.#T
`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	origin, ok := g.Mark(grid.Origin)
	require.True(t, ok)
	assert.Equal(t, point{X: 0, Y: 0}, origin)
	target, ok := g.Mark(grid.Target)
	require.True(t, ok)
	assert.Equal(t, point{X: 2, Y: 1}, target)

	assert.True(t, g.Traversable(origin))
	assert.True(t, g.Traversable(target))
	assert.False(t, g.Traversable(point{X: 2, Y: 0}))
	assert.False(t, g.Traversable(point{X: 1, Y: 1}))
	assert.Equal(t, []point{{X: 2, Y: 0}, {X: 1, Y: 1}}, g.Walls())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", "\n; nothing\n"},
		{"ragged", "...\n..\n"},
		{"glyph", "..x\n...\n"},
		{"duplicate origin", "S.S\n...\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grid.ParseString(tt.in)
			assert.ErrorIs(t, err, grid.ErrInvalidMap)
		})
	}
}

func TestBounds(t *testing.T) {
	g := grid.New(2, 3)
	for _, p := range []point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 3}} {
		assert.False(t, g.InBounds(p), "%v", p)
		assert.False(t, g.Traversable(p), "%v", p)
	}
	assert.True(t, g.Traversable(point{X: 1, Y: 2}))

	g.Block(point{X: 1, Y: 2}, point{X: 5, Y: 5})
	assert.False(t, g.Traversable(point{X: 1, Y: 2}))
	g.Unblock(point{X: 1, Y: 2})
	assert.True(t, g.Traversable(point{X: 1, Y: 2}))
	assert.Empty(t, g.Walls())
}

func TestGenerate(t *testing.T) {
	keep := []point{{X: 0, Y: 0}, {X: 9, Y: 9}}
	a := grid.Generate(10, 10, 5, 60, 0.6, rand.New(rand.NewSource(1)), keep...)
	b := grid.Generate(10, 10, 5, 60, 0.6, rand.New(rand.NewSource(1)), keep...)

	assert.Equal(t, a.Walls(), b.Walls())
	assert.NotEmpty(t, a.Walls())
	for _, p := range keep {
		assert.True(t, a.Traversable(p))
	}
	assert.Empty(t, grid.Generate(0, 0, 5, 60, 1, rand.New(rand.NewSource(1))).Walls())
}

func TestRenderGolden(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"chain", "S####\n.####\n#.###\n##..T\n"},
		{"walled", "S.#..\n..#..\n..#.T\n"},
	}
	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.ParseString(tt.in)
			require.NoError(t, err)
			origin, _ := g.Mark(grid.Origin)
			target, _ := g.Mark(grid.Target)

			path := gridpath.NewAStar(g, gridpath.Chebyshev).Find(origin, target)
			gold.Assert(t, tt.name, []byte(g.Render(origin, target, path)))
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	in := "S..#\n.#..\n...T\n"
	g, err := grid.ParseString(in)
	require.NoError(t, err)
	origin, _ := g.Mark(grid.Origin)
	target, _ := g.Mark(grid.Target)

	out := g.Render(origin, target, nil)
	assert.Equal(t, in, out)

	again, err := grid.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, g.Walls(), again.Walls())
}
