package gridpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestNeighbors(t *testing.T) {
	p := point{X: 5, Y: -2}
	seen := map[point]bool{}
	for _, n := range p.Neighbors() {
		assert.True(t, p.Adjacent(n), "%v", n)
		seen[n] = true
	}
	assert.Len(t, seen, 8)
	assert.False(t, seen[p])
	assert.Equal(t, point{X: 4, Y: -3}, p.Neighbors()[0])
	assert.Equal(t, point{X: 6, Y: -1}, p.Neighbors()[7])
}

func TestAdjacent(t *testing.T) {
	p := point{X: 0, Y: 0}
	assert.False(t, p.Adjacent(p))
	assert.True(t, p.Adjacent(point{X: -1, Y: 1}))
	assert.False(t, p.Adjacent(point{X: 2, Y: 0}))
	assert.Equal(t, "(0,0)", p.String())
}

func TestHeuristics(t *testing.T) {
	a, b := point{X: 0, Y: 0}, point{X: 3, Y: -4}
	tests := []struct {
		name string
		want float64
	}{
		{"chebyshev", 4},
		{"manhattan", 7},
		{"euclidean", 5},
		{"octile", 1 + 3*math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := gridpath.ParseHeuristic(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, h(a, b), 1e-9)
			assert.InDelta(t, tt.want, h(b, a), 1e-9)
			assert.Zero(t, h(a, a))
		})
	}
}

func TestParseHeuristicUnknown(t *testing.T) {
	h, err := gridpath.ParseHeuristic("dijkstra")
	assert.Nil(t, h)
	assert.ErrorIs(t, err, gridpath.ErrUnknownHeuristic)

	h, err = gridpath.ParseHeuristic(" Octile ")
	require.NoError(t, err)
	assert.NotNil(t, h)
}
