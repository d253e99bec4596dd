package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`
name: tiny
map: |
  S.
  .T
`))
	require.NoError(t, err)
	assert.Equal(t, "chebyshev", s.Heuristic)
	assert.Equal(t, StrategyAStar, s.Strategy)
	assert.Nil(t, s.Expect)

	g, err := s.Grid()
	require.NoError(t, err)
	origin, target, err := s.Endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, gridpath.Position{X: 0, Y: 0}, origin)
	assert.Equal(t, gridpath.Position{X: 1, Y: 1}, target)

	pathfinder, err := s.Pathfinder(g)
	require.NoError(t, err)
	assert.IsType(t, &gridpath.AStar{}, pathfinder)
	assert.Equal(t, []gridpath.Position{target}, pathfinder.Find(origin, target))
}

func TestParseMaxExpansionsSelectsBounded(t *testing.T) {
	s, err := Parse([]byte("name: b\nmap: \"S.T\"\nmax_expansions: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, StrategyBounded, s.Strategy)

	g, err := s.Grid()
	require.NoError(t, err)
	pathfinder, err := s.Pathfinder(g)
	require.NoError(t, err)
	assert.IsType(t, &gridpath.Bounded{}, pathfinder)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no name", "map: S.T\n"},
		{"no map", "name: x\n"},
		{"both maps", "name: x\nmap: S.T\nmap_file: a.txt\n"},
		{"bad point", "name: x\nmap: S.T\norigin: [1]\n"},
		{"bad avoid", "name: x\nmap: S.T\nexpect:\n  avoid:\n    - [1, 2, 3]\n"},
		{"bad heuristic", "name: x\nmap: S.T\nheuristic: warp\n"},
		{"bad strategy", "name: x\nmap: S.T\nstrategy: dfs\n"},
		{"bounded without budget", "name: x\nmap: S.T\nstrategy: bounded\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}

	_, err := Parse([]byte("name: x\nmap: S.T\nunknown_field: 1\n"))
	assert.Error(t, err)
}

func TestLoadResolvesMapFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "maps"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maps", "m.txt"), []byte("..#\n..#\n..#\n"), 0o644))
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: from-file
map_file: maps/m.txt
origin: [0, 0]
target: [0, 2]
strategy: BFS
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyBFS, s.Strategy)

	g, err := s.Grid()
	require.NoError(t, err)
	assert.False(t, g.Traversable(gridpath.Position{X: 2, Y: 1}))

	origin, target, err := s.Endpoints(g)
	require.NoError(t, err)
	pathfinder, err := s.Pathfinder(g)
	require.NoError(t, err)
	assert.IsType(t, &gridpath.BreadthFirst{}, pathfinder)
	assert.Len(t, pathfinder.Find(origin, target), 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEndpointsWithoutMarkers(t *testing.T) {
	s, err := Parse([]byte("name: x\nmap: \"...\"\n"))
	require.NoError(t, err)
	g, err := s.Grid()
	require.NoError(t, err)
	_, _, err = s.Endpoints(g)
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestCheck(t *testing.T) {
	yes, three := true, 3
	s := &Scenario{Expect: &Expectation{
		Reachable: &yes,
		Length:    &three,
		Avoid:     []Point{{1, 1}},
	}}

	assert.Empty(t, s.Check([]gridpath.Position{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 2}}))

	failures := s.Check([]gridpath.Position{{X: 1, Y: 1}})
	assert.Len(t, failures, 2)
	assert.Contains(t, failures[0], "length")
	assert.Contains(t, failures[1], "(1,1)")

	failures = s.Check(nil)
	assert.Len(t, failures, 2)
	assert.Contains(t, failures[0], "reachable")

	assert.Empty(t, (&Scenario{}).Check(nil))
}

func TestNewPathfinderUnknown(t *testing.T) {
	_, err := NewPathfinder("dfs", nil, gridpath.Chebyshev, 0)
	assert.ErrorIs(t, err, ErrInvalidScenario)
}
