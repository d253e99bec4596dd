// Package config loads search scenarios from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
)

// ErrInvalidScenario is returned for scenarios that fail validation.
var ErrInvalidScenario = errors.New("invalid scenario")

// Strategy names.
const (
	StrategyAStar   = "astar"
	StrategyBFS     = "bfs"
	StrategyBounded = "bounded"
)

// ValidStrategies lists the accepted strategy names.
var ValidStrategies = []string{StrategyAStar, StrategyBFS, StrategyBounded}

// Point is a position written as a two element YAML sequence: [x, y].
type Point []int

// Position converts p to a gridpath.Position.
func (p Point) Position() gridpath.Position {
	return gridpath.Position{X: p[0], Y: p[1]}
}

// Scenario describes one search over one map.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// Map is an inline ASCII map. Exactly one of Map and MapFile is set.
	Map string `yaml:"map,omitempty"`

	// MapFile is a path to an ASCII map, relative to the scenario file.
	MapFile string `yaml:"map_file,omitempty"`

	// Origin and Target default to the map's S and T markers.
	Origin Point `yaml:"origin,omitempty"`
	Target Point `yaml:"target,omitempty"`

	// Heuristic defaults to chebyshev.
	Heuristic string `yaml:"heuristic,omitempty"`

	// Strategy defaults to astar, or bounded when MaxExpansions is set.
	Strategy string `yaml:"strategy,omitempty"`

	MaxExpansions int `yaml:"max_expansions,omitempty"`

	Expect *Expectation `yaml:"expect,omitempty"`

	dir string
}

// Expectation is checked against the path a scenario produces.
type Expectation struct {
	Reachable *bool `yaml:"reachable,omitempty"`
	Length    *int  `yaml:"length,omitempty"`
	// Avoid lists cells the path must not visit.
	Avoid []Point `yaml:"avoid,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Heuristic == "" {
		s.Heuristic = "chebyshev"
	}
	if s.Strategy == "" {
		s.Strategy = StrategyAStar
		if s.MaxExpansions > 0 {
			s.Strategy = StrategyBounded
		}
	}
	s.Strategy = strings.ToLower(s.Strategy)
}

// Validate checks the scenario for structural errors.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if (s.Map == "") == (s.MapFile == "") {
		return fmt.Errorf("%w %q: exactly one of map and map_file is required", ErrInvalidScenario, s.Name)
	}
	for field, p := range map[string]Point{"origin": s.Origin, "target": s.Target} {
		if p != nil && len(p) != 2 {
			return fmt.Errorf("%w %q: %s must be [x, y]", ErrInvalidScenario, s.Name, field)
		}
	}
	if s.Expect != nil {
		for _, p := range s.Expect.Avoid {
			if len(p) != 2 {
				return fmt.Errorf("%w %q: avoid entries must be [x, y]", ErrInvalidScenario, s.Name)
			}
		}
	}
	if _, err := gridpath.ParseHeuristic(s.Heuristic); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidScenario, s.Name, err)
	}
	switch s.Strategy {
	case StrategyAStar, StrategyBFS:
	case StrategyBounded:
		if s.MaxExpansions <= 0 {
			return fmt.Errorf("%w %q: bounded strategy needs max_expansions > 0", ErrInvalidScenario, s.Name)
		}
	default:
		return fmt.Errorf("%w %q: unknown strategy %q, must be one of %v", ErrInvalidScenario, s.Name, s.Strategy, ValidStrategies)
	}
	return nil
}

// Grid loads the scenario's map.
func (s *Scenario) Grid() (*grid.Grid, error) {
	if s.Map != "" {
		return grid.ParseString(s.Map)
	}
	path := s.MapFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	return grid.Parse(f)
}

// Endpoints resolves origin and target, falling back to the map's markers.
func (s *Scenario) Endpoints(g *grid.Grid) (origin, target gridpath.Position, err error) {
	origin, err = endpoint(s.Origin, g, grid.Origin, "origin")
	if err != nil {
		return origin, target, fmt.Errorf("%w %q: %w", ErrInvalidScenario, s.Name, err)
	}
	target, err = endpoint(s.Target, g, grid.Target, "target")
	if err != nil {
		return origin, target, fmt.Errorf("%w %q: %w", ErrInvalidScenario, s.Name, err)
	}
	return origin, target, nil
}

func endpoint(p Point, g *grid.Grid, marker rune, field string) (gridpath.Position, error) {
	if p != nil {
		return p.Position(), nil
	}
	if pos, ok := g.Mark(marker); ok {
		return pos, nil
	}
	return gridpath.Position{}, fmt.Errorf("%s not set and map has no %q marker", field, marker)
}

// Pathfinder builds the strategy the scenario asks for over oracle.
func (s *Scenario) Pathfinder(oracle gridpath.Oracle, options ...gridpath.Option) (gridpath.Pathfinder, error) {
	heuristic, err := gridpath.ParseHeuristic(s.Heuristic)
	if err != nil {
		return nil, err
	}
	return NewPathfinder(s.Strategy, oracle, heuristic, s.MaxExpansions, options...)
}

// NewPathfinder builds a strategy by name.
func NewPathfinder(strategy string, oracle gridpath.Oracle, heuristic gridpath.Heuristic, maxExpansions int, options ...gridpath.Option) (gridpath.Pathfinder, error) {
	switch strings.ToLower(strategy) {
	case StrategyAStar:
		return gridpath.NewAStar(oracle, heuristic, options...), nil
	case StrategyBFS:
		return gridpath.NewBreadthFirst(oracle, options...), nil
	case StrategyBounded:
		return gridpath.NewBounded(oracle, heuristic, maxExpansions, options...), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q, must be one of %v", ErrInvalidScenario, strategy, ValidStrategies)
	}
}

// Check compares a path against the scenario's expectations and returns a
// description of every mismatch.
func (s *Scenario) Check(path []gridpath.Position) []string {
	if s.Expect == nil {
		return nil
	}
	var failures []string
	if s.Expect.Reachable != nil && *s.Expect.Reachable != (len(path) > 0) {
		failures = append(failures, fmt.Sprintf("reachable: got %t, want %t", len(path) > 0, *s.Expect.Reachable))
	}
	if s.Expect.Length != nil && *s.Expect.Length != len(path) {
		failures = append(failures, fmt.Sprintf("length: got %d, want %d", len(path), *s.Expect.Length))
	}
	for _, avoid := range s.Expect.Avoid {
		for _, pos := range path {
			if pos == avoid.Position() {
				failures = append(failures, fmt.Sprintf("path visits %v", pos))
			}
		}
	}
	return failures
}
