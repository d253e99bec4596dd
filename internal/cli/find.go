package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
	"github.com/pdrpinto/gridpath/internal/config"
)

// FindOptions holds flags for the find command.
type FindOptions struct {
	*RootOptions
	Map           string
	From          string
	To            string
	Heuristic     string
	Strategy      string
	MaxExpansions int
	Render        bool
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "find --map <file>",
		Short: "Find a path on a map",
		Long: `Find the shortest path between two cells of an ASCII map.

Origin and target default to the map's S and T markers.

Example:
  gridpath find --map level.txt
  gridpath find --map level.txt --from 0,0 --to 9,4 --heuristic octile --render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Map, "map", "m", "", "path to ASCII map (required)")
	cmd.Flags().StringVar(&opts.From, "from", "", "origin as x,y (default: S marker)")
	cmd.Flags().StringVar(&opts.To, "to", "", "target as x,y (default: T marker)")
	cmd.Flags().StringVar(&opts.Heuristic, "heuristic", "chebyshev", fmt.Sprintf("heuristic (%s)", strings.Join(gridpath.HeuristicNames, "|")))
	cmd.Flags().StringVar(&opts.Strategy, "strategy", config.StrategyAStar, fmt.Sprintf("search strategy (%s)", strings.Join(config.ValidStrategies, "|")))
	cmd.Flags().IntVar(&opts.MaxExpansions, "max-expansions", 0, "expansion budget for the bounded strategy")
	cmd.Flags().BoolVar(&opts.Render, "render", false, "draw the map with the path")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func runFind(cmd *cobra.Command, opts *FindOptions) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	f, err := os.Open(opts.Map)
	if err != nil {
		return fmt.Errorf("open map: %w", err)
	}
	g, err := grid.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	origin, err := resolvePoint(opts.From, g, grid.Origin, "--from")
	if err != nil {
		return err
	}
	target, err := resolvePoint(opts.To, g, grid.Target, "--to")
	if err != nil {
		return err
	}

	heuristic, err := gridpath.ParseHeuristic(opts.Heuristic)
	if err != nil {
		return err
	}
	strategy := opts.Strategy
	if opts.MaxExpansions > 0 && strategy == config.StrategyAStar {
		strategy = config.StrategyBounded
	}
	pathfinder, err := config.NewPathfinder(strategy, g, heuristic, opts.MaxExpansions, gridpath.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("searching", "map", opts.Map, "origin", origin, "target", target, "strategy", strategy)
	path := pathfinder.Find(origin, target)

	report := PathReport{
		Origin:    origin,
		Target:    target,
		Strategy:  strategy,
		Reachable: len(path) > 0 || origin == target,
		Path:      path,
	}
	if opts.Render {
		report.Rendered = g.Render(origin, target, path)
	}
	return writeReport(cmd.OutOrStdout(), opts.Format, report)
}

// resolvePoint parses "x,y", falling back to the map marker when value is empty.
func resolvePoint(value string, g *grid.Grid, marker rune, flag string) (gridpath.Position, error) {
	if value == "" {
		if pos, ok := g.Mark(marker); ok {
			return pos, nil
		}
		return gridpath.Position{}, fmt.Errorf("%s not set and map has no %q marker", flag, marker)
	}
	return ParsePosition(value)
}

// ParsePosition parses a position written as "x,y".
func ParsePosition(value string) (gridpath.Position, error) {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return gridpath.Position{}, fmt.Errorf("invalid position %q: want x,y", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridpath.Position{}, fmt.Errorf("invalid position %q: %w", value, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridpath.Position{}, fmt.Errorf("invalid position %q: %w", value, err)
	}
	return gridpath.Position{X: x, Y: y}, nil
}
