package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
)

// ErrScenarioFailed is returned when at least one scenario misses its expectations.
var ErrScenarioFailed = errors.New("scenario expectations not met")

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Render bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Run search scenarios and check their expectations",
		Long: `Run one or more YAML search scenarios.

Each scenario names a map, endpoints, heuristic and strategy, and may carry
an expect block. The command fails if any expectation is not met.

Example:
  gridpath run testdata/scenarios/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Render, "render", false, "draw each map with its path")

	return cmd
}

func runScenarios(cmd *cobra.Command, opts *RunOptions, paths []string) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	failed := 0
	for _, path := range paths {
		report, err := runScenario(path, opts, gridpath.WithLogger(logger))
		if err != nil {
			return err
		}
		if len(report.Failures) > 0 {
			failed++
		}
		if err := writeReport(cmd.OutOrStdout(), opts.Format, report); err != nil {
			return err
		}
	}
	logger.Info("scenarios finished", "total", len(paths), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenarioFailed, failed, len(paths))
	}
	return nil
}

func runScenario(path string, opts *RunOptions, options ...gridpath.Option) (PathReport, error) {
	scenario, err := config.Load(path)
	if err != nil {
		return PathReport{}, err
	}
	g, err := scenario.Grid()
	if err != nil {
		return PathReport{}, fmt.Errorf("%s: %w", path, err)
	}
	origin, target, err := scenario.Endpoints(g)
	if err != nil {
		return PathReport{}, err
	}
	pathfinder, err := scenario.Pathfinder(g, options...)
	if err != nil {
		return PathReport{}, err
	}

	found := pathfinder.Find(origin, target)
	report := PathReport{
		Name:      scenario.Name,
		Origin:    origin,
		Target:    target,
		Strategy:  scenario.Strategy,
		Reachable: len(found) > 0 || origin == target,
		Path:      found,
		Failures:  scenario.Check(found),
	}
	if opts.Render {
		report.Rendered = g.Render(origin, target, found)
	}
	return report, nil
}
