package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/gridpath"
)

// PathReport is the result of one search as printed by the CLI.
type PathReport struct {
	Name      string              `json:"name,omitempty"`
	Origin    gridpath.Position   `json:"origin"`
	Target    gridpath.Position   `json:"target"`
	Strategy  string              `json:"strategy"`
	Reachable bool                `json:"reachable"`
	Path      []gridpath.Position `json:"path"`
	Failures  []string            `json:"failures,omitempty"`
	Rendered  string              `json:"rendered,omitempty"`
}

func writeReport(w io.Writer, format string, report PathReport) error {
	if format == "json" {
		if report.Path == nil {
			report.Path = []gridpath.Position{}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	if report.Name != "" {
		status := "PASS"
		if len(report.Failures) > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %s\n", status, report.Name)
		for _, failure := range report.Failures {
			fmt.Fprintf(w, "  %s\n", failure)
		}
	}
	switch {
	case len(report.Path) > 0:
		fmt.Fprintf(w, "path %v -> %v (%d steps): %s\n", report.Origin, report.Target, len(report.Path), formatPath(report.Path))
	case report.Origin == report.Target:
		fmt.Fprintf(w, "already at %v\n", report.Target)
	default:
		fmt.Fprintf(w, "no path %v -> %v\n", report.Origin, report.Target)
	}
	if report.Rendered != "" {
		fmt.Fprint(w, report.Rendered)
	}
	return nil
}

func formatPath(path []gridpath.Position) string {
	parts := make([]string, len(path))
	for i, pos := range path {
		parts[i] = pos.String()
	}
	return strings.Join(parts, " ")
}
