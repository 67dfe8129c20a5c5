// Package report renders a computed equilibrium dataset for downstream
// consumers: JSON at full precision for plotting collaborators, Markdown with
// the classic display-rounded x/y/T table, and a short stdout summary. The
// renderer only reads the report; nothing flows back into the computation.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/makhan/raoult/internal/model"
)

// Renderer renders sweep reports
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON, full precision
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document with the tabulated
// dataset. Fractions are rounded to 3 decimals and temperatures to 2 for
// display; the stored values keep full precision.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	mix := report.Mixture
	fmt.Fprintf(&b, "# T-x-y / x-y Dataset: %s\n\n", mix.Name)
	fmt.Fprintf(&b, "Ideal binary mixture (Raoult's law, Antoine correlation) at %g mmHg.\n\n", mix.PressureMmHg)

	fmt.Fprintf(&b, "- First component (x, y): **%s** (A=%g, B=%g, C=%g)\n",
		mix.First.Name, mix.First.Antoine.A, mix.First.Antoine.B, mix.First.Antoine.C)
	fmt.Fprintf(&b, "- Second component: **%s** (A=%g, B=%g, C=%g)\n",
		mix.Second.Name, mix.Second.Antoine.A, mix.Second.Antoine.B, mix.Second.Antoine.C)
	fmt.Fprintf(&b, "- Solver: %s over [%.2f, %.2f] °C, residual tolerance %g mmHg\n\n",
		report.Solver.Method, report.Solver.BracketLow, report.Solver.BracketHigh, report.Solver.ToleranceMmHg)

	fmt.Fprintf(&b, "## Equilibrium Table\n\n")
	fmt.Fprintf(&b, "| x (liquid %s) | y (vapor %s) | T (°C) |\n", mix.First.Name, mix.First.Name)
	fmt.Fprintf(&b, "|---:|---:|---:|\n")
	for _, p := range report.Points {
		fmt.Fprintf(&b, "| %.3f | %.3f | %.2f |\n", p.X, p.Y, p.T)
	}
	fmt.Fprintf(&b, "\n")

	if len(report.Failures) > 0 {
		fmt.Fprintf(&b, "## Failed Samples\n\n")
		for _, f := range report.Failures {
			fmt.Fprintf(&b, "- x = %.3f (sample %d): %s\n", f.X, f.Index, f.Reason)
		}
		fmt.Fprintf(&b, "\n")
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.Text != "" {
		fmt.Fprintf(&b, "## Narrative (%s/%s)\n\n", report.LLM.Provider, report.LLM.Model)
		fmt.Fprintf(&b, "%s\n\n", report.LLM.Text)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n")
		fmt.Fprintf(&b, "Run %s · generated %s\n", report.RunID, report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	mix := report.Mixture
	fmt.Printf("\n%s at %g mmHg\n", mix.Name, mix.PressureMmHg)
	fmt.Printf("  Converged samples: %d/%d\n", len(report.Points), len(report.Points)+len(report.Failures))

	if len(report.Points) > 0 {
		first := report.Points[0]
		last := report.Points[len(report.Points)-1]
		fmt.Printf("  Bubble point range: %.2f °C (x=%.3f) to %.2f °C (x=%.3f)\n",
			last.T, last.X, first.T, first.X)
	}
	if len(report.Failures) > 0 {
		fmt.Printf("  ⚠ %d sample(s) failed; see report for details\n", len(report.Failures))
	}
}
