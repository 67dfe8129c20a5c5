// Package validate checks mixture definitions before a sweep runs, closing
// the gaps a raw solve would hit only as cryptic numerical failures: zero or
// negative pressure, degenerate Antoine constants, and correlation
// singularities sitting inside the temperature search interval.
package validate

import (
	"fmt"
	"math"

	"github.com/makhan/raoult/internal/antoine"
	"github.com/makhan/raoult/internal/model"
)

// singularityMargin is how far (°C) the Antoine singularity T = -C must stay
// below the search bracket
const singularityMargin = 1.0

// Result describes one failed check
type Result struct {
	Field  string // What was checked, e.g. "first.antoine.b"
	Reason string // Why it failed
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %s", r.Field, r.Reason)
}

// Mixture runs all checks on a mixture definition and returns every failure
// found. An empty slice means the mixture is safe to sweep.
func Mixture(mix model.Mixture) []Result {
	var failures []Result

	if mix.PressureMmHg <= 0 {
		failures = append(failures, Result{
			Field:  "pressure_mmhg",
			Reason: fmt.Sprintf("total pressure must be positive, got %g", mix.PressureMmHg),
		})
	}
	if mix.Samples < 2 {
		failures = append(failures, Result{
			Field:  "samples",
			Reason: fmt.Sprintf("composition grid needs at least 2 samples to include both endpoints, got %d", mix.Samples),
		})
	}
	if mix.First.Name == mix.Second.Name && mix.First.Name != "" {
		failures = append(failures, Result{
			Field:  "second.name",
			Reason: fmt.Sprintf("both components are %q; a binary mixture needs two distinct species", mix.First.Name),
		})
	}

	failures = append(failures, component("first", mix.First)...)
	failures = append(failures, component("second", mix.Second)...)

	// Singularity checks need a valid pressure and constants to place the
	// bracket at all
	if len(failures) > 0 {
		return failures
	}

	logP := math.Log10(mix.PressureMmHg)
	for _, c := range []struct {
		field string
		comp  model.Component
	}{
		{"first", mix.First},
		{"second", mix.Second},
	} {
		if c.comp.Antoine.A <= logP {
			failures = append(failures, Result{
				Field: c.field + ".antoine.a",
				Reason: fmt.Sprintf("A=%g never reaches log10(P)=%g; the species cannot boil at this pressure",
					c.comp.Antoine.A, logP),
			})
		}
	}
	if len(failures) > 0 {
		return failures
	}

	lo := antoine.BoilingPoint(mix.First.Antoine, mix.PressureMmHg)
	hi := antoine.BoilingPoint(mix.Second.Antoine, mix.PressureMmHg)
	if lo > hi {
		lo, hi = hi, lo
	}

	for _, c := range []struct {
		field string
		comp  model.Component
	}{
		{"first", mix.First},
		{"second", mix.Second},
	} {
		if sing := -c.comp.Antoine.C; sing > lo-singularityMargin {
			failures = append(failures, Result{
				Field: c.field + ".antoine.c",
				Reason: fmt.Sprintf("correlation singularity at T=%g °C intrudes on the search interval [%g, %g] °C",
					sing, lo, hi),
			})
		}
	}

	return failures
}

// component checks the Antoine constants of a single species
func component(field string, comp model.Component) []Result {
	var failures []Result

	if comp.Name == "" {
		failures = append(failures, Result{Field: field + ".name", Reason: "component name is required"})
	}
	if comp.Antoine.A <= 0 {
		failures = append(failures, Result{
			Field:  field + ".antoine.a",
			Reason: fmt.Sprintf("constant A must be positive, got %g", comp.Antoine.A),
		})
	}
	if comp.Antoine.B <= 0 {
		failures = append(failures, Result{
			Field:  field + ".antoine.b",
			Reason: fmt.Sprintf("constant B must be positive, got %g", comp.Antoine.B),
		})
	}
	if comp.Antoine.C <= 0 {
		failures = append(failures, Result{
			Field:  field + ".antoine.c",
			Reason: fmt.Sprintf("constant C must be positive, got %g", comp.Antoine.C),
		})
	}

	return failures
}

// Error wraps validation failures as a single error for callers that want to
// abort on any failure
func Error(mix model.Mixture) error {
	failures := Mixture(mix)
	if len(failures) == 0 {
		return nil
	}
	msg := "invalid mixture:"
	for _, f := range failures {
		msg += "\n  - " + f.String()
	}
	return fmt.Errorf("%s", msg)
}
