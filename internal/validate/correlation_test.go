package validate

import (
	"strings"
	"testing"

	"github.com/makhan/raoult/internal/model"
)

func referenceMixture() model.Mixture {
	return model.Mixture{
		Name:         "heptane-octane",
		First:        model.Component{Name: "heptane", Antoine: model.Antoine{A: 6.893, B: 1260.0, C: 216.0}},
		Second:       model.Component{Name: "octane", Antoine: model.Antoine{A: 6.9094, B: 1351.0, C: 217.0}},
		PressureMmHg: 760,
		Samples:      21,
	}
}

func TestMixture_ReferenceIsValid(t *testing.T) {
	if failures := Mixture(referenceMixture()); len(failures) != 0 {
		t.Errorf("expected no failures, got %v", failures)
	}
}

func TestMixture_NonPositivePressure(t *testing.T) {
	for _, p := range []float64{0, -760} {
		mix := referenceMixture()
		mix.PressureMmHg = p

		failures := Mixture(mix)
		if !hasField(failures, "pressure_mmhg") {
			t.Errorf("pressure=%v: expected pressure failure, got %v", p, failures)
		}
	}
}

func TestMixture_BadConstants(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.Mixture)
		wantField string
	}{
		{"zero B", func(m *model.Mixture) { m.First.Antoine.B = 0 }, "first.antoine.b"},
		{"negative C", func(m *model.Mixture) { m.Second.Antoine.C = -10 }, "second.antoine.c"},
		{"zero A", func(m *model.Mixture) { m.First.Antoine.A = 0 }, "first.antoine.a"},
		{"missing name", func(m *model.Mixture) { m.Second.Name = "" }, "second.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mix := referenceMixture()
			tt.mutate(&mix)

			failures := Mixture(mix)
			if !hasField(failures, tt.wantField) {
				t.Errorf("expected failure on %s, got %v", tt.wantField, failures)
			}
		})
	}
}

func TestMixture_UnboilableSpecies(t *testing.T) {
	// A below log10(760) means Psat can never reach the total pressure
	mix := referenceMixture()
	mix.First.Antoine.A = 2.0

	failures := Mixture(mix)
	if !hasField(failures, "first.antoine.a") {
		t.Errorf("expected unboilable-species failure, got %v", failures)
	}
}

func TestMixture_SingularityInsideBracket(t *testing.T) {
	// Tb = 0.05/(3.0 - log10(760)) - 30 ≈ -29.58 °C, so the pole at -30 °C
	// sits less than the 1 °C margin below the lower bracket edge
	mix := referenceMixture()
	mix.First.Antoine = model.Antoine{A: 3.0, B: 0.05, C: 30.0}

	failures := Mixture(mix)
	if len(failures) == 0 {
		t.Fatal("expected singularity failure, got none")
	}
	found := false
	for _, f := range failures {
		if strings.Contains(f.Reason, "singularity") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a singularity failure, got %v", failures)
	}
}

func TestMixture_DuplicateSpecies(t *testing.T) {
	mix := referenceMixture()
	mix.Second = mix.First

	failures := Mixture(mix)
	if !hasField(failures, "second.name") {
		t.Errorf("expected duplicate-species failure, got %v", failures)
	}
}

func TestError_WrapsAllFailures(t *testing.T) {
	mix := referenceMixture()
	mix.PressureMmHg = -1
	mix.Samples = 1

	err := Error(mix)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "pressure_mmhg") || !strings.Contains(err.Error(), "samples") {
		t.Errorf("error should list every failure, got: %v", err)
	}

	if err := Error(referenceMixture()); err != nil {
		t.Errorf("expected nil error for valid mixture, got %v", err)
	}
}

func hasField(failures []Result, field string) bool {
	for _, f := range failures {
		if f.Field == field {
			return true
		}
	}
	return false
}
