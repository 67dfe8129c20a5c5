package antoine

import (
	"math"
	"testing"

	"github.com/makhan/raoult/internal/model"
)

var (
	heptane = model.Antoine{A: 6.893, B: 1260.0, C: 216.0}
	octane  = model.Antoine{A: 6.9094, B: 1351.0, C: 217.0}
)

func TestSaturationPressure_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		constants model.Antoine
		temp      float64
		want      float64
	}{
		// At T = B/(A-log10(P)) - C the correlation must return P exactly
		{"heptane at 100C", heptane, 100.0, math.Pow(10, 6.893-1260.0/316.0)},
		{"octane at 100C", octane, 100.0, math.Pow(10, 6.9094-1351.0/317.0)},
		{"heptane at 0C", heptane, 0.0, math.Pow(10, 6.893-1260.0/216.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SaturationPressure(tt.temp, tt.constants)
			if math.Abs(got-tt.want) > 1e-9*tt.want {
				t.Errorf("SaturationPressure(%v) = %v, want %v", tt.temp, got, tt.want)
			}
		})
	}
}

func TestSaturationPressure_AlwaysPositive(t *testing.T) {
	for _, temp := range []float64{-100, -50, 0, 25, 100, 500} {
		if p := SaturationPressure(temp, heptane); p <= 0 {
			t.Errorf("SaturationPressure(%v) = %v, want > 0", temp, p)
		}
	}
}

func TestSaturationPressure_MonotonicInTemperature(t *testing.T) {
	// Above the singularity T = -C, vapor pressure rises with temperature
	prev := SaturationPressure(-50, octane)
	for temp := -45.0; temp <= 200; temp += 5 {
		cur := SaturationPressure(temp, octane)
		if cur <= prev {
			t.Fatalf("saturation pressure not increasing at T=%v: %v <= %v", temp, cur, prev)
		}
		prev = cur
	}
}

func TestBoilingPoint_RoundTrip(t *testing.T) {
	// SaturationPressure(BoilingPoint(p)) == p for any positive pressure
	for _, p := range []float64{10, 100, 760, 1500} {
		tb := BoilingPoint(heptane, p)
		back := SaturationPressure(tb, heptane)
		if math.Abs(back-p) > 1e-9*p {
			t.Errorf("round trip at p=%v: got %v", p, back)
		}
	}
}

func TestBoilingPoint_ReferenceConstants(t *testing.T) {
	// Values the reference heptane/octane constants produce at 760 mmHg
	tbHeptane := BoilingPoint(heptane, 760)
	if math.Abs(tbHeptane-98.04) > 0.05 {
		t.Errorf("heptane boiling point = %v, want ~98.04", tbHeptane)
	}

	tbOctane := BoilingPoint(octane, 760)
	if math.Abs(tbOctane-118.35) > 0.05 {
		t.Errorf("octane boiling point = %v, want ~118.35", tbOctane)
	}

	// Heptane is the more volatile component: lower boiling point
	if tbHeptane >= tbOctane {
		t.Errorf("expected heptane bp %v < octane bp %v", tbHeptane, tbOctane)
	}
}
