// Package antoine implements the Antoine vapor-pressure correlation for pure
// species, in the °C/mmHg form: log10(Psat) = A - B/(C + T).
package antoine

import (
	"math"

	"github.com/makhan/raoult/internal/model"
)

// SaturationPressure evaluates the correlation at temperature T (°C) and
// returns the saturation pressure in mmHg. Pure arithmetic: no range
// validation, always strictly positive. The exponent diverges as T approaches
// -C; keeping T away from the singularity is the caller's job.
func SaturationPressure(T float64, c model.Antoine) float64 {
	return math.Pow(10, c.A-c.B/(c.C+T))
}

// BoilingPoint inverts the correlation for the temperature at which the
// saturation pressure equals p (mmHg):
//
//	Tb = B/(A - log10(p)) - C
//
// For a pure component this is the boiling point at total pressure p, which
// the sweep uses as an exact bracket endpoint for the bubble-point solve.
func BoilingPoint(c model.Antoine, p float64) float64 {
	return c.B/(c.A-math.Log10(p)) - c.C
}
