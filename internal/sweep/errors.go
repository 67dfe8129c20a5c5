package sweep

import "fmt"

// ConvergenceError reports a composition sample whose bubble-point solve did
// not bring the pressure-balance residual under the acceptance tolerance.
// The value is never propagated as a data point.
type ConvergenceError struct {
	X             float64 // Liquid mole fraction of the failed sample
	T             float64 // Best temperature estimate (°C), if any
	ResidualMmHg  float64 // Residual at T
	ToleranceMmHg float64 // Acceptance threshold
	Cause         error   // Underlying solver error, if any
}

func (e *ConvergenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bubble point at x=%g did not converge: %v", e.X, e.Cause)
	}
	return fmt.Sprintf("bubble point at x=%g did not converge: residual %g mmHg exceeds tolerance %g mmHg at T=%g °C",
		e.X, e.ResidualMmHg, e.ToleranceMmHg, e.T)
}

func (e *ConvergenceError) Unwrap() error { return e.Cause }

// PhysicalRangeError reports a derived vapor fraction outside [0, 1], which
// means the solved temperature cannot be a physically meaningful bubble point
type PhysicalRangeError struct {
	X float64 // Liquid mole fraction of the sample
	T float64 // Solved temperature (°C)
	Y float64 // Offending vapor fraction
}

func (e *PhysicalRangeError) Error() string {
	return fmt.Sprintf("vapor fraction y=%g outside [0, 1] at x=%g, T=%g °C", e.Y, e.X, e.T)
}
