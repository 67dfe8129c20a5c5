// Package solve provides a bracketed one-dimensional root finder (Brent's
// method) for continuous functions with a sign change over a known interval.
package solve

import (
	"fmt"
	"math"
)

// Func is the scalar function whose root is sought
type Func func(x float64) float64

// Options tunes the solver. Zero values fall back to defaults.
type Options struct {
	FTol    float64 // Accept x once |f(x)| <= FTol (default 1e-9)
	XTol    float64 // Accept x once the bracket width is below XTol (default 1e-12)
	MaxIter int     // Iteration cap (default 100)
}

// ErrNoBracket is returned when f has the same sign at both interval
// endpoints, so no root is guaranteed to exist inside
type ErrNoBracket struct {
	A, B   float64
	FA, FB float64
}

func (e *ErrNoBracket) Error() string {
	return fmt.Sprintf("no sign change over [%g, %g]: f(a)=%g, f(b)=%g", e.A, e.B, e.FA, e.FB)
}

// ErrMaxIterations is returned when the iteration cap is reached before the
// interval collapses. Best carries the closest estimate found.
type ErrMaxIterations struct {
	Best     float64
	Residual float64
	Iters    int
}

func (e *ErrMaxIterations) Error() string {
	return fmt.Sprintf("no convergence after %d iterations: best x=%g, f(x)=%g", e.Iters, e.Best, e.Residual)
}

// Root finds x in [a, b] with f(x) = 0 using Brent's method: bisection
// combined with secant and inverse quadratic interpolation. f(a) and f(b)
// must have opposite signs (a root exactly at an endpoint is accepted).
func Root(f Func, a, b float64, opts Options) (float64, error) {
	ftol := opts.FTol
	if ftol == 0 {
		ftol = 1e-9
	}
	xtol := opts.XTol
	if xtol == 0 {
		xtol = 1e-12
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = 100
	}

	fa := f(a)
	fb := f(b)

	// Roots sitting exactly on a bracket endpoint are common here (pure
	// components resolve at the bracket edge), so check before iterating.
	if math.Abs(fa) <= ftol {
		return a, nil
	}
	if math.Abs(fb) <= ftol {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, &ErrNoBracket{A: a, B: b, FA: fa, FB: fb}
	}

	// b tracks the best estimate, a the previous one, c the counterpoint
	// keeping the bracket valid
	c, fc := a, fa
	var d, e float64 // Last and second-to-last step sizes
	d = b - a
	e = d

	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*machEps*math.Abs(b) + xtol/2
		m := (c - b) / 2

		if math.Abs(fb) <= ftol {
			return b, nil
		}
		if math.Abs(m) <= tol {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// Interpolation rejected, bisect
				d = m
				e = m
			}
		} else {
			d = m
			e = m
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)

		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return b, &ErrMaxIterations{Best: b, Residual: fb, Iters: maxIter}
}

const machEps = 2.220446049250313e-16
