// Package sweep computes the vapor-liquid equilibrium table of an ideal
// binary mixture: for each liquid mole fraction on a composition grid it
// solves the Raoult's-law pressure balance
//
//	x1*Psat1(T) + (1-x1)*Psat2(T) = P_total
//
// for the bubble-point temperature and derives the equilibrium vapor
// fraction y = x1*Psat1(T)/P_total. The solve is bracketed by the two pure-
// component boiling points, so every composition in [0, 1] has a guaranteed
// sign change and the endpoint compositions resolve at the bracket edges.
package sweep

import (
	"context"
	"math"

	"github.com/makhan/raoult/internal/antoine"
	"github.com/makhan/raoult/internal/cache"
	"github.com/makhan/raoult/internal/model"
	"github.com/makhan/raoult/internal/solve"
	"github.com/makhan/raoult/internal/worker"
)

// yRangeEps absorbs float noise at the composition endpoints before the
// [0, 1] range check rejects a vapor fraction as unphysical
const yRangeEps = 1e-9

// Sweeper computes the equilibrium table for one mixture at one pressure.
// All state is read-only after construction; a Sweeper is safe for
// concurrent use and independent Sweepers may run in parallel.
type Sweeper struct {
	mix    model.Mixture
	solver model.SolverConfig
	pool   *worker.Pool
	bps    cache.Cache
}

// New creates a sweeper for the given mixture. The cache memoizes
// pure-component boiling points across sweeps; pass cache.Nop{} to disable.
func New(mix model.Mixture, cfg *model.Config, bps cache.Cache) *Sweeper {
	if bps == nil {
		bps = cache.Nop{}
	}
	return &Sweeper{
		mix:    mix,
		solver: cfg.Solver,
		pool:   worker.NewPool(cfg.Concurrency.Workers),
		bps:    bps,
	}
}

// Mixture returns the system definition this sweeper computes
func (s *Sweeper) Mixture() model.Mixture {
	return s.mix
}

// Grid returns n evenly spaced liquid mole fractions spanning [0, 1],
// including both endpoints exactly
func Grid(n int) []float64 {
	if n < 2 {
		n = 2
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n-1)
	}
	xs[n-1] = 1.0
	return xs
}

// Residual returns the pressure-balance residual at liquid fraction x as a
// function of temperature. Its root is the bubble point.
func (s *Sweeper) Residual(x float64) solve.Func {
	return func(T float64) float64 {
		p1 := antoine.SaturationPressure(T, s.mix.First.Antoine)
		p2 := antoine.SaturationPressure(T, s.mix.Second.Antoine)
		return x*p1 + (1-x)*p2 - s.mix.PressureMmHg
	}
}

// Bracket returns the temperature search interval for this system: the two
// pure-component boiling points in ascending order. Boiling points come from
// the closed-form Antoine inverse and are memoized per species and pressure.
func (s *Sweeper) Bracket() (lo, hi float64) {
	lo = s.boilingPoint(s.mix.First)
	hi = s.boilingPoint(s.mix.Second)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (s *Sweeper) boilingPoint(c model.Component) float64 {
	key := cache.Key(c.Name, s.mix.PressureMmHg)
	if tb, ok := s.bps.Get(key); ok {
		return tb
	}
	tb := antoine.BoilingPoint(c.Antoine, s.mix.PressureMmHg)
	s.bps.Set(key, tb)
	return tb
}

// BubblePoint solves for the temperature at which a liquid of composition x
// first boils. The returned temperature always satisfies the residual
// tolerance; anything less is a ConvergenceError.
func (s *Sweeper) BubblePoint(x float64) (float64, error) {
	lo, hi := s.Bracket()
	f := s.Residual(x)

	T, err := solve.Root(f, lo, hi, solve.Options{
		FTol:    s.solver.ToleranceMmHg,
		MaxIter: s.solver.MaxIterations,
	})
	if err != nil {
		return 0, &ConvergenceError{
			X:             x,
			T:             T,
			ResidualMmHg:  f(T),
			ToleranceMmHg: s.solver.ToleranceMmHg,
			Cause:         err,
		}
	}

	// The solver already enforces FTol, but the acceptance check is the
	// contract of this function, not an internal detail of the solver
	if r := f(T); math.Abs(r) > s.solver.ToleranceMmHg {
		return 0, &ConvergenceError{
			X:             x,
			T:             T,
			ResidualMmHg:  r,
			ToleranceMmHg: s.solver.ToleranceMmHg,
		}
	}

	return T, nil
}

// vaporFraction derives the first component's vapor mole fraction at the
// solved temperature. Saturation pressure is recomputed fresh at T rather
// than reused from inside the solve.
func (s *Sweeper) vaporFraction(x, T float64) (float64, error) {
	p1 := antoine.SaturationPressure(T, s.mix.First.Antoine)
	y := x * p1 / s.mix.PressureMmHg
	if y < -yRangeEps || y > 1+yRangeEps {
		return 0, &PhysicalRangeError{X: x, T: T, Y: y}
	}
	return math.Min(math.Max(y, 0), 1), nil
}

// Solve computes the full equilibrium point for one liquid composition
func (s *Sweeper) Solve(x float64) (model.Point, error) {
	T, err := s.BubblePoint(x)
	if err != nil {
		return model.Point{}, err
	}
	y, err := s.vaporFraction(x, T)
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{X: x, Y: y, T: T}, nil
}

// sampleJob solves one grid sample on the worker pool
type sampleJob struct {
	sweeper *Sweeper
	index   int
	x       float64
}

// sampleResult is the outcome of one sample solve
type sampleResult struct {
	index int
	x     float64
	point model.Point
	err   error
}

func (r *sampleResult) Err() error { return r.err }

func (j *sampleJob) Execute(ctx context.Context) worker.Result {
	if err := ctx.Err(); err != nil {
		return &sampleResult{index: j.index, x: j.x, err: err}
	}
	point, err := j.sweeper.Solve(j.x)
	return &sampleResult{index: j.index, x: j.x, point: point, err: err}
}

// Run sweeps the composition grid. Samples are independent, so they run
// concurrently and one sample's failure never aborts the others; failures
// come back attached to their sample. Points are returned in ascending-x
// order regardless of scheduling.
func (s *Sweeper) Run(ctx context.Context) ([]model.Point, []model.SampleFailure, error) {
	grid := Grid(s.mix.Samples)

	jobs := make([]worker.Job, len(grid))
	for i, x := range grid {
		jobs[i] = &sampleJob{sweeper: s, index: i, x: x}
	}

	results, err := s.pool.Run(ctx, jobs)
	if err != nil {
		return nil, nil, err
	}

	points := make([]model.Point, 0, len(results))
	var failures []model.SampleFailure
	for _, r := range results {
		sample := r.(*sampleResult)
		if sample.err != nil {
			failures = append(failures, model.SampleFailure{
				Index:  sample.index,
				X:      sample.x,
				Reason: sample.err.Error(),
			})
			continue
		}
		points = append(points, sample.point)
	}

	return points, failures, nil
}
