package sweep

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/makhan/raoult/internal/antoine"
	"github.com/makhan/raoult/internal/cache"
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

func newTestSweeper(t *testing.T, mutate func(*model.Config)) *Sweeper {
	t.Helper()
	cfg := model.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	return New(referenceMixture(), cfg, cache.Nop{})
}

func TestGrid(t *testing.T) {
	xs := Grid(21)
	if len(xs) != 21 {
		t.Fatalf("len = %d, want 21", len(xs))
	}
	if xs[0] != 0.0 {
		t.Errorf("first sample = %v, want exactly 0", xs[0])
	}
	if xs[20] != 1.0 {
		t.Errorf("last sample = %v, want exactly 1", xs[20])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Errorf("grid not strictly increasing at %d: %v <= %v", i, xs[i], xs[i-1])
		}
	}
	// Even spacing
	for i := 1; i < len(xs); i++ {
		if math.Abs((xs[i]-xs[i-1])-0.05) > 1e-12 {
			t.Errorf("step at %d = %v, want 0.05", i, xs[i]-xs[i-1])
		}
	}
}

func TestGrid_MinimumSize(t *testing.T) {
	xs := Grid(1)
	if len(xs) != 2 || xs[0] != 0 || xs[1] != 1 {
		t.Errorf("Grid(1) = %v, want [0 1]", xs)
	}
}

func TestBracket(t *testing.T) {
	s := newTestSweeper(t, nil)

	lo, hi := s.Bracket()
	wantLo := antoine.BoilingPoint(s.mix.First.Antoine, 760)
	wantHi := antoine.BoilingPoint(s.mix.Second.Antoine, 760)

	if lo != wantLo || hi != wantHi {
		t.Errorf("Bracket() = (%v, %v), want (%v, %v)", lo, hi, wantLo, wantHi)
	}
	if lo >= hi {
		t.Errorf("bracket not ascending: %v >= %v", lo, hi)
	}
}

func TestBubblePoint_PureComponents(t *testing.T) {
	s := newTestSweeper(t, nil)

	// x = 0: pure second component (octane)
	T0, err := s.BubblePoint(0)
	if err != nil {
		t.Fatalf("x=0: %v", err)
	}
	wantOctane := antoine.BoilingPoint(s.mix.Second.Antoine, 760)
	if math.Abs(T0-wantOctane) > 1e-9 {
		t.Errorf("T(x=0) = %v, want octane boiling point %v", T0, wantOctane)
	}

	// x = 1: pure first component (heptane)
	T1, err := s.BubblePoint(1)
	if err != nil {
		t.Fatalf("x=1: %v", err)
	}
	wantHeptane := antoine.BoilingPoint(s.mix.First.Antoine, 760)
	if math.Abs(T1-wantHeptane) > 1e-9 {
		t.Errorf("T(x=1) = %v, want heptane boiling point %v", T1, wantHeptane)
	}
}

func TestBubblePoint_ResidualWithinTolerance(t *testing.T) {
	s := newTestSweeper(t, nil)

	for _, x := range Grid(21) {
		T, err := s.BubblePoint(x)
		if err != nil {
			t.Fatalf("x=%v: %v", x, err)
		}
		if r := s.Residual(x)(T); math.Abs(r) > 1e-6 {
			t.Errorf("x=%v: residual %v exceeds 1e-6 mmHg", x, r)
		}
	}
}

func TestRun_ReferenceScenario(t *testing.T) {
	s := newTestSweeper(t, nil)

	points, failures, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("expected no failures, got %v", failures)
	}
	if len(points) != 21 {
		t.Fatalf("expected 21 points, got %d", len(points))
	}

	first, last := points[0], points[20]

	// x=0 resolves to octane's boiling point with y=0
	if math.Abs(first.T-118.35) > 0.05 {
		t.Errorf("T(x=0) = %v, want ~118.35", first.T)
	}
	if first.Y != 0 {
		t.Errorf("y(x=0) = %v, want 0", first.Y)
	}

	// x=1 resolves to heptane's boiling point with y=1
	if math.Abs(last.T-98.04) > 0.05 {
		t.Errorf("T(x=1) = %v, want ~98.04", last.T)
	}
	if last.Y != 1 {
		t.Errorf("y(x=1) = %v, want 1", last.Y)
	}

	// Equimolar sample: temperature strictly between the pure boiling
	// points, vapor enriched past 0.5
	mid := points[10]
	if mid.X != 0.5 {
		t.Fatalf("points[10].X = %v, want 0.5", mid.X)
	}
	if !(mid.T > last.T && mid.T < first.T) {
		t.Errorf("T(x=0.5) = %v, want strictly inside (%v, %v)", mid.T, last.T, first.T)
	}
	if !(mid.Y > 0.5 && mid.Y < 1) {
		t.Errorf("y(x=0.5) = %v, want strictly inside (0.5, 1)", mid.Y)
	}
}

func TestRun_TemperatureMonotonicInComposition(t *testing.T) {
	// Heptane is the more volatile component, so adding it lowers the
	// bubble point
	s := newTestSweeper(t, nil)

	points, _, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].T >= points[i-1].T {
			t.Errorf("T not decreasing at x=%v: %v >= %v", points[i].X, points[i].T, points[i-1].T)
		}
	}
}

func TestRun_VaporEnrichment(t *testing.T) {
	// The more volatile component enriches in the vapor: y >= x everywhere
	s := newTestSweeper(t, nil)

	points, _, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range points {
		if p.Y < p.X {
			t.Errorf("y < x at x=%v: y=%v", p.X, p.Y)
		}
		if p.Y < 0 || p.Y > 1 {
			t.Errorf("y outside [0,1] at x=%v: y=%v", p.X, p.Y)
		}
	}
}

func TestRun_RoundTripResidual(t *testing.T) {
	// Re-evaluating the residual at every stored (x, T) row must stay
	// within tolerance of zero
	s := newTestSweeper(t, nil)

	points, _, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range points {
		if r := s.Residual(p.X)(p.T); math.Abs(r) > 1e-6 {
			t.Errorf("stored row x=%v, T=%v: residual %v", p.X, p.T, r)
		}
	}
}

func TestRun_OrderIndependentOfScheduling(t *testing.T) {
	s := newTestSweeper(t, func(cfg *model.Config) {
		cfg.Concurrency.Workers = 8
	})

	points, _, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Errorf("points out of order at %d: x=%v after x=%v", i, points[i].X, points[i-1].X)
		}
	}
}

func TestRun_PartialFailureIsolation(t *testing.T) {
	// Starve the solver of iterations: interior samples cannot converge,
	// but the endpoint compositions resolve at the bracket edges without
	// iterating, and their success must survive the interior failures
	s := newTestSweeper(t, func(cfg *model.Config) {
		cfg.Solver.MaxIterations = 2
	})

	points, failures, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected only the 2 endpoint samples to converge, got %d points", len(points))
	}
	if points[0].X != 0 || points[1].X != 1 {
		t.Errorf("surviving points at x=%v, x=%v; want 0 and 1", points[0].X, points[1].X)
	}
	if len(failures) != 19 {
		t.Fatalf("expected 19 failures, got %d", len(failures))
	}
	for _, f := range failures {
		if f.Index <= 0 || f.Index >= 20 {
			t.Errorf("unexpected failed sample index %d", f.Index)
		}
		if f.Reason == "" {
			t.Error("failure without a reason")
		}
	}
}

func TestBubblePoint_ConvergenceErrorType(t *testing.T) {
	s := newTestSweeper(t, func(cfg *model.Config) {
		cfg.Solver.MaxIterations = 2
	})

	_, err := s.BubblePoint(0.5)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var ce *ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConvergenceError, got %T: %v", err, err)
	}
	if ce.X != 0.5 {
		t.Errorf("ConvergenceError.X = %v, want 0.5", ce.X)
	}
}

func TestVaporFraction_PhysicalRangeError(t *testing.T) {
	s := newTestSweeper(t, nil)

	// 150 °C is far above any bubble point of this system, so the implied
	// vapor fraction overshoots 1
	_, err := s.vaporFraction(0.9, 150)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var pre *PhysicalRangeError
	if !errors.As(err, &pre) {
		t.Fatalf("expected *PhysicalRangeError, got %T: %v", err, err)
	}
	if pre.Y <= 1 {
		t.Errorf("PhysicalRangeError.Y = %v, want > 1", pre.Y)
	}
}

// countingCache records which keys were written (thread-safe)
type countingCache struct {
	mu   sync.Mutex
	vals map[string]float64
}

func (c *countingCache) Get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vals[key]
	return v, ok
}

func (c *countingCache) Set(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals[key] = value
}

func (c *countingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals = map[string]float64{}
}

func TestRun_BoilingPointsCached(t *testing.T) {
	bps := &countingCache{vals: map[string]float64{}}
	s := New(referenceMixture(), model.DefaultConfig(), bps)

	if _, _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, species := range []string{"heptane", "octane"} {
		if _, ok := bps.Get(cache.Key(species, 760)); !ok {
			t.Errorf("boiling point of %s not cached", species)
		}
	}
}

func TestSweeper_ConcurrentSweepsIndependent(t *testing.T) {
	// Two sweepers with different pressures share nothing mutable
	cfg := model.DefaultConfig()

	atmospheric := New(referenceMixture(), cfg, cache.Nop{})
	vacuumMix := referenceMixture()
	vacuumMix.PressureMmHg = 400
	vacuum := New(vacuumMix, cfg, cache.Nop{})

	var wg sync.WaitGroup
	var atmPoints, vacPoints []model.Point
	wg.Add(2)
	go func() {
		defer wg.Done()
		atmPoints, _, _ = atmospheric.Run(context.Background())
	}()
	go func() {
		defer wg.Done()
		vacPoints, _, _ = vacuum.Run(context.Background())
	}()
	wg.Wait()

	if len(atmPoints) != 21 || len(vacPoints) != 21 {
		t.Fatalf("expected both sweeps complete, got %d and %d points", len(atmPoints), len(vacPoints))
	}
	// Lower pressure, lower boiling temperatures across the board
	for i := range atmPoints {
		if vacPoints[i].T >= atmPoints[i].T {
			t.Errorf("at x=%v: T(400mmHg)=%v not below T(760mmHg)=%v",
				atmPoints[i].X, vacPoints[i].T, atmPoints[i].T)
		}
	}
}
