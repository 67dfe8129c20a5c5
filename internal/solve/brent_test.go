package solve

import (
	"errors"
	"math"
	"testing"
)

func TestRoot_Linear(t *testing.T) {
	f := func(x float64) float64 { return 2*x - 6 }

	root, err := Root(f, 0, 10, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(root-3) > 1e-9 {
		t.Errorf("root = %v, want 3", root)
	}
}

func TestRoot_Transcendental(t *testing.T) {
	// cos(x) = x has its root near 0.739085
	f := func(x float64) float64 { return math.Cos(x) - x }

	root, err := Root(f, 0, 1, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(root-0.7390851332151607) > 1e-8 {
		t.Errorf("root = %v, want ~0.7390851", root)
	}
}

func TestRoot_Exponential(t *testing.T) {
	// Same curvature family as the Antoine residual
	f := func(x float64) float64 { return math.Pow(10, 6.893-1260.0/(216.0+x)) - 760 }

	root, err := Root(f, 50, 150, Options{FTol: 1e-9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(f(root)) > 1e-9 {
		t.Errorf("residual at root = %v, want ~0", f(root))
	}
	if math.Abs(root-98.04) > 0.05 {
		t.Errorf("root = %v, want ~98.04", root)
	}
}

func TestRoot_AtBracketEndpoints(t *testing.T) {
	f := func(x float64) float64 { return x - 5 }

	// Root exactly at the lower endpoint
	root, err := Root(f, 5, 10, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != 5 {
		t.Errorf("root = %v, want exactly 5 (lower endpoint)", root)
	}

	// Root exactly at the upper endpoint
	root, err = Root(f, 0, 5, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != 5 {
		t.Errorf("root = %v, want exactly 5 (upper endpoint)", root)
	}
}

func TestRoot_NoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 } // Always positive

	_, err := Root(f, -10, 10, Options{})
	if err == nil {
		t.Fatal("expected ErrNoBracket, got nil")
	}
	var nb *ErrNoBracket
	if !errors.As(err, &nb) {
		t.Fatalf("expected *ErrNoBracket, got %T: %v", err, err)
	}
}

func TestRoot_MaxIterations(t *testing.T) {
	f := func(x float64) float64 { return math.Pow(10, 6.893-1260.0/(216.0+x)) - 1200 }

	_, err := Root(f, 50, 150, Options{FTol: 1e-12, MaxIter: 2})
	if err == nil {
		t.Fatal("expected ErrMaxIterations, got nil")
	}
	var mi *ErrMaxIterations
	if !errors.As(err, &mi) {
		t.Fatalf("expected *ErrMaxIterations, got %T: %v", err, err)
	}
	if mi.Iters != 2 {
		t.Errorf("Iters = %d, want 2", mi.Iters)
	}
}

func TestRoot_DefaultOptions(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x*x*x - 8
	}

	root, err := Root(f, 0, 5, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(root-2) > 1e-8 {
		t.Errorf("root = %v, want 2", root)
	}
	if calls > 102 {
		t.Errorf("too many evaluations: %d", calls)
	}
}
