// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quadrature

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// gaussian is the running example from the articles: exp(-x^2) on [0,1].
func gaussian(x float64) float64 { return math.Exp(-x * x) }

// gaussianExact is the exact integral of gaussian over [0,1].
var gaussianExact = math.Sqrt(math.Pi) / 2 * math.Erf(1)

func TestMidpoint(t *testing.T) {
	got, err := Midpoint(gaussian, 0, 1, 256)
	if err != nil {
		t.Fatalf("Midpoint: %v", err)
	}
	if math.Abs(got-gaussianExact) > 1e-6 {
		t.Errorf("Midpoint = %.12f, want %.12f within 1e-6", got, gaussianExact)
	}
}

func TestTrapezoid(t *testing.T) {
	got, err := Trapezoid(gaussian, 0, 1, 256)
	if err != nil {
		t.Fatalf("Trapezoid: %v", err)
	}
	if math.Abs(got-gaussianExact) > 1e-5 {
		t.Errorf("Trapezoid = %.12f, want %.12f within 1e-5", got, gaussianExact)
	}
}

func TestSimpson(t *testing.T) {
	got, err := Simpson(gaussian, 0, 1, 64)
	if err != nil {
		t.Fatalf("Simpson: %v", err)
	}
	if math.Abs(got-gaussianExact) > 1e-9 {
		t.Errorf("Simpson = %.12f, want %.12f within 1e-9", got, gaussianExact)
	}
}

func TestSimpsonExactForCubics(t *testing.T) {
	// Simpson integrates polynomials up to degree three exactly.
	cubic := func(x float64) float64 { return x*x*x - 2*x + 1 }
	got, err := Simpson(cubic, 0, 2, 2)
	if err != nil {
		t.Fatalf("Simpson: %v", err)
	}
	want := 2.0 // ∫₀² (x³-2x+1) dx = 4 - 4 + 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Simpson = %.15f, want %g", got, want)
	}
}

func TestConvergenceOrders(t *testing.T) {
	// Halving h should cut the error by ~4x for midpoint and trapezoid
	// and ~16x for Simpson.
	tests := []struct {
		name   string
		eval   func(n int) (float64, error)
		factor float64
	}{
		{"midpoint", func(n int) (float64, error) { return Midpoint(gaussian, 0, 1, n) }, 4},
		{"trapezoid", func(n int) (float64, error) { return Trapezoid(gaussian, 0, 1, n) }, 4},
		{"simpson", func(n int) (float64, error) { return Simpson(gaussian, 0, 1, n) }, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coarse, err := tt.eval(16)
			if err != nil {
				t.Fatal(err)
			}
			fine, err := tt.eval(32)
			if err != nil {
				t.Fatal(err)
			}
			errCoarse := math.Abs(coarse - gaussianExact)
			errFine := math.Abs(fine - gaussianExact)
			ratio := errCoarse / errFine
			// Allow slack; the asymptotic ratio is approached from below.
			if ratio < tt.factor*0.8 {
				t.Errorf("error ratio = %.2f, want about %.0f", ratio, tt.factor)
			}
		})
	}
}

func TestRuleArgumentErrors(t *testing.T) {
	if _, err := Midpoint(gaussian, 0, 1, 0); !errors.Is(err, ErrIntervals) {
		t.Errorf("Midpoint n=0: err = %v, want ErrIntervals", err)
	}
	if _, err := Trapezoid(gaussian, 1, 0, 4); !errors.Is(err, ErrBounds) {
		t.Errorf("Trapezoid inverted bounds: err = %v, want ErrBounds", err)
	}
	if _, err := Simpson(gaussian, 0, 1, 3); !errors.Is(err, ErrOddIntervals) {
		t.Errorf("Simpson n=3: err = %v, want ErrOddIntervals", err)
	}
	if _, err := Simpson(gaussian, 0, 1, -2); !errors.Is(err, ErrIntervals) {
		t.Errorf("Simpson n=-2: err = %v, want ErrIntervals", err)
	}
}

func TestEmptyInterval(t *testing.T) {
	got, err := Simpson(gaussian, 1, 1, 4)
	if err != nil {
		t.Fatalf("Simpson: %v", err)
	}
	if got != 0 {
		t.Errorf("integral over empty interval = %g, want 0", got)
	}
}

func TestAdaptiveSimpson(t *testing.T) {
	got, err := AdaptiveSimpson(gaussian, 0, 1, 1e-10)
	if err != nil {
		t.Fatalf("AdaptiveSimpson: %v", err)
	}
	if math.Abs(got-gaussianExact) > 1e-9 {
		t.Errorf("AdaptiveSimpson = %.15f, want %.15f within 1e-9", got, gaussianExact)
	}
}

func TestAdaptiveSimpsonRefinesPeaks(t *testing.T) {
	// A narrow peak forces local refinement. ∫ 1/(1+100x²) dx over
	// [-1,1] = arctan(10)/5.
	peak := func(x float64) float64 { return 1 / (1 + 100*x*x) }
	want := math.Atan(10) / 5

	got, err := AdaptiveSimpson(peak, -1, 1, 1e-10)
	if err != nil {
		t.Fatalf("AdaptiveSimpson: %v", err)
	}
	if math.Abs(got-want) > 1e-8 {
		t.Errorf("AdaptiveSimpson = %.15f, want %.15f within 1e-8", got, want)
	}
}

func TestAdaptiveSimpsonArgumentErrors(t *testing.T) {
	if _, err := AdaptiveSimpson(gaussian, 0, 1, 0); !errors.Is(err, ErrTolerance) {
		t.Errorf("tol=0: err = %v, want ErrTolerance", err)
	}
	if _, err := AdaptiveSimpson(gaussian, 1, 0, 1e-6); !errors.Is(err, ErrBounds) {
		t.Errorf("inverted bounds: err = %v, want ErrBounds", err)
	}
}

// --- Monte Carlo ---

func TestMonteCarloOneDimensional(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	got, err := MonteCarlo(
		func(x []float64) float64 { return gaussian(x[0]) },
		[]Bound{{0, 1}}, 200000, rng,
	)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	if math.Abs(got-gaussianExact) > 5e-3 {
		t.Errorf("MonteCarlo = %.6f, want %.6f within 5e-3", got, gaussianExact)
	}
}

func TestMonteCarloMultiDimensional(t *testing.T) {
	// ∫∫ x·y over the unit square = 1/4.
	rng := rand.New(rand.NewSource(7))
	got, err := MonteCarlo(
		func(x []float64) float64 { return x[0] * x[1] },
		[]Bound{{0, 1}, {0, 1}}, 200000, rng,
	)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	if math.Abs(got-0.25) > 5e-3 {
		t.Errorf("MonteCarlo = %.6f, want 0.25 within 5e-3", got)
	}
}

func TestMonteCarloReproducible(t *testing.T) {
	f := func(x []float64) float64 { return x[0] }
	bounds := []Bound{{0, 1}}

	a, err := MonteCarlo(f, bounds, 1000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := MonteCarlo(f, bounds, 1000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed gave %g and %g, want identical estimates", a, b)
	}
}

func TestMonteCarloArgumentErrors(t *testing.T) {
	f := func(x []float64) float64 { return 1 }
	rng := rand.New(rand.NewSource(1))

	if _, err := MonteCarlo(f, []Bound{{0, 1}}, 0, rng); !errors.Is(err, ErrSamples) {
		t.Errorf("n=0: err = %v, want ErrSamples", err)
	}
	if _, err := MonteCarlo(f, nil, 10, rng); !errors.Is(err, ErrDimension) {
		t.Errorf("no bounds: err = %v, want ErrDimension", err)
	}
	if _, err := MonteCarlo(f, []Bound{{1, 0}}, 10, rng); !errors.Is(err, ErrDimension) {
		t.Errorf("inverted bound: err = %v, want ErrDimension", err)
	}
}

func TestVolume(t *testing.T) {
	if v := Volume([]Bound{{0, 2}, {-1, 1}, {0, 0.5}}); v != 2 {
		t.Errorf("Volume = %g, want 2", v)
	}
	if v := Volume(nil); v != 1 {
		t.Errorf("Volume(nil) = %g, want 1 (empty product)", v)
	}
}
