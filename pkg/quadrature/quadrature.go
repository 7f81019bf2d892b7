// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quadrature approximates definite integrals with the
// composite rules and the multi-dimensional estimator discussed in the
// numerical-integration articles.
package quadrature

import (
	"errors"
	"math"
)

// Func is a one-dimensional integrand.
type Func func(x float64) float64

var (
	// ErrIntervals reports a non-positive interval count.
	ErrIntervals = errors.New("quadrature: interval count must be positive")

	// ErrOddIntervals reports an odd interval count where the rule
	// needs an even one.
	ErrOddIntervals = errors.New("quadrature: Simpson requires an even interval count")

	// ErrBounds reports a lower bound above the upper bound.
	ErrBounds = errors.New("quadrature: lower bound must not exceed upper bound")

	// ErrTolerance reports a non-positive tolerance.
	ErrTolerance = errors.New("quadrature: tolerance must be positive")

	// ErrSamples reports a non-positive sample count.
	ErrSamples = errors.New("quadrature: sample count must be positive")

	// ErrDimension reports empty or inverted multi-dimensional bounds.
	ErrDimension = errors.New("quadrature: each dimension needs lower <= upper bounds")
)

// Midpoint integrates f over [a,b] with the composite midpoint rule on
// n equal intervals.
func Midpoint(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrIntervals
	}
	if a > b {
		return 0, ErrBounds
	}
	h := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}
	return sum * h, nil
}

// Trapezoid integrates f over [a,b] with the composite trapezoid rule
// on n equal intervals.
func Trapezoid(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrIntervals
	}
	if a > b {
		return 0, ErrBounds
	}
	h := (b - a) / float64(n)
	sum := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	return sum * h, nil
}

// Simpson integrates f over [a,b] with the composite Simpson rule on n
// equal intervals; n must be even.
func Simpson(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrIntervals
	}
	if n%2 != 0 {
		return 0, ErrOddIntervals
	}
	if a > b {
		return 0, ErrBounds
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3, nil
}

// maxAdaptiveDepth bounds the bisection recursion; beyond this the
// current estimate is accepted.
const maxAdaptiveDepth = 48

// AdaptiveSimpson integrates f over [a,b], bisecting until the local
// Richardson error estimate drops below tol.
func AdaptiveSimpson(f Func, a, b, tol float64) (float64, error) {
	if tol <= 0 {
		return 0, ErrTolerance
	}
	if a > b {
		return 0, ErrBounds
	}
	fa, fb := f(a), f(b)
	m, fm, whole := simpsonStep(f, a, b, fa, fb)
	return adaptiveStep(f, a, b, fa, fb, m, fm, whole, tol, maxAdaptiveDepth), nil
}

// simpsonStep computes one Simpson estimate over [a,b] and returns the
// midpoint and its sample along with the estimate.
func simpsonStep(f Func, a, b, fa, fb float64) (m, fm, estimate float64) {
	m = (a + b) / 2
	fm = f(m)
	estimate = (b - a) / 6 * (fa + 4*fm + fb)
	return m, fm, estimate
}

func adaptiveStep(f Func, a, b, fa, fb, m, fm, whole, tol float64, depth int) float64 {
	lm, flm, left := simpsonStep(f, a, m, fa, fm)
	rm, frm, right := simpsonStep(f, m, b, fm, fb)

	delta := left + right - whole
	if depth <= 0 || math.Abs(delta) <= 15*tol {
		return left + right + delta/15
	}
	return adaptiveStep(f, a, m, fa, fm, lm, flm, left, tol/2, depth-1) +
		adaptiveStep(f, m, b, fm, fb, rm, frm, right, tol/2, depth-1)
}
