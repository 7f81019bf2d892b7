// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quadrature

import "math/rand"

// FuncN is a multi-dimensional integrand.
type FuncN func(x []float64) float64

// Bound is one dimension's integration limits.
type Bound struct {
	Lower float64
	Upper float64
}

// Volume returns the measure of the hyper-rectangle described by
// bounds.
func Volume(bounds []Bound) float64 {
	v := 1.0
	for _, b := range bounds {
		v *= b.Upper - b.Lower
	}
	return v
}

// MonteCarlo estimates the integral of f over the hyper-rectangle
// described by bounds using n uniform samples from rng. Callers seed
// rng themselves so estimates are reproducible.
func MonteCarlo(f FuncN, bounds []Bound, n int, rng *rand.Rand) (float64, error) {
	if n <= 0 {
		return 0, ErrSamples
	}
	if len(bounds) == 0 {
		return 0, ErrDimension
	}
	for _, b := range bounds {
		if b.Lower > b.Upper {
			return 0, ErrDimension
		}
	}

	x := make([]float64, len(bounds))
	sum := 0.0
	for i := 0; i < n; i++ {
		for d, b := range bounds {
			x[d] = b.Lower + rng.Float64()*(b.Upper-b.Lower)
		}
		sum += f(x)
	}
	return Volume(bounds) * sum / float64(n), nil
}
