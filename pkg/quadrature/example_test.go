// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quadrature_test

import (
	"fmt"
	"math/rand"

	"github.com/pdiddy/content-engine/pkg/quadrature"
)

func ExampleSimpson() {
	// ∫₀¹ x² dx = 1/3, and Simpson is exact for quadratics.
	got, _ := quadrature.Simpson(func(x float64) float64 { return x * x }, 0, 1, 2)
	fmt.Printf("%.6f\n", got)
	// Output: 0.333333
}

func ExampleMonteCarlo() {
	// Volume under z = x + y over the unit square is 1.
	f := func(x []float64) float64 { return x[0] + x[1] }
	bounds := []quadrature.Bound{{Lower: 0, Upper: 1}, {Lower: 0, Upper: 1}}

	rng := rand.New(rand.NewSource(1))
	got, _ := quadrature.MonteCarlo(f, bounds, 100000, rng)
	fmt.Printf("%.1f\n", got)
	// Output: 1.0
}
