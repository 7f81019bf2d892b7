// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package figures regenerates the numeric markdown tables the posts
// quote, so prose and numbers cannot drift apart.
package figures

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/content-engine/pkg/floatx"
	"github.com/pdiddy/content-engine/pkg/quadrature"
)

// epsilonTailRows is how many final halving iterations the epsilon
// table shows; the early ones are all alike.
const epsilonTailRows = 6

// EpsilonTable renders the machine-epsilon derivation as a markdown
// table: the last few halving iterations, then the converged value.
func EpsilonTable() string {
	steps := floatx.EpsilonSteps()
	tail := steps
	if len(tail) > epsilonTailRows {
		tail = tail[len(tail)-epsilonTailRows:]
	}

	var b strings.Builder
	b.WriteString("| iteration | candidate ε | 1 + ε |\n")
	b.WriteString("|-----------|-------------|-------|\n")
	for _, s := range tail {
		fmt.Fprintf(&b, "| %d | %.17g | %.17g |\n", s.Iteration, s.Candidate, s.OnePlus)
	}
	eps := floatx.MachineEpsilon()
	fmt.Fprintf(&b, "\nConverged machine epsilon: %.17g (2^%d)\n",
		eps, floatx.Decompose(eps).Exponent)
	return b.String()
}

// convergenceSizes are the interval counts the convergence table uses.
var convergenceSizes = []int{4, 16, 64, 256}

// ConvergenceTable renders the quadrature convergence comparison for
// the articles' running example, the Gaussian integral over [0,1].
func ConvergenceTable() string {
	f := func(x float64) float64 { return math.Exp(-x * x) }
	exact := math.Sqrt(math.Pi) / 2 * math.Erf(1)

	type rule struct {
		name string
		eval func(n int) (float64, error)
	}
	rules := []rule{
		{"midpoint", func(n int) (float64, error) { return quadrature.Midpoint(f, 0, 1, n) }},
		{"trapezoid", func(n int) (float64, error) { return quadrature.Trapezoid(f, 0, 1, n) }},
		{"Simpson", func(n int) (float64, error) { return quadrature.Simpson(f, 0, 1, n) }},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Integrand: exp(-x^2) on [0, 1]; exact value %.15g.\n\n", exact)
	b.WriteString("| rule | intervals | estimate | abs error |\n")
	b.WriteString("|------|-----------|----------|-----------|\n")
	for _, r := range rules {
		for _, n := range convergenceSizes {
			est, err := r.eval(n)
			if err != nil {
				// Rules are called with valid interval counts.
				continue
			}
			fmt.Fprintf(&b, "| %s | %d | %.12f | %.3e |\n", r.name, n, est, math.Abs(est-exact))
		}
	}
	return b.String()
}

// WriteAll writes every generated table into dataDir, printing one
// line per file to w.
func WriteAll(dataDir string, w io.Writer) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tables := []struct {
		name    string
		content string
	}{
		{"machine-epsilon.md", EpsilonTable()},
		{"quadrature-convergence.md", ConvergenceTable()},
	}

	for _, t := range tables {
		path := filepath.Join(dataDir, t.name)
		if err := os.WriteFile(path, []byte(t.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "wrote %s\n", path)
	}
	return nil
}
