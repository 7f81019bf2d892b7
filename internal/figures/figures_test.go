// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package figures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEpsilonTable(t *testing.T) {
	table := EpsilonTable()

	if !strings.HasPrefix(table, "| iteration | candidate ε | 1 + ε |") {
		t.Errorf("table header wrong:\n%s", table)
	}
	if !strings.Contains(table, "Converged machine epsilon: 2.2204460492503131e-16 (2^-52)") {
		t.Errorf("table missing the converged value:\n%s", table)
	}
	// Only the tail of the halving sequence is shown.
	rows := strings.Count(table, "\n| ")
	if rows > epsilonTailRows {
		t.Errorf("table has %d data rows, want at most %d", rows, epsilonTailRows)
	}
}

func TestConvergenceTable(t *testing.T) {
	table := ConvergenceTable()

	for _, want := range []string{
		"exp(-x^2) on [0, 1]",
		"| rule | intervals | estimate | abs error |",
		"| midpoint | 4 |",
		"| trapezoid | 256 |",
		"| Simpson | 64 |",
	} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	var buf strings.Builder
	if err := WriteAll(dir, &buf); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	for _, name := range []string{"machine-epsilon.md", "quadrature-convergence.md"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("reading %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
		if !strings.Contains(buf.String(), "wrote "+path) {
			t.Errorf("output missing %s:\n%s", path, buf.String())
		}
	}
}
