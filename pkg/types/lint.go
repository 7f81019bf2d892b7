// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Severity grades a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single lint finding with provenance.
type Issue struct {
	// Rule is the finding's rule identifier (e.g. "code/unclosed-fence").
	Rule string `json:"rule" yaml:"rule"`

	// Severity is error or warning.
	Severity Severity `json:"severity" yaml:"severity"`

	// Path is the source file the finding refers to.
	Path string `json:"path" yaml:"path"`

	// Line is the 1-based file line, or 0 for file-level findings.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Message describes the finding.
	Message string `json:"message" yaml:"message"`
}

// LintReport aggregates the findings of a lint run over a corpus.
type LintReport struct {
	// Files is the number of files examined.
	Files int `json:"files" yaml:"files"`

	// Clean counts files with no findings.
	Clean int `json:"clean" yaml:"clean"`

	// Flagged counts files with at least one finding.
	Flagged int `json:"flagged" yaml:"flagged"`

	// Issues lists every finding, in file order.
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Errors counts findings with error severity.
func (r LintReport) Errors() int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts findings with warning severity.
func (r LintReport) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// HasErrors reports whether any error-severity finding exists.
func (r LintReport) HasErrors() bool {
	return r.Errors() > 0
}
