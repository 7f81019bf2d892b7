// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lint checks corpus documents against the editorial contract:
// required front-matter keys, closed and labeled code fences, balanced
// math delimiters, well-formed links, and corpus-level consistency.
package lint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

// Options configures a lint run.
type Options struct {
	// Strict makes warnings count as failures for the caller's exit
	// decision. The report itself is unaffected.
	Strict bool

	// Categories is the allowed category vocabulary. Empty disables the
	// vocabulary check.
	Categories []string

	// CheckLinks enables HTTP probing of external link targets.
	CheckLinks bool

	// LinkTimeout bounds each link probe (default 10s).
	LinkTimeout time.Duration

	// Client overrides the HTTP client used for link probes. Tests use
	// this; a nil Client gets a default with LinkTimeout applied.
	Client *http.Client
}

// Failed reports whether the run should be treated as failed under
// these options.
func (o Options) Failed(r types.LintReport) bool {
	if r.HasErrors() {
		return true
	}
	return o.Strict && r.Warnings() > 0
}

// Run lints every post, printing per-file status and a summary to w.
// The returned report lists findings in file order; corpus-level
// findings (duplicate titles) attach to the later file.
func Run(ctx context.Context, posts []types.Post, opts Options, w io.Writer) (types.LintReport, error) {
	vocab := map[string]bool{}
	for _, c := range opts.Categories {
		vocab[c] = true
	}

	var checker *linkChecker
	if opts.CheckLinks {
		checker = newLinkChecker(opts)
	}

	titleOwner := map[string]string{}
	report := types.LintReport{Files: len(posts)}

	for _, p := range posts {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		st := post.ScanBody(p.Slug, p.Body, p.BodyLine)
		issues := checkPost(p, st, vocab)

		if title := strings.ToLower(strings.TrimSpace(p.FrontMatter.Title)); title != "" {
			if owner, dup := titleOwner[title]; dup {
				issues = append(issues, types.Issue{
					Rule:     "post/duplicate-title",
					Severity: types.SeverityError,
					Path:     p.Path,
					Message:  fmt.Sprintf("title %q already used by %s", p.FrontMatter.Title, owner),
				})
			} else {
				titleOwner[title] = p.Path
			}
		}

		if checker != nil {
			linkIssues, err := checker.check(ctx, p.Path, st.Links)
			if err != nil {
				return report, err
			}
			issues = append(issues, linkIssues...)
		}

		if len(issues) == 0 {
			fmt.Fprintf(w, "clean   %s\n", p.Path)
			report.Clean++
			continue
		}

		fmt.Fprintf(w, "flagged %s (%d)\n", p.Path, len(issues))
		for _, is := range issues {
			if is.Line > 0 {
				fmt.Fprintf(w, "  %s:%d: %s: %s [%s]\n", is.Path, is.Line, is.Severity, is.Message, is.Rule)
			} else {
				fmt.Fprintf(w, "  %s: %s: %s [%s]\n", is.Path, is.Severity, is.Message, is.Rule)
			}
		}
		report.Flagged++
		report.Issues = append(report.Issues, issues...)
	}

	fmt.Fprintf(w, "\nfiles: %d, clean: %d, flagged: %d, errors: %d, warnings: %d\n",
		report.Files, report.Clean, report.Flagged, report.Errors(), report.Warnings())

	return report, nil
}
