// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/content-engine/internal/httputil"
	"github.com/pdiddy/content-engine/pkg/types"
)

const defaultLinkTimeout = 10 * time.Second

// linkChecker probes external link targets, caching each target's
// outcome so a URL linked from several posts is only probed once per
// run.
type linkChecker struct {
	client *http.Client
	cache  map[string]probeOutcome
}

type probeOutcome struct {
	status int
	err    error
}

func newLinkChecker(opts Options) *linkChecker {
	client := opts.Client
	if client == nil {
		timeout := opts.LinkTimeout
		if timeout <= 0 {
			timeout = defaultLinkTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &linkChecker{client: client, cache: map[string]probeOutcome{}}
}

// check probes each external (http/https) link target once and turns
// failures into link/unreachable warnings. Relative and fragment links
// are not probed; their well-formedness is covered by the syntax rules.
func (c *linkChecker) check(ctx context.Context, path string, links []types.Link) ([]types.Issue, error) {
	var issues []types.Issue

	for _, l := range links {
		if !strings.HasPrefix(l.Target, "http://") && !strings.HasPrefix(l.Target, "https://") {
			continue
		}

		out, cached := c.cache[l.Target]
		if !cached {
			status, err := httputil.Probe(ctx, c.client, l.Target)
			if err != nil && ctx.Err() != nil {
				return issues, ctx.Err()
			}
			out = probeOutcome{status: status, err: err}
			c.cache[l.Target] = out
		}

		switch {
		case out.err != nil:
			issues = append(issues, types.Issue{
				Rule:     "link/unreachable",
				Severity: types.SeverityWarning,
				Path:     path,
				Line:     l.Line,
				Message:  fmt.Sprintf("%s: %v", l.Target, out.err),
			})
		case out.status >= 400:
			issues = append(issues, types.Issue{
				Rule:     "link/unreachable",
				Severity: types.SeverityWarning,
				Path:     path,
				Line:     l.Line,
				Message:  fmt.Sprintf("%s returned HTTP %d", l.Target, out.status),
			})
		}
	}

	return issues, nil
}
