// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lint

import (
	"fmt"
	"strings"

	"github.com/pdiddy/content-engine/internal/post"
	"github.com/pdiddy/content-engine/pkg/types"
)

// checkPost runs the per-file rules. Corpus-level rules live in Run.
func checkPost(p types.Post, st post.Structure, vocab map[string]bool) []types.Issue {
	var issues []types.Issue

	add := func(rule string, sev types.Severity, line int, format string, args ...any) {
		issues = append(issues, types.Issue{
			Rule:     rule,
			Severity: sev,
			Path:     p.Path,
			Line:     line,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	switch {
	case p.Problem != "":
		add("front-matter/invalid", types.SeverityError, 1, "%s", p.Problem)
	case p.Format == types.FormatNone:
		add("front-matter/missing", types.SeverityError, 1, "no front-matter block")
	default:
		fm := p.FrontMatter
		if strings.TrimSpace(fm.Title) == "" {
			add("front-matter/title", types.SeverityError, 1, "front-matter has no title")
		}
		if fm.Layout == "" {
			add("front-matter/layout", types.SeverityWarning, 1, "front-matter has no layout")
		}
		if fm.Author == "" {
			add("front-matter/author", types.SeverityWarning, 1, "front-matter has no author")
		}
		if len(fm.Categories) == 0 {
			add("front-matter/categories", types.SeverityWarning, 1, "front-matter has no categories")
		} else if len(vocab) > 0 {
			for _, c := range fm.Categories {
				if !vocab[c] {
					add("front-matter/categories", types.SeverityWarning, 1,
						"category %q is not in the configured vocabulary", c)
				}
			}
		}
	}

	if strings.TrimSpace(p.Body) == "" {
		add("post/empty-body", types.SeverityWarning, 0, "post has no body text")
	}

	for _, cb := range st.CodeBlocks {
		if cb.EndLine == 0 {
			add("code/unclosed-fence", types.SeverityError, cb.StartLine,
				"fenced code block is never closed")
		}
		if cb.Lang == "" {
			add("code/no-language", types.SeverityWarning, cb.StartLine,
				"fenced code block has no language hint")
		}
	}

	if m := st.Math; !m.Balanced() {
		if m.DisplayLine > 0 {
			add("math/unbalanced", types.SeverityError, m.DisplayLine, "unmatched $$ delimiter")
		}
		if m.InlineLine > 0 {
			add("math/unbalanced", types.SeverityError, m.InlineLine, "unmatched inline $ delimiter")
		}
		if m.ParenLine > 0 {
			add("math/unbalanced", types.SeverityError, m.ParenLine, `unmatched \( ... \) delimiter`)
		}
		if m.BracketLine > 0 {
			add("math/unbalanced", types.SeverityError, m.BracketLine, `unmatched \[ ... \] delimiter`)
		}
	}

	for _, l := range st.Links {
		if l.Target == "" {
			add("link/empty-target", types.SeverityError, l.Line, "link %q has an empty target", l.Text)
		}
	}

	return issues
}
