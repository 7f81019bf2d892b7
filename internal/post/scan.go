// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package post

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Structure holds the scanned layout of a post body.
type Structure struct {
	CodeBlocks []types.CodeBlock
	Sections   []types.Section
	Links      []types.Link
	Math       MathBalance
}

// MathBalance records unmatched math delimiters found in a body. A zero
// line means that delimiter kind is balanced. Delimiters inside fenced
// or inline code do not count; \$ is an escape.
type MathBalance struct {
	// DisplayLine is the line of an unmatched $$ opener.
	DisplayLine int

	// InlineLine is the line of an unmatched inline $ opener.
	InlineLine int

	// ParenLine is the line of an unmatched \( or a stray \).
	ParenLine int

	// BracketLine is the line of an unmatched \[ or a stray \].
	BracketLine int
}

// Balanced reports whether every math delimiter kind is balanced.
func (b MathBalance) Balanced() bool {
	return b.DisplayLine == 0 && b.InlineLine == 0 && b.ParenLine == 0 && b.BracketLine == 0
}

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)
	linkPattern    = regexp.MustCompile(`\[([^\[\]]*)\]\(([^)]*)\)`)
)

// ScanBody scans a post body line by line. firstLine is the 1-based
// file line on which the body starts, so every reported line number
// refers to the source file rather than the body.
//
// A fence opened inside an open fence is content: closing fences carry
// no info string, so a line like "```go" never closes a block.
func ScanBody(slug, body string, firstLine int) Structure {
	var st Structure

	lines := strings.Split(body, "\n")

	var (
		inFence     bool
		fenceMarker string
		openBlock   int // index into st.CodeBlocks while inFence

		display, inline          bool
		displayLine, inlineLine  int
		parenDepth, bracketDepth int
		parenLine, bracketLine   int
	)

	sec := sectionBuilder{slug: slug, line: firstLine}

	for i, line := range lines {
		n := firstLine + i
		trimmed := strings.TrimLeft(line, " \t")

		if inFence {
			sec.add(line)
			if isClosingFence(trimmed, fenceMarker) {
				st.CodeBlocks[openBlock].EndLine = n
				inFence = false
			}
			continue
		}

		if marker, info, ok := openingFence(trimmed); ok {
			sec.add(line)
			inFence = true
			fenceMarker = marker
			openBlock = len(st.CodeBlocks)
			st.CodeBlocks = append(st.CodeBlocks, types.CodeBlock{
				Lang:      langHint(info),
				StartLine: n,
			})
			continue
		}

		if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
			st.Sections = sec.flush(st.Sections)
			sec = sectionBuilder{slug: slug, heading: m[2], level: len(m[1]), line: n}
			continue
		}

		sec.add(line)

		text := stripInlineCode(line)

		for _, m := range linkPattern.FindAllStringSubmatch(text, -1) {
			st.Links = append(st.Links, types.Link{Text: m[1], Target: strings.TrimSpace(m[2]), Line: n})
		}

		// Math delimiter accounting.
		for j := 0; j < len(text); j++ {
			switch text[j] {
			case '\\':
				if j+1 < len(text) {
					switch text[j+1] {
					case '(':
						parenDepth++
						parenLine = n
					case ')':
						if parenDepth > 0 {
							parenDepth--
						} else if st.Math.ParenLine == 0 {
							st.Math.ParenLine = n
						}
					case '[':
						bracketDepth++
						bracketLine = n
					case ']':
						if bracketDepth > 0 {
							bracketDepth--
						} else if st.Math.BracketLine == 0 {
							st.Math.BracketLine = n
						}
					}
					j++ // the escaped character is consumed (covers \$ and \\)
				}
			case '$':
				if j+1 < len(text) && text[j+1] == '$' {
					if display {
						display = false
					} else {
						display = true
						displayLine = n
					}
					j++
				} else if inline {
					inline = false
				} else {
					inline = true
					inlineLine = n
				}
			}
		}
	}

	st.Sections = sec.flush(st.Sections)

	if display {
		st.Math.DisplayLine = displayLine
	}
	if inline {
		st.Math.InlineLine = inlineLine
	}
	if parenDepth > 0 && st.Math.ParenLine == 0 {
		st.Math.ParenLine = parenLine
	}
	if bracketDepth > 0 && st.Math.BracketLine == 0 {
		st.Math.BracketLine = bracketLine
	}

	return st
}

// openingFence recognizes a ``` or ~~~ fence line and returns its
// marker and info string.
func openingFence(trimmed string) (marker, info string, ok bool) {
	for _, m := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, m) {
			rest := strings.TrimLeft(trimmed, string(m[0]))
			return m, strings.TrimSpace(rest), true
		}
	}
	return "", "", false
}

// isClosingFence reports whether trimmed closes a fence opened with
// marker: the same fence character, at least as long, nothing else.
func isClosingFence(trimmed, marker string) bool {
	if !strings.HasPrefix(trimmed, marker) {
		return false
	}
	rest := strings.TrimLeft(trimmed, string(marker[0]))
	return strings.TrimSpace(rest) == ""
}

// langHint extracts the language from a fence info string ("go",
// "python linenos" -> "python").
func langHint(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// stripInlineCode removes `code` spans from a line so their contents
// are invisible to link and math scanning. Text after an unmatched
// backtick is treated as code.
func stripInlineCode(s string) string {
	if !strings.Contains(s, "`") {
		return s
	}
	parts := strings.Split(s, "`")
	var b strings.Builder
	for i := 0; i < len(parts); i += 2 {
		b.WriteString(parts[i])
		b.WriteByte(' ')
	}
	return b.String()
}

// sectionBuilder accumulates the current heading-delimited region.
type sectionBuilder struct {
	slug    string
	heading string
	level   int
	line    int
	lines   []string
}

func (s *sectionBuilder) add(line string) {
	s.lines = append(s.lines, line)
}

// flush appends the finished section to sections, assigning its
// ordinal ID. A preamble with no content is not emitted.
func (s *sectionBuilder) flush(sections []types.Section) []types.Section {
	content := strings.TrimSpace(strings.Join(s.lines, "\n"))
	if s.heading == "" && content == "" {
		return sections
	}
	return append(sections, types.Section{
		ID:      fmt.Sprintf("%s-s%02d", s.slug, len(sections)),
		Slug:    s.slug,
		Heading: s.heading,
		Level:   s.level,
		Line:    s.line,
		Content: content,
	})
}
