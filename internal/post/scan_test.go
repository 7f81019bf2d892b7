// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package post

import (
	"strings"
	"testing"
)

// --- code fences ---

func TestScanBodyCodeBlocks(t *testing.T) {
	body := strings.Join([]string{
		"Intro text.",
		"```go",
		"fmt.Println(\"hi\")",
		"```",
		"",
		"~~~python linenos",
		"print('hi')",
		"~~~",
	}, "\n")

	st := ScanBody("demo", body, 1)

	if len(st.CodeBlocks) != 2 {
		t.Fatalf("got %d code blocks, want 2", len(st.CodeBlocks))
	}
	cb := st.CodeBlocks[0]
	if cb.Lang != "go" || cb.StartLine != 2 || cb.EndLine != 4 {
		t.Errorf("block[0] = %+v, want lang go, lines 2-4", cb)
	}
	cb = st.CodeBlocks[1]
	if cb.Lang != "python" || cb.StartLine != 6 || cb.EndLine != 8 {
		t.Errorf("block[1] = %+v, want lang python, lines 6-8", cb)
	}
}

func TestScanBodyUnclosedFence(t *testing.T) {
	body := "Text.\n```go\ncode\nmore code"
	st := ScanBody("demo", body, 1)

	if len(st.CodeBlocks) != 1 {
		t.Fatalf("got %d code blocks, want 1", len(st.CodeBlocks))
	}
	if st.CodeBlocks[0].EndLine != 0 {
		t.Errorf("EndLine = %d, want 0 for unclosed fence", st.CodeBlocks[0].EndLine)
	}
}

func TestScanBodyFenceWithInfoDoesNotClose(t *testing.T) {
	// A ```go line inside an open fence is content, not a closer.
	body := "```\nliteral\n```go\nstill literal\n```"
	st := ScanBody("demo", body, 1)

	if len(st.CodeBlocks) != 1 {
		t.Fatalf("got %d code blocks, want 1", len(st.CodeBlocks))
	}
	if st.CodeBlocks[0].EndLine != 5 {
		t.Errorf("EndLine = %d, want 5", st.CodeBlocks[0].EndLine)
	}
}

func TestScanBodyNoLanguageHint(t *testing.T) {
	st := ScanBody("demo", "```\ncode\n```", 1)
	if len(st.CodeBlocks) != 1 || st.CodeBlocks[0].Lang != "" {
		t.Errorf("blocks = %+v, want one block with empty lang", st.CodeBlocks)
	}
}

func TestScanBodyLongerClosingFence(t *testing.T) {
	st := ScanBody("demo", "```\ncode\n`````", 1)
	if len(st.CodeBlocks) != 1 || st.CodeBlocks[0].EndLine != 3 {
		t.Errorf("blocks = %+v, want close on line 3", st.CodeBlocks)
	}
}

// --- sections ---

func TestScanBodySections(t *testing.T) {
	body := strings.Join([]string{
		"Preamble text.",
		"",
		"# Top Heading",
		"First section.",
		"",
		"## Sub Heading ##",
		"Second section.",
	}, "\n")

	st := ScanBody("demo", body, 1)

	if len(st.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(st.Sections))
	}

	pre := st.Sections[0]
	if pre.Heading != "" || pre.Level != 0 || pre.Line != 1 {
		t.Errorf("preamble = %+v, want empty heading at line 1", pre)
	}
	if pre.ID != "demo-s00" {
		t.Errorf("preamble ID = %q, want demo-s00", pre.ID)
	}

	s1 := st.Sections[1]
	if s1.Heading != "Top Heading" || s1.Level != 1 || s1.Line != 3 {
		t.Errorf("section[1] = %+v, want Top Heading level 1 line 3", s1)
	}

	s2 := st.Sections[2]
	if s2.Heading != "Sub Heading" || s2.Level != 2 || s2.Line != 6 {
		t.Errorf("section[2] = %+v, want trailing hashes stripped, level 2, line 6", s2)
	}
	if s2.ID != "demo-s02" {
		t.Errorf("section[2] ID = %q, want demo-s02", s2.ID)
	}
	if !strings.Contains(s2.Content, "Second section.") {
		t.Errorf("section[2] content = %q", s2.Content)
	}
}

func TestScanBodyEmptyPreambleSkipped(t *testing.T) {
	st := ScanBody("demo", "\n\n# Heading\nText.", 1)
	if len(st.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(st.Sections))
	}
	if st.Sections[0].ID != "demo-s00" {
		t.Errorf("ID = %q, want demo-s00", st.Sections[0].ID)
	}
}

func TestScanBodyHeadingInsideFenceIgnored(t *testing.T) {
	body := "# Real Heading\n```\n# not a heading\n```\nText."
	st := ScanBody("demo", body, 1)
	if len(st.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(st.Sections))
	}
	if st.Sections[0].Heading != "Real Heading" {
		t.Errorf("heading = %q", st.Sections[0].Heading)
	}
}

func TestScanBodyFirstLineOffset(t *testing.T) {
	// A body that starts on file line 5 reports file lines, not body lines.
	st := ScanBody("demo", "# Heading\nText.", 5)
	if len(st.Sections) != 1 || st.Sections[0].Line != 5 {
		t.Errorf("sections = %+v, want heading on file line 5", st.Sections)
	}
}

// --- links ---

func TestScanBodyLinks(t *testing.T) {
	body := strings.Join([]string{
		"See [the docs](https://example.com/docs) for more.",
		"An [empty]() link.",
		"`[in code](https://ignored.example)` is invisible.",
		"```",
		"[fenced](https://also-ignored.example)",
		"```",
	}, "\n")

	st := ScanBody("demo", body, 1)

	if len(st.Links) != 2 {
		t.Fatalf("got %d links, want 2: %+v", len(st.Links), st.Links)
	}
	if st.Links[0].Target != "https://example.com/docs" || st.Links[0].Line != 1 {
		t.Errorf("link[0] = %+v", st.Links[0])
	}
	if st.Links[1].Target != "" || st.Links[1].Line != 2 {
		t.Errorf("link[1] = %+v, want empty target on line 2", st.Links[1])
	}
}

// --- math balance ---

func TestScanBodyMathBalanced(t *testing.T) {
	body := strings.Join([]string{
		"Inline $x+y$ and display:",
		"$$",
		"E = mc^2",
		"$$",
		"Also \\(a\\) and \\[b\\].",
		"A price of \\$5 is not math.",
		"`$ in code` does not count.",
	}, "\n")

	st := ScanBody("demo", body, 1)
	if !st.Math.Balanced() {
		t.Errorf("Math = %+v, want balanced", st.Math)
	}
}

func TestScanBodyMathUnbalanced(t *testing.T) {
	tests := []struct {
		name string
		body string
		got  func(b MathBalance) int
		line int
	}{
		{
			name: "dangling inline dollar",
			body: "Fine $x$ here.\nBroken $x here.",
			got:  func(b MathBalance) int { return b.InlineLine },
			line: 2,
		},
		{
			name: "unclosed display block",
			body: "$$\nE = mc^2\n",
			got:  func(b MathBalance) int { return b.DisplayLine },
			line: 1,
		},
		{
			name: "stray close paren",
			body: "Text \\) here.",
			got:  func(b MathBalance) int { return b.ParenLine },
			line: 1,
		},
		{
			name: "unclosed open bracket",
			body: "Text.\n\\[ x = 1\nMore text.",
			got:  func(b MathBalance) int { return b.BracketLine },
			line: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ScanBody("demo", tt.body, 1)
			if got := tt.got(st.Math); got != tt.line {
				t.Errorf("reported line = %d, want %d (Math = %+v)", got, tt.line, st.Math)
			}
		})
	}
}

func TestScanBodyMathInFenceIgnored(t *testing.T) {
	body := "```\n$ not math\n$$ also fine\n```\nClean text."
	st := ScanBody("demo", body, 1)
	if !st.Math.Balanced() {
		t.Errorf("Math = %+v, want balanced (delimiters in fence)", st.Math)
	}
}

func TestScanBodyMultiLineParenSpan(t *testing.T) {
	body := "\\(a +\nb\\) done."
	st := ScanBody("demo", body, 1)
	if !st.Math.Balanced() {
		t.Errorf("Math = %+v, want balanced across lines", st.Math)
	}
}

// --- inline code stripping ---

func TestStripInlineCode(t *testing.T) {
	tests := []struct {
		in       string
		contains string
		excludes string
	}{
		{"before `code` after", "before", "code"},
		{"no spans at all", "no spans at all", ""},
		{"unmatched `rest is code", "unmatched", "rest is code"},
	}
	for _, tt := range tests {
		got := stripInlineCode(tt.in)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("stripInlineCode(%q) = %q, want it to contain %q", tt.in, got, tt.contains)
		}
		if tt.excludes != "" && strings.Contains(got, tt.excludes) {
			t.Errorf("stripInlineCode(%q) = %q, want %q removed", tt.in, got, tt.excludes)
		}
	}
}
