package pipeline

import (
	"strings"
	"testing"

	"github.com/alnah/go-word2ieee/internal/docx"
)

// splitRun returns the text segments and break count of a run.
func splitRun(r *docx.Run) (segments []string, breaks int) {
	for _, it := range r.Items {
		switch v := it.(type) {
		case *docx.Text:
			segments = append(segments, v.Value)
		case *docx.Break:
			breaks++
		}
	}
	return segments, breaks
}

func TestNormalizeBreaksRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantSegments int
		wantBreaks   int
	}{
		{"no newline", "plain text", 1, 0},
		{"single newline", "line1\nline2", 2, 1},
		{"blank line in the middle", "line1\nline2\n\nline4", 4, 3},
		{"trailing newline", "line1\n", 2, 1},
		{"leading newline", "\nline2", 2, 1},
		{"only newlines", "\n\n", 3, 2},
		{"indentation kept", "def f():\n    return 0", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := para(tt.text)
			p.Role = docx.RoleCode
			doc := &docx.Document{Items: []docx.BodyItem{p}}

			NormalizeBreaks(doc)

			run := doc.Paragraphs()[0].Runs()[0]
			segments, breaks := splitRun(run)
			if len(segments) != tt.wantSegments {
				t.Errorf("segment count = %d, want %d", len(segments), tt.wantSegments)
			}
			if breaks != tt.wantBreaks {
				t.Errorf("break count = %d, want %d", breaks, tt.wantBreaks)
			}
			if got := strings.Join(segments, "\n"); got != tt.text {
				t.Errorf("round trip = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestNormalizeBreaksScenario(t *testing.T) {
	// One marked code paragraph with "line1\nline2\n\nline4" must come
	// out as a single paragraph: 4 segments, 3 breaks, third segment
	// empty.
	p := para("line1\nline2\n\nline4")
	p.Role = docx.RoleCode
	doc := &docx.Document{Items: []docx.BodyItem{p}}

	NormalizeBreaks(doc)

	if n := len(doc.Paragraphs()); n != 1 {
		t.Fatalf("paragraph count = %d, want 1 (paragraph must not split)", n)
	}
	segments, breaks := splitRun(doc.Paragraphs()[0].Runs()[0])
	if len(segments) != 4 || breaks != 3 {
		t.Fatalf("segments=%d breaks=%d, want 4 and 3", len(segments), breaks)
	}
	if segments[2] != "" {
		t.Errorf("third segment = %q, want empty (blank line)", segments[2])
	}
}

func TestNormalizeBreaksPreservesWhitespaceFlag(t *testing.T) {
	p := para("  indented\n\tnext")
	p.Role = docx.RoleCode
	doc := &docx.Document{Items: []docx.BodyItem{p}}

	NormalizeBreaks(doc)

	for i, it := range doc.Paragraphs()[0].Runs()[0].Items {
		if txt, ok := it.(*docx.Text); ok && !txt.Preserve {
			t.Errorf("item %d: preserve flag not set on %q", i, txt.Value)
		}
	}
}

func TestNormalizeBreaksCodeTextWithoutNewlines(t *testing.T) {
	p := para("    four leading spaces")
	p.Role = docx.RoleCode
	doc := &docx.Document{Items: []docx.BodyItem{p}}

	NormalizeBreaks(doc)

	txt := doc.Paragraphs()[0].Runs()[0].Items[0].(*docx.Text)
	if !txt.Preserve {
		t.Error("code text without newlines must still preserve whitespace")
	}
}

func TestNormalizeBreaksLeavesProseAlone(t *testing.T) {
	p := para("ordinary body text")
	p.Role = docx.RoleBody
	doc := &docx.Document{Items: []docx.BodyItem{p}}

	NormalizeBreaks(doc)

	txt := doc.Paragraphs()[0].Runs()[0].Items[0].(*docx.Text)
	if txt.Preserve {
		t.Error("prose text must not gain a preserve flag")
	}
	if txt.Value != "ordinary body text" {
		t.Errorf("text changed to %q", txt.Value)
	}
}
