package pipeline

import (
	"strings"

	"github.com/alnah/go-word2ieee/internal/docx"
)

// NormalizeBreaks rewrites every text node containing literal newlines
// into explicit line-break markup: N newlines become N <w:br/> nodes
// separating N+1 text segments, each flagged xml:space="preserve" so
// indentation survives. Empty segments are emitted too; they are the
// blank lines. The paragraph itself is never split, which keeps a code
// block's border and shading continuous.
//
// Round-trip law: joining the produced segments with "\n" reconstructs
// the original text exactly, for any input.
func NormalizeBreaks(doc *docx.Document) {
	for _, p := range doc.Paragraphs() {
		code := p.Role == docx.RoleCode
		for _, r := range p.Runs() {
			r.Items = normalizeRunItems(r.Items, code)
		}
	}
}

func normalizeRunItems(items []docx.RunItem, code bool) []docx.RunItem {
	out := make([]docx.RunItem, 0, len(items))
	for _, it := range items {
		t, ok := it.(*docx.Text)
		if !ok {
			out = append(out, it)
			continue
		}
		if !strings.Contains(t.Value, "\n") {
			if code {
				// Code text keeps its whitespace even without breaks.
				t.Preserve = true
			}
			out = append(out, t)
			continue
		}
		segments := strings.Split(t.Value, "\n")
		for i, seg := range segments {
			if i > 0 {
				out = append(out, &docx.Break{})
			}
			out = append(out, &docx.Text{Value: seg, Preserve: true})
		}
	}
	return out
}
