package pipeline

import (
	"github.com/alnah/go-word2ieee/internal/docx"
)

// ApplyStyles resolves each paragraph's StyleRule from the table and
// attaches it for serialization. Pre-existing run formatting was already
// dropped at parse time, so the rule fully determines the output look.
// Paragraphs whose Role has no entry (which cannot happen once
// classification and segmentation ran) fall back to Body.
func ApplyStyles(doc *docx.Document, table docx.StyleTable) {
	for _, p := range doc.Paragraphs() {
		rule, ok := table.Rules[p.Role]
		if !ok {
			rule = table.Rules[docx.RoleBody]
		}
		if p.Role == docx.RoleAuthorLine && p.AuthorKind != docx.AuthorGeneric {
			// Email and location lines render italic; same size and
			// alignment as any other author line.
			rule.Italic = true
		}
		applied := rule
		p.Style = &applied
	}
}
