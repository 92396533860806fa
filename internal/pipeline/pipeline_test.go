package pipeline

import (
	"github.com/alnah/go-word2ieee/internal/docx"
)

// para builds a paragraph with one run per text fragment.
func para(fragments ...string) *docx.Paragraph {
	p := &docx.Paragraph{}
	for _, f := range fragments {
		p.Items = append(p.Items, &docx.Run{
			Items: []docx.RunItem{&docx.Text{Value: f}},
		})
	}
	return p
}

// docFromTexts builds a document with one single-run paragraph per text.
func docFromTexts(texts ...string) *docx.Document {
	doc := &docx.Document{}
	for _, t := range texts {
		doc.Items = append(doc.Items, para(t))
	}
	return doc
}

// roles returns the role names of the document's paragraphs in order.
func roles(doc *docx.Document) []string {
	var out []string
	for _, p := range doc.Paragraphs() {
		out = append(out, p.Role.String())
	}
	return out
}
