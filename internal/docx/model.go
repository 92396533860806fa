// Package docx reads and writes the WordprocessingML parts of a DOCX
// package at the markup level. It exposes the primitives the higher-level
// conversion passes need to control exactly: explicit <w:br/> line-break
// nodes, xml:space preservation on text nodes, per-paragraph borders and
// shading, and section properties. Everything the converter does not
// rewrite is carried through byte-for-byte.
package docx

import "strings"

// BodyItem is one top-level child of w:body: either a *Paragraph the
// converter rewrites, or a Raw chunk (table, bookmark, structured
// document tag) passed through untouched.
type BodyItem interface {
	isBodyItem()
}

// Raw is a verbatim slice of the source document.xml. Raw chunks are
// never re-encoded; they are spliced into the output exactly as read.
type Raw []byte

func (Raw) isBodyItem() {}
func (Raw) isParaItem() {}
func (Raw) isRunItem()  {}

// ParaItem is one child of w:p kept in the model: a *Run, or Raw for
// hyperlinks, bookmarks, proofing marks and anything else untouched.
type ParaItem interface {
	isParaItem()
}

// RunItem is one content child of w:r.
type RunItem interface {
	isRunItem()
}

// Text is a w:t node. When Preserve is set the output carries
// xml:space="preserve" so consecutive spaces and tabs survive.
type Text struct {
	Value    string
	Preserve bool
}

func (*Text) isRunItem() {}

// Break is a textWrapping w:br node: a new visual line inside the same
// paragraph. Typed breaks (page, column) are kept as Raw instead.
type Break struct{}

func (*Break) isRunItem() {}

// TabChar is a w:tab node.
type TabChar struct{}

func (*TabChar) isRunItem() {}

// Run is a w:r whose original run properties were dropped; the writer
// emits fresh properties from the paragraph's applied StyleRule.
type Run struct {
	Items []RunItem
}

func (*Run) isParaItem() {}

// Text returns the run's literal text. Tabs count as "\t" and explicit
// line breaks as "\n" so the raw text stays consistent with the items.
func (r *Run) Text() string {
	var b strings.Builder
	for _, it := range r.Items {
		switch v := it.(type) {
		case *Text:
			b.WriteString(v.Value)
		case *TabChar:
			b.WriteByte('\t')
		case *Break:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Paragraph is a w:p. Role and AuthorKind are assigned by classification;
// Style is assigned by the formatting pass and drives serialization.
// SectPrRaw preserves a paragraph-level section break if the source had
// one, so section boundaries are never lost.
type Paragraph struct {
	Role       Role
	AuthorKind AuthorKind
	Style      *StyleRule
	Items      []ParaItem
	SectPrRaw  Raw
}

func (*Paragraph) isBodyItem() {}

// Runs returns the paragraph's parsed runs in order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, it := range p.Items {
		if r, ok := it.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Text returns the concatenated text of all parsed runs. It is derived
// from the run items on every call and never cached, so it cannot drift
// from the underlying content.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// Document is the parsed word/document.xml: everything up to and
// including the w:body start tag, the body items, the trailing section
// properties, and everything from </w:body> on.
type Document struct {
	prefix  []byte
	Items   []BodyItem
	SectPr  *SectPr
	suffix  []byte
}

// Paragraphs returns the body's paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, it := range d.Items {
		if p, ok := it.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}
