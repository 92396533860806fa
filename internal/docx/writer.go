package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Single line spacing: 240 twentieths of a point with lineRule="auto".
// Every role uses single spacing; this is not configurable.
const singleLineTw = 240

// Marshal serializes the document back to word/document.xml bytes.
// Raw chunks are written verbatim; paragraphs are rebuilt from the model
// with their applied StyleRule.
func (d *Document) Marshal() []byte {
	var b strings.Builder
	b.Grow(len(d.prefix) + len(d.suffix) + 1024)
	b.Write(d.prefix)
	for _, it := range d.Items {
		switch v := it.(type) {
		case *Paragraph:
			writeParagraph(&b, v)
		case Raw:
			b.Write(v)
		}
	}
	if d.SectPr != nil {
		d.SectPr.marshal(&b)
	}
	b.Write(d.suffix)
	return []byte(b.String())
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	b.WriteString(`<w:p>`)
	writePPr(b, p)
	for _, it := range p.Items {
		switch v := it.(type) {
		case *Run:
			writeRun(b, v, p.Style)
		case Raw:
			b.Write(v)
		}
	}
	b.WriteString(`</w:p>`)
}

// writePPr emits paragraph properties in schema order: borders, shading,
// spacing, indentation, justification, then any preserved section break.
func writePPr(b *strings.Builder, p *Paragraph) {
	s := p.Style
	if s == nil && p.SectPrRaw == nil {
		return
	}
	b.WriteString(`<w:pPr>`)
	if s != nil {
		if s.Border != nil {
			writePBdr(b, s.Border)
		}
		if s.Shading != nil {
			fmt.Fprintf(b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, s.Shading.Fill)
		}
		fmt.Fprintf(b, `<w:spacing w:before="%d" w:after="%d" w:line="%d" w:lineRule="auto"/>`,
			s.SpaceBeforePt*20, s.SpaceAfterPt*20, singleLineTw)
		writeInd(b, s)
		fmt.Fprintf(b, `<w:jc w:val="%s"/>`, s.Alignment)
	}
	if p.SectPrRaw != nil {
		b.Write(p.SectPrRaw)
	}
	b.WriteString(`</w:pPr>`)
}

// writePBdr emits the four-sided continuous box. Adjacent paragraphs
// carrying identical borders render as one merged box, which is how a
// multi-paragraph code block becomes a single frame.
func writePBdr(b *strings.Builder, bd *BorderSpec) {
	b.WriteString(`<w:pBdr>`)
	for _, side := range [...]string{"top", "left", "bottom", "right"} {
		fmt.Fprintf(b, `<w:%s w:val="single" w:sz="%d" w:space="%d" w:color="%s"/>`,
			side, bd.SizeEighths, bd.SpacePt, bd.Color)
	}
	b.WriteString(`</w:pBdr>`)
}

func writeInd(b *strings.Builder, s *StyleRule) {
	if s.LeftTw == 0 && s.RightTw == 0 && s.FirstLineTw == 0 && s.HangingTw == 0 {
		return
	}
	b.WriteString(`<w:ind`)
	if s.LeftTw != 0 {
		fmt.Fprintf(b, ` w:left="%d"`, s.LeftTw)
	}
	if s.RightTw != 0 {
		fmt.Fprintf(b, ` w:right="%d"`, s.RightTw)
	}
	switch {
	case s.HangingTw != 0:
		fmt.Fprintf(b, ` w:hanging="%d"`, s.HangingTw)
	case s.FirstLineTw != 0:
		fmt.Fprintf(b, ` w:firstLine="%d"`, s.FirstLineTw)
	}
	b.WriteString(`/>`)
}

func writeRun(b *strings.Builder, r *Run, s *StyleRule) {
	b.WriteString(`<w:r>`)
	writeRPr(b, s)
	for _, it := range r.Items {
		switch v := it.(type) {
		case *Text:
			writeText(b, v)
		case *Break:
			b.WriteString(`<w:br/>`)
		case *TabChar:
			b.WriteString(`<w:tab/>`)
		case Raw:
			b.Write(v)
		}
	}
	b.WriteString(`</w:r>`)
}

func writeRPr(b *strings.Builder, s *StyleRule) {
	if s == nil {
		return
	}
	b.WriteString(`<w:rPr>`)
	fmt.Fprintf(b, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`,
		s.FontFamily, s.FontFamily, s.FontFamily)
	if s.Bold {
		b.WriteString(`<w:b/>`)
	}
	if s.Italic {
		b.WriteString(`<w:i/>`)
	}
	b.WriteString(`<w:color w:val="000000"/>`)
	fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, s.SizePt*2, s.SizePt*2)
	b.WriteString(`</w:rPr>`)
}

func writeText(b *strings.Builder, t *Text) {
	if t.Preserve {
		b.WriteString(`<w:t xml:space="preserve">`)
	} else {
		b.WriteString(`<w:t>`)
	}
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(b, []byte(t.Value))
	b.WriteString(`</w:t>`)
}
