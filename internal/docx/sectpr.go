package docx

import (
	"fmt"
	"strings"
)

// SectPr models the body-level w:sectPr. Children the converter does not
// rewrite are kept as raw chunks in source order; pgMar and cols are
// replaced in place or inserted at their schema position.
type SectPr struct {
	children []sectChild
}

type sectChild struct {
	name string
	raw  Raw
}

// sectChildRank orders sectPr children per the WordprocessingML schema.
// Unknown names sort after known ones, keeping their original order.
var sectChildRank = map[string]int{
	"headerReference": 1,
	"footerReference": 2,
	"footnotePr":      3,
	"endnotePr":       4,
	"type":            5,
	"pgSz":            6,
	"pgMar":           7,
	"paperSrc":        8,
	"pgBorders":       9,
	"lnNumType":       10,
	"pgNumType":       11,
	"cols":            12,
	"formProt":        13,
	"vAlign":          14,
	"noEndnote":       15,
	"titlePg":         16,
	"textDirection":   17,
	"bidi":            18,
	"rtlGutter":       19,
	"docGrid":         20,
	"printerSettings": 21,
}

func rankOf(name string) int {
	if r, ok := sectChildRank[name]; ok {
		return r
	}
	return 99
}

// NewSectPr builds section properties for a document that had none,
// carrying a US Letter page size so margins have something to apply to.
func NewSectPr() *SectPr {
	return &SectPr{children: []sectChild{{
		name: "pgSz",
		raw:  Raw(`<w:pgSz w:w="12240" w:h="15840"/>`),
	}}}
}

// SetPageMargins replaces (or inserts) the pgMar child. Values are twips.
func (s *SectPr) SetPageMargins(top, right, bottom, left int) {
	raw := fmt.Sprintf(
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		top, right, bottom, left)
	s.upsert("pgMar", Raw(raw))
}

// SetColumns replaces (or inserts) the cols child with a fixed column
// count and inter-column gap in twips.
func (s *SectPr) SetColumns(num, gapTw int) {
	raw := fmt.Sprintf(`<w:cols w:num="%d" w:space="%d"/>`, num, gapTw)
	s.upsert("cols", Raw(raw))
}

func (s *SectPr) upsert(name string, raw Raw) {
	for i, c := range s.children {
		if c.name == name {
			s.children[i].raw = raw
			return
		}
	}
	// Insert before the first child that must follow name in schema order.
	rank := rankOf(name)
	at := len(s.children)
	for i, c := range s.children {
		if rankOf(c.name) > rank {
			at = i
			break
		}
	}
	s.children = append(s.children, sectChild{})
	copy(s.children[at+1:], s.children[at:])
	s.children[at] = sectChild{name: name, raw: raw}
}

func (s *SectPr) marshal(b *strings.Builder) {
	b.WriteString(`<w:sectPr>`)
	for _, c := range s.children {
		b.Write(c.raw)
	}
	b.WriteString(`</w:sectPr>`)
}
