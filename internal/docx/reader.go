package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrNoBody indicates document.xml carries no w:body element.
var ErrNoBody = errors.New("document.xml has no body element")

// ParseDocument parses word/document.xml into the in-memory model.
//
// The decoder walks the token stream and slices the original bytes for
// everything that is carried through verbatim (tables, drawings,
// bookmarks, typed breaks). Offsets from Decoder.InputOffset bracket each
// skipped element, so pass-through content is bit-identical on output.
// Element names are matched by local name; prefixes stay untouched
// inside the raw slices.
func ParseDocument(data []byte) (*Document, error) {
	d := xml.NewDecoder(bytes.NewReader(data))

	// Locate the body start tag; everything before it is kept as-is.
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, ErrNoBody
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document.xml: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "body" {
			break
		}
	}

	doc := &Document{prefix: data[:d.InputOffset()]}

	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p, err := parseParagraph(d, data)
				if err != nil {
					return nil, err
				}
				doc.Items = append(doc.Items, p)
			case "sectPr":
				sp, err := parseSectPr(d, data)
				if err != nil {
					return nil, err
				}
				doc.SectPr = sp
			default:
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("skipping %s: %w", t.Name.Local, err)
				}
				doc.Items = append(doc.Items, Raw(data[off:d.InputOffset()]))
			}
		case xml.EndElement:
			// </w:body>: the remainder of the file is the suffix.
			doc.suffix = data[off:]
			return doc, nil
		default:
			doc.Items = append(doc.Items, Raw(data[off:d.InputOffset()]))
		}
	}
}

func parseParagraph(d *xml.Decoder, data []byte) (*Paragraph, error) {
	p := &Paragraph{}
	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing paragraph: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				// Original formatting is rewritten wholesale, but a
				// paragraph-level section break must survive.
				sect, err := extractPPrSectPr(d, data)
				if err != nil {
					return nil, err
				}
				p.SectPrRaw = sect
			case "r":
				r, err := parseRun(d, data)
				if err != nil {
					return nil, err
				}
				p.Items = append(p.Items, r)
			default:
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("skipping %s: %w", t.Name.Local, err)
				}
				p.Items = append(p.Items, Raw(data[off:d.InputOffset()]))
			}
		case xml.EndElement:
			return p, nil
		}
	}
}

// extractPPrSectPr consumes a pPr element, returning the raw bytes of a
// nested sectPr if present and discarding everything else.
func extractPPrSectPr(d *xml.Decoder, data []byte) (Raw, error) {
	var sect Raw
	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing paragraph properties: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return nil, fmt.Errorf("skipping %s: %w", t.Name.Local, err)
			}
			if t.Name.Local == "sectPr" {
				sect = Raw(data[off:d.InputOffset()])
			}
		case xml.EndElement:
			return sect, nil
		}
	}
}

func parseRun(d *xml.Decoder, data []byte) (*Run, error) {
	r := &Run{}
	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing run: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				// Run formatting is rewritten from the style table.
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("skipping run properties: %w", err)
				}
			case "t":
				txt, err := decodeText(d, t)
				if err != nil {
					return nil, err
				}
				r.Items = append(r.Items, txt)
			case "br":
				breakType := ""
				for _, a := range t.Attr {
					if a.Name.Local == "type" {
						breakType = a.Value
					}
				}
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("skipping break: %w", err)
				}
				if breakType == "" || breakType == "textWrapping" {
					r.Items = append(r.Items, &Break{})
				} else {
					// Page and column breaks pass through untouched.
					r.Items = append(r.Items, Raw(data[off:d.InputOffset()]))
				}
			case "tab":
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("skipping tab: %w", err)
				}
				r.Items = append(r.Items, &TabChar{})
			default:
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("skipping %s: %w", t.Name.Local, err)
				}
				r.Items = append(r.Items, Raw(data[off:d.InputOffset()]))
			}
		case xml.EndElement:
			return r, nil
		}
	}
}

func decodeText(d *xml.Decoder, start xml.StartElement) (*Text, error) {
	var node struct {
		Value string `xml:",chardata"`
		Space string `xml:"space,attr"`
	}
	if err := d.DecodeElement(&node, &start); err != nil {
		return nil, fmt.Errorf("parsing text node: %w", err)
	}
	return &Text{Value: node.Value, Preserve: node.Space == "preserve"}, nil
}

func parseSectPr(d *xml.Decoder, data []byte) (*SectPr, error) {
	sp := &SectPr{}
	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing section properties: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if err := d.Skip(); err != nil {
				return nil, fmt.Errorf("skipping %s: %w", name, err)
			}
			sp.children = append(sp.children, sectChild{
				name: name,
				raw:  Raw(data[off:d.InputOffset()]),
			})
		case xml.EndElement:
			return sp, nil
		}
	}
}
