package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-word2ieee/internal/docx"
)

// Sentinel errors for code-block segmentation. Either one aborts the
// conversion before any output is written.
var (
	ErrUnmatchedMarker = errors.New("unmatched code block marker")
	ErrNestedMarker    = errors.New("nested code block start marker")
)

// CodeBlockGroup is a half-open range [Start, End) of paragraph indexes,
// counted over the output paragraph sequence, whose members were forced
// to RoleCode. Groups are disjoint and contiguous.
type CodeBlockGroup struct {
	Start, End int
}

// Segment scans the body for marker pairs with an explicit open/closed
// state machine. Marker paragraphs are removed from the document;
// everything strictly between a matched pair is reassigned RoleCode,
// overriding the classifier. A start marker with no end, a stray end
// marker, or a start marker inside an open block fails the conversion.
func Segment(doc *docx.Document) ([]CodeBlockGroup, error) {
	var (
		groups []CodeBlockGroup
		kept   []docx.BodyItem
		inCode bool
		start  int // index of the open group's first paragraph
		index  int // paragraph index in the output sequence
	)

	for _, it := range doc.Items {
		p, ok := it.(*docx.Paragraph)
		if !ok {
			kept = append(kept, it)
			continue
		}
		if p.Role != docx.RoleMarker {
			if inCode {
				p.Role = docx.RoleCode
			}
			kept = append(kept, p)
			index++
			continue
		}

		switch norm := strings.ToLower(strings.TrimSpace(p.Text())); norm {
		case CodeBlockStart:
			if inCode {
				return nil, fmt.Errorf("%w at paragraph %d", ErrNestedMarker, index)
			}
			inCode = true
			start = index
		case CodeBlockEnd:
			if !inCode {
				return nil, fmt.Errorf("%w: end marker with no open block at paragraph %d",
					ErrUnmatchedMarker, index)
			}
			inCode = false
			groups = append(groups, CodeBlockGroup{Start: start, End: index})
		}
		// A dropped marker may still carry a section break; reattach it
		// to the preceding paragraph so the boundary is not lost.
		if p.SectPrRaw != nil {
			for i := len(kept) - 1; i >= 0; i-- {
				if prev, ok := kept[i].(*docx.Paragraph); ok {
					if prev.SectPrRaw == nil {
						prev.SectPrRaw = p.SectPrRaw
					}
					break
				}
			}
		}
	}

	if inCode {
		return nil, fmt.Errorf("%w: start marker never closed", ErrUnmatchedMarker)
	}

	doc.Items = kept
	return groups, nil
}
