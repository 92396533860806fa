package pipeline

import (
	"github.com/alnah/go-word2ieee/internal/docx"
)

// ApplyLayout forces the IEEE page margins on the body section
// regardless of the document's original page setup, and, when twoColumn
// is set, switches the section to two columns with a fixed gap. The
// column definition covers the whole section, title and author block
// included; nothing else about the section is touched. A document with
// no section properties gets a fresh set on a US Letter page.
func ApplyLayout(doc *docx.Document, twoColumn bool) {
	if doc.SectPr == nil {
		doc.SectPr = docx.NewSectPr()
	}
	doc.SectPr.SetPageMargins(
		docx.MarginTopTw, docx.MarginRightTw, docx.MarginBottomTw, docx.MarginLeftTw)
	if twoColumn {
		doc.SectPr.SetColumns(2, docx.ColumnGapTw)
	}
}
