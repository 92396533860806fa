// Package word2ieee converts Word documents (.docx) to the fixed IEEE
// publication format.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv := word2ieee.New()
//
//	result, err := conv.Convert(ctx, word2ieee.Input{
//	    InputPath:  "paper.docx",
//	    OutputPath: "paper_IEEE.docx",
//	    TwoColumn:  true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Message)
//
// In-memory callers (upload handlers, remote tool servers) can use
// ConvertBytes and handle the file I/O themselves.
//
// # Conversion Pipeline
//
// The conversion runs five strictly sequential passes over an in-memory
// document model:
//
//  1. Paragraph classification (title, authors, abstract, headings,
//     body, captions, references) via ordered heuristics
//  2. Code block segmentation: paragraphs between a <code block start>
//     and <code block end> marker pair become code; the markers vanish
//  3. Style application from the fixed IEEE style table (fonts, sizes,
//     alignment, indents, spacing; bordered and shaded code boxes)
//  4. Line-break normalization: literal newlines inside code runs become
//     explicit break nodes with whitespace preserved exactly
//  5. Page layout: IEEE margins always, two-column layout on request
//
// The operation is atomic: either a complete output package is produced
// or nothing is written. The source file is never modified. Tables,
// images and embedded objects pass through untouched.
//
// # Code Markers
//
// A paragraph whose entire text is "<code block start>" or
// "<code block end>" (case-insensitive, surrounding whitespace ignored)
// delimits a code region. An unmatched or nested marker aborts the
// conversion with a structured error.
//
// # Style Contract
//
// Margins (0.75" top, 1.0" bottom, 0.625" sides), the per-role style
// table and single line spacing are a fixed publication contract,
// versioned as StyleVersion. They are policy, never derived from input.
package word2ieee
