package word2ieee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-word2ieee/internal/docx"
	"github.com/alnah/go-word2ieee/internal/fileutil"
	"github.com/alnah/go-word2ieee/internal/pipeline"
)

// Converter runs the document transformation pipeline. It holds only
// the read-only style table, so one Converter is safe for concurrent
// use; each conversion builds its own in-memory document.
type Converter struct {
	styles docx.StyleTable
}

// New creates a Converter carrying the fixed IEEE style table.
func New() *Converter {
	return &Converter{styles: docx.DefaultStyleTable()}
}

// Convert reads input.InputPath, transforms it, and writes
// input.OutputPath. The write is atomic: the output appears complete or
// not at all, and the source file is never touched. The context is
// checked between passes; the whole call is the unit of cancellation,
// there is no partial result.
// Recovers from internal panics so faults never cross the boundary raw.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
			result = failure(err)
		}
	}()

	if err := input.Validate(); err != nil {
		return failure(err), err
	}

	data, err := os.ReadFile(input.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return failure(err), err
	}

	out, err := c.ConvertBytes(ctx, data, input.TwoColumn)
	if err != nil {
		return failure(err), err
	}

	if err := fileutil.WriteFileAtomic(input.OutputPath, out, 0o644); err != nil {
		err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return failure(err), err
	}

	return &Result{
		Success: true,
		Message: fmt.Sprintf("wrote %s (%s)", input.OutputPath, StyleVersion),
	}, nil
}

// ConvertBytes transforms a DOCX package held in memory and returns the
// new package bytes. This is the whole engine; Convert only adds file
// handling around it.
func (c *Converter) ConvertBytes(ctx context.Context, data []byte, twoColumn bool) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	pkg, err := docx.OpenPackage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
	}
	doc, err := docx.ParseDocument(pkg.DocumentXML())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pipeline.Classify(doc)

	if _, err := pipeline.Segment(doc); err != nil {
		if errors.Is(err, pipeline.ErrNestedMarker) {
			return nil, fmt.Errorf("%w: %v", ErrNestedCodeMarker, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnmatchedCodeMarker, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pipeline.ApplyStyles(doc, c.styles)
	pipeline.NormalizeBreaks(doc)
	pipeline.ApplyLayout(doc, twoColumn)

	var buf bytes.Buffer
	if err := pkg.Write(&buf, doc.Marshal()); err != nil {
		return nil, fmt.Errorf("serializing package: %w", err)
	}
	return buf.Bytes(), nil
}

// Inspect classifies a document without transforming it and reports the
// role assigned to each paragraph. When the marker structure is valid
// the report reflects segmentation too (code roles forced, markers
// gone); otherwise it falls back to the raw classification so broken
// marker pairs can be located.
func (c *Converter) Inspect(ctx context.Context, data []byte) ([]ParagraphInfo, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	pkg, err := docx.OpenPackage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := docx.ParseDocument(pkg.DocumentXML())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
	}
	pipeline.Classify(doc)
	if _, err := pipeline.Segment(doc); err != nil {
		// Segmentation mutates roles before it fails; reclassify fresh.
		doc, err = docx.ParseDocument(pkg.DocumentXML())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
		}
		pipeline.Classify(doc)
	}

	paragraphs := doc.Paragraphs()
	infos := make([]ParagraphInfo, 0, len(paragraphs))
	for i, p := range paragraphs {
		infos = append(infos, ParagraphInfo{
			Index: i,
			Role:  p.Role.String(),
			Text:  p.Text(),
		})
	}
	return infos, nil
}

func failure(err error) *Result {
	return &Result{Message: "conversion failed", Issues: []string{err.Error()}}
}
