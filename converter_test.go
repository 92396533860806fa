package word2ieee

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`

// buildDocx assembles a minimal DOCX package whose body holds one
// paragraph per given text.
func buildDocx(t *testing.T, texts ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, txt := range texts {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&body, []byte(txt))
		body.WriteString(`</w:t></w:r></w:p>`)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"word/document.xml": documentHeader + `<w:body>` + body.String() + `</w:body></w:document>`,
		"word/styles.xml":   `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`,
	}
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

// paperTexts is a small but complete article: title, authors, abstract,
// sections, a marked code block, captions, and references.
func paperTexts() []string {
	return []string{
		"A Study of Conversion Pipelines",
		"Jane Doe",
		"jane.doe@example.edu",
		"Abstract—We study document conversion.",
		"I. Introduction",
		"This paper describes the system.",
		"<code block start>",
		"func main() {\n\tfmt.Println(\"hi\")\n}",
		"<code block end>",
		"Code Block 1: Entry point.",
		"II. Conclusion",
		"We conclude.",
		"References",
		"[1] J. Doe, \"Prior work,\" 2024.",
	}
}

func extractDocumentXML(t *testing.T, pkg []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		t.Fatalf("output is not a ZIP archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening document.xml: %v", err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading document.xml: %v", err)
		}
		return string(b)
	}
	t.Fatal("output has no word/document.xml")
	return ""
}

func TestConvertBytesFullPaper(t *testing.T) {
	conv := New()
	out, err := conv.ConvertBytes(context.Background(), buildDocx(t, paperTexts()...), false)
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}

	doc := extractDocumentXML(t, out)

	if got := strings.Count(doc, "<w:p>"); got != len(paperTexts())-2 {
		t.Errorf("paragraph count = %d, want %d (markers must be dropped)",
			got, len(paperTexts())-2)
	}
	if strings.Contains(doc, "code block start") || strings.Contains(doc, "code block end") {
		t.Error("marker text leaked into the output")
	}
	if !strings.Contains(doc, `<w:pgMar w:top="1080" w:right="900" w:bottom="1440" w:left="900"`) {
		t.Error("output missing forced page margins")
	}
	if strings.Contains(doc, "<w:cols") {
		t.Error("single-column output must not declare w:cols")
	}
	if !strings.Contains(doc, `w:ascii="Courier New"`) {
		t.Error("code block did not get the monospace font")
	}
	if !strings.Contains(doc, `<w:br/>`) {
		t.Error("literal newlines in the code block were not normalized to breaks")
	}
	if !strings.Contains(doc, `<w:shd w:val="clear" w:color="auto" w:fill="F2F2F2"/>`) {
		t.Error("code block did not get the gray shading")
	}
	if !strings.Contains(doc, `<w:sz w:val="48"/>`) {
		t.Error("title did not get the 24pt size")
	}
}

func TestConvertBytesTwoColumn(t *testing.T) {
	conv := New()
	out, err := conv.ConvertBytes(context.Background(), buildDocx(t, paperTexts()...), true)
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	doc := extractDocumentXML(t, out)
	if !strings.Contains(doc, `<w:cols w:num="2" w:space="360"/>`) {
		t.Error("two-column output missing the column definition")
	}
}

func TestConvertBytesRerunIsStable(t *testing.T) {
	// Converting a converted document must succeed and produce the same
	// styling again; the pipeline never depends on its own markers.
	conv := New()
	ctx := context.Background()

	first, err := conv.ConvertBytes(ctx, buildDocx(t, paperTexts()...), false)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := conv.ConvertBytes(ctx, first, false)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	a := extractDocumentXML(t, first)
	b := extractDocumentXML(t, second)
	if strings.Count(a, "<w:p>") != strings.Count(b, "<w:p>") {
		t.Error("second pass changed the paragraph count")
	}
}

func TestConvertBytesErrors(t *testing.T) {
	conv := New()
	ctx := context.Background()
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty input", nil, ErrEmptyInput},
		{"not a package", []byte("this is not a zip"), ErrMalformedPackage},
		{
			"unclosed code block",
			buildDocx(t, "Title", "<code block start>", "code"),
			ErrUnmatchedCodeMarker,
		},
		{
			"stray end marker",
			buildDocx(t, "Title", "<code block end>"),
			ErrUnmatchedCodeMarker,
		},
		{
			"nested start marker",
			buildDocx(t, "Title", "<code block start>", "<code block start>", "<code block end>"),
			ErrNestedCodeMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := conv.ConvertBytes(ctx, tt.data, false)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if out != nil {
				t.Error("failed conversion must not return output bytes")
			}
		})
	}
}

func TestConvertBytesMalformedDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating entry: %v", err)
	}
	if _, err := w.Write([]byte("<w:document><w:body><unclosed")); err != nil {
		t.Fatalf("writing entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}

	conv := New()
	_, err = conv.ConvertBytes(context.Background(), buf.Bytes(), false)
	if !errors.Is(err, ErrMalformedPackage) {
		t.Errorf("error = %v, want %v", err, ErrMalformedPackage)
	}
}

func TestConvertBytesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := New()
	_, err := conv.ConvertBytes(ctx, buildDocx(t, paperTexts()...), false)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want %v", err, context.Canceled)
	}
}

func TestConvertWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "paper.docx")
	outPath := filepath.Join(dir, "paper_IEEE.docx")
	if err := os.WriteFile(inPath, buildDocx(t, paperTexts()...), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	original, err := os.ReadFile(inPath)
	if err != nil {
		t.Fatalf("reading fixture back: %v", err)
	}

	conv := New()
	result, err := conv.Convert(context.Background(), Input{
		InputPath:  inPath,
		OutputPath: outPath,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !result.Success {
		t.Errorf("result not successful: %+v", result)
	}
	if !strings.Contains(result.Message, outPath) {
		t.Errorf("message %q does not name the output", result.Message)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	extractDocumentXML(t, out)

	after, err := os.ReadFile(inPath)
	if err != nil {
		t.Fatalf("rereading input: %v", err)
	}
	if !bytes.Equal(original, after) {
		t.Error("source file was modified")
	}
}

func TestConvertFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "broken.docx")
	outPath := filepath.Join(dir, "broken_IEEE.docx")
	if err := os.WriteFile(inPath, buildDocx(t, "Title", "<code block start>"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	conv := New()
	result, err := conv.Convert(context.Background(), Input{
		InputPath:  inPath,
		OutputPath: outPath,
	})
	if !errors.Is(err, ErrUnmatchedCodeMarker) {
		t.Fatalf("error = %v, want %v", err, ErrUnmatchedCodeMarker)
	}
	if result.Success {
		t.Error("failed conversion reported success")
	}
	if len(result.Issues) == 0 {
		t.Error("failure result carries no issues")
	}
	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("failed conversion left an output file behind")
	}
}

func TestConvertErrorMapping(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{"missing input path", Input{OutputPath: "out.docx"}, ErrMissingInputPath},
		{"missing output path", Input{InputPath: "in.docx"}, ErrMissingOutputPath},
		{
			"nonexistent input",
			Input{InputPath: filepath.Join(dir, "absent.docx"), OutputPath: filepath.Join(dir, "out.docx")},
			ErrReadInput,
		},
	}

	conv := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if result == nil || result.Success {
				t.Error("failed conversion must return an unsuccessful result")
			}
		})
	}
}

func TestInspectReportsRoles(t *testing.T) {
	conv := New()
	infos, err := conv.Inspect(context.Background(), buildDocx(t, paperTexts()...))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	// Markers are gone, so the report covers 12 paragraphs.
	if len(infos) != len(paperTexts())-2 {
		t.Fatalf("paragraph count = %d, want %d", len(infos), len(paperTexts())-2)
	}
	if infos[0].Role != "title" {
		t.Errorf("first role = %s, want title", infos[0].Role)
	}
	if infos[0].Text != "A Study of Conversion Pipelines" {
		t.Errorf("first text = %q", infos[0].Text)
	}

	var sawCode bool
	for _, info := range infos {
		if info.Role == "code" {
			sawCode = true
		}
	}
	if !sawCode {
		t.Error("marked block not reported as code")
	}
}

func TestInspectBrokenMarkersFallsBack(t *testing.T) {
	conv := New()
	infos, err := conv.Inspect(context.Background(),
		buildDocx(t, "Title", "<code block start>", "code"))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	// Raw classification keeps the markers visible for debugging.
	if len(infos) != 3 {
		t.Fatalf("paragraph count = %d, want 3", len(infos))
	}
	if infos[1].Role != "marker" {
		t.Errorf("marker role = %s, want marker", infos[1].Role)
	}
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{"valid", Input{InputPath: "a.docx", OutputPath: "b.docx"}, nil},
		{"no input", Input{OutputPath: "b.docx"}, ErrMissingInputPath},
		{"no output", Input{InputPath: "a.docx"}, ErrMissingOutputPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
