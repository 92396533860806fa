package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// documentPart is the body markup part of a DOCX package.
const documentPart = "word/document.xml"

// Sentinel errors for container operations.
var (
	ErrNotZip          = errors.New("input is not a ZIP archive")
	ErrMissingDocument = errors.New("package has no word/document.xml part")
)

// Package is an opened DOCX container. It holds the original archive so
// every part except the body markup can be copied into the output
// without recompression.
type Package struct {
	reader  *zip.Reader
	docData []byte
}

// OpenPackage opens a DOCX package from bytes and extracts the body
// markup part. The source is never mutated.
func OpenPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotZip, err)
	}

	p := &Package{reader: zr}
	for _, f := range zr.File {
		if f.Name == documentPart {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w", documentPart, err)
			}
			p.docData, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", documentPart, err)
			}
			return p, nil
		}
	}
	return nil, ErrMissingDocument
}

// DocumentXML returns the raw bytes of word/document.xml.
func (p *Package) DocumentXML() []byte {
	return p.docData
}

// Write serializes a new package to w: every entry of the source archive
// is copied raw (compressed bytes untouched) except word/document.xml,
// which is replaced by docXML.
func (p *Package) Write(w io.Writer, docXML []byte) error {
	zw := zip.NewWriter(w)
	for _, f := range p.reader.File {
		if f.Name == documentPart {
			header := f.FileHeader
			ew, err := zw.CreateHeader(&header)
			if err != nil {
				return fmt.Errorf("creating %s entry: %w", f.Name, err)
			}
			if _, err := ew.Write(docXML); err != nil {
				return fmt.Errorf("writing %s: %w", f.Name, err)
			}
			continue
		}
		if err := zw.Copy(f); err != nil {
			return fmt.Errorf("copying %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}
