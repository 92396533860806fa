package word2ieee

import "errors"

// Sentinel errors for engine operations. All failures cross the engine
// boundary as one of these (wrapped with detail), never as panics, so
// server and CLI layers can render them uniformly.
var (
	// Input validation errors.
	ErrEmptyInput        = errors.New("input document is empty")
	ErrMissingInputPath  = errors.New("input path cannot be empty")
	ErrMissingOutputPath = errors.New("output path cannot be empty")

	// Document errors.
	ErrMalformedPackage    = errors.New("input is not a valid DOCX package")
	ErrUnmatchedCodeMarker = errors.New("unmatched code block marker")
	ErrNestedCodeMarker    = errors.New("nested code block start marker")

	// I/O errors.
	ErrReadInput   = errors.New("failed to read input document")
	ErrWriteOutput = errors.New("failed to write output document")
)
