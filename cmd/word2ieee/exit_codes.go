package main

import (
	"errors"
	"os"

	word2ieee "github.com/alnah/go-word2ieee"
	"github.com/alnah/go-word2ieee/internal/config"
)

// Exit codes for the word2ieee CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitDocument = 4 // Malformed package or marker structure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document errors (exit 4)
	if errors.Is(err, word2ieee.ErrMalformedPackage) ||
		errors.Is(err, word2ieee.ErrUnmatchedCodeMarker) ||
		errors.Is(err, word2ieee.ErrNestedCodeMarker) ||
		errors.Is(err, word2ieee.ErrEmptyInput) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, word2ieee.ErrReadInput) ||
		errors.Is(err, word2ieee.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, word2ieee.ErrMissingInputPath) ||
		errors.Is(err, word2ieee.ErrMissingOutputPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) {
		return ExitUsage
	}

	return ExitGeneral
}
