package word2ieee

import (
	"github.com/alnah/go-word2ieee/internal/docx"
)

// StyleVersion identifies the fixed IEEE style contract this engine
// implements. Any change to the style table or page margins is a new
// version.
const StyleVersion = docx.StyleVersion

// Input contains conversion parameters for a file-to-file conversion.
type Input struct {
	InputPath  string // source .docx (required, never modified)
	OutputPath string // destination .docx (required, written atomically)
	TwoColumn  bool   // switch the body section to two columns
}

// Validate checks that required fields are present.
func (in Input) Validate() error {
	if in.InputPath == "" {
		return ErrMissingInputPath
	}
	if in.OutputPath == "" {
		return ErrMissingOutputPath
	}
	return nil
}

// Result is the structured outcome of a conversion. On failure Success
// is false and Issues carries the granular detail; the error returned
// alongside it is the same information for errors.Is dispatch.
type Result struct {
	Success bool
	Message string
	Issues  []string
}

// ParagraphInfo describes one paragraph's classification, as reported
// by Inspect.
type ParagraphInfo struct {
	Index int
	Role  string
	Text  string
}
