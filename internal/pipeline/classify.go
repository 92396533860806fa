// Package pipeline implements the five in-memory transformation passes
// that turn an arbitrary paper into IEEE form: classification,
// code-block segmentation, style application, line-break normalization,
// and page layout. Passes run strictly in that order on one Document
// and share no state between conversions.
package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-word2ieee/internal/docx"
)

// Code block delimiters. Each must occupy a whole paragraph; matching is
// case-insensitive after trimming surrounding whitespace.
const (
	CodeBlockStart = "<code block start>"
	CodeBlockEnd   = "<code block end>"
)

// Classification phases. The document is read top to bottom; each phase
// narrows which roles are reachable.
type phase int

const (
	phaseBeforeTitle phase = iota
	phaseInAuthorBlock
	phaseInAbstract
	phaseInBody
)

// Precompiled classification patterns. Only a leading match counts: a
// Body sentence mentioning "Table" mid-sentence is never reclassified.
var (
	// Section headings: Roman numeral I through X, or a digit run,
	// followed by a period ("I. INTRODUCTION", "2. Results").
	sectionHeadingPat = regexp.MustCompile(`^(?:I{1,3}|IV|V|VI{1,3}|IX|X|\d+)\.`)

	// Subsection headings: a single capital letter and a period
	// ("A. Motivation").
	subsectionHeadingPat = regexp.MustCompile(`^[A-Z]\.`)

	// References: "[1] J. Smith, ..."
	referencePat = regexp.MustCompile(`^\[\d+\]`)

	// Author block nuances.
	emailPat    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	locationPat = regexp.MustCompile(`^[A-Za-z .'-]+(?:,\s*[A-Za-z .'-]+)+$`)
)

// Classify assigns exactly one Role to every paragraph. It never fails:
// anything unrecognized degrades to Body. Rule order within each phase
// is authoritative, first match wins.
func Classify(doc *docx.Document) {
	ph := phaseBeforeTitle
	for _, p := range doc.Paragraphs() {
		text := strings.TrimSpace(p.Text())
		norm := strings.ToLower(text)

		if norm == CodeBlockStart || norm == CodeBlockEnd {
			p.Role = docx.RoleMarker
			continue
		}
		if text == "" {
			p.Role = docx.RoleBody
			continue
		}

		switch ph {
		case phaseBeforeTitle:
			if strings.HasPrefix(norm, "abstract") {
				p.Role = docx.RoleAbstractHeading
				ph = phaseInAbstract
			} else {
				p.Role = docx.RoleTitle
				ph = phaseInAuthorBlock
			}
		case phaseInAuthorBlock:
			if strings.HasPrefix(norm, "abstract") {
				p.Role = docx.RoleAbstractHeading
				ph = phaseInAbstract
			} else {
				p.Role = docx.RoleAuthorLine
				p.AuthorKind = classifyAuthorLine(text)
			}
		case phaseInAbstract:
			if sectionHeadingPat.MatchString(text) {
				p.Role = docx.RoleSectionHeading
				ph = phaseInBody
			} else {
				p.Role = docx.RoleAbstractBody
			}
		case phaseInBody:
			p.Role = classifyBody(text, norm)
		}
	}
}

// classifyBody applies the in-body rule cascade.
func classifyBody(text, norm string) docx.Role {
	switch {
	case sectionHeadingPat.MatchString(text):
		return docx.RoleSectionHeading
	case subsectionHeadingPat.MatchString(text):
		return docx.RoleSubsectionHeading
	case strings.HasPrefix(norm, "figure") || strings.HasPrefix(norm, "fig."):
		return docx.RoleFigureCaption
	case strings.HasPrefix(norm, "table"):
		return docx.RoleTableCaption
	case strings.HasPrefix(norm, "code block") || strings.HasPrefix(norm, "listing"):
		return docx.RoleCodeCaption
	case referencePat.MatchString(text):
		return docx.RoleReference
	default:
		return docx.RoleBody
	}
}

func classifyAuthorLine(text string) docx.AuthorKind {
	switch {
	case emailPat.MatchString(text):
		return docx.AuthorEmail
	case locationPat.MatchString(text):
		return docx.AuthorLocation
	default:
		return docx.AuthorGeneric
	}
}
