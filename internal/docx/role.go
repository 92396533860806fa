package docx

// Role is the structural classification assigned to a paragraph.
// Every paragraph carries exactly one final Role before formatting runs.
type Role int

const (
	RoleUnassigned Role = iota
	RoleTitle
	RoleAuthorLine
	RoleAbstractHeading
	RoleAbstractBody
	RoleSectionHeading
	RoleSubsectionHeading
	RoleBody
	RoleFigureCaption
	RoleTableCaption
	RoleCodeCaption
	RoleReference
	RoleCode
	// RoleMarker tags code-block delimiter paragraphs. Marker paragraphs
	// are removed during segmentation and never reach the output.
	RoleMarker
)

var roleNames = map[Role]string{
	RoleUnassigned:        "unassigned",
	RoleTitle:             "title",
	RoleAuthorLine:        "author",
	RoleAbstractHeading:   "abstract-heading",
	RoleAbstractBody:      "abstract",
	RoleSectionHeading:    "section",
	RoleSubsectionHeading: "subsection",
	RoleBody:              "body",
	RoleFigureCaption:     "figure-caption",
	RoleTableCaption:      "table-caption",
	RoleCodeCaption:       "code-caption",
	RoleReference:         "reference",
	RoleCode:              "code",
	RoleMarker:            "marker",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// AuthorKind is a presentation nuance within RoleAuthorLine. It only
// tweaks italics on the applied style; it is not a distinct Role.
type AuthorKind int

const (
	AuthorGeneric AuthorKind = iota
	AuthorEmail
	AuthorLocation
)
