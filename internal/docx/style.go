package docx

// Paragraph alignment values as written to w:jc.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignJustify Alignment = "both"
)

// BorderSpec describes a continuous paragraph border. Size is in
// eighths of a point (OOXML w:sz units), so a 1pt border is SizeEighths=8.
type BorderSpec struct {
	SizeEighths int
	SpacePt     int    // gap between border and text, in points
	Color       string // hex RGB or "auto"
}

// ShadingSpec describes a paragraph background fill.
type ShadingSpec struct {
	Fill string // hex RGB
}

// StyleRule is the fixed formatting definition applied to paragraphs of
// one Role. All measurements use native OOXML units: twentieths of a
// point ("twips") for indents, whole points for font size and spacing.
// Line spacing is single for every rule and is not configurable.
type StyleRule struct {
	FontFamily string
	SizePt     int
	Bold       bool
	Italic     bool
	Alignment  Alignment

	FirstLineTw int // positive first-line indent
	HangingTw   int // hanging indent (mutually exclusive with FirstLineTw)
	LeftTw      int
	RightTw     int

	SpaceBeforePt int
	SpaceAfterPt  int

	Border  *BorderSpec
	Shading *ShadingSpec
}

// StyleTable maps every final Role to its StyleRule. The table is a
// read-only policy object: it is built once, passed explicitly into the
// formatting pass, and safe to share across concurrent conversions.
type StyleTable struct {
	Version string
	Rules   map[Role]StyleRule
}

// StyleVersion identifies the publication contract implemented by
// DefaultStyleTable. Changing any constant below requires a new version.
const StyleVersion = "ieee-v1"

const (
	serifFont = "Times New Roman"
	monoFont  = "Courier New"
)

// Page geometry in twips.
const (
	MarginTopTw    = 1080 // 0.75"
	MarginBottomTw = 1440 // 1.0"
	MarginLeftTw   = 900  // 0.625"
	MarginRightTw  = 900  // 0.625"
	ColumnGapTw    = 360  // 0.25" between the two columns
)

// DefaultStyleTable returns the fixed IEEE style table. The returned
// value is fresh on every call so callers cannot corrupt shared state.
func DefaultStyleTable() StyleTable {
	return StyleTable{
		Version: StyleVersion,
		Rules: map[Role]StyleRule{
			RoleTitle: {
				FontFamily: serifFont, SizePt: 24, Bold: true,
				Alignment: AlignCenter, SpaceBeforePt: 12, SpaceAfterPt: 12,
			},
			RoleAuthorLine: {
				FontFamily: serifFont, SizePt: 10,
				Alignment: AlignCenter, SpaceAfterPt: 6,
			},
			RoleAbstractHeading: {
				FontFamily: serifFont, SizePt: 10, Bold: true, Italic: true,
				Alignment: AlignLeft, SpaceBeforePt: 12, SpaceAfterPt: 6,
			},
			RoleAbstractBody: {
				FontFamily: serifFont, SizePt: 10,
				Alignment: AlignJustify,
			},
			RoleSectionHeading: {
				FontFamily: serifFont, SizePt: 10, Bold: true,
				Alignment: AlignLeft, SpaceBeforePt: 12, SpaceAfterPt: 6,
			},
			RoleSubsectionHeading: {
				FontFamily: serifFont, SizePt: 10, Bold: true, Italic: true,
				Alignment: AlignLeft, SpaceBeforePt: 6, SpaceAfterPt: 3,
			},
			RoleBody: {
				FontFamily: serifFont, SizePt: 10,
				Alignment: AlignJustify, FirstLineTw: 360, // 0.25"
			},
			RoleFigureCaption: {
				FontFamily: serifFont, SizePt: 9, Italic: true,
				Alignment: AlignCenter, SpaceBeforePt: 6, SpaceAfterPt: 6,
			},
			RoleTableCaption: {
				FontFamily: serifFont, SizePt: 9, Italic: true,
				Alignment: AlignCenter, SpaceBeforePt: 6, SpaceAfterPt: 3,
			},
			RoleCodeCaption: {
				FontFamily: serifFont, SizePt: 9, Italic: true,
				Alignment: AlignCenter, SpaceBeforePt: 6, SpaceAfterPt: 6,
			},
			RoleReference: {
				FontFamily: serifFont, SizePt: 9,
				Alignment: AlignLeft, LeftTw: 360, HangingTw: 360,
			},
			RoleCode: {
				FontFamily: monoFont, SizePt: 9,
				Alignment: AlignLeft, LeftTw: 288, RightTw: 288, // 0.2"
				Border:  &BorderSpec{SizeEighths: 8, SpacePt: 4, Color: "auto"},
				Shading: &ShadingSpec{Fill: "F2F2F2"},
			},
		},
	}
}
