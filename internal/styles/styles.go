// Package styles defines the fixed typographic styles and page geometry used by
// the resume renderer. The registry is constant data shared safely across
// concurrent render calls.
package styles

// Alignment selects horizontal text alignment within a paragraph.
type Alignment string

// Paragraph alignments.
const (
	AlignLeft      Alignment = "L"
	AlignRight     Alignment = "R"
	AlignJustified Alignment = "J"
)

// RGB is a text color in 0-255 components.
type RGB struct {
	R, G, B int
}

// Colors used by the template.
var (
	Black    = RGB{0, 0, 0}
	LinkBlue = RGB{0x00, 0x00, 0xEE}
)

// Style is an immutable typographic style definition. Sizes and spacing are in
// points.
type Style struct {
	Serif       bool
	Bold        bool
	Size        float64
	Align       Alignment
	Color       RGB
	Leading     float64
	SpaceBefore float64
	SpaceAfter  float64
}

// Style names required by the section renderers.
const (
	Name           = "Name"
	Contact        = "Contact"
	ContactRight   = "ContactRight"
	SectionHeading = "SectionHeading"
	JobTitle       = "JobTitle"
	Date           = "Date"
	Company        = "Company"
	Bullet         = "Bullet"
	SkillCategory  = "SkillCategory"
)

// Registry maps style names to their specs. The table reproduces the template's
// exact typography: Times serif throughout, 14pt bold name, 10.5pt body.
var Registry = map[string]Style{
	Name:           {Serif: true, Bold: true, Size: 14, Align: AlignLeft, Color: Black, Leading: 16, SpaceAfter: 2},
	Contact:        {Serif: true, Size: 10.5, Align: AlignLeft, Color: Black, Leading: 13, SpaceAfter: 2},
	ContactRight:   {Serif: true, Size: 10.5, Align: AlignRight, Color: LinkBlue, Leading: 13, SpaceAfter: 2},
	SectionHeading: {Serif: true, Bold: true, Size: 10.5, Align: AlignLeft, Color: Black, Leading: 13, SpaceBefore: 10, SpaceAfter: 8},
	JobTitle:       {Serif: true, Bold: true, Size: 10.5, Align: AlignLeft, Color: Black, Leading: 13, SpaceAfter: 2},
	Date:           {Serif: true, Bold: true, Size: 10.5, Align: AlignRight, Color: Black, Leading: 13, SpaceAfter: 2},
	Company:        {Serif: true, Size: 10.5, Align: AlignLeft, Color: Black, Leading: 13, SpaceAfter: 4},
	Bullet:         {Serif: true, Size: 10.5, Align: AlignJustified, Color: Black, Leading: 14, SpaceAfter: 4},
	SkillCategory:  {Serif: true, Size: 10.5, Align: AlignLeft, Color: Black, Leading: 14, SpaceAfter: 4},
}

// Lookup returns the named style, falling back to the body style so an unknown
// name can never fault a render.
func Lookup(name string) Style {
	if s, ok := Registry[name]; ok {
		return s
	}
	return Registry[Contact]
}

// Geometry describes the physical page: standard letter with 0.5in top/bottom
// and 0.7in left/right margins, in points.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// Letter is the fixed page geometry for the resume template.
var Letter = Geometry{
	PageWidth:    612,
	PageHeight:   792,
	MarginTop:    36,
	MarginBottom: 36,
	MarginLeft:   50.4,
	MarginRight:  50.4,
}

// ContentWidth is the usable width between the side margins. Two-column rows
// partition exactly this width.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}
