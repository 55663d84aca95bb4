// Package pdf flows layout blocks onto letter pages and writes the final PDF
// artifact. Pagination is automatic; output is deterministic for identical
// input, and the file appears at the destination atomically or not at all.
package pdf

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/resume-optimizer/internal/layout"
	"github.com/jonathan/resume-optimizer/internal/styles"
)

const ruleWidth = 1

// Fixed creation date so rendering the same record twice produces
// byte-identical documents.
var creationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render flows blocks top to bottom under the given geometry and writes the
// document to outputPath via a temp file and rename. On failure the temp file
// is removed and nothing readable is left at outputPath.
func Render(blocks []layout.Block, geo styles.Geometry, outputPath string) error {
	doc, err := build(blocks, geo)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".resume-*.pdf")
	if err != nil {
		return &RenderError{Message: "failed to create temp output file", Cause: err}
	}
	tmpName := tmp.Name()

	if err := doc.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &RenderError{Message: "failed to write document", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &RenderError{Message: "failed to close temp output file", Cause: err}
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		os.Remove(tmpName)
		return &RenderError{Message: "failed to move document into place", Cause: err}
	}
	return nil
}

// RenderTo flows blocks and writes the document to w. Used by tests and
// callers that manage the destination themselves.
func RenderTo(blocks []layout.Block, geo styles.Geometry, w io.Writer) error {
	doc, err := build(blocks, geo)
	if err != nil {
		return err
	}
	if err := doc.Output(w); err != nil {
		return &RenderError{Message: "failed to write document", Cause: err}
	}
	return nil
}

// document tracks the page state for one render call. Each call owns its own
// instance; nothing is shared across calls.
type document struct {
	f   *gofpdf.Fpdf
	tr  func(string) string
	geo styles.Geometry
}

func build(blocks []layout.Block, geo styles.Geometry) (*gofpdf.Fpdf, error) {
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geo.PageWidth, Ht: geo.PageHeight},
	})
	f.SetMargins(geo.MarginLeft, geo.MarginTop, geo.MarginRight)
	f.SetAutoPageBreak(true, geo.MarginBottom)
	f.SetCreationDate(creationDate)
	f.AddPage()

	d := &document{f: f, tr: f.UnicodeTranslatorFromDescriptor(""), geo: geo}

	for _, block := range blocks {
		if err := d.draw(block); err != nil {
			return nil, err
		}
	}

	if f.Err() {
		return nil, &RenderError{Message: "document build failed", Cause: f.Error()}
	}
	return f, nil
}

func (d *document) draw(block layout.Block) error {
	switch block.Kind {
	case layout.KindParagraph:
		return d.drawParagraph(block)
	case layout.KindTwoColumn:
		return d.drawTwoColumn(block)
	case layout.KindRule:
		d.drawRule(block.Height)
		return nil
	case layout.KindSpacer:
		d.f.SetY(d.f.GetY() + block.Height)
		return nil
	default:
		return &RenderError{Message: "unknown block kind"}
	}
}

// drawParagraph renders a full-width paragraph with its style's vertical
// spacing applied.
func (d *document) drawParagraph(block layout.Block) error {
	st := styles.Lookup(block.Style)
	if st.SpaceBefore > 0 {
		d.f.SetY(d.f.GetY() + st.SpaceBefore)
	}
	if err := d.drawCell(block, d.geo.MarginLeft, d.geo.ContentWidth()); err != nil {
		return err
	}
	d.f.SetY(d.f.GetY() + st.SpaceAfter)
	return nil
}

// drawTwoColumn renders a left and right cell on the same baseline. The cells
// partition the content width at LeftRatio; the row advances by the taller
// cell plus the larger of the two space-after values.
func (d *document) drawTwoColumn(block layout.Block) error {
	leftStyle := styles.Lookup(block.Left.Style)
	rightStyle := styles.Lookup(block.Right.Style)

	leftWidth := d.geo.ContentWidth() * block.LeftRatio
	rightWidth := d.geo.ContentWidth() - leftWidth

	d.breakIfNeeded(block.Left.Text, leftWidth, leftStyle)

	top := d.f.GetY()
	if err := d.drawCell(*block.Left, d.geo.MarginLeft, leftWidth); err != nil {
		return err
	}
	bottomLeft := d.f.GetY()

	d.f.SetXY(d.geo.MarginLeft+leftWidth, top)
	if err := d.drawCell(*block.Right, d.geo.MarginLeft+leftWidth, rightWidth); err != nil {
		return err
	}
	bottomRight := d.f.GetY()

	d.f.SetY(math.Max(bottomLeft, bottomRight) + math.Max(leftStyle.SpaceAfter, rightStyle.SpaceAfter))
	return nil
}

// drawCell renders one paragraph into a fixed-width cell at x without applying
// the style's space-before/after (rows manage that themselves).
func (d *document) drawCell(block layout.Block, x, width float64) error {
	st := styles.Lookup(block.Style)
	spans, err := parseMarkup(block.Text)
	if err != nil {
		return &RenderError{Message: "malformed paragraph content", Cause: err}
	}

	d.f.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	d.f.SetX(x)

	if len(spans) == 1 {
		sp := spans[0]
		d.setFont(st, sp.bold)
		if st.Align == styles.AlignRight {
			d.f.CellFormat(width, st.Leading, d.tr(sp.text), "", 1, "R", false, 0, sp.link)
		} else {
			d.f.MultiCell(width, st.Leading, d.tr(sp.text), "", string(st.Align), false)
		}
		return nil
	}

	// Mixed formatting flows span by span with automatic wrapping.
	for _, sp := range spans {
		d.setFont(st, sp.bold)
		if sp.link != "" {
			d.f.WriteLinkString(st.Leading, d.tr(sp.text), sp.link)
		} else {
			d.f.Write(st.Leading, d.tr(sp.text))
		}
	}
	d.f.Ln(st.Leading)
	return nil
}

func (d *document) drawRule(spaceAfter float64) {
	y := d.f.GetY()
	d.f.SetDrawColor(styles.Black.R, styles.Black.G, styles.Black.B)
	d.f.SetLineWidth(ruleWidth)
	d.f.Line(d.geo.MarginLeft, y, d.geo.PageWidth-d.geo.MarginRight, y)
	d.f.SetY(y + spaceAfter)
}

// breakIfNeeded starts a new page when a two-column row would straddle the
// bottom margin. Auto page break cannot split a row without separating its
// cells.
func (d *document) breakIfNeeded(leftText string, leftWidth float64, st styles.Style) {
	plain := leftText
	if spans, err := parseMarkup(leftText); err == nil {
		plain = ""
		for _, sp := range spans {
			plain += sp.text
		}
	}
	d.setFont(st, false)
	lines := d.f.SplitText(d.tr(plain), leftWidth)
	height := math.Max(float64(len(lines)), 1) * st.Leading
	if d.f.GetY()+height > d.geo.PageHeight-d.geo.MarginBottom {
		d.f.AddPage()
	}
}

func (d *document) setFont(st styles.Style, boldSpan bool) {
	family := "Times"
	if !st.Serif {
		family = "Helvetica"
	}
	fontStyle := ""
	if st.Bold || boldSpan {
		fontStyle = "B"
	}
	d.f.SetFont(family, fontStyle, st.Size)
}
