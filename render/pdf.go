package render

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/typeset/model"
)

// PDF is the default Surface implementation, backed by gofpdf. One PDF
// instance produces one document; instances are scoped to a single
// pipeline call and never shared.
type PDF struct {
	doc    *gofpdf.Fpdf
	pages  int
	images int
}

// NewPDF creates a PDF surface with the given page geometry.
func NewPDF(cfg model.PageConfig) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: cfg.Width, Ht: cfg.Height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", cfg.FontSize)
	return &PDF{doc: doc}
}

// AddPage starts a new page.
func (p *PDF) AddPage() {
	p.doc.AddPage()
	p.pages++
}

// PageCount returns the number of pages started.
func (p *PDF) PageCount() int {
	return p.pages
}

// DrawText draws one text run, applying opacity and rotation around the
// anchor point.
func (p *PDF) DrawText(x, y float64, text string, style TextStyle) {
	family := style.Font
	if family == "" {
		family = "Helvetica"
	}
	fontStyle := ""
	if style.Bold {
		fontStyle += "B"
	}
	if style.Italic {
		fontStyle += "I"
	}
	size := style.Size
	if size <= 0 {
		size = 11
	}

	p.doc.SetFont(mapFontFamily(family), fontStyle, size)
	p.doc.SetTextColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))

	opacity := style.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	p.doc.SetAlpha(opacity, "Normal")

	if style.Rotation != 0 {
		p.doc.TransformBegin()
		p.doc.TransformRotate(style.Rotation, x, y)
		p.doc.Text(x, y, text)
		p.doc.TransformEnd()
	} else {
		p.doc.Text(x, y, text)
	}

	p.doc.SetAlpha(1, "Normal")
}

// DrawImage validates and embeds an image payload. Validation happens
// before the payload touches the document: gofpdf errors are sticky, so a
// bad payload must never reach it.
func (p *PDF) DrawImage(x, y, w, h float64, payload []byte, name string) error {
	if len(payload) == 0 {
		return fmt.Errorf("image %q: empty payload", name)
	}

	_, kind, err := image.DecodeConfig(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("image %q: %w", name, err)
	}

	var imageType string
	switch kind {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	case "gif":
		imageType = "GIF"
	default:
		return fmt.Errorf("image %q: unsupported format %s", name, kind)
	}

	p.images++
	ref := fmt.Sprintf("img%d", p.images)
	opts := gofpdf.ImageOptions{ImageType: imageType}
	p.doc.RegisterImageOptionsReader(ref, opts, bytes.NewReader(payload))
	if p.doc.Err() {
		return fmt.Errorf("image %q: %s", name, p.doc.Error())
	}

	p.doc.ImageOptions(ref, x, y, w, h, false, opts, 0, "")
	return nil
}

// DrawRect strokes a rectangle outline.
func (p *PDF) DrawRect(x, y, w, h float64, color Color, lineWidth float64) {
	p.doc.SetDrawColor(int(color.R), int(color.G), int(color.B))
	p.doc.SetLineWidth(lineWidth)
	p.doc.Rect(x, y, w, h, "D")
}

// DrawLine strokes a straight line.
func (p *PDF) DrawLine(x1, y1, x2, y2 float64, color Color, lineWidth float64) {
	p.doc.SetDrawColor(int(color.R), int(color.G), int(color.B))
	p.doc.SetLineWidth(lineWidth)
	p.doc.Line(x1, y1, x2, y2)
}

// Output finalizes the document and returns the PDF bytes.
func (p *PDF) Output() ([]byte, error) {
	if p.pages == 0 {
		return nil, ErrNoPages
	}

	var buf bytes.Buffer
	if err := p.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// mapFontFamily maps arbitrary configured families onto the base-14 fonts
// the surface embeds.
func mapFontFamily(family string) string {
	switch strings.ToLower(family) {
	case "times", "times new roman", "serif", "georgia":
		return "Times"
	case "courier", "courier new", "monospace", "consolas":
		return "Courier"
	default:
		return "Helvetica"
	}
}
