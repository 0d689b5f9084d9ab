package model

// Standard page dimensions in points.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
	A4Width      = 595.28
	A4Height     = 841.89
)

// PageConfig holds the page geometry and base typography used for layout
// estimation and rendering. It is derived once per document and read-only
// during the page-break walk.
type PageConfig struct {
	Width  float64
	Height float64

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	FontSize         float64 // base body font size in points
	LineSpacing      float64 // multiplier applied to FontSize per line
	ParagraphSpacing float64 // trailing space after paragraphs in points
}

// DefaultPageConfig returns US Letter with one-inch margins and standard
// body typography.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Width:            LetterWidth,
		Height:           LetterHeight,
		MarginTop:        72,
		MarginBottom:     72,
		MarginLeft:       72,
		MarginRight:      72,
		FontSize:         11,
		LineSpacing:      1.2,
		ParagraphSpacing: 8,
	}
}

// ContentWidth returns the usable horizontal space inside the margins
func (c PageConfig) ContentWidth() float64 {
	return c.Width - c.MarginLeft - c.MarginRight
}

// ContentHeight returns the usable vertical space inside the margins
func (c PageConfig) ContentHeight() float64 {
	return c.Height - c.MarginTop - c.MarginBottom
}

// ContentBox returns the content area as a bounding box
func (c PageConfig) ContentBox() BBox {
	return NewBBox(c.MarginLeft, c.MarginTop, c.ContentWidth(), c.ContentHeight())
}

// PageBox returns the full page as a bounding box
func (c PageConfig) PageBox() BBox {
	return NewBBox(0, 0, c.Width, c.Height)
}
