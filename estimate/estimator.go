// Package estimate computes estimated rendered footprints for content
// elements: heights for text blocks, column widths and row heights for
// tables, and scaled display dimensions for images.
//
// Estimation is a pure function of (element, page configuration). Text
// heights come from a character-count heuristic: average glyph width is
// approximated as a fraction of the font size, giving characters per line
// for the available width, hence a line count and a height. There is no
// error path; degenerate input yields a minimum positive height.
package estimate

import (
	"math"
	"strings"

	"github.com/tsawler/typeset/model"
)

// Tuning constants for the character-count heuristic.
const (
	// glyphWidthRatio approximates average glyph width as a fraction of
	// font size.
	glyphWidthRatio = 0.5

	// listItemSpacing is the trailing space after a list item.
	listItemSpacing = 2.0
)

// List layout constants, shared with the rendering pass.
const (
	// ListIndent is the horizontal indent per list nesting level.
	ListIndent = 18.0

	// MarkerWidth reserves space for the bullet or number prefix.
	MarkerWidth = 14.0
)

// headingScales maps heading level to a font size multiplier.
var headingScales = [...]float64{1.8, 1.5, 1.3, 1.2, 1.15, 1.1}

// Estimator assigns estimated footprints using a fixed page configuration.
type Estimator struct {
	cfg model.PageConfig
}

// New creates an Estimator for the given page configuration.
func New(cfg model.PageConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// EstimateAll assigns estimated heights to every element in place.
func (e *Estimator) EstimateAll(elements []model.Element) {
	for _, el := range elements {
		el.SetEstimatedHeight(e.Estimate(el))
	}
}

// Estimate computes the rendered height of a single element in points. For
// tables and images it also resolves column widths, row heights and display
// dimensions as a side effect on the element.
func (e *Estimator) Estimate(el model.Element) float64 {
	switch v := el.(type) {
	case *model.Heading:
		return e.headingHeight(v)
	case *model.Paragraph:
		return e.paragraphHeight(v)
	case *model.ListItem:
		return e.listItemHeight(v)
	case *model.Table:
		return e.ResolveTableLayout(v)
	case *model.Image:
		return e.SizeImage(v)
	case *model.Spacer:
		if v.Height > 0 {
			return v.Height
		}
		return 0
	default:
		return e.lineHeight(e.cfg.FontSize)
	}
}

// lineHeight returns the height of one rendered line at the given size.
func (e *Estimator) lineHeight(fontSize float64) float64 {
	return fontSize * e.cfg.LineSpacing
}

// charsPerLine returns how many average glyphs fit into width at fontSize.
func charsPerLine(width, fontSize float64) int {
	if width <= 0 || fontSize <= 0 {
		return 1
	}
	n := int(width / (fontSize * glyphWidthRatio))
	if n < 1 {
		n = 1
	}
	return n
}

// WrappedLineCount counts rendered lines for text wrapped into width at
// fontSize. Hard line breaks are counted individually.
func WrappedLineCount(text string, width, fontSize float64) int {
	if strings.TrimSpace(text) == "" {
		return 1
	}

	lines := len(wrapLines(text, charsPerLine(width, fontSize)))
	if lines < 1 {
		lines = 1
	}
	return lines
}

// HeadingFontSize returns the font size for a heading level, scaled from
// the base body size.
func (e *Estimator) HeadingFontSize(level int) float64 {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(headingScales) {
		idx = len(headingScales) - 1
	}
	return e.cfg.FontSize * headingScales[idx]
}

// headingHeight gives headings extra leading above and below.
func (e *Estimator) headingHeight(h *model.Heading) float64 {
	size := e.HeadingFontSize(h.Level)
	lines := WrappedLineCount(h.Text, e.cfg.ContentWidth(), size)
	leading := size * 0.8
	return float64(lines)*e.lineHeight(size) + leading
}

// paragraphHeight adds trailing paragraph spacing.
func (e *Estimator) paragraphHeight(p *model.Paragraph) float64 {
	lines := WrappedLineCount(p.Text, e.cfg.ContentWidth(), e.cfg.FontSize)
	return float64(lines)*e.lineHeight(e.cfg.FontSize) + e.cfg.ParagraphSpacing
}

// listItemHeight accounts for the marker prefix and nesting indent.
func (e *Estimator) listItemHeight(li *model.ListItem) float64 {
	width := e.cfg.ContentWidth() - MarkerWidth - ListIndent*float64(li.Level)
	lines := WrappedLineCount(li.Text, width, e.cfg.FontSize)
	return float64(lines)*e.lineHeight(e.cfg.FontSize) + listItemSpacing
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
