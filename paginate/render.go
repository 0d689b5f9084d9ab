package paginate

import (
	"fmt"

	"github.com/tsawler/typeset/estimate"
	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/render"
	"github.com/tsawler/typeset/watermark"
)

// bodyFont is the typeface for all document text.
const bodyFont = "Helvetica"

// tableLineWidth is the grid stroke width in points.
const tableLineWidth = 0.5

// gridColor strokes table borders in a muted gray.
var gridColor = render.Color{R: 120, G: 120, B: 120}

// Render draws the planned pages onto the surface. Each finished page is
// handed to the compositor before the next page opens. Elements that fail
// to render, such as undecodable images, degrade to placeholders; Render
// itself never fails.
func (e *Engine) Render(s render.Surface, elements []model.Element, plan Plan) {
	page := plan.Strategy.Page
	est := estimate.New(page)
	total := plan.PageCount()

	for n, span := range plan.Spans {
		s.AddPage()
		y := page.MarginTop
		info := watermark.PageInfo{Number: n + 1, TotalPages: total}

		for i := span.Start; i < span.End; i++ {
			el := elements[i]
			e.drawElement(s, est, page, el, y)
			y += el.EstimatedHeight() + plan.Strategy.ElementSpacing

			switch el.Kind() {
			case model.KindImage:
				info.HasImages = true
			case model.KindTable:
				info.HasTables = true
			}
			if t, ok := el.(model.TextElement); ok {
				info.TextLength += len([]rune(t.GetText()))
			}
		}

		if e.cfg.Compositor != nil {
			e.cfg.Compositor.Apply(s, info)
		}
	}
}

// drawElement dispatches on element kind. The vertical footprint is the
// element's estimated height; drawing stays within it except for the
// deliberate overflow of elements taller than a full page.
func (e *Engine) drawElement(s render.Surface, est *estimate.Estimator, page model.PageConfig, el model.Element, y float64) {
	switch v := el.(type) {
	case *model.Heading:
		e.drawHeading(s, est, page, v, y)
	case *model.Paragraph:
		e.drawTextBlock(s, page, v.Text, v.Style, page.FontSize, y)
	case *model.ListItem:
		e.drawListItem(s, page, v, y)
	case *model.Table:
		e.drawTable(s, page, v, y)
	case *model.Image:
		e.drawImage(s, page, v, y)
	case *model.Spacer:
		// Nothing to draw.
	}
}

func (e *Engine) drawHeading(s render.Surface, est *estimate.Estimator, page model.PageConfig, h *model.Heading, y float64) {
	size := est.HeadingFontSize(h.Level)
	style := render.TextStyle{
		Font:  bodyFont,
		Size:  size,
		Bold:  true,
		Color: render.Black,
	}

	// Leading above the heading, mirroring the height estimate.
	y += size * 0.4
	lineY := y + size
	for _, line := range estimate.WrapLines(h.Text, page.ContentWidth(), size) {
		s.DrawText(alignedX(page, line, size, h.Style.Alignment, 0), lineY, line, style)
		lineY += size * page.LineSpacing
	}
}

// drawTextBlock renders wrapped body text with optional bold and italic
// hints.
func (e *Engine) drawTextBlock(s render.Surface, page model.PageConfig, text string, hints model.StyleHints, size, y float64) {
	style := render.TextStyle{
		Font:   bodyFont,
		Size:   size,
		Bold:   hints.Bold,
		Italic: hints.Italic,
		Color:  render.Black,
	}

	lineY := y + size
	for _, line := range estimate.WrapLines(text, page.ContentWidth(), size) {
		s.DrawText(alignedX(page, line, size, hints.Alignment, 0), lineY, line, style)
		lineY += size * page.LineSpacing
	}
}

func (e *Engine) drawListItem(s render.Surface, page model.PageConfig, li *model.ListItem, y float64) {
	size := page.FontSize
	indent := page.MarginLeft + estimate.ListIndent*float64(li.Level)
	style := render.TextStyle{Font: bodyFont, Size: size, Color: render.Black}

	marker := li.Marker
	if marker == "" {
		marker = "•"
	}
	s.DrawText(indent, y+size, marker, style)

	textX := indent + estimate.MarkerWidth
	width := page.ContentWidth() - (textX - page.MarginLeft)
	lineY := y + size
	for _, line := range estimate.WrapLines(li.Text, width, size) {
		s.DrawText(textX, lineY, line, style)
		lineY += size * page.LineSpacing
	}
}

// drawTable strokes the grid and renders one line of text per cell,
// truncated to the resolved column width. Header rows are bold.
func (e *Engine) drawTable(s render.Surface, page model.PageConfig, t *model.Table, y float64) {
	if len(t.Rows) == 0 || len(t.ColWidths) == 0 {
		return
	}

	tableWidth := 0.0
	for _, w := range t.ColWidths {
		tableWidth += w
	}

	left := page.MarginLeft
	top := y
	rowY := top
	for _, row := range t.Rows {
		cellX := left
		for c, cell := range row.Cells {
			if c >= len(t.ColWidths) {
				break
			}
			w := t.ColWidths[c]
			style := render.TextStyle{
				Font:  bodyFont,
				Size:  page.FontSize,
				Bold:  row.IsHeader || cell.IsHeader,
				Color: render.Black,
			}
			s.DrawText(cellX+cellTextInset, rowY+page.FontSize+cellTextInset, truncateToWidth(cell.Text, w-2*cellTextInset, page.FontSize), style)
			cellX += w
		}
		rowY += row.Height

		// Horizontal rule under the row.
		s.DrawLine(left, rowY, left+tableWidth, rowY, gridColor, tableLineWidth)
	}

	bottom := rowY
	// Verticals, then the outer frame.
	x := left
	for _, w := range t.ColWidths {
		s.DrawLine(x, top, x, bottom, gridColor, tableLineWidth)
		x += w
	}
	s.DrawLine(x, top, x, bottom, gridColor, tableLineWidth)
	s.DrawRect(left, top, tableWidth, bottom-top, gridColor, tableLineWidth)
}

// cellTextInset pads cell text away from the grid lines.
const cellTextInset = 3.0

// truncateToWidth clips text to the characters that fit one cell line.
func truncateToWidth(text string, width, fontSize float64) string {
	runes := []rune(text)
	max := int(width / (fontSize * 0.5))
	if max < 1 {
		max = 1
	}
	if len(runes) <= max {
		return text
	}
	if max > 1 {
		return string(runes[:max-1]) + "…"
	}
	return string(runes[:max])
}

// drawImage embeds the image payload, falling back to a bracketed
// placeholder line when the payload cannot be decoded or embedded.
func (e *Engine) drawImage(s render.Surface, page model.PageConfig, img *model.Image, y float64) {
	x := page.MarginLeft
	switch img.Alignment {
	case model.AlignCenter:
		x = page.MarginLeft + (page.ContentWidth()-img.DisplayWidth)/2
	case model.AlignRight:
		x = page.MarginLeft + page.ContentWidth() - img.DisplayWidth
	}

	err := s.DrawImage(x, y, img.DisplayWidth, img.DisplayHeight, img.Payload, img.Name)
	if err == nil {
		return
	}

	placeholder := fmt.Sprintf("[image: %s]", img.Name)
	style := render.TextStyle{
		Font:   bodyFont,
		Size:   page.FontSize,
		Italic: true,
		Color:  render.Color{R: 100, G: 100, B: 100},
	}
	s.DrawText(page.MarginLeft, y+page.FontSize, placeholder, style)
}

// alignedX computes the left edge for one line of text given its
// alignment, with extraIndent applied on the left.
func alignedX(page model.PageConfig, line string, fontSize float64, align model.Alignment, extraIndent float64) float64 {
	width := estimate.ApproxTextWidth(line, fontSize)
	switch align {
	case model.AlignCenter:
		return page.MarginLeft + (page.ContentWidth()-width)/2
	case model.AlignRight:
		return page.Width - page.MarginRight - width
	default:
		return page.MarginLeft + extraIndent
	}
}
