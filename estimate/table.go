package estimate

import "github.com/tsawler/typeset/model"

// Table layout constants.
const (
	// minColWidth floors column width allocation.
	minColWidth = 40.0

	// minRowHeight floors row heights.
	minRowHeight = 18.0

	// cellPadding is horizontal padding inside a cell, both sides.
	cellPadding = 4.0

	// tableSpacing is the trailing space after a table.
	tableSpacing = 10.0
)

// ResolveTableLayout allocates column widths proportionally to each
// column's longest cell content, floored at a minimum width and scaled
// down uniformly when the naive total exceeds the usable content width.
// Row heights are the maximum wrapped-line height across the row's cells.
// The resolved layout is written onto the table; the return value is the
// table's total height.
func (e *Estimator) ResolveTableLayout(t *model.Table) float64 {
	cols := t.ColumnCount()
	if cols == 0 {
		return minRowHeight
	}

	usable := e.cfg.ContentWidth()
	widths := make([]float64, cols)

	// Proportional allocation from longest content per column.
	total := 0.0
	for c := 0; c < cols; c++ {
		longest := t.LongestCell(c)
		w := float64(longest)*e.cfg.FontSize*glyphWidthRatio + 2*cellPadding
		if w < minColWidth {
			w = minColWidth
		}
		widths[c] = w
		total += w
	}

	// Uniform scale-down when the naive total overflows the content width,
	// preserving the configured floor where possible.
	if total > usable {
		scale := usable / total
		scaled := 0.0
		for c := range widths {
			widths[c] *= scale
			if widths[c] < minColWidth && usable >= minColWidth*float64(cols) {
				widths[c] = minColWidth
			}
			scaled += widths[c]
		}
		// A second uniform pass absorbs what the floors re-added.
		if scaled > usable {
			rescale := usable / scaled
			for c := range widths {
				widths[c] *= rescale
			}
		}
	}

	t.ColWidths = widths

	// Row heights from wrapped cell content.
	height := 0.0
	for i := range t.Rows {
		rowHeight := minRowHeight
		for j := range t.Rows[i].Cells {
			cell := &t.Rows[i].Cells[j]
			w := widths[min(j, cols-1)] - 2*cellPadding
			cell.EstimatedWidth = widths[min(j, cols-1)]

			lines := WrappedLineCount(cell.Text, w, e.cfg.FontSize)
			h := float64(lines)*e.lineHeight(e.cfg.FontSize) + 2*cellPadding
			if h > rowHeight {
				rowHeight = h
			}
		}
		t.Rows[i].Height = rowHeight
		height += rowHeight
	}

	return height + tableSpacing
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
