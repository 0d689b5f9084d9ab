package model

import "strings"

// Cell represents a single table cell
type Cell struct {
	Text           string
	IsHeader       bool
	Alignment      Alignment
	EstimatedWidth float64 // resolved column width share in points
}

// Row represents a table row
type Row struct {
	Cells    []Cell
	IsHeader bool
	Height   float64 // resolved row height in points
}

// Table represents a table with cells organized in rows. Nested tables are
// not supported; their content is flattened to plain text during parsing.
type Table struct {
	Rows      []Row
	ColWidths []float64 // resolved column widths in points
	Style     StyleHints
	Offset    int
	Height    float64
}

func (t *Table) Kind() ElementKind            { return KindTable }
func (t *Table) SourceOffset() int            { return t.Offset }
func (t *Table) EstimatedHeight() float64     { return t.Height }
func (t *Table) SetEstimatedHeight(v float64) { t.Height = v }

// GetText returns a tab-separated plain text representation
func (t *Table) GetText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		}
	}
	return sb.String()
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the maximum cell count across all rows
func (t *Table) ColumnCount() int {
	count := 0
	for _, row := range t.Rows {
		if len(row.Cells) > count {
			count = len(row.Cells)
		}
	}
	return count
}

// LongestCell returns the longest cell text length in the given column
func (t *Table) LongestCell(col int) int {
	longest := 0
	for _, row := range t.Rows {
		if col < len(row.Cells) {
			if n := len(row.Cells[col].Text); n > longest {
				longest = n
			}
		}
	}
	return longest
}
