package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/typeset/format"
	"github.com/tsawler/typeset/model"
)

// MinTextLength is the minimum total extracted text length below which the
// source is considered corrupt or empty.
const MinTextLength = 20

// emusPerPoint converts EMU drawing extents to points (914400 EMU per inch,
// 72 points per inch).
const emusPerPoint = 12700

// ExtractionError indicates that the markup yielded too little text to
// build a content model. It is the only error the builder raises.
type ExtractionError struct {
	Length int
	Min    int
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracted text too short: %d characters (minimum %d)", e.Length, e.Min)
}

// Config holds builder configuration. Media and Relationships come from the
// external markup extractor alongside the markup buffer; the builder never
// reads files itself.
type Config struct {
	// Relationships maps relationship IDs (rId…) to media target names.
	Relationships map[string]string

	// Media maps media target names to raw image payloads.
	Media map[string][]byte

	// MinTextLength overrides the extraction threshold; zero means
	// MinTextLength.
	MinTextLength int
}

// DefaultConfig returns a configuration with default thresholds and no
// media.
func DefaultConfig() Config {
	return Config{MinTextLength: MinTextLength}
}

// Builder recognizes block-level constructs in markup and emits an ordered
// sequence of typed content elements.
type Builder struct {
	cfg Config
}

// NewBuilder creates a Builder with the given configuration.
func NewBuilder(cfg Config) *Builder {
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = MinTextLength
	}
	return &Builder{cfg: cfg}
}

// Build parses a markup buffer into an ordered element sequence. The parse
// walks the markup tree in document order, so element order always matches
// ascending source offsets and no construct is ever claimed twice. If no
// structured elements are recognized, plain-text extraction split on blank
// lines guarantees non-empty output for any non-trivial input.
func (b *Builder) Build(data []byte) ([]model.Element, error) {
	var elements []model.Element

	switch format.Detect(data) {
	case format.WordML:
		elements = b.parseWordML(data)
	case format.HTML:
		elements = b.parseHTML(data)
	}

	if len(elements) == 0 {
		elements = b.fallbackText(data)
	}

	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].SourceOffset() < elements[j].SourceOffset()
	})

	if total := totalTextLength(elements); total < b.cfg.MinTextLength {
		return nil, &ExtractionError{Length: total, Min: b.cfg.MinTextLength}
	}

	return elements, nil
}

// parseWordML walks WordprocessingML tokens in document order. Body-level
// paragraphs and tables are decoded as whole subtrees, so a paragraph
// inside a table is consumed by the table and never re-claimed as a
// body-level element.
func (b *Builder) parseWordML(data []byte) []model.Element {
	d := xml.NewDecoder(bytes.NewReader(data))
	var elements []model.Element

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed markup past this point; keep what was recognized.
			break
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		offset := int(d.InputOffset())

		switch se.Name.Local {
		case "p":
			var p paragraphXML
			if err := d.DecodeElement(&p, &se); err != nil {
				continue
			}
			elements = append(elements, b.convertParagraph(p, offset)...)
		case "tbl":
			var t tableXML
			if err := d.DecodeElement(&t, &se); err != nil {
				continue
			}
			if tbl := b.convertTable(t, offset); tbl != nil {
				elements = append(elements, tbl)
			}
		}
	}

	return elements
}

// convertParagraph classifies a paragraph as heading, list item or body
// text, and extracts embedded images and forced page breaks as separate
// elements.
func (b *Builder) convertParagraph(p paragraphXML, offset int) []model.Element {
	var elements []model.Element

	runs := make([]runXML, 0, len(p.Runs)+4)
	runs = append(runs, p.Runs...)
	for _, h := range p.Hyperlinks {
		runs = append(runs, h.Runs...)
	}

	text, pageBreak := runText(runs)
	text = norm.NFC.String(strings.TrimSpace(text))

	hints := model.StyleHints{
		Bold:      allRunsBold(runs),
		Italic:    allRunsItalic(runs),
		Alignment: parseAlignment(p.Properties.Justification.Val),
	}

	if text != "" {
		if level := detectHeading(p.Properties); level > 0 {
			elements = append(elements, &model.Heading{
				Text:   text,
				Level:  level,
				Style:  hints,
				Offset: offset,
			})
		} else if isListParagraph(p.Properties) {
			ordered := isOrderedList(p.Properties)
			elements = append(elements, &model.ListItem{
				Text:    text,
				Level:   listLevel(p.Properties),
				Ordered: ordered,
				Marker:  listMarker(ordered),
				Style:   hints,
				Offset:  offset,
			})
		} else {
			elements = append(elements, &model.Paragraph{
				Text:   text,
				Style:  hints,
				Offset: offset,
			})
		}
	}

	next := offset + 1
	for _, r := range runs {
		for _, dr := range r.Drawings {
			if img := b.imageFromDrawing(dr, next); img != nil {
				elements = append(elements, img)
				next++
			}
		}
	}

	if pageBreak {
		elements = append(elements, &model.Spacer{ForcePageBreak: true, Offset: next})
	}

	return elements
}

// runText assembles run text, translating tabs and line breaks, and reports
// whether a forced page break was present.
func runText(runs []runXML) (string, bool) {
	var sb strings.Builder
	pageBreak := false

	for _, r := range runs {
		for _, br := range r.Breaks {
			if br.Type == "page" {
				pageBreak = true
			} else {
				sb.WriteString("\n")
			}
		}
		for range r.Tabs {
			sb.WriteString("\t")
		}
		for _, t := range r.Text {
			sb.WriteString(t.Value)
		}
	}

	return sb.String(), pageBreak
}

// allRunsBold reports whether every non-empty run is bold.
func allRunsBold(runs []runXML) bool {
	seen := false
	for _, r := range runs {
		if !hasText(r) {
			continue
		}
		seen = true
		if !r.Properties.Bold.enabled() {
			return false
		}
	}
	return seen
}

// allRunsItalic reports whether every non-empty run is italic.
func allRunsItalic(runs []runXML) bool {
	seen := false
	for _, r := range runs {
		if !hasText(r) {
			continue
		}
		seen = true
		if !r.Properties.Italic.enabled() {
			return false
		}
	}
	return seen
}

func hasText(r runXML) bool {
	for _, t := range r.Text {
		if strings.TrimSpace(t.Value) != "" {
			return true
		}
	}
	return false
}

// listMarker returns the rendered marker prefix for a list item.
func listMarker(ordered bool) string {
	if ordered {
		return "1."
	}
	return "•"
}

// imageFromDrawing resolves a drawing to an Image element. An unresolved
// payload still yields an element; the renderer substitutes a placeholder
// line for it.
func (b *Builder) imageFromDrawing(d drawingXML, offset int) *model.Image {
	content := d.Inline
	if content.Graphic.Data.Pic.BlipFill.Blip.Embed == "" {
		content = d.Anchor
	}

	embed := content.Graphic.Data.Pic.BlipFill.Blip.Embed
	if embed == "" && content.Extent.CX == 0 {
		return nil
	}

	img := &model.Image{
		Name:   content.DocPr.Name,
		Offset: offset,
	}

	if content.Extent.CX > 0 && content.Extent.CY > 0 {
		img.OriginalWidth = float64(content.Extent.CX) / emusPerPoint
		img.OriginalHeight = float64(content.Extent.CY) / emusPerPoint
		img.AspectRatio = img.OriginalWidth / img.OriginalHeight
	}

	if embed != "" {
		target := b.cfg.Relationships[embed]
		if target != "" {
			if img.Name == "" {
				img.Name = target
			}
			img.Payload = b.cfg.Media[target]
			img.MIMEType = mimeFromName(target)
		}
	}

	return img
}

// mimeFromName guesses a MIME type from a media target name.
func mimeFromName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// convertTable builds a table element. Tables with zero parsed rows are
// dropped by returning nil. Nested tables inside cells are flattened to
// plain text.
func (b *Builder) convertTable(t tableXML, offset int) *model.Table {
	if len(t.Rows) == 0 {
		return nil
	}

	tbl := &model.Table{Offset: offset}

	for i, row := range t.Rows {
		r := model.Row{
			IsHeader: row.Properties.Header != nil,
		}

		for _, cell := range row.Cells {
			c := model.Cell{
				Text:      norm.NFC.String(cellText(cell)),
				IsHeader:  r.IsHeader,
				Alignment: cellAlignment(cell),
			}
			r.Cells = append(r.Cells, c)
		}

		// A first row of entirely bold cells is treated as a header row.
		if i == 0 && !r.IsHeader && allCellsBold(row) {
			r.IsHeader = true
			for j := range r.Cells {
				r.Cells[j].IsHeader = true
			}
		}

		tbl.Rows = append(tbl.Rows, r)
	}

	return tbl
}

// cellText joins the cell's paragraphs, flattening any nested tables.
func cellText(cell tableCellXML) string {
	var parts []string

	for _, p := range cell.Paragraphs {
		runs := append([]runXML{}, p.Runs...)
		for _, h := range p.Hyperlinks {
			runs = append(runs, h.Runs...)
		}
		text, _ := runText(runs)
		text = strings.TrimSpace(text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	for _, nested := range cell.Tables {
		for _, row := range nested.Rows {
			var rowParts []string
			for _, c := range row.Cells {
				if t := cellText(c); t != "" {
					rowParts = append(rowParts, t)
				}
			}
			if len(rowParts) > 0 {
				parts = append(parts, strings.Join(rowParts, " "))
			}
		}
	}

	return strings.Join(parts, "\n")
}

// cellAlignment uses the first aligned paragraph in the cell.
func cellAlignment(cell tableCellXML) model.Alignment {
	for _, p := range cell.Paragraphs {
		if p.Properties.Justification.Val != "" {
			return parseAlignment(p.Properties.Justification.Val)
		}
	}
	return model.AlignLeft
}

// allCellsBold reports whether every cell with text is entirely bold.
func allCellsBold(row tableRowXML) bool {
	seen := false
	for _, cell := range row.Cells {
		for _, p := range cell.Paragraphs {
			if !hasRunText(p.Runs) {
				continue
			}
			seen = true
			if !allRunsBold(p.Runs) {
				return false
			}
		}
	}
	return seen
}

func hasRunText(runs []runXML) bool {
	for _, r := range runs {
		if hasText(r) {
			return true
		}
	}
	return false
}

// fallbackText degrades to plain-text extraction split on blank lines.
func (b *Builder) fallbackText(data []byte) []model.Element {
	text := stripTags(string(data))
	text = norm.NFC.String(text)

	var elements []model.Element
	offset := 0

	for _, block := range splitBlankLines(text) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		elements = append(elements, &model.Paragraph{
			Text:   strings.Join(strings.Fields(block), " "),
			Offset: offset,
		})
		offset += len(block) + 1
	}

	return elements
}

// stripTags removes anything that looks like markup tags and unescapes the
// basic XML entities.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	inTag := false

	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}

	return strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&#160;", " ",
	).Replace(sb.String())
}

// splitBlankLines splits text into blocks separated by one or more blank
// lines.
func splitBlankLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			current = append(current, line)
		}
	}
	flush()

	return blocks
}

// totalTextLength sums extracted text lengths over all text-bearing
// elements.
func totalTextLength(elements []model.Element) int {
	total := 0
	for _, el := range elements {
		if te, ok := el.(model.TextElement); ok {
			total += len(te.GetText())
		}
	}
	return total
}
