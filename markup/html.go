package markup

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/typeset/model"
)

// parseHTML builds elements from an HTML buffer. HTML nodes carry no byte
// offsets, so elements receive sequential synthetic offsets in tree order,
// which is document order.
func (b *Builder) parseHTML(data []byte) []model.Element {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	w := &htmlWalker{builder: b}
	w.walk(doc)
	return w.elements
}

type htmlWalker struct {
	builder  *Builder
	elements []model.Element
	offset   int
}

func (w *htmlWalker) nextOffset() int {
	w.offset++
	return w.offset
}

// walk descends the tree, emitting elements for recognized block
// constructs. Recognized subtrees are fully consumed, so their inline
// content is never re-claimed by an enclosing pass.
func (w *htmlWalker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			if text := nodeText(n); text != "" {
				w.elements = append(w.elements, &model.Heading{
					Text:   text,
					Level:  level,
					Style:  model.StyleHints{Bold: true, Alignment: attrAlignment(n)},
					Offset: w.nextOffset(),
				})
			}
			return
		case "p":
			if text := nodeText(n); text != "" {
				w.elements = append(w.elements, &model.Paragraph{
					Text:   text,
					Style:  model.StyleHints{Alignment: attrAlignment(n)},
					Offset: w.nextOffset(),
				})
			}
			w.walkImages(n)
			return
		case "ul", "ol":
			w.walkList(n, 0, n.Data == "ol")
			return
		case "table":
			if tbl := w.convertHTMLTable(n); tbl != nil {
				w.elements = append(w.elements, tbl)
			}
			return
		case "img":
			if img := w.convertHTMLImage(n); img != nil {
				w.elements = append(w.elements, img)
			}
			return
		case "hr":
			w.elements = append(w.elements, &model.Spacer{Offset: w.nextOffset(), Height: 12})
			return
		case "script", "style", "head":
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// walkImages emits images nested inside an already-consumed block.
func (w *htmlWalker) walkImages(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "img" {
			if img := w.convertHTMLImage(c); img != nil {
				w.elements = append(w.elements, img)
			}
			continue
		}
		w.walkImages(c)
	}
}

// walkList emits one ListItem per li, recursing into nested lists with an
// increased indentation level.
func (w *htmlWalker) walkList(n *html.Node, level int, ordered bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}

		if text := directText(c); text != "" {
			w.elements = append(w.elements, &model.ListItem{
				Text:    text,
				Level:   level,
				Ordered: ordered,
				Marker:  listMarker(ordered),
				Offset:  w.nextOffset(),
			})
		}

		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			if gc.Type == html.ElementNode && (gc.Data == "ul" || gc.Data == "ol") {
				w.walkList(gc, level+1, gc.Data == "ol")
			}
		}
	}
}

// convertHTMLTable flattens thead/tbody structure into ordered rows. Nested
// tables inside cells are flattened to text via nodeText.
func (w *htmlWalker) convertHTMLTable(n *html.Node) *model.Table {
	tbl := &model.Table{Offset: w.nextOffset()}

	var walkRows func(*html.Node)
	walkRows = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "tr":
				row := model.Row{}
				for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type != html.ElementNode {
						continue
					}
					if cell.Data == "th" || cell.Data == "td" {
						row.Cells = append(row.Cells, model.Cell{
							Text:      nodeText(cell),
							IsHeader:  cell.Data == "th",
							Alignment: attrAlignment(cell),
						})
						if cell.Data == "th" {
							row.IsHeader = true
						}
					}
				}
				if len(row.Cells) > 0 {
					tbl.Rows = append(tbl.Rows, row)
				}
			case "thead", "tbody", "tfoot":
				walkRows(c)
			}
		}
	}
	walkRows(n)

	if len(tbl.Rows) == 0 {
		return nil
	}
	return tbl
}

// convertHTMLImage resolves an img element against the configured media map.
func (w *htmlWalker) convertHTMLImage(n *html.Node) *model.Image {
	src := attrValue(n, "src")
	if src == "" {
		return nil
	}

	img := &model.Image{
		Name:   src,
		Offset: w.nextOffset(),
	}

	if width := attrValue(n, "width"); width != "" {
		if v, err := strconv.ParseFloat(width, 64); err == nil {
			img.OriginalWidth = v
		}
	}
	if height := attrValue(n, "height"); height != "" {
		if v, err := strconv.ParseFloat(height, 64); err == nil {
			img.OriginalHeight = v
		}
	}
	if img.OriginalWidth > 0 && img.OriginalHeight > 0 {
		img.AspectRatio = img.OriginalWidth / img.OriginalHeight
	}

	img.Payload = w.builder.cfg.Media[src]
	img.MIMEType = mimeFromName(src)

	return img
}

// nodeText returns the normalized text content of a node subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	return norm.NFC.String(strings.Join(strings.Fields(sb.String()), " "))
}

// directText returns text content excluding nested lists, so a parent li
// does not swallow its children's items.
func directText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				continue
			}
			collect(c)
		}
	}
	collect(n)

	return norm.NFC.String(strings.Join(strings.Fields(sb.String()), " "))
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// attrAlignment reads align attributes and inline text-align styles.
func attrAlignment(n *html.Node) model.Alignment {
	if v := attrValue(n, "align"); v != "" {
		return parseAlignment(v)
	}
	style := attrValue(n, "style")
	switch {
	case strings.Contains(style, "text-align: center"), strings.Contains(style, "text-align:center"):
		return model.AlignCenter
	case strings.Contains(style, "text-align: right"), strings.Contains(style, "text-align:right"):
		return model.AlignRight
	case strings.Contains(style, "text-align: justify"), strings.Contains(style, "text-align:justify"):
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}
