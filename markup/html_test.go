package markup

import (
	"testing"

	"github.com/tsawler/typeset/model"
)

func TestParseHTMLDocument(t *testing.T) {
	data := []byte(`<!DOCTYPE html>
<html><head><title>ignored</title></head><body>
<h1>Main Title Here</h1>
<p>An introductory paragraph with content.</p>
<h2>Subsection Title</h2>
<p style="text-align: center">A centered paragraph with content.</p>
<ul><li>first item text</li><li>second item text<ul><li>nested item text</li></ul></li></ul>
<table><tr><th>Col A</th><th>Col B</th></tr><tr><td>1</td><td>2</td></tr></table>
</body></html>`)

	elements := mustBuild(t, data)

	wantKinds := []model.ElementKind{
		model.KindHeading,
		model.KindParagraph,
		model.KindHeading,
		model.KindParagraph,
		model.KindList, model.KindList, model.KindList,
		model.KindTable,
	}
	if len(elements) != len(wantKinds) {
		t.Fatalf("got %d elements, want %d: %v", len(elements), len(wantKinds), elements)
	}
	for i, el := range elements {
		if el.Kind() != wantKinds[i] {
			t.Errorf("element %d kind = %v, want %v", i, el.Kind(), wantKinds[i])
		}
	}
}

func TestParseHTMLHeadingLevels(t *testing.T) {
	data := []byte(`<html><body><h1>Top level heading</h1><h3>Deeper level heading</h3></body></html>`)

	elements := mustBuild(t, data)

	h1 := elements[0].(*model.Heading)
	h3 := elements[1].(*model.Heading)
	if h1.Level != 1 || h3.Level != 3 {
		t.Errorf("levels = %d, %d; want 1, 3", h1.Level, h3.Level)
	}
}

func TestParseHTMLNestedListLevels(t *testing.T) {
	data := []byte(`<html><body>
<ol><li>outer numbered item</li><li>another outer item<ol><li>inner numbered item</li></ol></li></ol>
</body></html>`)

	elements := mustBuild(t, data)

	var items []*model.ListItem
	for _, el := range elements {
		if li, ok := el.(*model.ListItem); ok {
			items = append(items, li)
		}
	}
	if len(items) != 3 {
		t.Fatalf("got %d list items, want 3", len(items))
	}
	if items[2].Level != 1 {
		t.Errorf("nested item level = %d, want 1", items[2].Level)
	}
	for _, li := range items {
		if !li.Ordered {
			t.Errorf("item %q should be ordered", li.Text)
		}
	}
}

func TestParseHTMLTableHeaders(t *testing.T) {
	data := []byte(`<html><body>
<table><thead><tr><th>Name</th><th>Value</th></tr></thead>
<tbody><tr><td>alpha</td><td>1</td></tr></tbody></table>
<p>trailing paragraph with content</p>
</body></html>`)

	elements := mustBuild(t, data)

	var tbl *model.Table
	for _, el := range elements {
		if tt, ok := el.(*model.Table); ok {
			tbl = tt
		}
	}
	if tbl == nil {
		t.Fatal("no table produced")
	}
	if !tbl.Rows[0].IsHeader {
		t.Error("thead row should be a header")
	}
	if !tbl.Rows[0].Cells[0].IsHeader {
		t.Error("th cell should be a header cell")
	}
	if tbl.Rows[1].IsHeader {
		t.Error("tbody row should not be a header")
	}
}

func TestParseHTMLImage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Media = map[string][]byte{"figure.png": []byte("payload-bytes")}

	data := []byte(`<html><body>
<p>Explanatory text before the figure.</p>
<img src="figure.png" width="200" height="100">
</body></html>`)

	elements, err := NewBuilder(cfg).Build(data)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var img *model.Image
	for _, el := range elements {
		if i, ok := el.(*model.Image); ok {
			img = i
		}
	}
	if img == nil {
		t.Fatal("no image element produced")
	}
	if img.OriginalWidth != 200 || img.OriginalHeight != 100 {
		t.Errorf("dimensions = %gx%g, want 200x100", img.OriginalWidth, img.OriginalHeight)
	}
	if img.AspectRatio != 2 {
		t.Errorf("AspectRatio = %g, want 2", img.AspectRatio)
	}
	if !img.HasPayload() {
		t.Error("payload should resolve from media map")
	}
}

func TestParseHTMLSkipsScriptAndStyle(t *testing.T) {
	data := []byte(`<html><head><style>p { color: red }</style></head><body>
<script>var x = "not document content at all";</script>
<p>The only real paragraph content.</p>
</body></html>`)

	elements := mustBuild(t, data)

	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}
	p := elements[0].(*model.Paragraph)
	if p.Text != "The only real paragraph content." {
		t.Errorf("text = %q", p.Text)
	}
}
