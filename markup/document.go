package markup

import "encoding/xml"

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML       `xml:"pStyle"`
	NumPr         numberingPropsXML `xml:"numPr"`
	Justification justificationXML  `xml:"jc"`
	OutlineLvl    outlineLvlXML     `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

// valXML represents a generic element with a val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName    xml.Name     `xml:"r"`
	Properties runPropsXML  `xml:"rPr"`
	Text       []textXML    `xml:"t"`
	Tabs       []emptyXML   `xml:"tab"`
	Breaks     []breakXML   `xml:"br"`
	Drawings   []drawingXML `xml:"drawing"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold   *toggleXML `xml:"b"`
	Italic *toggleXML `xml:"i"`
}

// toggleXML represents a WordprocessingML toggle property; present without a
// val attribute means enabled, val="0"/"false" means disabled.
type toggleXML struct {
	Val string `xml:"val,attr"`
}

// enabled resolves the toggle semantics.
func (t *toggleXML) enabled() bool {
	if t == nil {
		return false
	}
	return t.Val != "0" && t.Val != "false"
}

// textXML represents a text node (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

// emptyXML represents an empty marker element.
type emptyXML struct{}

// breakXML represents a break (<w:br>).
type breakXML struct {
	Type string `xml:"type,attr"` // page, column, or empty for line break
}

// hyperlinkXML represents a hyperlink wrapper containing runs.
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// drawingXML represents an embedded drawing (<w:drawing>).
type drawingXML struct {
	Inline drawingContentXML `xml:"inline"`
	Anchor drawingContentXML `xml:"anchor"`
}

// drawingContentXML holds the pieces of a drawing we consume.
type drawingContentXML struct {
	Extent  extentXML   `xml:"extent"`
	Graphic graphicXML  `xml:"graphic"`
	DocPr   docPropsXML `xml:"docPr"`
}

// extentXML carries display dimensions in EMUs (914400 per inch).
type extentXML struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

// docPropsXML names the drawing.
type docPropsXML struct {
	Name string `xml:"name,attr"`
}

// graphicXML descends to the image reference.
type graphicXML struct {
	Data graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	Pic picXML `xml:"pic"`
}

type picXML struct {
	BlipFill blipFillXML `xml:"blipFill"`
}

type blipFillXML struct {
	Blip blipXML `xml:"blip"`
}

// blipXML carries the relationship ID of the embedded image payload.
type blipXML struct {
	Embed string `xml:"embed,attr"`
}

// tableXML represents a table element (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties (<w:tblPr>).
type tablePropsXML struct {
	Style styleRefXML `xml:"tblStyle"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Properties tableRowPropsXML `xml:"trPr"`
	Cells      []tableCellXML   `xml:"tc"`
}

// tableRowPropsXML represents row properties (<w:trPr>).
type tableRowPropsXML struct {
	Header *emptyXML `xml:"tblHeader"`
}

// tableCellXML represents a table cell (<w:tc>). Nested tables inside cells
// are not modeled structurally; their content is flattened to plain text.
type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}
