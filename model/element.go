package model

// ElementKind represents the type of content element
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindHeading
	KindParagraph
	KindList
	KindTable
	KindImage
	KindSpacer
)

func (k ElementKind) String() string {
	switch k {
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindList:
		return "List"
	case KindTable:
		return "Table"
	case KindImage:
		return "Image"
	case KindSpacer:
		return "Spacer"
	default:
		return "Unknown"
	}
}

// Element is the interface for all content elements. Ordering within a
// document is significant and follows ascending source offsets; duplicate
// text between elements is valid.
type Element interface {
	Kind() ElementKind
	// SourceOffset is the byte offset of the element in the original markup,
	// used to restore document order.
	SourceOffset() int
	// EstimatedHeight is the rendered footprint in points, assigned by the
	// layout estimator after the content model is built.
	EstimatedHeight() float64
	SetEstimatedHeight(h float64)
}

// TextElement is an interface for elements carrying text
type TextElement interface {
	Element
	GetText() string
}

// StyleHints carries character and paragraph styling resolved from markup
type StyleHints struct {
	Bold      bool
	Italic    bool
	Alignment Alignment
}

// Alignment represents horizontal text alignment
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Heading represents a section heading
type Heading struct {
	Text   string
	Level  int // 1-9
	Style  StyleHints
	Offset int
	Height float64
}

func (h *Heading) Kind() ElementKind            { return KindHeading }
func (h *Heading) SourceOffset() int            { return h.Offset }
func (h *Heading) EstimatedHeight() float64     { return h.Height }
func (h *Heading) SetEstimatedHeight(v float64) { h.Height = v }
func (h *Heading) GetText() string              { return h.Text }

// Paragraph represents a paragraph of body text
type Paragraph struct {
	Text   string
	Style  StyleHints
	Offset int
	Height float64
}

func (p *Paragraph) Kind() ElementKind            { return KindParagraph }
func (p *Paragraph) SourceOffset() int            { return p.Offset }
func (p *Paragraph) EstimatedHeight() float64     { return p.Height }
func (p *Paragraph) SetEstimatedHeight(v float64) { p.Height = v }
func (p *Paragraph) GetText() string              { return p.Text }

// ListItem represents a single list item. Each item is its own element so
// pagination may break between items but never inside one.
type ListItem struct {
	Text    string
	Level   int // 0-based indentation level
	Ordered bool
	Marker  string // bullet character or number prefix, e.g. "•" or "3."
	Style   StyleHints
	Offset  int
	Height  float64
}

func (l *ListItem) Kind() ElementKind            { return KindList }
func (l *ListItem) SourceOffset() int            { return l.Offset }
func (l *ListItem) EstimatedHeight() float64     { return l.Height }
func (l *ListItem) SetEstimatedHeight(v float64) { l.Height = v }
func (l *ListItem) GetText() string              { return l.Text }

// Spacer represents explicit vertical space or an author-forced page break
type Spacer struct {
	ForcePageBreak bool
	Offset         int
	Height         float64
}

func (s *Spacer) Kind() ElementKind            { return KindSpacer }
func (s *Spacer) SourceOffset() int            { return s.Offset }
func (s *Spacer) EstimatedHeight() float64     { return s.Height }
func (s *Spacer) SetEstimatedHeight(v float64) { s.Height = v }
