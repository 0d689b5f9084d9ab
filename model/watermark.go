package model

import "strings"

// PositionType selects how watermark instances are placed on a page
type PositionType int

const (
	// PositionCenter places a single instance at the page center.
	PositionCenter PositionType = iota
	// PositionCorner places a single instance at a chosen corner.
	PositionCorner
	// PositionCustom places one instance per explicit coordinate pair.
	PositionCustom
	// PositionMultiple places five instances: center plus all four corners.
	PositionMultiple
)

// ParsePositionType converts a configuration string to a PositionType
func ParsePositionType(s string) PositionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corner":
		return PositionCorner
	case "custom":
		return PositionCustom
	case "multiple":
		return PositionMultiple
	default:
		return PositionCenter
	}
}

// Corner identifies one of the four page corners
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// ParseCorner converts a configuration string to a Corner
func ParseCorner(s string) Corner {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-right", "topright":
		return CornerTopRight
	case "bottom-left", "bottomleft":
		return CornerBottomLeft
	case "bottom-right", "bottomright":
		return CornerBottomRight
	default:
		return CornerTopLeft
	}
}

// WatermarkPosition describes where instances are placed
type WatermarkPosition struct {
	Type        PositionType
	Corner      Corner
	Coordinates []Point // used when Type == PositionCustom
	Offset      Point   // pixel offset applied to corner placement
}

// TransparencyType selects how instance opacity varies across the page
type TransparencyType int

const (
	// TransparencyUniform applies a flat opacity to every instance.
	TransparencyUniform TransparencyType = iota
	// TransparencyGradient varies opacity sinusoidally left to right.
	TransparencyGradient
	// TransparencyFade dims instances radially away from the page center.
	TransparencyFade
)

// ParseTransparencyType converts a configuration string to a TransparencyType
func ParseTransparencyType(s string) TransparencyType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		return TransparencyGradient
	case "fade":
		return TransparencyFade
	default:
		return TransparencyUniform
	}
}

// Transparency describes opacity behavior. Value, Start and End are
// percentages in [0,100]; out-of-range input is clamped during resolution.
type Transparency struct {
	Type  TransparencyType
	Value float64
	Start float64 // gradient start percentage (defaults to the resolved base opacity)
	End   float64 // gradient end percentage (defaults to half the resolved base)
}

// ShadowEffect duplicates the watermark text at a pixel offset, drawn first
// at reduced opacity
type ShadowEffect struct {
	OffsetX float64
	OffsetY float64
	Opacity float64 // fraction of the instance opacity, (0,1]
}

// OutlineEffect duplicates the watermark text at eight surrounding offsets
// at reduced opacity
type OutlineEffect struct {
	Width   float64 // offset distance in points
	Opacity float64 // fraction of the instance opacity, (0,1]
}

// WatermarkStyle carries font and rotation styling
type WatermarkStyle struct {
	FontFamily string
	// Rotation in degrees; nil means use the positional default
	// (-45 for center placement, 0 for corners).
	Rotation *float64
	Shadow   *ShadowEffect
	Outline  *OutlineEffect
}

// PageRange selects which pages receive watermarks
type PageRange int

const (
	PagesAll PageRange = iota
	PagesFirst
	PagesLast
	PagesOdd
	PagesEven
	PagesExplicit
)

// ParsePageRange converts a configuration string to a PageRange
func ParsePageRange(s string) PageRange {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return PagesFirst
	case "last":
		return PagesLast
	case "odd":
		return PagesOdd
	case "even":
		return PagesEven
	case "explicit", "list":
		return PagesExplicit
	default:
		return PagesAll
	}
}

// ContentLength buckets a page's text volume
type ContentLength int

const (
	ContentAny ContentLength = iota
	ContentShort
	ContentMedium
	ContentLong
)

// ParseContentLength converts a configuration string to a ContentLength
func ParseContentLength(s string) ContentLength {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return ContentShort
	case "medium":
		return ContentMedium
	case "long":
		return ContentLong
	default:
		return ContentAny
	}
}

// Conditional gates watermark application on page content. Nil pointer
// fields are not evaluated.
type Conditional struct {
	HasImages     *bool
	HasTables     *bool
	ContentLength ContentLength
}

// PageSpecific carries per-page watermark behavior
type PageSpecific struct {
	Range       PageRange
	Pages       []int // 1-indexed, used when Range == PagesExplicit
	Conditional *Conditional
	// CustomText overrides templates and the base text; "{pageNumber}" is
	// substituted with the page number.
	CustomText string
}

// Template names a predefined watermark phrase
type Template int

const (
	TemplateNone Template = iota
	TemplateCorporate
	TemplateConfidential
	TemplateDraft
	TemplateCustom
)

// ParseTemplate converts a configuration string to a Template
func ParseTemplate(s string) Template {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corporate":
		return TemplateCorporate
	case "confidential":
		return TemplateConfidential
	case "draft":
		return TemplateDraft
	case "custom":
		return TemplateCustom
	default:
		return TemplateNone
	}
}

// WatermarkSettings is the full watermark configuration for a document
type WatermarkSettings struct {
	Text         string
	Opacity      float64 // percentage in [0,100]; clamped during resolution
	FontSize     string  // "small", "medium", "large" or a point value
	Color        string  // hex color like "#1e40af"
	Position     WatermarkPosition
	Style        WatermarkStyle
	Transparency Transparency
	PageSpecific PageSpecific
	Template     Template
}

// DefaultWatermarkSettings returns a centered diagonal watermark at 30%
// opacity
func DefaultWatermarkSettings() WatermarkSettings {
	return WatermarkSettings{
		Text:     "CONFIDENTIAL",
		Opacity:  30,
		FontSize: "medium",
		Color:    "#888888",
		Position: WatermarkPosition{Type: PositionCenter},
		Transparency: Transparency{
			Type:  TransparencyUniform,
			Value: 30,
		},
	}
}

// WatermarkInstance is one concrete, resolved rendering of watermark text.
// Instances are produced per page and never persisted.
type WatermarkInstance struct {
	Text       string
	X, Y       float64 // anchor point in page coordinates
	Rotation   float64 // degrees
	Opacity    float64 // resolved fraction in [0,1]
	FontFamily string
	FontSize   float64 // points
	Color      string  // hex color
}
