package model

// Image represents an embedded image. When the payload could not be resolved
// from the markup, Payload is nil and the renderer substitutes a bracketed
// placeholder line instead of failing.
type Image struct {
	Payload  []byte
	MIMEType string
	Name     string // relationship target or file name, used for placeholders

	// Original pixel dimensions; zero when unknown. Unknown dimensions get a
	// synthetic estimate from the payload size during layout estimation.
	OriginalWidth  float64
	OriginalHeight float64

	// Display dimensions in points, scaled to the page content box while
	// preserving AspectRatio.
	DisplayWidth  float64
	DisplayHeight float64
	AspectRatio   float64

	Alignment Alignment
	Offset    int
	Height    float64
}

func (i *Image) Kind() ElementKind            { return KindImage }
func (i *Image) SourceOffset() int            { return i.Offset }
func (i *Image) EstimatedHeight() float64     { return i.Height }
func (i *Image) SetEstimatedHeight(v float64) { i.Height = v }

// HasPayload reports whether decodable image data is present
func (i *Image) HasPayload() bool {
	return len(i.Payload) > 0
}
