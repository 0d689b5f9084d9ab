// Package render defines the page-drawing surface the pagination engine
// drives: page lifecycle plus text, image and rectangle primitives. The
// default implementation produces PDF output; [Recorder] captures draw
// operations for tests.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Black is the default drawing color.
var Black = Color{0, 0, 0}

// ParseHexColor parses colors like "#1e40af" or "1e40af". Short form
// "#abc" expands each digit. Invalid input falls back to black.
func ParseHexColor(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Black
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// TextStyle carries everything needed to draw one text run.
type TextStyle struct {
	Font     string // font family, e.g. "Helvetica"
	Size     float64
	Bold     bool
	Italic   bool
	Color    Color
	Opacity  float64 // [0,1]; 0 is treated as fully opaque
	Rotation float64 // degrees counterclockwise about the anchor point
}

// Surface is the external page-drawing abstraction. Coordinates use a
// top-left origin with y increasing downward, in points. The y coordinate
// of DrawText is the text baseline.
type Surface interface {
	// AddPage starts a new page; all subsequent draws target it.
	AddPage()

	// PageCount returns the number of pages started so far.
	PageCount() int

	// DrawText draws a single text run at the given baseline position.
	DrawText(x, y float64, text string, style TextStyle)

	// DrawImage places an image payload scaled into the given box. A
	// non-nil error means the payload could not be embedded; the caller
	// decides how to degrade.
	DrawImage(x, y, w, h float64, payload []byte, name string) error

	// DrawRect strokes a rectangle outline.
	DrawRect(x, y, w, h float64, color Color, lineWidth float64)

	// DrawLine strokes a straight line.
	DrawLine(x1, y1, x2, y2 float64, color Color, lineWidth float64)

	// Output finalizes the document and returns its bytes.
	Output() ([]byte, error)
}

// ErrNoPages is returned by Output when no page was ever added.
var ErrNoPages = fmt.Errorf("surface has no pages")
