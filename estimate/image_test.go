package estimate

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/tsawler/typeset/model"
)

// encodePNG produces a real PNG payload with the given pixel dimensions.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestSizeImageKnownDimensions(t *testing.T) {
	e := testEstimator()
	img := &model.Image{OriginalWidth: 100, OriginalHeight: 50}

	e.SizeImage(img)

	if img.DisplayWidth != 100 || img.DisplayHeight != 50 {
		t.Errorf("small image should keep its size, got %gx%g", img.DisplayWidth, img.DisplayHeight)
	}
	if img.AspectRatio != 2 {
		t.Errorf("AspectRatio = %g, want 2", img.AspectRatio)
	}
}

func TestSizeImageScalesDownToCaps(t *testing.T) {
	e := testEstimator()
	cfg := model.DefaultPageConfig()
	img := &model.Image{OriginalWidth: 2000, OriginalHeight: 1500}

	e.SizeImage(img)

	maxW := cfg.ContentWidth() * maxWidthFraction
	maxH := cfg.ContentHeight() * maxHeightFraction
	if img.DisplayWidth > maxW+0.5 {
		t.Errorf("DisplayWidth %g exceeds cap %g", img.DisplayWidth, maxW)
	}
	if img.DisplayHeight > maxH+0.5 {
		t.Errorf("DisplayHeight %g exceeds cap %g", img.DisplayHeight, maxH)
	}

	gotAspect := img.DisplayWidth / img.DisplayHeight
	if math.Abs(gotAspect-img.AspectRatio) > 0.01 {
		t.Errorf("aspect ratio drifted: display %g, want %g", gotAspect, img.AspectRatio)
	}
}

func TestSizeImageProbesPayload(t *testing.T) {
	e := testEstimator()
	img := &model.Image{Payload: encodePNG(t, 320, 160), MIMEType: "image/png"}

	e.SizeImage(img)

	if img.OriginalWidth != 320 || img.OriginalHeight != 160 {
		t.Errorf("probed dimensions = %gx%g, want 320x160", img.OriginalWidth, img.OriginalHeight)
	}
	if math.Abs(img.AspectRatio-2) > 0.01 {
		t.Errorf("AspectRatio = %g, want 2", img.AspectRatio)
	}
}

func TestSizeImageSyntheticEstimate(t *testing.T) {
	e := testEstimator()

	tests := []struct {
		name    string
		payload []byte
	}{
		{"no payload", nil},
		{"undecodable payload", bytes.Repeat([]byte{0xAB}, 5000)},
		{"huge undecodable payload", bytes.Repeat([]byte{0xCD}, 10*1024*1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := &model.Image{Payload: tt.payload}
			e.SizeImage(img)

			if img.DisplayHeight < 1 {
				t.Errorf("DisplayHeight %g too small", img.DisplayHeight)
			}
			// The synthetic estimate is bounded before cap scaling, so the
			// display height can never exceed the synthetic maximum.
			if img.DisplayHeight > maxSyntheticHeight {
				t.Errorf("DisplayHeight %g exceeds synthetic bound %g", img.DisplayHeight, maxSyntheticHeight)
			}
		})
	}
}

func TestSizeImageHeightIncludesSpacing(t *testing.T) {
	e := testEstimator()
	img := &model.Image{OriginalWidth: 100, OriginalHeight: 50}

	h := e.SizeImage(img)

	if h != img.DisplayHeight+imageSpacing {
		t.Errorf("height %g, want display height %g plus spacing %g", h, img.DisplayHeight, imageSpacing)
	}
}
