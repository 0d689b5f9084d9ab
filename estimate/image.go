package estimate

import (
	"bytes"
	"image"
	"math"

	// Register decoders for dimension probing. Payloads are never fully
	// decoded here; only their headers are read.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/typeset/model"
)

// Image sizing constants.
const (
	// maxWidthFraction caps display width as a fraction of content width.
	maxWidthFraction = 0.8

	// maxHeightFraction caps display height as a fraction of content
	// height.
	maxHeightFraction = 0.5

	// Synthetic estimate bounds for undecodable payloads.
	minSyntheticHeight = 100.0
	maxSyntheticHeight = 400.0

	// defaultAspect is assumed when no dimensions can be determined.
	defaultAspect = 4.0 / 3.0

	// imageSpacing is the trailing space after an image.
	imageSpacing = 8.0
)

// SizeImage resolves display dimensions for an image and returns its total
// height. Known dimensions are scaled to fit inside the page-fraction caps
// while preserving aspect ratio. Unknown dimensions are probed from the
// payload header; when that fails, a synthetic estimate is derived from the
// encoded payload size, bounded to a sane range. This is an explicit
// approximation, not a real decode.
func (e *Estimator) SizeImage(img *model.Image) float64 {
	w, h := img.OriginalWidth, img.OriginalHeight

	if (w <= 0 || h <= 0) && img.HasPayload() {
		if pw, ph, ok := probeDimensions(img.Payload); ok {
			w, h = pw, ph
			img.OriginalWidth, img.OriginalHeight = pw, ph
		}
	}

	if w <= 0 || h <= 0 {
		h = syntheticHeight(len(img.Payload))
		w = h * defaultAspect
	}

	aspect := w / h
	maxW := e.cfg.ContentWidth() * maxWidthFraction
	maxH := e.cfg.ContentHeight() * maxHeightFraction

	dw, dh := w, h
	if dw > maxW {
		dw = maxW
		dh = dw / aspect
	}
	if dh > maxH {
		dh = maxH
		dw = dh * aspect
	}

	img.DisplayWidth = dw
	img.DisplayHeight = dh
	img.AspectRatio = aspect

	return dh + imageSpacing
}

// probeDimensions reads pixel dimensions from the payload header.
func probeDimensions(payload []byte) (float64, float64, bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(payload))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, false
	}
	return float64(cfg.Width), float64(cfg.Height), true
}

// syntheticHeight derives a display height estimate from encoded payload
// size, bounded to [minSyntheticHeight, maxSyntheticHeight].
func syntheticHeight(payloadLen int) float64 {
	if payloadLen <= 0 {
		return minSyntheticHeight
	}
	return clamp(math.Sqrt(float64(payloadLen))*2, minSyntheticHeight, maxSyntheticHeight)
}
