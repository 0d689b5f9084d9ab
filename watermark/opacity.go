package watermark

import (
	"math"

	"github.com/tsawler/typeset/model"
)

// resolveOpacity computes the opacity for an instance anchored at the
// given point. Whatever the transparency type and configured values, the
// result is clamped into [0,1].
func (c *Compositor) resolveOpacity(at model.Point) float64 {
	tr := c.settings.Transparency

	base := tr.Value
	if base == 0 {
		base = c.settings.Opacity
	}
	base = clampPercent(base) / 100

	switch tr.Type {
	case model.TransparencyGradient:
		return c.gradientOpacity(at, tr, base)
	case model.TransparencyFade:
		return c.fadeOpacity(at, base)
	default:
		return clamp01(base)
	}
}

// gradientOpacity interpolates between a start and end value along a
// sinusoidal function of the horizontal position, giving a smooth
// left-to-right variation rather than a linear ramp. Unset endpoints
// default to the resolved base opacity and half of it, so a caller that
// configured only the top-level opacity still gets a visible ramp.
func (c *Compositor) gradientOpacity(at model.Point, tr model.Transparency, base float64) float64 {
	start := base
	if tr.Start != 0 {
		start = clampPercent(tr.Start) / 100
	}
	end := base / 2
	if tr.End != 0 {
		end = clampPercent(tr.End) / 100
	}

	t := 0.0
	if c.page.Width > 0 {
		t = at.X / c.page.Width
	}
	t = math.Min(math.Max(t, 0), 1)

	// Smooth ease via the first quarter of a sine cycle.
	blend := math.Sin(t * math.Pi / 2)
	return clamp01(start + (end-start)*blend)
}

// fadeOpacity dims instances radially from the page center: opacity falls
// off with normalized Euclidean distance (distance over half the page
// diagonal), so edge instances are dimmer than central ones.
func (c *Compositor) fadeOpacity(at model.Point, base float64) float64 {
	box := c.page.PageBox()
	if !box.IsValid() {
		return clamp01(base)
	}
	halfDiagonal := box.Diagonal() / 2

	d := at.Distance(box.Center()) / halfDiagonal
	d = math.Min(math.Max(d, 0), 1)

	return clamp01(base * (1 - 0.8*d))
}

// clampPercent bounds a configured percentage into [0,100].
func clampPercent(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

// clamp01 bounds a resolved opacity into [0,1].
func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
