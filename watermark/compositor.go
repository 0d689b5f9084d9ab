// Package watermark resolves and draws watermark instances onto finished
// pages. For each page the compositor evaluates an applicability gate,
// resolves the watermark text, positions and opacities into concrete
// instances, and draws them onto the rendering surface. It never mutates
// the content model or pagination state.
package watermark

import (
	"strconv"
	"strings"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/render"
)

// Content length bucket boundaries, in characters of page text.
const (
	shortContentMax  = 500
	mediumContentMax = 2000
)

// cornerInset is the distance from page edges for corner placement.
const cornerInset = 60.0

// PageInfo describes one finished page for gating and resolution.
type PageInfo struct {
	Number     int // 1-indexed
	TotalPages int
	HasImages  bool
	HasTables  bool
	TextLength int // characters of text placed on the page
}

// Compositor resolves watermark instances for a fixed settings/page
// geometry pair.
type Compositor struct {
	settings model.WatermarkSettings
	page     model.PageConfig
}

// New creates a Compositor.
func New(settings model.WatermarkSettings, page model.PageConfig) *Compositor {
	return &Compositor{settings: settings, page: page}
}

// AppliesTo evaluates the page applicability gate: the page range first,
// then conditional content predicates.
func (c *Compositor) AppliesTo(info PageInfo) bool {
	ps := c.settings.PageSpecific

	switch ps.Range {
	case PagesAll:
	case PagesFirst:
		if info.Number != 1 {
			return false
		}
	case PagesLast:
		if info.Number != info.TotalPages {
			return false
		}
	case PagesOdd:
		if info.Number%2 == 0 {
			return false
		}
	case PagesEven:
		if info.Number%2 != 0 {
			return false
		}
	case PagesExplicit:
		found := false
		for _, n := range ps.Pages {
			if n == info.Number {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	cond := ps.Conditional
	if cond == nil {
		return true
	}
	if cond.HasImages != nil && *cond.HasImages != info.HasImages {
		return false
	}
	if cond.HasTables != nil && *cond.HasTables != info.HasTables {
		return false
	}
	if cond.ContentLength != ContentAny && contentBucket(info.TextLength) != cond.ContentLength {
		return false
	}
	return true
}

// contentBucket classifies a page's text volume.
func contentBucket(length int) model.ContentLength {
	switch {
	case length < shortContentMax:
		return model.ContentShort
	case length <= mediumContentMax:
		return model.ContentMedium
	default:
		return model.ContentLong
	}
}

// Resolve produces the concrete watermark instances for a page, or nil
// when the gate rejects it.
func (c *Compositor) Resolve(info PageInfo) []model.WatermarkInstance {
	if !c.AppliesTo(info) {
		return nil
	}

	text := c.resolveText(info.Number)
	size := c.fontSize()
	family := c.settings.Style.FontFamily
	if family == "" {
		family = "Helvetica"
	}

	placements := c.resolvePlacements()
	instances := make([]model.WatermarkInstance, 0, len(placements))
	for _, pl := range placements {
		instances = append(instances, model.WatermarkInstance{
			Text:       text,
			X:          pl.at.X,
			Y:          pl.at.Y,
			Rotation:   c.rotationFor(pl),
			Opacity:    c.resolveOpacity(pl.at),
			FontFamily: family,
			FontSize:   size,
			Color:      c.settings.Color,
		})
	}
	return instances
}

// placement pairs an anchor point with its default rotation.
type placement struct {
	at              model.Point
	defaultRotation float64
}

// resolvePlacements maps the position settings to anchor points.
func (c *Compositor) resolvePlacements() []placement {
	center := c.page.PageBox().Center()

	switch c.settings.Position.Type {
	case PositionCorner:
		off := c.settings.Position.Offset
		at := c.cornerPoint(c.settings.Position.Corner)
		at.X += off.X
		at.Y += off.Y
		return []placement{{at: at}}

	case PositionCustom:
		// Coordinates outside the page box are ignored.
		pageBox := c.page.PageBox()
		coords := c.settings.Position.Coordinates
		placements := make([]placement, 0, len(coords))
		for _, pt := range coords {
			if !pageBox.Contains(pt) {
				continue
			}
			placements = append(placements, placement{at: pt})
		}
		if len(placements) == 0 {
			return []placement{{at: center, defaultRotation: -45}}
		}
		return placements

	case PositionMultiple:
		// Exactly five instances: one centered diagonal plus all corners.
		return []placement{
			{at: center, defaultRotation: -45},
			{at: c.cornerPoint(model.CornerTopLeft)},
			{at: c.cornerPoint(model.CornerTopRight)},
			{at: c.cornerPoint(model.CornerBottomLeft)},
			{at: c.cornerPoint(model.CornerBottomRight)},
		}

	default: // PositionCenter
		return []placement{{at: center, defaultRotation: -45}}
	}
}

// cornerPoint returns the anchor for a corner, inset from the page edges.
func (c *Compositor) cornerPoint(corner model.Corner) model.Point {
	box := c.page.PageBox().Inset(cornerInset)
	switch corner {
	case model.CornerTopRight:
		return model.Point{X: box.Right(), Y: box.Top()}
	case model.CornerBottomLeft:
		return model.Point{X: box.Left(), Y: box.Bottom()}
	case model.CornerBottomRight:
		return model.Point{X: box.Right(), Y: box.Bottom()}
	default:
		return model.Point{X: box.Left(), Y: box.Top()}
	}
}

// rotationFor applies the configured rotation override, falling back to the
// placement default.
func (c *Compositor) rotationFor(pl placement) float64 {
	if c.settings.Style.Rotation != nil {
		return *c.settings.Style.Rotation
	}
	return pl.defaultRotation
}

// fontSize maps the configured size name to points; numeric strings are
// used directly.
func (c *Compositor) fontSize() float64 {
	switch strings.ToLower(strings.TrimSpace(c.settings.FontSize)) {
	case "", "medium":
		return 48
	case "small":
		return 36
	case "large":
		return 72
	default:
		if v, err := strconv.ParseFloat(c.settings.FontSize, 64); err == nil && v > 0 {
			return v
		}
		return 48
	}
}

// Apply resolves instances for the page and draws them. Per instance the
// draw order is shadow pass, outline pass, then the main text pass.
func (c *Compositor) Apply(s render.Surface, info PageInfo) {
	for _, inst := range c.Resolve(info) {
		c.draw(s, inst)
	}
}

// draw renders one instance with its optional effects.
func (c *Compositor) draw(s render.Surface, inst model.WatermarkInstance) {
	base := render.TextStyle{
		Font:     inst.FontFamily,
		Size:     inst.FontSize,
		Color:    render.ParseHexColor(inst.Color),
		Opacity:  inst.Opacity,
		Rotation: inst.Rotation,
	}

	if shadow := c.settings.Style.Shadow; shadow != nil {
		style := base
		style.Opacity = clamp01(inst.Opacity * effectOpacity(shadow.Opacity))
		ox, oy := shadow.OffsetX, shadow.OffsetY
		if ox == 0 && oy == 0 {
			ox, oy = 2, 2
		}
		s.DrawText(inst.X+ox, inst.Y+oy, inst.Text, style)
	}

	if outline := c.settings.Style.Outline; outline != nil {
		style := base
		style.Opacity = clamp01(inst.Opacity * effectOpacity(outline.Opacity))
		w := outline.Width
		if w <= 0 {
			w = 1
		}
		for _, d := range [8][2]float64{
			{-w, -w}, {0, -w}, {w, -w},
			{-w, 0}, {w, 0},
			{-w, w}, {0, w}, {w, w},
		} {
			s.DrawText(inst.X+d[0], inst.Y+d[1], inst.Text, style)
		}
	}

	s.DrawText(inst.X, inst.Y, inst.Text, base)
}

// effectOpacity defaults a zero effect opacity to half strength.
func effectOpacity(v float64) float64 {
	if v <= 0 {
		return 0.5
	}
	return clamp01(v)
}

// Re-exported settings types and enums, so callers configuring watermarks
// alongside the compositor need only this package and model.
type Template = model.Template

const (
	PositionCenter   = model.PositionCenter
	PositionCorner   = model.PositionCorner
	PositionCustom   = model.PositionCustom
	PositionMultiple = model.PositionMultiple

	PagesAll      = model.PagesAll
	PagesFirst    = model.PagesFirst
	PagesLast     = model.PagesLast
	PagesOdd      = model.PagesOdd
	PagesEven     = model.PagesEven
	PagesExplicit = model.PagesExplicit

	ContentAny = model.ContentAny

	TemplateNone         = model.TemplateNone
	TemplateCorporate    = model.TemplateCorporate
	TemplateConfidential = model.TemplateConfidential
	TemplateDraft        = model.TemplateDraft
	TemplateCustom       = model.TemplateCustom
)
