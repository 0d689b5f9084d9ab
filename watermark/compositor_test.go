package watermark

import (
	"math"
	"testing"

	"github.com/tsawler/typeset/model"
	"github.com/tsawler/typeset/render"
)

func testSettings() model.WatermarkSettings {
	return model.WatermarkSettings{
		Text:     "CONFIDENTIAL",
		Opacity:  30,
		FontSize: "medium",
		Color:    "#1e40af",
		Position: model.WatermarkPosition{Type: PositionCenter},
		Transparency: model.Transparency{
			Type:  model.TransparencyUniform,
			Value: 30,
		},
	}
}

func newTestCompositor(settings model.WatermarkSettings) *Compositor {
	return New(settings, model.DefaultPageConfig())
}

func pageOne() PageInfo {
	return PageInfo{Number: 1, TotalPages: 1, TextLength: 900}
}

func TestCenterDefault(t *testing.T) {
	c := newTestCompositor(testSettings())

	instances := c.Resolve(pageOne())

	if len(instances) != 1 {
		t.Fatalf("got %d instances, want 1", len(instances))
	}
	inst := instances[0]
	if inst.X != model.LetterWidth/2 || inst.Y != model.LetterHeight/2 {
		t.Errorf("anchor = (%g, %g), want page center", inst.X, inst.Y)
	}
	if inst.Rotation != -45 {
		t.Errorf("Rotation = %g, want -45", inst.Rotation)
	}
	if math.Abs(inst.Opacity-0.3) > 1e-9 {
		t.Errorf("Opacity = %g, want 0.3", inst.Opacity)
	}
}

func TestMultiplePositionCount(t *testing.T) {
	settings := testSettings()
	settings.Position.Type = PositionMultiple

	tests := []string{"W", "CONFIDENTIAL", "a very long watermark phrase that runs on"}
	for _, text := range tests {
		settings.Text = text
		instances := newTestCompositor(settings).Resolve(pageOne())
		if len(instances) != 5 {
			t.Errorf("text %q: got %d instances, want exactly 5", text, len(instances))
		}
	}
}

func TestMultipleHasCenterDiagonal(t *testing.T) {
	settings := testSettings()
	settings.Position.Type = PositionMultiple

	instances := newTestCompositor(settings).Resolve(pageOne())

	diagonals := 0
	for _, inst := range instances {
		if inst.Rotation == -45 {
			diagonals++
		}
	}
	if diagonals != 1 {
		t.Errorf("got %d diagonal instances, want 1 (the centered one)", diagonals)
	}
}

func TestCornerPosition(t *testing.T) {
	settings := testSettings()
	settings.Position = model.WatermarkPosition{
		Type:   PositionCorner,
		Corner: model.CornerBottomRight,
		Offset: model.Point{X: -10, Y: -5},
	}

	instances := newTestCompositor(settings).Resolve(pageOne())

	if len(instances) != 1 {
		t.Fatalf("got %d instances, want 1", len(instances))
	}
	inst := instances[0]
	if inst.Rotation != 0 {
		t.Errorf("corner rotation = %g, want 0", inst.Rotation)
	}
	wantX := model.LetterWidth - cornerInset - 10
	wantY := model.LetterHeight - cornerInset - 5
	if inst.X != wantX || inst.Y != wantY {
		t.Errorf("anchor = (%g, %g), want (%g, %g)", inst.X, inst.Y, wantX, wantY)
	}
}

func TestCustomCoordinates(t *testing.T) {
	settings := testSettings()
	settings.Position = model.WatermarkPosition{
		Type: PositionCustom,
		Coordinates: []model.Point{
			{X: 100, Y: 100},
			{X: 300, Y: 400},
			{X: 500, Y: 700},
		},
	}

	instances := newTestCompositor(settings).Resolve(pageOne())

	if len(instances) != 3 {
		t.Fatalf("got %d instances, want one per coordinate pair", len(instances))
	}
	for i, inst := range instances {
		want := settings.Position.Coordinates[i]
		if inst.X != want.X || inst.Y != want.Y {
			t.Errorf("instance %d at (%g, %g), want (%g, %g)", i, inst.X, inst.Y, want.X, want.Y)
		}
	}
}

func TestCustomCoordinatesOutsidePageIgnored(t *testing.T) {
	settings := testSettings()
	settings.Position = model.WatermarkPosition{
		Type: PositionCustom,
		Coordinates: []model.Point{
			{X: 300, Y: 400},
			{X: -50, Y: 400},
			{X: 300, Y: model.LetterHeight + 10},
		},
	}

	instances := newTestCompositor(settings).Resolve(pageOne())

	if len(instances) != 1 {
		t.Fatalf("got %d instances, want only the on-page coordinate", len(instances))
	}
	if instances[0].X != 300 || instances[0].Y != 400 {
		t.Errorf("instance at (%g, %g), want (300, 400)", instances[0].X, instances[0].Y)
	}
}

func TestCustomAllCoordinatesOffPageFallsBackToCenter(t *testing.T) {
	settings := testSettings()
	settings.Position = model.WatermarkPosition{
		Type:        PositionCustom,
		Coordinates: []model.Point{{X: -1, Y: -1}},
	}

	instances := newTestCompositor(settings).Resolve(pageOne())

	if len(instances) != 1 {
		t.Fatalf("got %d instances, want 1", len(instances))
	}
	if instances[0].X != model.LetterWidth/2 || instances[0].Y != model.LetterHeight/2 {
		t.Errorf("fallback anchor = (%g, %g), want page center", instances[0].X, instances[0].Y)
	}
}

func TestRotationOverride(t *testing.T) {
	settings := testSettings()
	rot := 30.0
	settings.Style.Rotation = &rot

	instances := newTestCompositor(settings).Resolve(pageOne())

	if instances[0].Rotation != 30 {
		t.Errorf("Rotation = %g, want override 30", instances[0].Rotation)
	}
}

func TestOpacityBounds(t *testing.T) {
	positions := []model.PositionType{
		PositionCenter, PositionCorner, PositionMultiple,
	}
	transparencies := []model.TransparencyType{
		model.TransparencyUniform, model.TransparencyGradient, model.TransparencyFade,
	}
	values := []float64{-10, 0, 15, 50, 100, 150, 999}

	for _, pos := range positions {
		for _, tr := range transparencies {
			for _, v := range values {
				settings := testSettings()
				settings.Position.Type = pos
				settings.Transparency = model.Transparency{Type: tr, Value: v}
				settings.Opacity = v

				for _, inst := range newTestCompositor(settings).Resolve(pageOne()) {
					if inst.Opacity < 0 || inst.Opacity > 1 {
						t.Errorf("pos=%v transparency=%v value=%g: opacity %g outside [0,1]",
							pos, tr, v, inst.Opacity)
					}
				}
			}
		}
	}
}

func TestFadeDimsEdges(t *testing.T) {
	settings := testSettings()
	settings.Position.Type = PositionMultiple
	settings.Transparency = model.Transparency{Type: model.TransparencyFade, Value: 60}

	instances := newTestCompositor(settings).Resolve(pageOne())

	center := instances[0]
	for _, corner := range instances[1:] {
		if corner.Opacity >= center.Opacity {
			t.Errorf("corner opacity %g should be dimmer than center %g", corner.Opacity, center.Opacity)
		}
	}
}

func TestGradientVariesHorizontally(t *testing.T) {
	settings := testSettings()
	settings.Position = model.WatermarkPosition{
		Type: PositionCustom,
		Coordinates: []model.Point{
			{X: 0, Y: 400},
			{X: model.LetterWidth, Y: 400},
		},
	}
	settings.Transparency = model.Transparency{
		Type:  model.TransparencyGradient,
		Value: 80,
		Start: 80,
		End:   20,
	}

	instances := newTestCompositor(settings).Resolve(pageOne())

	left, right := instances[0], instances[1]
	if math.Abs(left.Opacity-0.8) > 1e-9 {
		t.Errorf("left opacity = %g, want 0.8", left.Opacity)
	}
	if math.Abs(right.Opacity-0.2) > 1e-9 {
		t.Errorf("right opacity = %g, want 0.2", right.Opacity)
	}
}

func TestGradientInheritsBaseOpacity(t *testing.T) {
	settings := testSettings()
	settings.Opacity = 60
	settings.Position = model.WatermarkPosition{
		Type: PositionCustom,
		Coordinates: []model.Point{
			{X: 0, Y: 400},
			{X: model.LetterWidth, Y: 400},
		},
	}
	settings.Transparency = model.Transparency{Type: model.TransparencyGradient}

	instances := newTestCompositor(settings).Resolve(pageOne())

	left, right := instances[0], instances[1]
	if math.Abs(left.Opacity-0.6) > 1e-9 {
		t.Errorf("left opacity = %g, want the configured 0.6", left.Opacity)
	}
	if math.Abs(right.Opacity-0.3) > 1e-9 {
		t.Errorf("right opacity = %g, want half the configured value", right.Opacity)
	}
}

func TestGradientMatchesUniformAtLeftEdge(t *testing.T) {
	settings := testSettings()
	settings.Opacity = 60
	settings.Position = model.WatermarkPosition{
		Type:        PositionCustom,
		Coordinates: []model.Point{{X: 0, Y: 400}},
	}

	settings.Transparency = model.Transparency{Type: model.TransparencyUniform}
	uniform := newTestCompositor(settings).Resolve(pageOne())[0].Opacity

	settings.Transparency = model.Transparency{Type: model.TransparencyGradient}
	gradient := newTestCompositor(settings).Resolve(pageOne())[0].Opacity

	if math.Abs(gradient-uniform) > 1e-9 {
		t.Errorf("gradient start opacity %g differs from uniform %g for the same configuration",
			gradient, uniform)
	}
}

func TestPageRangeGating(t *testing.T) {
	tests := []struct {
		name   string
		rng    model.PageRange
		pages  []int
		page   int
		total  int
		expect bool
	}{
		{"all applies everywhere", PagesAll, nil, 3, 10, true},
		{"first on page 1", PagesFirst, nil, 1, 10, true},
		{"first not on page 2", PagesFirst, nil, 2, 10, false},
		{"last on final page", PagesLast, nil, 10, 10, true},
		{"last not mid-document", PagesLast, nil, 5, 10, false},
		{"odd on odd page", PagesOdd, nil, 3, 10, true},
		{"odd rejects even page", PagesOdd, nil, 4, 10, false},
		{"even on even page", PagesEven, nil, 4, 10, true},
		{"even rejects odd page", PagesEven, nil, 5, 10, false},
		{"explicit match", PagesExplicit, []int{2, 7}, 7, 10, true},
		{"explicit miss", PagesExplicit, []int{2, 7}, 6, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			settings.PageSpecific.Range = tt.rng
			settings.PageSpecific.Pages = tt.pages

			c := newTestCompositor(settings)
			info := PageInfo{Number: tt.page, TotalPages: tt.total, TextLength: 900}
			if got := c.AppliesTo(info); got != tt.expect {
				t.Errorf("AppliesTo() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestOddGateProducesNoEvenInstances(t *testing.T) {
	settings := testSettings()
	settings.PageSpecific.Range = PagesOdd
	c := newTestCompositor(settings)

	for page := 2; page <= 10; page += 2 {
		info := PageInfo{Number: page, TotalPages: 10}
		if got := c.Resolve(info); len(got) != 0 {
			t.Errorf("page %d: got %d instances, want 0", page, len(got))
		}
	}
}

func TestConditionalGating(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name   string
		cond   model.Conditional
		info   PageInfo
		expect bool
	}{
		{"requires images, page has them", model.Conditional{HasImages: &yes}, PageInfo{Number: 1, HasImages: true}, true},
		{"requires images, page lacks them", model.Conditional{HasImages: &yes}, PageInfo{Number: 1}, false},
		{"requires no tables, page has them", model.Conditional{HasTables: &no}, PageInfo{Number: 1, HasTables: true}, false},
		{"short content matches", model.Conditional{ContentLength: model.ContentShort}, PageInfo{Number: 1, TextLength: 120}, true},
		{"short content rejects long page", model.Conditional{ContentLength: model.ContentShort}, PageInfo{Number: 1, TextLength: 5000}, false},
		{"long content matches", model.Conditional{ContentLength: model.ContentLong}, PageInfo{Number: 1, TextLength: 5000}, true},
		{"medium content matches", model.Conditional{ContentLength: model.ContentMedium}, PageInfo{Number: 1, TextLength: 1000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			cond := tt.cond
			settings.PageSpecific.Conditional = &cond

			if got := newTestCompositor(settings).AppliesTo(tt.info); got != tt.expect {
				t.Errorf("AppliesTo() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestTemplateText(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		page     int
		want     string
	}{
		{"draft page 2", TemplateDraft, 2, "DRAFT COPY - Page 2 - DO NOT DISTRIBUTE"},
		{"draft page 7", TemplateDraft, 7, "DRAFT COPY - Page 7 - DO NOT DISTRIBUTE"},
		{"confidential", TemplateConfidential, 3, "CONFIDENTIAL - Page 3 - UNAUTHORIZED COPYING PROHIBITED"},
		{"corporate", TemplateCorporate, 1, "INTERNAL USE ONLY - Page 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			settings.Template = tt.template
			c := newTestCompositor(settings)

			instances := c.Resolve(PageInfo{Number: tt.page, TotalPages: 10})
			if len(instances) == 0 {
				t.Fatal("no instances resolved")
			}
			if instances[0].Text != tt.want {
				t.Errorf("text = %q, want %q", instances[0].Text, tt.want)
			}
		})
	}
}

func TestCustomTextPriority(t *testing.T) {
	settings := testSettings()
	settings.Template = TemplateDraft
	settings.PageSpecific.CustomText = "Review copy p.{pageNumber}"

	instances := newTestCompositor(settings).Resolve(PageInfo{Number: 4, TotalPages: 9})

	if instances[0].Text != "Review copy p.4" {
		t.Errorf("text = %q, custom text must win over template", instances[0].Text)
	}
}

func TestRawTextSubstitution(t *testing.T) {
	settings := testSettings()
	settings.Text = "Page {pageNumber} of document"

	instances := newTestCompositor(settings).Resolve(PageInfo{Number: 6, TotalPages: 9})

	if instances[0].Text != "Page 6 of document" {
		t.Errorf("text = %q", instances[0].Text)
	}
}

func TestFontSizeMapping(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"small", 36},
		{"medium", 48},
		{"large", 72},
		{"", 48},
		{"64", 64},
		{"bogus", 48},
	}

	for _, tt := range tests {
		settings := testSettings()
		settings.FontSize = tt.in
		instances := newTestCompositor(settings).Resolve(pageOne())
		if instances[0].FontSize != tt.want {
			t.Errorf("FontSize = %q: got %g, want %g", tt.in, instances[0].FontSize, tt.want)
		}
	}
}

func TestApplyDrawOrder(t *testing.T) {
	settings := testSettings()
	settings.Style.Shadow = &model.ShadowEffect{OffsetX: 3, OffsetY: 3, Opacity: 0.4}
	settings.Style.Outline = &model.OutlineEffect{Width: 1, Opacity: 0.3}

	rec := render.NewRecorder()
	rec.AddPage()
	newTestCompositor(settings).Apply(rec, pageOne())

	ops := rec.TextOps(1)
	// 1 shadow + 8 outline + 1 main.
	if len(ops) != 10 {
		t.Fatalf("got %d text ops, want 10", len(ops))
	}

	shadow := ops[0]
	main := ops[len(ops)-1]
	if shadow.X != main.X+3 || shadow.Y != main.Y+3 {
		t.Errorf("shadow at (%g, %g), want main plus offset", shadow.X, shadow.Y)
	}
	if shadow.Style.Opacity >= main.Style.Opacity {
		t.Errorf("shadow opacity %g should be below main %g", shadow.Style.Opacity, main.Style.Opacity)
	}
	for _, op := range ops[1:9] {
		if op.Style.Opacity >= main.Style.Opacity {
			t.Errorf("outline opacity %g should be below main %g", op.Style.Opacity, main.Style.Opacity)
		}
	}
}

func TestApplyGateSkipsDrawing(t *testing.T) {
	settings := testSettings()
	settings.PageSpecific.Range = PagesEven

	rec := render.NewRecorder()
	rec.AddPage()
	newTestCompositor(settings).Apply(rec, PageInfo{Number: 1, TotalPages: 3})

	if len(rec.Page(1)) != 0 {
		t.Errorf("gate rejected page should produce no draw ops, got %d", len(rec.Page(1)))
	}
}
