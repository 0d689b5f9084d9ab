package paginate

import (
	"strings"
	"testing"

	"github.com/tsawler/typeset/model"
)

func TestAnalyzeDensity(t *testing.T) {
	elements := []model.Element{
		heading("Title", 1),
		para(strings.Repeat("a", 100)),
		para(strings.Repeat("b", 300)),
		&model.Image{Name: "fig.png"},
		tableWithRows(2),
	}

	m := AnalyzeDensity(elements)

	if m.ElementCount != 5 {
		t.Errorf("ElementCount = %d, want 5", m.ElementCount)
	}
	if m.ImageCount != 1 || m.TableCount != 1 {
		t.Errorf("media counts = %d images, %d tables, want 1 each", m.ImageCount, m.TableCount)
	}
	if m.AvgParagraphLen != 200 {
		t.Errorf("AvgParagraphLen = %v, want 200", m.AvgParagraphLen)
	}
}

func TestComplexityBuckets(t *testing.T) {
	tests := []struct {
		name string
		m    DensityMetrics
		want Complexity
	}{
		{"plain prose", DensityMetrics{ElementCount: 50, ParagraphCount: 48, AvgParagraphLen: 120}, ComplexityLow},
		{"some media", DensityMetrics{ElementCount: 50, ImageCount: 4, AvgParagraphLen: 120}, ComplexityMedium},
		{"long paragraphs", DensityMetrics{ElementCount: 10, AvgParagraphLen: 400}, ComplexityMedium},
		{"media heavy", DensityMetrics{ElementCount: 10, ImageCount: 2, TableCount: 1}, ComplexityHigh},
		{"very long paragraphs", DensityMetrics{ElementCount: 5, AvgParagraphLen: 900}, ComplexityHigh},
		{"empty document", DensityMetrics{}, ComplexityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Complexity(); got != tt.want {
				t.Errorf("Complexity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategyForDensity(t *testing.T) {
	page := model.DefaultPageConfig()

	sparse := StrategyFor(DensityMetrics{ElementCount: 20, ParagraphCount: 20, AvgParagraphLen: 100}, page)
	dense := StrategyFor(DensityMetrics{ElementCount: 10, ImageCount: 2, TableCount: 1}, page)

	if sparse.Page.MarginTop != page.MarginTop {
		t.Errorf("sparse strategy changed margins: %v", sparse.Page.MarginTop)
	}
	if dense.UsableHeight() <= sparse.UsableHeight() {
		t.Errorf("dense usable height %v should exceed sparse %v",
			dense.UsableHeight(), sparse.UsableHeight())
	}
	if dense.MaxElementsPerPage <= sparse.MaxElementsPerPage {
		t.Errorf("dense cap %d should exceed sparse %d",
			dense.MaxElementsPerPage, sparse.MaxElementsPerPage)
	}
}
