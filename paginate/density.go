package paginate

import (
	"github.com/tsawler/typeset/model"
)

// Complexity classifies a document's content density.
type Complexity int

const (
	ComplexityLow Complexity = iota
	ComplexityMedium
	ComplexityHigh
)

func (c Complexity) String() string {
	switch c {
	case ComplexityLow:
		return "low"
	case ComplexityMedium:
		return "medium"
	case ComplexityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// DensityMetrics summarizes the structural makeup of an element sequence.
type DensityMetrics struct {
	ElementCount    int
	ImageCount      int
	TableCount      int
	ParagraphCount  int
	AvgParagraphLen float64
}

// ImageDensity is the fraction of elements that are images.
func (m DensityMetrics) ImageDensity() float64 {
	if m.ElementCount == 0 {
		return 0
	}
	return float64(m.ImageCount) / float64(m.ElementCount)
}

// TableDensity is the fraction of elements that are tables.
func (m DensityMetrics) TableDensity() float64 {
	if m.ElementCount == 0 {
		return 0
	}
	return float64(m.TableCount) / float64(m.ElementCount)
}

// Complexity maps the metrics onto a coarse bucket. Media-heavy documents
// and long average paragraphs push the classification upward.
func (m DensityMetrics) Complexity() Complexity {
	mediaDensity := m.ImageDensity() + m.TableDensity()
	switch {
	case mediaDensity > 0.2 || m.AvgParagraphLen > 600:
		return ComplexityHigh
	case mediaDensity > 0.05 || m.AvgParagraphLen > 250:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// AnalyzeDensity scans the element sequence once and collects the metrics
// that drive strategy selection.
func AnalyzeDensity(elements []model.Element) DensityMetrics {
	var m DensityMetrics
	m.ElementCount = len(elements)

	totalParagraphChars := 0
	for _, el := range elements {
		switch el.Kind() {
		case model.KindImage:
			m.ImageCount++
		case model.KindTable:
			m.TableCount++
		case model.KindParagraph:
			m.ParagraphCount++
			if t, ok := el.(model.TextElement); ok {
				totalParagraphChars += len([]rune(t.GetText()))
			}
		}
	}
	if m.ParagraphCount > 0 {
		m.AvgParagraphLen = float64(totalParagraphChars) / float64(m.ParagraphCount)
	}
	return m
}

// Strategy holds the effective layout parameters selected for one
// document. Denser documents trade margin space for usable height so the
// page count stays reasonable; sparse documents keep the standard layout.
type Strategy struct {
	Complexity         Complexity
	Page               model.PageConfig
	ElementSpacing     float64 // vertical gap between placed elements
	MaxElementsPerPage int
}

// UsableHeight is the vertical budget for content on one page.
func (s Strategy) UsableHeight() float64 {
	return s.Page.ContentHeight()
}

// StrategyFor selects the layout parameters for a document from its
// density metrics, starting from the caller's page configuration.
func StrategyFor(m DensityMetrics, page model.PageConfig) Strategy {
	s := Strategy{
		Complexity:         m.Complexity(),
		Page:               page,
		ElementSpacing:     4,
		MaxElementsPerPage: 25,
	}

	switch s.Complexity {
	case ComplexityHigh:
		s.Page.MarginTop *= 0.75
		s.Page.MarginBottom *= 0.75
		s.Page.MarginLeft *= 0.85
		s.Page.MarginRight *= 0.85
		s.Page.ParagraphSpacing *= 0.75
		s.ElementSpacing = 2
		s.MaxElementsPerPage = 40
	case ComplexityMedium:
		s.Page.MarginTop *= 0.9
		s.Page.MarginBottom *= 0.9
		s.ElementSpacing = 3
		s.MaxElementsPerPage = 30
	}
	return s
}
