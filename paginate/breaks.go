package paginate

import (
	"github.com/tsawler/typeset/model"
)

// Break decision thresholds used during the forward walk.
const (
	// breakScoreImmediate triggers a break regardless of remaining space.
	breakScoreImmediate = 70

	// breakScoreNearby qualifies a neighboring index as a better break
	// point when the current element overflows the page.
	breakScoreNearby = 60

	// nearbyWindow is how far the overflow handler looks for a scored
	// break, in element indices.
	nearbyWindow = 2

	// shortParagraphLen bounds what counts as a short paragraph for the
	// orphan and widow penalty.
	shortParagraphLen = 100

	// headingLookahead is how many upcoming elements are checked for a
	// heading when scoring a break point.
	headingLookahead = 3
)

// Oversized element thresholds. Elements taller than these force a break
// even when the page budget is not exhausted.
const (
	oversizedTableHeight = 300.0
	oversizedImageHeight = 400.0
)

// ScoreBreaks assigns every element index a desirability score in [0,100]
// for breaking immediately before that element. Tables are single atomic
// elements in the content model, so no index can fall inside one; a break
// between any two indices never splits a table.
func ScoreBreaks(elements []model.Element) []int {
	scores := make([]int, len(elements))
	for i := range elements {
		score := 0

		if elements[i].Kind() == model.KindHeading {
			score += 30
		}
		if i > 0 &&
			elements[i].Kind() == model.KindParagraph &&
			elements[i-1].Kind() == model.KindParagraph {
			score += 10
		}
		if headingWithin(elements, i, headingLookahead) {
			score += 20
		}
		if elements[i].Kind() == model.KindImage {
			score -= 20
		}
		if orphansOrWidows(elements, i) {
			score -= 15
		}

		if score < 0 {
			score = 0
		} else if score > 100 {
			score = 100
		}
		scores[i] = score
	}
	return scores
}

// headingWithin reports whether any of elements[i:i+n] is a heading.
func headingWithin(elements []model.Element, i, n int) bool {
	for j := i; j < i+n && j < len(elements); j++ {
		if elements[j].Kind() == model.KindHeading {
			return true
		}
	}
	return false
}

// orphansOrWidows reports whether breaking before index i would strand a
// short paragraph: either the first element of the new page (orphan) or
// the last element of the finished page (widow) is a brief paragraph.
func orphansOrWidows(elements []model.Element, i int) bool {
	if shortParagraph(elements[i]) {
		return true
	}
	if i > 0 && shortParagraph(elements[i-1]) {
		return true
	}
	return false
}

func shortParagraph(el model.Element) bool {
	p, ok := el.(*model.Paragraph)
	if !ok {
		return false
	}
	return len([]rune(p.Text)) < shortParagraphLen
}

// oversized reports whether an element is tall enough to warrant a forced
// break so it starts at the top of a fresh page.
func oversized(el model.Element) bool {
	switch el.Kind() {
	case model.KindTable:
		return el.EstimatedHeight() > oversizedTableHeight
	case model.KindImage:
		return el.EstimatedHeight() > oversizedImageHeight
	default:
		return false
	}
}
