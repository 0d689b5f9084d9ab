package estimate

import (
	"strings"
)

// WrapLines breaks text into the lines the rendering pass will draw,
// using the same character-count heuristic as the height estimates. Hard
// line breaks are preserved; within a hard line, words are wrapped
// greedily and words longer than a full line are split.
func WrapLines(text string, width, fontSize float64) []string {
	return wrapLines(text, charsPerLine(width, fontSize))
}

func wrapLines(text string, cpl int) []string {
	if strings.TrimSpace(text) == "" {
		return []string{""}
	}

	var lines []string
	for _, hard := range strings.Split(text, "\n") {
		runes := []rune(hard)
		if len(runes) == 0 {
			lines = append(lines, "")
			continue
		}
		for len(runes) > cpl {
			cut := cpl
			for cut > 0 && runes[cut] != ' ' {
				cut--
			}
			if cut == 0 {
				cut = cpl
			}
			lines = append(lines, strings.TrimRight(string(runes[:cut]), " "))
			for cut < len(runes) && runes[cut] == ' ' {
				cut++
			}
			runes = runes[cut:]
		}
		lines = append(lines, string(runes))
	}
	return lines
}

// ApproxTextWidth estimates the rendered width of a single line.
func ApproxTextWidth(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * fontSize * glyphWidthRatio
}
