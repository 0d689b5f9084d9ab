package markup

import (
	"strconv"
	"strings"

	"github.com/tsawler/typeset/model"
)

// detectHeading determines whether a paragraph's properties mark it as a
// heading and returns the heading level (1-9, 0 when not a heading).
// Built-in style IDs take priority, then style names, then the explicit
// outline level.
func detectHeading(props paragraphPropsXML) int {
	if level := builtInHeadingLevel(props.Style.Val); level > 0 {
		return level
	}

	name := strings.ToLower(props.Style.Val)
	if name == "title" || name == "subtitle" {
		return 1
	}
	if strings.HasPrefix(name, "heading ") {
		if level, err := strconv.Atoi(strings.TrimPrefix(name, "heading ")); err == nil && level >= 1 && level <= 9 {
			return level
		}
		return 1
	}

	if props.OutlineLvl.Val != "" {
		// outlineLvl is 0-based; levels beyond 8 are body text
		if lvl, err := strconv.Atoi(props.OutlineLvl.Val); err == nil && lvl >= 0 && lvl < 9 {
			return lvl + 1
		}
	}

	return 0
}

// builtInHeadingLevel checks for Word's built-in heading style IDs.
func builtInHeadingLevel(styleID string) int {
	id := strings.ToLower(styleID)
	if !strings.HasPrefix(id, "heading") {
		return 0
	}
	level, err := strconv.Atoi(strings.TrimPrefix(id, "heading"))
	if err != nil || level < 1 || level > 9 {
		return 0
	}
	return level
}

// isListParagraph reports whether paragraph properties reference numbering.
func isListParagraph(props paragraphPropsXML) bool {
	if props.NumPr.NumID.Val != "" {
		return true
	}
	name := strings.ToLower(props.Style.Val)
	return strings.HasPrefix(name, "listparagraph") || strings.HasPrefix(name, "list paragraph")
}

// isOrderedList guesses numbered versus bulleted lists from the style name.
// Without numbering definitions (supplied separately from the markup buffer)
// the bullet form is the safe default.
func isOrderedList(props paragraphPropsXML) bool {
	name := strings.ToLower(props.Style.Val)
	return strings.Contains(name, "number")
}

// listLevel returns the 0-based indentation level from numbering properties.
func listLevel(props paragraphPropsXML) int {
	if props.NumPr.ILvl.Val == "" {
		return 0
	}
	lvl, err := strconv.Atoi(props.NumPr.ILvl.Val)
	if err != nil || lvl < 0 {
		return 0
	}
	if lvl > 8 {
		lvl = 8
	}
	return lvl
}

// parseAlignment converts a WordprocessingML justification value.
func parseAlignment(val string) model.Alignment {
	switch strings.ToLower(val) {
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "distribute", "justify":
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}
