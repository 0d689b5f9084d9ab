package watermark

import (
	"fmt"
	"strconv"
	"strings"
)

// pageNumberToken is substituted with the page number in custom and raw
// watermark text.
const pageNumberToken = "{pageNumber}"

// resolveText picks the watermark text for a page. Page-specific custom
// text wins, then a named template, then the raw text setting.
func (c *Compositor) resolveText(pageNumber int) string {
	if custom := c.settings.PageSpecific.CustomText; custom != "" {
		return substitutePageNumber(custom, pageNumber)
	}

	if text := templateText(c.settings.Template, c.settings.Text, pageNumber); text != "" {
		return text
	}

	if c.settings.Text != "" {
		return substitutePageNumber(c.settings.Text, pageNumber)
	}
	return "CONFIDENTIAL"
}

// templateText expands a named template into its fixed phrase. The custom
// template falls through to the raw text setting.
func templateText(t Template, rawText string, pageNumber int) string {
	switch t {
	case TemplateDraft:
		return fmt.Sprintf("DRAFT COPY - Page %d - DO NOT DISTRIBUTE", pageNumber)
	case TemplateConfidential:
		return fmt.Sprintf("CONFIDENTIAL - Page %d - UNAUTHORIZED COPYING PROHIBITED", pageNumber)
	case TemplateCorporate:
		return fmt.Sprintf("INTERNAL USE ONLY - Page %d", pageNumber)
	case TemplateCustom:
		return substitutePageNumber(rawText, pageNumber)
	default:
		return ""
	}
}

func substitutePageNumber(s string, pageNumber int) string {
	return strings.ReplaceAll(s, pageNumberToken, strconv.Itoa(pageNumber))
}
