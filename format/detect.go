// Package format provides markup flavor detection for the typeset library.
package format

import (
	"bytes"
	"strings"
)

// Flavor represents a supported markup flavor.
type Flavor int

const (
	// Unknown indicates an unrecognized flavor.
	Unknown Flavor = iota
	// WordML indicates WordprocessingML markup (word/document.xml content).
	WordML
	// HTML indicates an HTML document.
	HTML
	// PlainText indicates unstructured plain text.
	PlainText
)

// String returns the string representation of the flavor.
func (f Flavor) String() string {
	switch f {
	case WordML:
		return "WordML"
	case HTML:
		return "HTML"
	case PlainText:
		return "PlainText"
	default:
		return "Unknown"
	}
}

// Detect determines the markup flavor from the content of a buffer. Buffers
// that contain neither WordprocessingML nor HTML markers but hold printable
// text are classified as PlainText so they can fall through to plain-text
// paragraph splitting.
func Detect(data []byte) Flavor {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}

	if isWordML(trimmed) {
		return WordML
	}
	if isHTML(trimmed) {
		return HTML
	}
	if isText(trimmed) {
		return PlainText
	}
	return Unknown
}

// isWordML checks for WordprocessingML markers: the w:document root element
// or body-level w:p / w:tbl constructs, possibly preceded by an XML
// declaration.
func isWordML(data []byte) bool {
	probe := data
	if len(probe) > 4096 {
		probe = probe[:4096]
	}
	s := string(probe)

	if strings.Contains(s, "<w:document") || strings.Contains(s, "<w:body") {
		return true
	}
	// Fragments exported without the document wrapper
	return strings.Contains(s, "<w:p>") || strings.Contains(s, "<w:p ") ||
		strings.Contains(s, "<w:tbl>") || strings.Contains(s, "<w:tbl ")
}

// isHTML checks for common HTML signatures (case-insensitive for DOCTYPE).
func isHTML(data []byte) bool {
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	upper := strings.ToUpper(string(probe))

	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// Body-only fragments
	return strings.HasPrefix(upper, "<BODY") || strings.HasPrefix(upper, "<DIV") ||
		strings.HasPrefix(upper, "<P>") || strings.HasPrefix(upper, "<P ") ||
		strings.HasPrefix(upper, "<H1") || strings.HasPrefix(upper, "<TABLE")
}

// isText reports whether the buffer looks like printable text rather than
// binary data. A small fraction of non-printable bytes is tolerated.
func isText(data []byte) bool {
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}

	binary := 0
	for _, b := range probe {
		if b == 0 {
			return false
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			binary++
		}
	}
	return binary*20 < len(probe)
}
