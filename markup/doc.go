// Package markup provides the content model builder: it parses a buffer of
// structured markup (WordprocessingML or HTML, as produced by an external
// markup extractor) into an ordered sequence of typed content elements.
//
// The parse is a tree walk over the markup in document order: body-level
// constructs are decoded as whole subtrees, so text inside a table can
// never be re-claimed as a body-level paragraph. Element order always
// matches ascending source offsets.
//
// Inputs with no recognizable structure degrade to plain-text extraction
// split on blank lines. The only error raised is [ExtractionError], when
// the extracted text is below the minimum length threshold.
//
// Known limitations: tables nested inside table cells and lists inside
// table cells are flattened to plain text.
package markup
