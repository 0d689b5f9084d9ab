// Package model provides the intermediate representation (IR) for document
// content flowing through the typeset pipeline.
//
// This package defines the data structures shared by the markup parser, the
// layout estimator, the pagination engine and the watermark compositor. The
// content model is built once per document and is immutable afterward,
// except for estimated heights which the layout estimator assigns in place.
//
// # Elements
//
// All content implements the [Element] interface. The concrete types are:
//
//   - [Paragraph] - body text paragraphs
//   - [Heading] - section headings (levels 1-9)
//   - [ListItem] - individual list items with bullet or number markers
//   - [Table] - tables with rows of [Cell] values
//   - [Image] - embedded images with display sizing
//   - [Spacer] - explicit vertical space or forced page breaks
//
// Element order is significant: it follows ascending source offsets and must
// match the original document order.
//
// # Page geometry
//
// [PageConfig] describes page size, margins and base typography. Geometry
// helpers ([Point], [BBox]) use a top-left origin with y increasing
// downward, matching the rendering surface.
//
// # Watermarks
//
// [WatermarkSettings] is the user-facing watermark configuration;
// [WatermarkInstance] is one resolved rendering of watermark text, produced
// per page by the compositor and consumed within a single page render.
package model
