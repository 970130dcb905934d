// Package model provides the input representation of a structured
// word-processing document.
//
// This package defines the immutable data structures consumed by the
// transform package. A [Document] is produced once by the reader package and
// is never mutated afterwards.
//
// # Document Structure
//
// The [Document] type holds the ordered block sequence of the body together
// with two side tables:
//
//   - Lists - list group id to per-level glyph and start number
//   - InlineObjects - embedded object id to image properties
//
// # Blocks
//
// All body content implements the [Block] interface. The concrete types are:
//
//   - [Paragraph] - a paragraph, optionally a list item (see [ListMembership])
//   - [Table] - rows of cells, each cell a nested block sequence
//   - [Unsupported] - any structural element the transformer does not handle
//
// # Runs
//
// Paragraph content is an ordered sequence of [Run] values:
//
//   - [TextRun] - styled text, optionally a link
//   - [InlineObjectRun] - reference to an embedded image
//   - [PersonRun] - a person smart chip
//   - [RichLinkRun] - a rich link smart chip
//   - [UnsupportedRun] - any paragraph element the transformer does not handle
//
// The kind of every block and run is decided once at ingestion; consumers
// switch on the concrete type instead of probing optional fields.
package model
