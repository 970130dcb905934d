package model

import (
	"errors"
	"fmt"
)

var (
	// ErrListNotFound is returned when a list item references a list group
	// that is missing from the document's list table.
	ErrListNotFound = errors.New("model: list not found")
	// ErrNestingLevelNotFound is returned when a list item references a
	// nesting level its list group does not define.
	ErrNestingLevelNotFound = errors.New("model: nesting level not found")
)

// Document represents a complete structured document
type Document struct {
	DocumentID    string
	Title         string
	Body          []Block
	Lists         map[string]List
	InlineObjects map[string]InlineObject
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Body:          make([]Block, 0),
		Lists:         make(map[string]List),
		InlineObjects: make(map[string]InlineObject),
	}
}

// AddBlock appends a block to the body
func (d *Document) AddBlock(b Block) {
	d.Body = append(d.Body, b)
}

// BlockCount returns the number of top-level body blocks
func (d *Document) BlockCount() int {
	return len(d.Body)
}

// List describes the per-level presentation of one list group
type List struct {
	NestingLevels []NestingLevel
}

// NestingLevel describes the glyph of one level of a list group
type NestingLevel struct {
	GlyphType   string
	StartNumber int
}

// Ordered reports whether items at this level carry a number or letter.
func (n NestingLevel) Ordered() bool {
	switch n.GlyphType {
	case "", "GLYPH_TYPE_UNSPECIFIED", "NONE":
		return false
	default:
		return true
	}
}

// NestingLevel looks up the presentation of level within list group listID.
// A missing group or level is a broken input invariant and is reported as an
// error rather than defaulted.
func (d *Document) NestingLevel(listID string, level int) (NestingLevel, error) {
	list, ok := d.Lists[listID]
	if !ok {
		return NestingLevel{}, fmt.Errorf("%w: %q", ErrListNotFound, listID)
	}
	if level < 0 || level >= len(list.NestingLevels) {
		return NestingLevel{}, fmt.Errorf("%w: list %q level %d", ErrNestingLevelNotFound, listID, level)
	}
	return list.NestingLevels[level], nil
}

// InlineObject is an embedded image referenced from an InlineObjectRun
type InlineObject struct {
	ObjectID    string
	Title       string
	Description string
	ContentURI  string
	SourceURI   string
	Width       Dimension
	Height      Dimension
	Border      Border
	// Margins around the embedded object
	MarginTop    Dimension
	MarginBottom Dimension
	MarginLeft   Dimension
	MarginRight  Dimension
}
