// Package docstree provides a fluent API for converting Google Docs
// documents (the Docs REST API JSON) into HAST trees, HTML and Markdown.
//
// Basic usage:
//
//	html, warnings, err := docstree.Open("document.json").HTML()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docstree.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := docstree.Open("report.json.zst").
//	    WithoutStyles().
//	    RawHeaderIDs().
//	    Markdown()
//
// For advanced use cases, the lower-level reader, transform and render
// packages are also available.
package docstree

import (
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/reader"
)

// Open returns a Converter for the document in filename. The file is read
// by the first terminal operation. Compressed files are detected from
// their extension or contents.
//
// Example:
//
//	html, warnings, err := docstree.Open("document.json").HTML()
func Open(filename string) *Converter {
	return &Converter{
		src:     &source{filename: filename},
		options: defaultOptions(),
	}
}

// FromReader creates a Converter from an already-opened reader.Reader.
// The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.json")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	html, warnings, err := docstree.FromReader(r).HTML()
func FromReader(r *reader.Reader) *Converter {
	return &Converter{
		src:     &source{doc: r.Document()},
		options: defaultOptions(),
	}
}

// FromDocument creates a Converter for a document that is already decoded
func FromDocument(doc *model.Document) *Converter {
	return &Converter{
		src:     &source{doc: doc},
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := docstree.Must(reader.Parse(os.Stdin))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a terminal operation such as HTML() and
// panics if the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	html := docstree.MustText(docstree.Open("document.json").HTML())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
