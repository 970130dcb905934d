package docstree

import (
	"bytes"
	"errors"
	"sync"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/postprocess"
	"github.com/tsawler/docstree/reader"
	"github.com/tsawler/docstree/render"
	"github.com/tsawler/docstree/transform"
)

// ErrNoSource is returned when a Converter has neither a file nor a document.
var ErrNoSource = errors.New("docstree: no document or filename specified")

// Converter provides a fluent interface for converting a document. Each
// configuration method returns a new Converter, and every Converter derived
// from the same Open call shares one document load, so a Converter may be
// extended and used from several goroutines.
type Converter struct {
	src     *source
	options Options
}

// source is the document behind a Converter chain. A file is read at most
// once, on the first terminal operation of any Converter in the chain.
type source struct {
	filename string
	once     sync.Once
	doc      *model.Document
	err      error
}

func (s *source) load() (*model.Document, error) {
	s.once.Do(func() {
		if s.doc != nil {
			return
		}
		if s.filename == "" {
			s.err = ErrNoSource
			return
		}
		r, err := reader.Open(s.filename)
		if err != nil {
			s.err = err
			return
		}
		defer r.Close()
		s.doc = r.Document()
	})
	return s.doc, s.err
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		src:     c.src,
		options: c.options.clone(),
	}
}

// RawHeaderIDs keeps the heading ids assigned by Google Docs instead of
// replacing them with slugs of the heading text.
//
// Example:
//
//	html, _, err := docstree.Open("doc.json").RawHeaderIDs().HTML()
func (c *Converter) RawHeaderIDs() *Converter {
	next := c.clone()
	next.options.PrettyHeaderIDs = false
	return next
}

// WithoutStyles strips inline style attributes and the span wrappers that
// only carried them.
//
// Example:
//
//	html, _, err := docstree.Open("doc.json").WithoutStyles().HTML()
func (c *Converter) WithoutStyles() *Converter {
	next := c.clone()
	next.options.Styles = false
	return next
}

// WithOptions replaces all options at once
func (c *Converter) WithOptions(opts Options) *Converter {
	next := c.clone()
	next.options = opts.clone()
	return next
}

// Options returns the configured options
func (c *Converter) Options() Options {
	return c.options.clone()
}

// document returns the source document, reading the file on first use.
func (c *Converter) document() (*model.Document, error) {
	if c.src == nil {
		return nil, ErrNoSource
	}
	return c.src.load()
}

// Tree converts the document and applies the configured post-processing.
//
// Example:
//
//	tree, warnings, err := docstree.Open("document.json").Tree()
func (c *Converter) Tree() (*hast.Tree, []Warning, error) {
	doc, err := c.document()
	if err != nil {
		return nil, nil, err
	}

	var diag transform.Collector
	tree, err := transform.Document(doc, &diag)
	if err != nil {
		return nil, fromDiagnostics(diag.Warnings()), err
	}

	if c.options.PrettyHeaderIDs {
		postprocess.HeaderIDs(tree)
	}
	if !c.options.Styles {
		postprocess.RemoveStyles(tree)
	}
	return tree, fromDiagnostics(diag.Warnings()), nil
}

// HTML converts the document to an HTML fragment.
//
// Example:
//
//	html, warnings, err := docstree.Open("document.json").HTML()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docstree.FormatWarnings(warnings))
//	}
func (c *Converter) HTML() (string, []Warning, error) {
	tree, warnings, err := c.Tree()
	if err != nil {
		return "", warnings, err
	}
	s, err := render.HTMLString(tree)
	return s, warnings, err
}

// Markdown converts the document to Markdown. Styles have no Markdown
// form and are dropped.
func (c *Converter) Markdown() (string, []Warning, error) {
	tree, warnings, err := c.Tree()
	if err != nil {
		return "", warnings, err
	}
	s, err := render.MarkdownString(tree)
	return s, warnings, err
}

// JSON converts the document to HAST JSON. A non-empty query filters the
// result through a jq program.
func (c *Converter) JSON(query string) ([]byte, []Warning, error) {
	tree, warnings, err := c.Tree()
	if err != nil {
		return nil, warnings, err
	}
	var buf bytes.Buffer
	if err := render.JSON(&buf, tree, query); err != nil {
		return nil, warnings, err
	}
	return buf.Bytes(), warnings, nil
}

// Outline converts the document to an indented node listing, truncating
// lines to width display columns (no limit when width <= 0).
func (c *Converter) Outline(width int) (string, []Warning, error) {
	tree, warnings, err := c.Tree()
	if err != nil {
		return "", warnings, err
	}
	var buf bytes.Buffer
	if err := render.Outline(&buf, tree, width); err != nil {
		return "", warnings, err
	}
	return buf.String(), warnings, nil
}
