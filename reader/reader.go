package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/docstree/format"
	"github.com/tsawler/docstree/internal/filters"
	"github.com/tsawler/docstree/model"
)

var (
	// ErrEmptyDocument is returned when the input has no body.
	ErrEmptyDocument = errors.New("reader: document has no body")
	// ErrNotJSON is returned when the (decompressed) input is not a JSON object.
	ErrNotJSON = errors.New("reader: input is not a JSON document")
)

// Reader holds a decoded document
type Reader struct {
	file *os.File
	doc  *model.Document
	size int64
}

// Option configures decoding
type Option func(*options)

type options struct {
	compression    *format.Compression
	maxDecodedSize int64
}

// WithCompression forces the input compression instead of detecting it
func WithCompression(c format.Compression) Option {
	return func(o *options) {
		o.compression = &c
	}
}

// WithMaxDecodedSize bounds the decompressed input size
func WithMaxDecodedSize(n int64) Option {
	return func(o *options) {
		o.maxDecodedSize = n
	}
}

// Open opens and decodes a document file. A compression extension such as
// .br selects the codec unless WithCompression is given.
func Open(filename string, opts ...Option) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	if c := format.DetectCompression(filename); c != format.None {
		opts = append([]Option{WithCompression(c)}, opts...)
	}

	r, err := NewReader(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewReader reads and decodes a whole document from src
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	doc, err := ParseBytes(data, opts...)
	if err != nil {
		return nil, err
	}
	return &Reader{doc: doc, size: int64(len(data))}, nil
}

// Close releases the underlying file, if any
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Document returns the decoded document
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Size returns the size of the raw input in bytes
func (r *Reader) Size() int64 {
	return r.size
}

// Parse decodes a document from src
func Parse(src io.Reader, opts ...Option) (*model.Document, error) {
	r, err := NewReader(src, opts...)
	if err != nil {
		return nil, err
	}
	return r.Document(), nil
}

// ParseBytes decodes a document held in memory, decompressing it first when
// needed.
func ParseBytes(data []byte, opts ...Option) (*model.Document, error) {
	o := options{maxDecodedSize: filters.DefaultMaxDecodedSize}
	for _, opt := range opts {
		opt(&o)
	}

	c := format.DetectCompressionFromMagic(data)
	if o.compression != nil {
		c = *o.compression
	}

	data, err := filters.Decode(c, data, o.maxDecodedSize)
	if err != nil {
		return nil, fmt.Errorf("decompressing document: %w", err)
	}
	if !format.LooksLikeJSON(data) {
		return nil, ErrNotJSON
	}

	return decode(data)
}
