// Package format provides document and compression format detection for the
// docstree library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates a Docs API document in JSON form, or a JSON syntax tree on output.
	JSON
	// HTML indicates rendered HTML markup.
	HTML
	// Markdown indicates CommonMark output.
	Markdown
	// YAML indicates a YAML syntax tree.
	YAML
	// Outline indicates an indented plain-text dump of the tree.
	Outline
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	case YAML:
		return "YAML"
	case Outline:
		return "Outline"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	case YAML:
		return ".yaml"
	case Outline:
		return ".txt"
	default:
		return ""
	}
}

// Parse converts a format name as given on a command line, e.g. "md" or
// "html", to a Format.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "hast":
		return JSON
	case "html", "htm":
		return HTML
	case "markdown", "md":
		return Markdown
	case "yaml", "yml":
		return YAML
	case "outline", "tree", "text", "txt":
		return Outline
	default:
		return Unknown
	}
}

// Detect determines file format from filename extension. A trailing
// compression extension is ignored, so doc.json.zst is JSON.
func Detect(filename string) Format {
	name := strings.ToLower(filename)
	if c := DetectCompression(name); c != None {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	switch filepath.Ext(name) {
	case ".json":
		return JSON
	case ".html", ".htm":
		return HTML
	case ".md", ".markdown":
		return Markdown
	case ".yaml", ".yml":
		return YAML
	case ".txt":
		return Outline
	default:
		return Unknown
	}
}

// Compression represents a stream compression algorithm.
type Compression int

const (
	// None indicates uncompressed data.
	None Compression = iota
	// Gzip indicates gzip (deflate) compression.
	Gzip
	// Zstd indicates Zstandard compression.
	Zstd
	// Brotli indicates Brotli compression.
	Brotli
	// LZ4 indicates LZ4 frame compression.
	LZ4
)

// String returns the string representation of the compression.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Extension returns the file extension appended for the compression.
func (c Compression) Extension() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case Brotli:
		return ".br"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression converts a compression name to a Compression. The second
// result is false for unknown names.
func ParseCompression(name string) (Compression, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, true
	case "gzip", "gz":
		return Gzip, true
	case "zstd", "zst":
		return Zstd, true
	case "brotli", "br":
		return Brotli, true
	case "lz4":
		return LZ4, true
	default:
		return None, false
	}
}

// DetectCompression determines compression from filename extension.
func DetectCompression(filename string) Compression {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".br":
		return Brotli
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// DetectCompressionFromMagic checks leading magic bytes. Brotli streams have
// no magic number and are reported as None; use the file extension for them.
func DetectCompressionFromMagic(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	default:
		return None
	}
}

// LooksLikeJSON reports whether data starts, after whitespace, with a JSON
// object.
func LooksLikeJSON(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '{'
}
