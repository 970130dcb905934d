// Package reader provides Docs API document reading.
//
// This package decodes the JSON representation of a document returned by the
// Docs REST API (documents.get) into the model package. Every structural
// element and paragraph element is classified exactly once here; fields the
// transformer does not support become [model.Unsupported] or
// [model.UnsupportedRun] values carrying the field name.
//
// # Opening Documents
//
// Use [Open] to read a document from disk:
//
//	r, err := reader.Open("document.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	doc := r.Document()
//
// Or use [NewReader] with any io.Reader, or [Parse] for a one-shot decode.
//
// # Compression
//
// Inputs compressed with gzip, zstd or lz4 are recognized by their magic
// bytes. Brotli has no magic number and is recognized only from a .br file
// extension passed to [Open], or explicitly through [WithCompression].
package reader
