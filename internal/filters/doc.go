// Package filters provides the compression codecs used to read and write
// documents.
//
// Exported Docs API documents are large and repetitive JSON, so pipelines
// often store them compressed. Every codec is a streaming reader or writer
// keyed by [format.Compression]:
//
//	r, err := filters.NewReader(format.Zstd, f)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// Whole-buffer helpers enforce a decoded size limit to guard against
// decompression bombs:
//
//	decoded, err := filters.Decode(format.Brotli, data, filters.DefaultMaxDecodedSize)
//
// # Supported Codecs
//
//   - Gzip (github.com/klauspost/compress/gzip)
//   - Zstandard (github.com/klauspost/compress/zstd)
//   - Brotli (github.com/andybalholm/brotli)
//   - LZ4 frames (github.com/pierrec/lz4/v4)
package filters
