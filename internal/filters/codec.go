package filters

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/tsawler/docstree/format"
)

// DefaultMaxDecodedSize bounds Decode output unless a caller asks otherwise.
const DefaultMaxDecodedSize = 256 << 20

var (
	// ErrUnknownCompression is returned for a Compression value with no codec.
	ErrUnknownCompression = errors.New("filters: unknown compression")
	// ErrLimitExceeded is returned when decoded data outgrows its limit.
	ErrLimitExceeded = errors.New("filters: decoded size limit exceeded")
)

// Function variables for testing injection.
var (
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	newZstdWriter = func(w io.Writer) (*zstd.Encoder, error) { return zstd.NewWriter(w) }
)

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// NewReader wraps r with the decoder for c. The caller must Close the
// result; closing does not close r.
func NewReader(c format.Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case format.None:
		return nopReadCloser{r}, nil
	case format.Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case format.Zstd:
		zr, err := newZstdReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return zstdReadCloser{zr}, nil
	case format.Brotli:
		return nopReadCloser{brotli.NewReader(r)}, nil
	case format.LZ4:
		return nopReadCloser{lz4.NewReader(r)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w with the encoder for c. Close flushes the encoder but
// does not close w.
func NewWriter(c format.Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case format.None:
		return nopWriteCloser{w}, nil
	case format.Gzip:
		return gzip.NewWriter(w), nil
	case format.Zstd:
		zw, err := newZstdWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return zw, nil
	case format.Brotli:
		return brotli.NewWriter(w), nil
	case format.LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

// Decode decompresses data with c. Output larger than maxSize bytes fails
// with ErrLimitExceeded; a maxSize of 0 means DefaultMaxDecodedSize.
func Decode(c format.Compression, data []byte, maxSize int64) ([]byte, error) {
	if c == format.None {
		return data, nil
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxDecodedSize
	}

	r, err := NewReader(c, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s decode: %w", c, err)
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("%w: %s output exceeds %d bytes", ErrLimitExceeded, c, maxSize)
	}
	return out, nil
}

// Encode compresses data with c
func Encode(c format.Compression, data []byte) ([]byte, error) {
	if c == format.None {
		return data, nil
	}

	var buf bytes.Buffer
	w, err := NewWriter(c, &buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%s encode: %w", c, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s encode: %w", c, err)
	}
	return buf.Bytes(), nil
}
