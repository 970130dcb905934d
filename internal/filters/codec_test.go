package filters

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/tsawler/docstree/format"
)

var allCodecs = []format.Compression{format.None, format.Gzip, format.Zstd, format.Brotli, format.LZ4}

func TestEncodeDecode(t *testing.T) {
	original := []byte(strings.Repeat(`{"paragraph":{"elements":[{"textRun":{"content":"Hello\n"}}]}}`, 50))

	for _, c := range allCodecs {
		t.Run(c.String(), func(t *testing.T) {
			encoded, err := Encode(c, original)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if c != format.None && len(encoded) >= len(original) {
				t.Errorf("encoded size %d not smaller than original %d", len(encoded), len(original))
			}

			decoded, err := Decode(c, encoded, 0)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("decoded data doesn't match original")
			}
		})
	}
}

func TestEncodeMagicDetected(t *testing.T) {
	for _, c := range []format.Compression{format.Gzip, format.Zstd, format.LZ4} {
		encoded, err := Encode(c, []byte(`{"title":"x"}`))
		if err != nil {
			t.Fatalf("Encode(%v) failed: %v", c, err)
		}
		if got := format.DetectCompressionFromMagic(encoded); got != c {
			t.Errorf("DetectCompressionFromMagic(Encode(%v)) = %v", c, got)
		}
	}
}

func TestDecodeLimit(t *testing.T) {
	original := bytes.Repeat([]byte("a"), 4096)
	encoded, err := Encode(format.Zstd, original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = Decode(format.Zstd, encoded, 1024)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("Decode() error = %v, want ErrLimitExceeded", err)
	}
}

func TestUnknownCompression(t *testing.T) {
	if _, err := NewReader(format.Compression(42), bytes.NewReader(nil)); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("NewReader() error = %v, want ErrUnknownCompression", err)
	}
	if _, err := NewWriter(format.Compression(42), io.Discard); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("NewWriter() error = %v, want ErrUnknownCompression", err)
	}
	if _, err := Encode(format.Compression(42), []byte("x")); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("Encode() error = %v, want ErrUnknownCompression", err)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	for _, c := range []format.Compression{format.Gzip, format.Zstd, format.LZ4} {
		if _, err := Decode(c, []byte("definitely not compressed"), 0); err == nil {
			t.Errorf("Decode(%v) expected error for corrupt input", c)
		}
	}
}

func TestZstdReaderInjectedError(t *testing.T) {
	orig := newZstdReader
	defer func() { newZstdReader = orig }()
	newZstdReader = func(io.Reader) (*zstd.Decoder, error) { return nil, errors.New("boom") }

	if _, err := NewReader(format.Zstd, bytes.NewReader(nil)); err == nil {
		t.Error("NewReader() expected injected error")
	}
}

func TestStreamingWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(format.Brotli, &buf)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	io.WriteString(w, "<p>one</p>")
	io.WriteString(w, "<p>two</p>")
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(format.Brotli, &buf)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "<p>one</p><p>two</p>" {
		t.Errorf("streamed data = %q", got)
	}
}
