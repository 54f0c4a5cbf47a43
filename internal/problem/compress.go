package problem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdio is the path that stands for stdin or stdout.
const Stdio = "-"

// Codec is the compression applied to a problem file.
type Codec string

const (
	CodecNone Codec = "none"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

// CodecFor picks the codec from the file extension: .zst and .zstd use
// zstd, .lz4 uses lz4, anything else is plain text.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// Open opens path for reading, decompressing according to CodecFor.
// Stdio reads standard input uncompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch CodecFor(path) {
	case CodecZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	case CodecLZ4:
		return &readCloser{Reader: lz4.NewReader(f), close: f.Close}, nil
	default:
		return f, nil
	}
}

// Create creates path for writing, compressing according to CodecFor.
// Stdio writes standard output uncompressed. Closing the returned writer
// flushes the compressor and closes the file.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch CodecFor(path) {
	case CodecZstd:
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{Writer: enc, close: func() error {
			return errors.Join(enc.Close(), f.Close())
		}}, nil
	case CodecLZ4:
		zw := lz4.NewWriter(f)
		return &writeCloser{Writer: zw, close: func() error {
			return errors.Join(zw.Close(), f.Close())
		}}, nil
	default:
		return f, nil
	}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error { return w.close() }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
