//go:build !nozstd

package compression

import (
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

func init() {
	defaultRegistry.MustRegister(Zstandard, decodeZstd)
}

func decodeZstd(f *os.File) (io.ReadCloser, error) {
	// Decoding runs synchronously on the caller's goroutine.
	dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	rc := dec.IOReadCloser()
	return &readCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
}
