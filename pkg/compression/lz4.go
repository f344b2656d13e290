//go:build !nolz4

package compression

import (
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

func init() {
	defaultRegistry.MustRegister(LZ4, decodeLZ4)
}

func decodeLZ4(f *os.File) (io.ReadCloser, error) {
	return &readCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
}
