package compression

import (
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
)

func init() {
	defaultRegistry.MustRegister(Plain, decodePlain)
	defaultRegistry.MustRegister(Gzip, decodeGzip)
	defaultRegistry.MustRegister(Bzip2, decodeBzip2)
	defaultRegistry.MustRegister(Zip, decodeZip)
}

// readCloser chains a decoded stream with the closers behind it. Close
// releases them in order (decoder first, underlying file last) and returns
// the first error.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func decodePlain(f *os.File) (io.ReadCloser, error) {
	return f, nil
}

func decodeGzip(f *os.File) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

func decodeBzip2(f *os.File) (io.ReadCloser, error) {
	return &readCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
}

// decodeZip streams the first regular file entry of the archive. Directory
// entries are skipped; an archive without a single regular file is an error.
func decodeZip(f *os.File) (io.ReadCloser, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		er, err := entry.Open()
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: er, closers: []io.Closer{er, f}}, nil
	}
	return nil, ErrEmptyArchive
}
