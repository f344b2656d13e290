package compression

import (
	"bytes"
	"io"
	"os"
)

// Kind identifies the compression container of a file. The zero value is
// Plain (no compression).
type Kind int

const (
	Plain Kind = iota
	Gzip
	Bzip2
	Zip
	Zstandard
	LZ4
)

var kindNames = map[Kind]string{
	Plain:     "plain",
	Gzip:      "gzip",
	Bzip2:     "bzip2",
	Zip:       "zip",
	Zstandard: "zstandard",
	LZ4:       "lz4",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// sniffLen is the number of leading bytes Detect reads. The signature table
// is fixed, so the longest prefix is known up front.
const sniffLen = 4

// signatures maps leading byte prefixes to compression kinds. The prefixes
// are mutually exclusive, so match order does not matter. These exact bytes
// are a compatibility contract with existing file sets.
var signatures = []struct {
	prefix []byte
	kind   Kind
}{
	{[]byte{0x1f, 0x8b, 0x08}, Gzip},
	{[]byte{0x42, 0x5a, 0x68}, Bzip2},
	{[]byte{0x50, 0x4b, 0x03, 0x04}, Zip},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, Zstandard},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, LZ4},
}

// Detect classifies the compression of the file at path by its first bytes.
// It opens and closes its own handle, independent of any later Open of the
// same path. Files shorter than four bytes are matched against whatever
// prefix exists; no match means Plain.
func Detect(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plain, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Plain, err
	}

	head := buf[:n]
	for _, sig := range signatures {
		if bytes.HasPrefix(head, sig.prefix) {
			return sig.kind, nil
		}
	}
	return Plain, nil
}
