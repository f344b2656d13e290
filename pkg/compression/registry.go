package compression

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// DecoderFunc layers a decoding reader over an opened file. The returned
// ReadCloser takes ownership of f: its Close must release the decoder
// context (if any) and then the file. On error the caller keeps ownership
// of f.
type DecoderFunc func(f *os.File) (io.ReadCloser, error)

// Errors
var (
	ErrDuplicate    = &CodecError{"duplicate decoder registration"}
	ErrSealed       = &CodecError{"registry is sealed"}
	ErrEmptyArchive = &CodecError{"zip archive has no file entries"}
)

// CodecError represents a compression layer error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}

// UnsupportedError is returned by Open when the detected compression kind
// has no decoder in the registry, for example a zstandard file read by a
// binary built with the nozstd tag. It is produced before any payload byte
// of the file is read.
type UnsupportedError struct {
	Kind Kind
	Path string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("compression: no %s decoder available for %s", e.Kind, e.Path)
}

// Registry maps compression kinds to decoder constructors. It is built once
// at process start and sealed before use; after sealing it is read-only and
// safe for concurrent lookups without locking. Register itself is not safe
// for concurrent use and belongs in init functions or test setup.
type Registry struct {
	decoders map[Kind]DecoderFunc
	sealed   bool
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[Kind]DecoderFunc)}
}

// Register adds a decoder for kind. It fails with ErrSealed once the
// registry is sealed and with ErrDuplicate if kind already has a decoder.
func (r *Registry) Register(kind Kind, fn DecoderFunc) error {
	if r.sealed {
		return ErrSealed
	}
	if fn == nil {
		return &CodecError{"nil decoder for " + kind.String()}
	}
	if _, exists := r.decoders[kind]; exists {
		return ErrDuplicate
	}
	r.decoders[kind] = fn
	return nil
}

// MustRegister is Register for init functions: it panics on error.
func (r *Registry) MustRegister(kind Kind, fn DecoderFunc) {
	if err := r.Register(kind, fn); err != nil {
		panic(err)
	}
}

// Seal marks the registry read-only. Idempotent.
func (r *Registry) Seal() {
	r.sealed = true
}

// Available reports whether kind has a registered decoder.
func (r *Registry) Available(kind Kind) bool {
	_, ok := r.decoders[kind]
	return ok
}

// Kinds returns the registered kinds in deterministic order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.decoders))
	for k := range r.decoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Open detects the compression of the file at path and returns a decoded
// stream for it. The capability check happens first: when the detected kind
// has no decoder the call fails with *UnsupportedError without opening the
// payload handle. The returned ReadCloser owns the file handle and decoder
// context; see DecoderFunc.
func (r *Registry) Open(path string) (io.ReadCloser, error) {
	kind, err := Detect(path)
	if err != nil {
		return nil, err
	}
	decode, ok := r.decoders[kind]
	if !ok {
		return nil, &UnsupportedError{Kind: kind, Path: path}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return rc, nil
}

var (
	defaultRegistry = NewRegistry()
	sealDefault     sync.Once
)

// Default returns the process-wide registry holding every decoder compiled
// into the binary. The first call seals it.
func Default() *Registry {
	sealDefault.Do(defaultRegistry.Seal)
	return defaultRegistry
}

// Open is shorthand for Default().Open.
func Open(path string) (io.ReadCloser, error) {
	return Default().Open(path)
}
