// Package compression detects how a file on disk is compressed and opens it
// as a decoded byte stream.
//
// Detection never trusts file extensions: Detect reads the first four bytes
// of the file through a short-lived handle and matches them against a fixed
// table of container signatures (gzip, bzip2, zip, zstandard, lz4). Anything
// else, including files shorter than a signature, is treated as plain text.
//
// # Capability Registry
//
// Decoders live in a Registry keyed by Kind. The registry is populated once
// at process start: the always-available decoders (plain, gzip, bzip2, zip)
// register from this package's init, while the zstandard and lz4 decoders
// register from files guarded by the "nozstd" and "nolz4" build tags.
// Building with those tags produces a binary without the decoder and without
// its module dependency. After startup the registry is sealed and read-only,
// so lookups need no locking.
//
// Opening a file whose detected kind has no registered decoder fails with
// *UnsupportedError before any of the file's payload is read.
//
// # Resource Ownership
//
// Open returns an io.ReadCloser that owns the underlying file handle plus
// any decoder context layered over it. Close releases the decoder first and
// the file second, and must be called even when the stream is abandoned
// before EOF.
package compression
