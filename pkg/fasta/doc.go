// Package fasta provides streaming FASTA parsing with transparent
// decompression.
//
// The fasta package implements a line-oriented record parser over text
// streams produced by the compression package. Records are assembled
// incrementally, one per read, so arbitrarily large files can be processed
// with one record resident at a time.
//
// # FASTA Format
//
// A FASTA file is a sequence of records. Each record starts with a header
// line introduced by '>':
//
//	>NP_055309.2 TNRC6A protein
//	MRELEAKAT
//	GGLSDKAT
//
// Fields:
//   - ID: first whitespace-delimited token of the header after '>'
//   - Desc: remainder of the header line, trimmed; "" when the header
//     carries nothing beyond the id
//   - Seq: concatenation of the body lines, each stripped of surrounding
//     whitespace, with no separators inserted
//
// No sequence alphabet is enforced; body bytes pass through untouched apart
// from the per-line whitespace stripping.
//
// # Parsing
//
// The parser is a single-pass state machine over input lines:
//   - A header line closes the pending record if any body line (including a
//     blank one) was buffered since the previous header. Two back-to-back
//     headers therefore emit nothing for the first, while a single blank
//     line between them emits a record with an empty Seq.
//   - Any other line after a header is stripped and buffered.
//   - Any other line before the first header fails parsing with a
//     *MalformedInputError carrying the line number.
//   - End of stream closes the pending record under the same
//     buffered-lines rule.
//
// The record sequence is finite, forward-only and not restartable;
// re-reading a file means calling Parse again.
//
// # Compression
//
// Parse sniffs the file's compression from its magic bytes and layers the
// matching decoder, so plain, gzip, bzip2, zip, zstandard and lz4 inputs
// all parse through the same call. Decoder availability is governed by the
// compression package's capability registry; a file whose codec is not
// compiled in fails with *compression.UnsupportedError before any record
// is produced.
//
// # Resource Ownership
//
// A Reader returned by Parse owns its decoded stream and the file handle
// under it. Both are released when iteration exhausts the stream, when a
// terminal error occurs, or when the caller abandons iteration early via
// Close. Cleanup never waits for the garbage collector. A Reader built
// with NewReader wraps a caller-owned stream and closes nothing.
//
// # Usage
//
// Streaming iteration:
//
//	r, err := fasta.Parse("genome.fa.gz")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for r.Next() {
//	    rec := r.Record()
//	    fmt.Println(rec.ID, rec.Len())
//	}
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// Lookup table construction:
//
//	r, err := fasta.Parse("genome.fa")
//	if err != nil {
//	    return err
//	}
//	byID, err := fasta.ToMap(r)
//
// # Error Handling
//
// Errors are never swallowed or retried. ReadNext errors are terminal: the
// same error is returned on every subsequent call, and the owned stream is
// already released by the time the error is returned. io.EOF marks normal
// exhaustion; the Next/Err veneer masks it the way bufio.Scanner does.
//
// # Thread Safety
//
// Record values are plain data and safe to share once yielded. A Reader is
// single-threaded: it reads its stream synchronously on the caller's
// goroutine and must not be used concurrently.
package fasta
