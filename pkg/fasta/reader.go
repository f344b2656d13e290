package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/AvirFrog/fasta-parser/pkg/compression"
)

// MalformedInputError reports sequence data ahead of the first header line.
// The parser rejects such input instead of inventing a record with no id.
type MalformedInputError struct {
	Line int // 1-based line number of the offending line
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("data before first header at line %d", e.Line)
}

// Reader streams records off a FASTA text stream
type Reader struct {
	src    io.ReadCloser // owned decoded stream; nil when the caller owns it
	reader *bufio.Reader
	record *Record
	err    error
	closed bool

	id         string
	desc       string
	buffer     []string
	seenHeader bool
	line       int
}

// Parse opens the file at path, transparently decoding any supported
// compression, and returns a Reader streaming its records. The Reader owns
// the decoded stream and releases it on exhaustion, on terminal error and
// on Close.
func Parse(path string) (*Reader, error) {
	src, err := compression.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(src)
	r.src = src
	return r, nil
}

// NewReader returns a Reader over an already-decoded stream. The stream
// stays owned by the caller; Close on the Reader does not touch it.
func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadNext returns the next record, or io.EOF once the stream is exhausted.
// Any error is terminal: the owned stream is released before it is returned
// and every subsequent call returns the same error.
func (r *Reader) ReadNext() (*Record, error) {
	if r.closed {
		return nil, os.ErrClosed
	}
	if r.err != nil {
		return nil, r.err
	}

	for {
		line, err := r.reader.ReadString('\n')
		if len(line) > 0 {
			r.line++
			record, perr := r.consume(line)
			if perr != nil {
				r.fail(perr)
				return nil, perr
			}
			if record != nil {
				return record, nil
			}
		}
		if err != nil {
			if err == io.EOF {
				record := r.finish()
				r.fail(io.EOF)
				if record != nil {
					return record, nil
				}
				return nil, r.err
			}
			r.fail(err)
			return nil, err
		}
	}
}

// Next advances to the next record, reporting false at end of stream or on
// error; Err distinguishes the two. On true the record is available via
// Record.
func (r *Reader) Next() bool {
	record, err := r.ReadNext()
	if err != nil {
		r.record = nil
		return false
	}
	r.record = record
	return true
}

// Record returns the record produced by the last successful Next
func (r *Reader) Record() *Record {
	return r.record
}

// Err returns the first terminal error other than io.EOF
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// Close releases the owned stream. Reads after Close fail with
// os.ErrClosed. Closing an exhausted or caller-owned Reader is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.src != nil {
		err := r.src.Close()
		r.src = nil
		return err
	}
	return nil
}

// consume feeds one raw line to the state machine, returning a record when
// the line closes one.
func (r *Reader) consume(raw string) (*Record, error) {
	if strings.HasPrefix(raw, ">") {
		var record *Record
		if len(r.buffer) > 0 {
			record = r.emit()
		}
		rest := strings.TrimSpace(raw[1:])
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			r.id = rest[:i]
			r.desc = strings.TrimSpace(rest[i:])
		} else {
			r.id = rest
			r.desc = ""
		}
		r.seenHeader = true
		return record, nil
	}

	if !r.seenHeader {
		return nil, &MalformedInputError{Line: r.line}
	}

	// A blank line appends "" and still marks the buffer non-empty, so the
	// next header closes a record with an empty Seq.
	r.buffer = append(r.buffer, strings.TrimSpace(raw))
	return nil, nil
}

// emit closes the pending record and clears the accumulator
func (r *Reader) emit() *Record {
	record := &Record{ID: r.id, Desc: r.desc, Seq: strings.Join(r.buffer, "")}
	r.buffer = r.buffer[:0]
	return record
}

// finish closes the pending record at end of stream, if any lines were
// buffered since the last header.
func (r *Reader) finish() *Record {
	if len(r.buffer) == 0 {
		return nil
	}
	return r.emit()
}

// fail pins the terminal error and releases the owned stream. A close
// failure on the natural-exhaustion path takes the place of io.EOF rather
// than being dropped.
func (r *Reader) fail(err error) {
	if r.src != nil {
		cerr := r.src.Close()
		r.src = nil
		if err == io.EOF && cerr != nil {
			err = cerr
		}
	}
	r.err = err
}
