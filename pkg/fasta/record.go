package fasta

import (
	"strings"
	"unicode"
)

// DefaultWrap is the sequence line width used by String.
const DefaultWrap = 70

// Record represents one FASTA entry
type Record struct {
	ID   string // first whitespace-delimited token of the header line
	Desc string // free-text remainder of the header; "" when absent
	Seq  string // concatenated body lines, per-line whitespace stripped
}

// NewRecord creates a record from its header fields and sequence data
func NewRecord(id, desc, seq string) *Record {
	return &Record{ID: id, Desc: desc, Seq: seq}
}

// Defline renders the header line without a trailing terminator. The
// description segment is omitted entirely, separator included, when absent.
func (r *Record) Defline() string {
	if r.Desc == "" {
		return ">" + r.ID
	}
	return ">" + r.ID + " " + r.Desc
}

// Format renders the record as FASTA text. A positive wrap splits the
// sequence into wrap-sized lines, the last possibly shorter; wrap <= 0
// writes the whole sequence as a single line. Every emitted line ends in a
// newline, the last included.
func (r *Record) Format(wrap int) string {
	var sb strings.Builder
	sb.WriteString(r.Defline())
	sb.WriteByte('\n')

	if wrap <= 0 {
		sb.WriteString(r.Seq)
		sb.WriteByte('\n')
		return sb.String()
	}

	for i := 0; i < len(r.Seq); i += wrap {
		end := i + wrap
		if end > len(r.Seq) {
			end = len(r.Seq)
		}
		sb.WriteString(r.Seq[i:end])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the record at DefaultWrap with trailing whitespace trimmed
func (r *Record) String() string {
	return strings.TrimRightFunc(r.Format(DefaultWrap), unicode.IsSpace)
}

// Len returns the number of sequence bytes
func (r *Record) Len() int {
	return len(r.Seq)
}

// Letters returns a fresh copy of the sequence bytes. Each call starts a
// new iteration; mutating the returned slice leaves the record untouched.
func (r *Record) Letters() []byte {
	return []byte(r.Seq)
}

// Contains reports whether sub occurs in the sequence
func (r *Record) Contains(sub string) bool {
	return strings.Contains(r.Seq, sub)
}
