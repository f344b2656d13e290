package fasta

import "io"

// ToMap drains the reader into an id-keyed map. Later records overwrite
// earlier ones on duplicate ids. The whole stream is held resident, so
// unbounded inputs belong on the streaming interface instead.
func ToMap(r *Reader) (map[string]*Record, error) {
	records := make(map[string]*Record)
	for {
		record, err := r.ReadNext()
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			return nil, err
		}
		records[record.ID] = record
	}
}
