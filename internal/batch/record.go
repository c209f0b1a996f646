// Package batch aligns readings for a stream of word/reading records.
//
// Input is tab-separated, one record per line:
//
//   日の人	ひのひと
//   # comments start with '#'
//   対抗する	たいこうする
//
// Records are aligned one by one and handed to a RecordWriter.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrMissingReading is returned for input lines without a reading column.
var ErrMissingReading = errors.New("record has no reading")

// Record is a word with its reading and, after alignment, its reading pairs.
type Record struct {
	Line    int            // line number in the input
	Word    string         // word as given in the input
	Reading string         // reading as given in the input
	Pairs   furigana.Pairs // result of the alignment
}

// Reader reads records from tab-separated input.
type Reader struct {
	csv *csv.Reader
}

// NewReader creates a Reader for tab-separated input.
func NewReader(r io.Reader) *Reader {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return &Reader{csv: reader}
}

// Read returns the next record. At the end of the input it returns io.EOF.
// Lines with less than two columns result in an error wrapping ErrMissingReading;
// reading may continue after it.
func (r *Reader) Read() (Record, error) {
	fields, err := r.csv.Read()
	if err != nil {
		return Record{}, err
	}
	line, _ := r.csv.FieldPos(0)
	if len(fields) < 2 {
		return Record{Line: line}, fmt.Errorf("line %d: %w", line, ErrMissingReading)
	}
	return Record{Line: line, Word: fields[0], Reading: fields[1]}, nil
}
