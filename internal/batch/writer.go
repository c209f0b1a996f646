package batch

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Output formats
const (
	FormatText = "text" // bracket notation, one word per line
	FormatJSON = "json" // one JSON object per line
	FormatTSV  = "tsv"  // word, reading, bracket notation
)

// ErrUnknownFormat is returned by NewWriter for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// RecordWriter writes aligned records.
type RecordWriter interface {
	WriteRecord(Record) error
	Close() error // flushes, does not close the underlying io.Writer
}

// NewWriter creates a RecordWriter for one of the output formats.
func NewWriter(w io.Writer, format string) (RecordWriter, error) {
	switch format {
	case FormatText:
		return &textWriter{w: bufio.NewWriter(w)}, nil
	case FormatJSON:
		bw := bufio.NewWriter(w)
		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)
		return &jsonWriter{w: bw, enc: enc}, nil
	case FormatTSV:
		cw := csv.NewWriter(w)
		cw.Comma = '\t'
		return &tsvWriter{w: cw}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type textWriter struct {
	w *bufio.Writer
}

func (tw *textWriter) WriteRecord(rec Record) error {
	_, err := fmt.Fprintln(tw.w, rec.Pairs.String())
	return err
}

func (tw *textWriter) Close() error {
	return tw.w.Flush()
}

type jsonWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

type jsonRecord struct {
	Word    string      `json:"word"`
	Reading string      `json:"reading"`
	Pairs   interface{} `json:"pairs"`
}

func (jw *jsonWriter) WriteRecord(rec Record) error {
	jr := jsonRecord{Word: rec.Word, Reading: rec.Reading, Pairs: rec.Pairs}
	if rec.Pairs == nil {
		jr.Pairs = []struct{}{}
	}
	return jw.enc.Encode(jr)
}

func (jw *jsonWriter) Close() error {
	return jw.w.Flush()
}

type tsvWriter struct {
	w *csv.Writer
}

func (sw *tsvWriter) WriteRecord(rec Record) error {
	return sw.w.Write([]string{rec.Word, rec.Reading, rec.Pairs.String()})
}

func (sw *tsvWriter) Close() error {
	sw.w.Flush()
	return sw.w.Error()
}
