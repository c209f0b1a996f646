package furigana

import (
	"encoding/json"
	"strings"
)

// ReadingPair is a segment of a word, together with the reading for it.
//
// A segment which is its own reading (kana, or a prolongation mark) is not
// annotated. Please note that an annotated pair may carry an empty reading,
// which is different from carrying no reading at all.
type ReadingPair struct {
	Segment   string // non-empty slice of the annotated word
	Reading   string // phonetic reading; meaningful only if Annotated
	Annotated bool   // false: Segment needs no reading
}

// Bare creates a ReadingPair without a reading.
func Bare(segment string) ReadingPair {
	return ReadingPair{Segment: segment}
}

// WithReading creates an annotated ReadingPair.
func WithReading(segment, reading string) ReadingPair {
	return ReadingPair{Segment: segment, Reading: reading, Annotated: true}
}

// String returns the pair in bracket notation, e.g. "日[ひ]".
// Bare pairs are returned as their segment text.
func (p ReadingPair) String() string {
	if !p.Annotated {
		return p.Segment
	}
	return p.Segment + "[" + p.Reading + "]"
}

type jsonPair struct {
	Segment string  `json:"segment"`
	Reading *string `json:"reading"`
}

// MarshalJSON encodes a pair as {"segment": …, "reading": …}, with a null reading
// for bare pairs.
func (p ReadingPair) MarshalJSON() ([]byte, error) {
	jp := jsonPair{Segment: p.Segment}
	if p.Annotated {
		r := p.Reading
		jp.Reading = &r
	}
	return json.Marshal(jp)
}

// UnmarshalJSON is the counterpart of MarshalJSON.
func (p *ReadingPair) UnmarshalJSON(b []byte) error {
	var jp jsonPair
	if err := json.Unmarshal(b, &jp); err != nil {
		return err
	}
	p.Segment = jp.Segment
	p.Annotated = jp.Reading != nil
	p.Reading = ""
	if p.Annotated {
		p.Reading = *jp.Reading
	}
	return nil
}

// Pairs is an ordered sequence of ReadingPairs, the result of aligning a reading
// to a word.
type Pairs []ReadingPair

// Word returns the concatenation of all segments. For the result of an
// alignment this is always the word which has been aligned.
func (pp Pairs) Word() string {
	var sb strings.Builder
	for _, p := range pp {
		sb.WriteString(p.Segment)
	}
	return sb.String()
}

// String returns the pairs in bracket notation, e.g. "日[ひ]の人[ひと]".
func (pp Pairs) String() string {
	var sb strings.Builder
	for _, p := range pp {
		sb.WriteString(p.String())
	}
	return sb.String()
}
