/*
Package segment splits Japanese words into kana runs and the text between them.

Typical Usage

Splitter provides an interface similar to bufio.Scanner. It is initialized with
a set of delimiters, i.e. substrings which should become segments of their own.
Successive calls to Next() step through the segments of a text. Clients get
the segment by calling Text() and may ask if it is a delimiter occurrence.

  splitter := segment.NewSplitter(segment.KanaRuns(word)...)
  splitter.Init(reading)
  for splitter.Next() {
    // do something with splitter.Text()
  }

For the common case of just collecting the segments, there is Split().

How it works

Delimiters are ordered by descending length (in code-points), keeping the
relative order of delimiters of equal length. At every position the splitter
looks for the earliest occurrence of any delimiter. If more than one delimiter
occurs there, the longest one wins. Text before the occurrence becomes a
segment, then the occurrence itself. Text after the last occurrence is the
final segment. Empty segments are never reported, and concatenating all
segments always reproduces the input.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package segment

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Splitter steps through the segments of a text, where every occurrence of a
// delimiter is a segment of its own.
//
// A Splitter holds no reference to the delimiter slice given by the client and
// may be re-used for more than one text by calling Init(…) again.
type Splitter struct {
	delimiters    []string // longest first
	text          string   // text to split
	pos           int      // byte position of the next segment
	matchStart    int      // start of the next delimiter occurrence, or -1
	matchEnd      int      // end of the next delimiter occurrence
	activeSegment string   // most recent segment
	isDelimiter   bool     // is activeSegment a delimiter occurrence?
}

// NewSplitter creates a new Splitter for a set of delimiters.
// Empty delimiters are ignored. Specifying no delimiters results in a splitter
// which returns the complete text as a single segment.
//
// Before using newly created splitters, clients will have to call Init(…)
// on them.
func NewSplitter(delimiters ...string) *Splitter {
	s := &Splitter{}
	s.delimiters = orderDelimiters(delimiters)
	s.matchStart = -1
	return s
}

// orderDelimiters returns a new slice of the non-empty delimiters, sorted by
// descending length. Delimiters of equal length stay in their original order.
func orderDelimiters(delimiters []string) []string {
	ordered := make([]string, 0, len(delimiters))
	for _, d := range delimiters {
		if d != "" {
			ordered = append(ordered, d)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i]) > utf8.RuneCountInString(ordered[j])
	})
	return ordered
}

// Delimiters returns the delimiters in the order the splitter tries them.
func (s *Splitter) Delimiters() []string {
	d := make([]string, len(s.delimiters))
	copy(d, s.delimiters)
	return d
}

// Init initializes a Splitter with a text to split.
// s is either a newly created splitter, or we may re-initialize a splitter
// already in use.
func (s *Splitter) Init(text string) {
	s.text = text
	s.pos = 0
	s.matchStart = -1
	s.matchEnd = 0
	s.activeSegment = ""
	s.isDelimiter = false
}

// Next advances the Splitter to the next segment, which will then be available
// through the Text() method. It returns false when the end of the text has
// been reached.
func (s *Splitter) Next() bool {
	if s.pos >= len(s.text) {
		s.activeSegment = ""
		s.isDelimiter = false
		return false
	}
	if s.matchStart < s.pos {
		s.findMatch()
	}
	switch {
	case s.matchStart < 0: // no more delimiters: rest of text
		s.emit(len(s.text), false)
	case s.matchStart > s.pos: // text before the next delimiter
		s.emit(s.matchStart, false)
	default: // delimiter occurrence
		s.emit(s.matchEnd, true)
		s.matchStart = -1
	}
	CT().P("delimiter", s.isDelimiter).Debugf("segment = %q", s.activeSegment)
	return true
}

func (s *Splitter) emit(end int, isDelimiter bool) {
	s.activeSegment = s.text[s.pos:end]
	s.isDelimiter = isDelimiter
	s.pos = end
}

// findMatch looks for the earliest delimiter occurrence at or after the current
// position. Delimiters are ordered longest first, so for occurrences starting
// at the same position the first one found is the longest.
func (s *Splitter) findMatch() {
	s.matchStart, s.matchEnd = -1, 0
	rest := s.text[s.pos:]
	for _, d := range s.delimiters {
		i := strings.Index(rest, d)
		if i < 0 {
			continue
		}
		if s.matchStart < 0 || s.pos+i < s.matchStart {
			s.matchStart = s.pos + i
			s.matchEnd = s.matchStart + len(d)
		}
	}
}

// Text returns the most recent segment generated by a call to Next().
func (s *Splitter) Text() string {
	return s.activeSegment
}

// IsDelimiter is true if the most recent segment is an occurrence of one of
// the delimiters.
func (s *Splitter) IsDelimiter() bool {
	return s.isDelimiter
}

// Split splits text into segments, such that every occurrence of a delimiter is
// a segment of its own. See type Splitter for a description of the procedure.
//
// The delimiters slice is not modified.
func Split(text string, delimiters []string) []string {
	splitter := NewSplitter(delimiters...)
	splitter.Init(text)
	var segments []string
	for splitter.Next() {
		segments = append(segments, splitter.Text())
	}
	return segments
}
