package align

import (
	"strings"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/furigana/segment"
)

// ElongationMarks are prolongation symbols which never carry a reading of
// their own when they form a segment by themselves.
var ElongationMarks = [...]string{"ー", "〜", "～", "ｰ"}

// IsElongationMark is a predicate for segments consisting of exactly one of
// the ElongationMarks.
func IsElongationMark(segment string) bool {
	for _, m := range ElongationMarks {
		if segment == m {
			return true
		}
	}
	return false
}

// ReadingPairs aligns reading to word and returns the segments of word, each
// with its reading or without one, if the segment is its own reading.
//
// Concatenating the segments of the result always reproduces word, and no
// segment is empty. An empty word results in an empty sequence. If reading is
// empty or equal to word, the result is the single pair (word, reading), with
// the reading dropped if equal to word.
//
// ReadingPairs never fails. It is a pure function of its arguments and safe
// for concurrent use.
func ReadingPairs(reading, word string) furigana.Pairs {
	if word == "" {
		return nil
	}
	var pairs furigana.Pairs
	switch {
	case reading == "" || reading == word:
		pairs = furigana.Pairs{furigana.WithReading(word, reading)}
	case HasKanaBetweenKanji(word):
		pairs = segmented(reading, word)
	default:
		pairs = trimmed(reading, word)
	}
	pairs = suppressReadings(pairs)
	T().P("word", word).Debugf("aligned %q => %s", reading, pairs)
	return pairs
}

// segmented splits word and reading at the kana runs of word and pairs the
// fragments by position. Consecutive bare fragments are merged.
//
// If reading does not repeat the kana of word, the fragment counts may differ.
// Then fragments are paired up to the shorter count, with the last pair taking
// all the remaining fragments of both sides.
func segmented(reading, word string) furigana.Pairs {
	delimiters := segment.KanaRuns(word)
	wordParts := segment.Split(word, delimiters)
	readingParts := segment.Split(reading, delimiters)
	n := min(len(wordParts), len(readingParts))
	if n == 0 {
		return furigana.Pairs{furigana.WithReading(word, reading)}
	}
	if len(wordParts) != len(readingParts) {
		T().Infof("fragment count mismatch for %q/%q: %d vs %d, joining tail",
			word, reading, len(wordParts), len(readingParts))
		wordParts = joinTail(wordParts, n)
		readingParts = joinTail(readingParts, n)
	}
	var pairs furigana.Pairs
	var pending strings.Builder // bare text not yet emitted
	for i, w := range wordParts {
		if w == readingParts[i] {
			pending.WriteString(w)
			continue
		}
		if pending.Len() > 0 {
			pairs = append(pairs, furigana.Bare(pending.String()))
			pending.Reset()
		}
		pairs = append(pairs, furigana.WithReading(w, readingParts[i]))
	}
	if pending.Len() > 0 {
		pairs = append(pairs, furigana.Bare(pending.String()))
	}
	return pairs
}

// joinTail returns a new slice of n parts, the last one being the concatenation
// of parts[n-1:].
func joinTail(parts []string, n int) []string {
	joined := make([]string, n)
	copy(joined, parts[:n-1])
	joined[n-1] = strings.Join(parts[n-1:], "")
	return joined
}

// trimmed cuts off the common prefix and suffix of word and reading, which need
// no reading. The rest of word gets the rest of reading.
func trimmed(reading, word string) furigana.Pairs {
	if !shareCharacters(word, reading) {
		return furigana.Pairs{furigana.WithReading(word, reading)}
	}
	front, back := MatchEdges(word, reading)
	wr, rr := []rune(word), []rune(reading)
	f, b := len([]rune(front)), len([]rune(back))
	if limit := min(len(wr), len(rr)) - f; b > limit { // edges overlap
		b = limit
		back = string(wr[len(wr)-b:])
	}
	T().Debugf("edges of %q/%q: front = %q, back = %q", word, reading, front, back)
	var pairs furigana.Pairs
	if f > 0 {
		pairs = append(pairs, furigana.Bare(front))
	}
	if mid := wr[f : len(wr)-b]; len(mid) > 0 {
		pairs = append(pairs, furigana.WithReading(string(mid), string(rr[f:len(rr)-b])))
	}
	if b > 0 {
		pairs = append(pairs, furigana.Bare(back))
	}
	return pairs
}

// suppressReadings drops readings which are equal to their segment, and
// readings of standalone elongation marks.
func suppressReadings(pairs furigana.Pairs) furigana.Pairs {
	for i, p := range pairs {
		if p.Annotated && (p.Reading == p.Segment || IsElongationMark(p.Segment)) {
			pairs[i] = furigana.Bare(p.Segment)
		}
	}
	return pairs
}
