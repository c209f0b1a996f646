package align

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/furigana/kana"
)

// MatchEdges returns the longest common prefix and the longest common suffix
// of a and b, compared code-point by code-point. Either may be empty.
//
// Prefix and suffix are computed independently and may overlap for short
// strings, e.g. for "ああ" and "あああ" both are "ああ".
func MatchEdges(a, b string) (front, back string) {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	f := 0
	for f < n && ra[f] == rb[f] {
		f++
	}
	k := 0
	for k < n && ra[len(ra)-1-k] == rb[len(rb)-1-k] {
		k++
	}
	return string(ra[:f]), string(ra[len(ra)-k:])
}

// --- Interleaving ----------------------------------------------------------

// interleaveFn is a state of the automaton recognizing kanji–hiragana–kanji.
// It consumes the class of a code-point and returns the next state. A nil
// state signals acceptance.
type interleaveFn func(kana.Class) interleaveFn

// HasKanaBetweenKanji checks if word contains a run of hiragana strictly between
// two runs of kanji, as in "日の人". Any code-point which is neither kanji nor
// hiragana (katakana, 'ー', punctuation, Latin, digits) starts over.
//
//   日の人   => true
//   対抗する => false (no kanji after the kana)
//   ぶん回す => false
func HasKanaBetweenKanji(word string) bool {
	var state interleaveFn = seekKanji
	for _, r := range word {
		if state = state(kana.ClassForRune(r)); state == nil {
			return true
		}
	}
	return false
}

// No kanji seen since the last reset.
func seekKanji(c kana.Class) interleaveFn {
	if c == kana.Kanji {
		return inKanji
	}
	return seekKanji
}

// Within a run of kanji.
func inKanji(c kana.Class) interleaveFn {
	switch c {
	case kana.Kanji:
		return inKanji
	case kana.Hiragana:
		return afterKana
	}
	return seekKanji
}

// Hiragana following a run of kanji.
func afterKana(c kana.Class) interleaveFn {
	switch c {
	case kana.Kanji:
		return nil
	case kana.Hiragana:
		return afterKana
	}
	return seekKanji
}

// --- Character sets --------------------------------------------------------

func charSet(s string) *hashset.Set {
	set := hashset.New()
	for _, r := range s {
		set.Add(r)
	}
	return set
}

// shareCharacters is true if the sets of distinct code-points of a and b intersect.
func shareCharacters(a, b string) bool {
	sa, sb := charSet(a), charSet(b)
	if sa.Size() > sb.Size() {
		sa, sb = sb, sa
	}
	for _, r := range sa.Values() {
		if sb.Contains(r) {
			return true
		}
	}
	return false
}
