package kana

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// KatakanaOffset is the distance between a hiragana code-point and its
// katakana counterpart.
const KatakanaOffset = 0x60

// NormalizeReadingScript re-cases a hiragana reading to katakana wherever the word
// is written in katakana at the same position.
//
// If reading and word differ in length (counted in code-points), reading is returned
// unchanged. Otherwise, for every position i where reading[i] is hiragana and
// word[i] is katakana, reading[i] is replaced by the katakana code-point
// KatakanaOffset above it. All other code-points of reading are kept.
//
// Hiragana and katakana never share code-points. Clients apply this before
// alignment if a word written in katakana should be recognized as sharing
// characters with a reading given in hiragana.
func NormalizeReadingScript(reading, word string) string {
	rr, wr := []rune(reading), []rune(word)
	if len(rr) != len(wr) {
		return reading
	}
	changed := false
	for i, r := range rr {
		if IsHiragana(r) && IsKatakana(wr[i]) {
			rr[i] = r + KatakanaOffset
			changed = true
		}
	}
	if !changed {
		return reading
	}
	T().Debugf("reading %q re-cased to %q for %q", reading, string(rr), word)
	return string(rr)
}

// Prepare cleans up text from outside sources before classification:
// halfwidth forms (e.g. "ﾊｰﾄ") are folded to their fullwidth counterparts, then the
// text is brought to Unicode normal form C, composing voiced sound marks with
// their base kana.
//
// Only halfwidth forms are widened. ASCII and other narrow characters are left
// alone.
func Prepare(s string) string {
	var buf []rune
	for _, r := range s {
		if p := width.LookupRune(r); p.Kind() == width.EastAsianHalfwidth {
			if w := p.Wide(); w != 0 {
				r = w
			}
		}
		buf = append(buf, r)
	}
	return norm.NFC.String(string(buf))
}
