package segment

import (
	"github.com/npillmayer/furigana/kana"
)

// KanaRuns returns the maximal runs of non-kanji characters of s, in order.
// Kanji act as separators and are not part of the result. Despite the name,
// runs contain anything which is not a kanji, i.e. punctuation and Latin letters
// as well.
//
// Duplicate runs are preserved: the same kana may well occur more than once
// in a word.
func KanaRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if kana.IsKanji(r) {
			if start >= 0 {
				runs = append(runs, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}
