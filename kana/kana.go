package kana

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Class is the script class of a code-point.
type Class int8

// Script classes
const (
	Other    Class = iota // anything else, including punctuation, 'ー', Latin, digits
	Kanji                 // CJK ideograph
	Hiragana              // hiragana syllable
	Katakana              // katakana syllable
)

func (c Class) String() string {
	switch c {
	case Kanji:
		return "Kanji"
	case Hiragana:
		return "Hiragana"
	case Katakana:
		return "Katakana"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("Class(%d)", int8(c))
}

// KanjiRange holds the code-points classified as kanji.
var KanjiRange = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9faf, 1},
	},
}

// HiraganaRange holds the code-points classified as hiragana.
var HiraganaRange = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3041, 0x3096, 1},
	},
}

// KatakanaRange holds the code-points classified as katakana.
var KatakanaRange = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x30a1, 0x30f6, 1},
	},
}

// JapaneseRange is the union of all the blocks tested by IsJapanese.
var JapaneseRange = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{0x3040, 0x309f, 1}}}, // Hiragana block
	&unicode.RangeTable{R16: []unicode.Range16{{0x30a0, 0x30ff, 1}}}, // Katakana block
	&unicode.RangeTable{R16: []unicode.Range16{{0x31f0, 0x31ff, 1}}}, // Katakana phonetic extensions
	&unicode.RangeTable{R16: []unicode.Range16{{0x4e00, 0x9fff, 1}}}, // CJK unified ideographs
)

// rangeFromClass is indexed by Class.
var rangeFromClass = [...]*unicode.RangeTable{
	nil, KanjiRange, HiraganaRange, KatakanaRange,
}

// ClassForRune returns the script class of a code-point.
// Returns one of Kanji, Hiragana, Katakana or Other.
func ClassForRune(r rune) Class {
	for c := Kanji; c <= Katakana; c++ {
		if unicode.Is(rangeFromClass[c], r) {
			return c
		}
	}
	return Other
}

// IsKanji is a predicate for code-points of class Kanji.
func IsKanji(r rune) bool {
	return unicode.Is(KanjiRange, r)
}

// IsHiragana is a predicate for code-points of class Hiragana.
func IsHiragana(r rune) bool {
	return unicode.Is(HiraganaRange, r)
}

// IsKatakana is a predicate for code-points of class Katakana.
func IsKatakana(r rune) bool {
	return unicode.Is(KatakanaRange, r)
}

// IsJapanese checks if a code-point belongs to one of the Japanese blocks:
// hiragana, katakana, katakana phonetic extensions, or CJK unified ideographs.
//
// This is broader than the union of Kanji, Hiragana and Katakana. For example,
// 'ー' (U+30FC) is Japanese, but of class Other.
func IsJapanese(r rune) bool {
	return unicode.Is(JapaneseRange, r)
}

// IsJapaneseString checks if every code-point of s is Japanese.
// The empty string is considered Japanese.
func IsJapaneseString(s string) bool {
	for _, r := range s {
		if !IsJapanese(r) {
			return false
		}
	}
	return true
}
