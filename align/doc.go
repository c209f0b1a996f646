/*
Package align aligns the reading of a Japanese word to the segments of the word.

Entry point is ReadingPairs(reading, word). It chooses between two strategies:

If the word has hiragana between two runs of kanji (e.g. "日の人"), word and
reading are split at the kana runs of the word, and the fragments are paired
one by one. Otherwise (e.g. "対抗する", "ぶん回す") the common prefix and suffix
of word and reading are cut off, and the rest of the word gets the rest of the
reading.

   日の人   + ひのひと     => 日[ひ] の 人[ひと]
   対抗する + たいこうする => 対抗[たいこう] する

Fragments which are their own reading, and prolongation marks, are never
annotated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package align

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
