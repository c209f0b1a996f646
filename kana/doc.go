/*
Package kana classifies code-points of Japanese text.

Classification uses fixed code-point ranges, not the Unicode script property.
The ranges are closed and must not change, as clients rely on them for
compatibility:

  Kanji     U+4E00…U+9FAF, U+3400…U+4DBF (CJK extension A)
  Hiragana  U+3041…U+3096
  Katakana  U+30A1…U+30F6

Predicate IsJapanese uses a broader set of ranges, covering the complete
hiragana and katakana blocks, the CJK unified ideographs and the katakana
phonetic extensions.

Only single code-points are tested. Input is expected to be precomposed; there
is no handling of combining marks. Clients reading text from outside sources
may call Prepare first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package kana

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
