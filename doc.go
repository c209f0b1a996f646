/*
Package furigana is about annotating Japanese words with their readings.

Description

Japanese text mixes logographic kanji with the phonetic kana scripts. Readers
are helped by furigana: small kana placed above (or beside) the kanji, spelling
out how they are pronounced. Given a word and its complete reading, the task is
to find out which part of the reading belongs to which part of the word.

   word     日の人
   reading  ひのひと
   result   日[ひ] の 人[ひと]

Kana already present in the word need no annotation, as long as the reading
repeats them verbatim at the corresponding position. Finding this alignment is
done without dictionaries or morphological analysis. It relies solely on the
kana which word and reading have in common.

Contents

The data model, i.e. ReadingPair and Pairs, lives in this base package. The
algorithms are found in sub-packages:

  kana     classification of code-points into kanji, hiragana, katakana
  segment  kana runs of a word and splitting text around them
  align    the alignment engine, entry point ReadingPairs(reading, word)

Command furigana (in cmd/furigana) aligns lists of tab-separated word/reading
pairs.

Alignment is a pure function of its inputs. It is safe to call it from
concurrent goroutines.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package furigana

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
