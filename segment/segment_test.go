package segment

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKanaRuns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer gtrace.Mute()
	//
	inputs := []struct {
		word string
		runs []string
	}{
		{"日の人", []string{"の"}},
		{"あの日の人", []string{"あの", "の"}},
		{"寄り添って笑顔にしたり", []string{"り", "って", "にしたり"}},
		{"ハート型", []string{"ハート"}},
		{"日の日の日", []string{"の", "の"}},
		{"稲葉曇", nil},
		{"", nil},
		{"abc", []string{"abc"}},
	}
	for _, input := range inputs {
		runs := KanaRuns(input.word)
		if !reflect.DeepEqual(runs, input.runs) {
			t.Errorf("expected kana runs of %q to be %q, are %q", input.word, input.runs, runs)
		}
	}
}

func TestSplitter1(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer gtrace.Mute()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	splitter := NewSplitter("の")
	splitter.Init("ひのひと")
	n, delims := 0, 0
	for splitter.Next() {
		t.Logf("segment = '%s', delimiter = %v", splitter.Text(), splitter.IsDelimiter())
		n++
		if splitter.IsDelimiter() {
			delims++
		}
	}
	if n != 3 || delims != 1 {
		t.Errorf("expected 3 segments with 1 delimiter, have %d with %d", n, delims)
	}
	if splitter.Next() {
		t.Errorf("exhausted splitter should not advance")
	}
}

func TestSplitterReInit(t *testing.T) {
	splitter := NewSplitter("の")
	splitter.Init("日の人")
	for splitter.Next() {
	}
	splitter.Init("あの")
	var segs []string
	for splitter.Next() {
		segs = append(segs, splitter.Text())
	}
	if !reflect.DeepEqual(segs, []string{"あ", "の"}) {
		t.Errorf("re-initialized splitter returned %q", segs)
	}
}

func TestDelimiterOrder(t *testing.T) {
	delims := []string{"り", "って", "", "にしたり", "て"}
	splitter := NewSplitter(delims...)
	expected := []string{"にしたり", "って", "り", "て"}
	if d := splitter.Delimiters(); !reflect.DeepEqual(d, expected) {
		t.Errorf("expected delimiters to be ordered as %q, are %q", expected, d)
	}
	if delims[0] != "り" || delims[3] != "にしたり" {
		t.Errorf("client's delimiter slice has been modified: %q", delims)
	}
}

func TestSplit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer gtrace.Mute()
	//
	inputs := []struct {
		text       string
		delimiters []string
		segments   []string
	}{
		{"日の人", []string{"の"}, []string{"日", "の", "人"}},
		{"ひのひと", []string{"の"}, []string{"ひ", "の", "ひと"}},
		{"あの日の人", []string{"あの", "の"}, []string{"あの", "日", "の", "人"}},
		{"あのひのひと", []string{"あの", "の"}, []string{"あの", "ひ", "の", "ひと"}},
		{"寄り添って笑顔にしたり", []string{"り", "って", "にしたり"},
			[]string{"寄", "り", "添", "って", "笑顔", "にしたり"}},
		{"よりそってえがおにしたり", []string{"り", "って", "にしたり"},
			[]string{"よ", "り", "そ", "って", "えがお", "にしたり"}},
		{"かんがえかた", []string{"え"}, []string{"かんが", "え", "かた"}},
		{"ののの", []string{"の"}, []string{"の", "の", "の"}},
		{"abc", nil, []string{"abc"}},
		{"abc", []string{""}, []string{"abc"}},
		{"", []string{"の"}, nil},
		{"ab", []string{"b", "ab"}, []string{"ab"}}, // longer one at the same position wins
	}
	for _, input := range inputs {
		segs := Split(input.text, input.delimiters)
		if !reflect.DeepEqual(segs, input.segments) {
			t.Errorf("expected %q split by %q to be %q, is %q", input.text, input.delimiters,
				input.segments, segs)
		}
		if strings.Join(segs, "") != input.text {
			t.Errorf("segments %q do not reconstruct %q", segs, input.text)
		}
	}
}

func ExampleSplitter() {
	splitter := NewSplitter(KanaRuns("あの日の人")...)
	splitter.Init("あのひのひと")
	for splitter.Next() {
		fmt.Printf("%s delimiter=%v\n", splitter.Text(), splitter.IsDelimiter())
	}
	// Output:
	// あの delimiter=true
	// ひ delimiter=false
	// の delimiter=true
	// ひと delimiter=false
}
