package furigana

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestBracketNotation(t *testing.T) {
	pp := Pairs{WithReading("日", "ひ"), Bare("の"), WithReading("人", "ひと")}
	if s := pp.String(); s != "日[ひ]の人[ひと]" {
		t.Errorf("expected bracket notation 日[ひ]の人[ひと], have %s", s)
	}
	if w := pp.Word(); w != "日の人" {
		t.Errorf("expected word to be 日の人, is %s", w)
	}
	if s := WithReading("日", "").String(); s != "日[]" {
		t.Errorf("empty reading should be visible as [], is %s", s)
	}
}

func TestJSONNullReading(t *testing.T) {
	pp := Pairs{Bare("あの"), WithReading("日", "ひ"), WithReading("x", "")}
	b, err := json.Marshal(pp)
	if err != nil {
		t.Fatal(err)
	}
	expected := `[{"segment":"あの","reading":null},{"segment":"日","reading":"ひ"},{"segment":"x","reading":""}]`
	if string(b) != expected {
		t.Errorf("expected %s, have %s", expected, string(b))
	}
	var back Pairs
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 3 || back[0].Annotated || !back[2].Annotated || back[2].Reading != "" {
		t.Errorf("decoding lost the difference between null and empty reading: %#v", back)
	}
}

func ExamplePairs_String() {
	pp := Pairs{WithReading("対抗", "たいこう"), Bare("する")}
	fmt.Println(pp)
	// Output: 対抗[たいこう]する
}
