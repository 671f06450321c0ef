package grapheme

import (
	"testing"
	"unicode"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/internal/tracing"
	"github.com/gonlp/segment/internal/ucd"
)

func TestGraphemeClasses(t *testing.T) {
	tracing.SetTestingLog(t)
	c1 := LVClass
	if c1.String() != "LV" {
		t.Errorf("String(LVClass) should be 'LV', is %s", c1)
	}
	SetupGraphemeClasses()
	if !unicode.Is(Control, '\t') {
		t.Error("<TAB> should be identified as control character")
	}
	hangsyl := '개'
	if c := ClassForRune(hangsyl); c != LVClass {
		t.Errorf("Hang syllable GAE should be of class LV, is %s", c)
	}
	if c := ClassForRune('각'); c != LVTClass {
		t.Errorf("Hang syllable GAG should be of class LVT, is %s", c)
	}
	if c := ClassForRune(0x0301); c != ExtendClass {
		t.Errorf("combining acute accent should be of class Extend, is %s", c)
	}
	if c := ClassForRune(0x1f1e6); c != Regional_IndicatorClass {
		t.Errorf("RI letter A should be of class Regional_Indicator, is %s", c)
	}
	if c := ClassForRune('a'); c != Any {
		t.Errorf("'a' should be of class Any, is %s", c)
	}
	if c := ClassForRune(0); c != ControlClass {
		t.Errorf("NUL should be of class Control, is %s", c)
	}
}

func TestGraphemes1(t *testing.T) {
	tracing.SetTestingLog(t)
	SetupGraphemeClasses()
	//
	onGraphemes := NewBreaker()
	seg := segment.NewSegmenter(onGraphemes)
	seg.InitString("개=Hang Syllable GAE")
	seg.Next()
	t.Logf("Next() = %s\n", seg.Text())
	if seg.Err() != nil {
		t.Errorf("segmenter.Next() failed with error: %s", seg.Err())
	}
	if seg.Text() != "개" {
		t.Errorf("expected first grapheme of string to be '개' (Hang GAE), is '%v'", seg.Text())
	}
}

func TestGraphemes2(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	SetupGraphemeClasses()
	//
	onGraphemes := NewBreaker()
	seg := segment.NewSegmenter(onGraphemes)
	seg.InitString("Hello\tWorld!")
	output := ""
	for seg.Next() {
		t.Logf("Next() = %s\n", seg.Text())
		output += "_" + seg.Text()
	}
	if seg.Err() != nil {
		t.Errorf("segmenter.Next() failed with error: %s", seg.Err())
	}
	if output != "_H_e_l_l_o_\t_W_o_r_l_d_!" {
		t.Errorf("expected grapheme for every char pos, have %s", output)
	}
}

func TestGraphemeSpans(t *testing.T) {
	tracing.SetTestingLog(t)
	spans, err := Spans("ábc")
	if err != nil {
		t.Fatalf("unexpected segmentation error: %v", err)
	}
	if len(spans) != 3 {
		t.Fatalf("expected 3 grapheme spans, have %d: %v", len(spans), spans)
	}
	if spans[0] != (segment.Span{Start: 0, End: 3}) {
		t.Errorf("expected first span to cover 'a'+accent = [0:3), is %s", spans[0])
	}
	if spans[2] != (segment.Span{Start: 4, End: 5}) {
		t.Errorf("expected last span to be [4:5), is %s", spans[2])
	}
}

func TestGraphemeCount(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		text string
		n    int
	}{
		{"", 0},
		{"abc", 3},
		{"ábc", 3},
		{"\r\n", 1},
		{"🇩🇪🇦🇹", 2},
		{"👨‍👩‍👧", 1},
		{"👍🏽", 1},
		{"각", 1},
	}
	for _, input := range inputs {
		if n := Count(input.text); n != input.n {
			t.Errorf("expected %d graphemes in '%s', have %d", input.n, input.text, n)
		}
	}
}

func TestGraphemesTestFile(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	SetupGraphemeClasses()
	//
	tf, err := ucd.OpenTestFile("auxiliary/GraphemeBreakTest.txt")
	if err != nil {
		t.Skipf("UCD test data not available, run go generate: %v", err)
	}
	defer tf.Close()
	seg := segment.NewSegmenter(NewBreaker())
	failcnt, i := 0, 0
	for tf.Scan() {
		i++
		in, out := ucd.BreakTestInput(tf.Text())
		if !executeSingleTest(t, seg, i, in, out) {
			t.Logf("test #%d: %s", i, tf.Comment())
			failcnt++
		}
	}
	if err := tf.Err(); err != nil {
		t.Errorf("reading test file: %v", err)
	}
	if failcnt > 0 {
		t.Errorf("%d TEST CASES OUT of %d FAILED", failcnt, i)
	} else {
		t.Logf("%d TEST CASES OUT of %d FAILED", failcnt, i)
	}
}

func executeSingleTest(t *testing.T, seg *segment.Segmenter, tno int, in string, out []string) bool {
	seg.InitString(in)
	i := 0
	ok := true
	for seg.Next() {
		if i >= len(out) {
			t.Logf("test #%d: more segments than expected", tno)
			ok = false
		} else if out[i] != seg.Text() {
			t.Logf("test #%d: '%+q' should be '%+q'", tno, seg.Bytes(), out[i])
			ok = false
		}
		i++
	}
	if i != len(out) {
		t.Logf("test #%d: have %d segments, expected %d", tno, i, len(out))
		ok = false
	}
	return ok
}
