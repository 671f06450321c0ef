package word

import (
	"testing"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/internal/tracing"
	"github.com/gonlp/segment/internal/ucd"
	"github.com/stretchr/testify/require"
)

func TestWordClasses(t *testing.T) {
	tracing.SetTestingLog(t)
	c1 := ALetterClass
	if c1.String() != "ALetter" {
		t.Errorf("String(ALetterClass) should be 'ALetter', is %s", c1)
	}
	SetupWordClasses()
	inputs := []struct {
		r  rune
		cl WordClass
	}{
		{'a', ALetterClass},
		{'5', NumericClass},
		{':', MidLetterClass},
		{',', MidNumClass},
		{'.', MidNumLetClass},
		{'_', ExtendNumLetClass},
		{' ', WSegSpaceClass},
		{'\r', CRClass},
		{'', NewlineClass},
		{'א', Hebrew_LetterClass},
		{'カ', KatakanaClass},
		{'あ', Any},
		{'世', Any},
		{0x0301, ExtendClass},
		{0x00ad, FormatClass},
		{0x200d, ZWJClass},
		{0x1f1e6, Regional_IndicatorClass},
	}
	for _, input := range inputs {
		if c := ClassForRune(input.r); c != input.cl {
			t.Errorf("%+q should be of class %s, is %s", input.r, input.cl, c)
		}
	}
}

func wordsOf(t *testing.T, s string) []string {
	t.Helper()
	seg := segment.NewSegmenter(NewBreaker())
	seg.InitString(s)
	var segments []string
	for seg.Next() {
		segments = append(segments, seg.Text())
	}
	require.NoError(t, seg.Err())
	return segments
}

func TestWordSegments(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		name     string
		text     string
		segments []string
	}{
		{"simple", "Good morning!", []string{"Good", " ", "morning", "!"}},
		{"apostrophe", "can't", []string{"can't"}},
		{"decimal number", "3.14", []string{"3.14"}},
		{"thousands", "1,000,000", []string{"1,000,000"}},
		{"colon joins letters", "a:b", []string{"a:b"}},
		{"abbreviation", "U.S.A. now", []string{"U.S.A", ".", " ", "now"}},
		{"trailing mid-letter", "out: in", []string{"out", ":", " ", "in"}},
		{"underscore", "foo_bar42", []string{"foo_bar42"}},
		{"hebrew quote", "א\"א", []string{"א\"א"}},
		{"katakana run", "カタカナ preserved", []string{"カタカナ", " ", "preserved"}},
		{"han breaks everywhere", "世界", []string{"世", "界"}},
		{"spaces collapse", "a  b", []string{"a", "  ", "b"}},
		{"newline splits spaces", "a \nb", []string{"a", " ", "\n", "b"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"flags", "🇩🇪🇦🇹", []string{"🇩🇪", "🇦🇹"}},
		{"flag with zwnj", "🇦‌🇦🇦", []string{"🇦‌🇦", "🇦"}},
		{"zwj pictograph", "👩‍🔬!", []string{"👩‍🔬", "!"}},
		{"combining mark attaches", "é x", []string{"é", " ", "x"}},
	}
	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			require.Equal(t, input.segments, wordsOf(t, input.text))
		})
	}
}

func TestWords(t *testing.T) {
	tracing.SetTestingLog(t)
	words := Words("Hello, World! It's 9.15am.")
	require.Equal(t, []string{"Hello", "World", "It's", "9.15am"}, words)
}

func TestWordSpansContiguous(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "The quick (“brown”) fox can’t jump 32.3 feet, right?"
	spans, err := Spans(text)
	require.NoError(t, err)
	require.NotEmpty(t, spans)
	prev := 0
	for _, span := range spans {
		require.Equal(t, prev, span.Start, "spans must be contiguous")
		require.False(t, span.IsEmpty())
		prev = span.End
	}
	require.Equal(t, len(text), prev, "spans must cover the input")
}

func TestWordsTestFile(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	SetupWordClasses()
	//
	tf, err := ucd.OpenTestFile("auxiliary/WordBreakTest.txt")
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
