package sentence

import (
	"testing"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/internal/tracing"
	"github.com/gonlp/segment/internal/ucd"
	"github.com/stretchr/testify/require"
)

func TestSentenceClasses(t *testing.T) {
	tracing.SetTestingLog(t)
	c1 := ATermClass
	if c1.String() != "ATerm" {
		t.Errorf("String(ATermClass) should be 'ATerm', is %s", c1)
	}
	SetupSentenceClasses()
	inputs := []struct {
		r  rune
		cl SentenceClass
	}{
		{'.', ATermClass},
		{'!', STermClass},
		{'?', STermClass},
		{',', SContinueClass},
		{')', CloseClass},
		{'"', CloseClass},
		{' ', SpClass},
		{' ', SepClass},
		{'A', UpperClass},
		{'a', LowerClass},
		{'א', OLetterClass},
		{'7', NumericClass},
		{0x0301, ExtendClass},
		{0x00ad, FormatClass},
		{'+', Any},
	}
	for _, input := range inputs {
		if c := ClassForRune(input.r); c != input.cl {
			t.Errorf("%+q should be of class %s, is %s", input.r, input.cl, c)
		}
	}
}

func sentencesOf(t *testing.T, s string) []string {
	t.Helper()
	seg := segment.NewSegmenter(NewBreaker())
	seg.InitString(s)
	var sentences []string
	for seg.Next() {
		sentences = append(sentences, seg.Text())
	}
	require.NoError(t, seg.Err())
	return sentences
}

func TestSentenceSegments(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		name      string
		text      string
		sentences []string
	}{
		{"terminators", "Hello! How are you? Fine.",
			[]string{"Hello! ", "How are you? ", "Fine."}},
		{"space attaches left", "One.  Two.",
			[]string{"One.  ", "Two."}},
		{"abbreviation before lowercase", "At 5 p.m. we left. Done.",
			[]string{"At 5 p.m. we left. ", "Done."}},
		{"decimal number", "It costs 3.40 euro.",
			[]string{"It costs 3.40 euro."}},
		{"upper directly after aterm", "The U.S.A story.",
			[]string{"The U.S.A story."}},
		{"close after terminator", "He said “No.” Then left.",
			[]string{"He said “No.” ", "Then left."}},
		{"scontinue", "Wait, she said. No, really.",
			[]string{"Wait, she said. ", "No, really."}},
		{"paragraph separator", "one\ntwo",
			[]string{"one\n", "two"}},
		{"crlf", "one.\r\ntwo",
			[]string{"one.\r\n", "two"}},
		{"no terminator", "just a fragment",
			[]string{"just a fragment"}},
	}
	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			require.Equal(t, input.sentences, sentencesOf(t, input.text))
		})
	}
}

func TestSentenceSpansContiguous(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "Dr. No? Never. (Or so we thought.) The end."
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

func TestSentencesTestFile(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	SetupSentenceClasses()
	//
	tf, err := ucd.OpenTestFile("auxiliary/SentenceBreakTest.txt")
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
