package grapheme

import (
	"strings"
	"testing"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/internal/tracing"
	"github.com/stretchr/testify/require"
)

func graphemesOf(t *testing.T, s string) []string {
	t.Helper()
	seg := segment.NewSegmenter(NewBreaker())
	seg.InitString(s)
	var clusters []string
	for seg.Next() {
		clusters = append(clusters, seg.Text())
	}
	require.NoError(t, seg.Err())
	return clusters
}

func TestRulesClusters(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		name     string
		text     string
		clusters []string
	}{
		{"CRLF", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"lone CR", "a\rb", []string{"a", "\r", "b"}},
		{"combining marks", "é̂f", []string{"é̂", "f"}},
		{"flags", "🇩🇪🇦🇹", []string{"🇩🇪", "🇦🇹"}},
		{"odd flag run", "🇦🇦🇦", []string{"🇦🇦", "🇦"}},
		{"flag with accent", "🇦̈🇦", []string{"🇦̈", "🇦"}},
		{"zwj family", "👨‍👩‍👧!", []string{"👨‍👩‍👧", "!"}},
		{"skin tone", "👍🏽ok", []string{"👍🏽", "o", "k"}},
		{"no zwj sequence without pictograph", "a‍👍", []string{"a‍", "👍"}},
		{"hangul jamo", "각ᄀ", []string{"각", "ᄀ"}},
		{"devanagari spacing mark", "नि", []string{"नि"}},
		{"prepend", "؀١;", []string{"؀١", ";"}},
		{"control breaks", "a​b", []string{"a", "​", "b"}},
	}
	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			require.Equal(t, input.clusters, graphemesOf(t, input.text))
		})
	}
}

func TestSpansExhaustiveAndContiguous(t *testing.T) {
	tracing.SetTestingLog(t)
	texts := []string{
		"Hello, World!",
		"हिन्दी में नमस्ते",
		"👨‍👩‍👧🇩🇪é\r\n각",
		"개=Hang Syllable GAE",
	}
	for _, text := range texts {
		spans, err := Spans(text)
		require.NoError(t, err)
		require.NotEmpty(t, spans)
		require.Equal(t, 0, spans[0].Start)
		require.Equal(t, len(text), spans[len(spans)-1].End)
		var rebuilt strings.Builder
		prev := 0
		for _, span := range spans {
			require.Equal(t, prev, span.Start, "spans must be contiguous")
			require.False(t, span.IsEmpty(), "spans must be non-empty")
			rebuilt.WriteString(text[span.Start:span.End])
			prev = span.End
		}
		require.Equal(t, text, rebuilt.String(), "spans must cover the input")
	}
}

func TestBreakerRestart(t *testing.T) {
	tracing.SetTestingLog(t)
	breaker := NewBreaker()
	seg := segment.NewSegmenter(breaker)
	text := "🇩🇪🇦🇹 é!"
	scan := func() []segment.Span {
		seg.InitString(text)
		var spans []segment.Span
		for seg.Next() {
			spans = append(spans, seg.Span())
		}
		return spans
	}
	first := scan()
	second := scan()
	require.Equal(t, first, second, "re-initialized segmenter must reproduce spans")
}
