package segment

import (
	"errors"
	"testing"

	"github.com/gonlp/segment/internal/tracing"
	"github.com/stretchr/testify/require"
)

func TestSimpleSegmenter(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := NewSegmenter() // will use a SimpleWordBreaker
	seg.InitString("Hello World!")
	output := ""
	for seg.Next() {
		t.Logf("segment = '%s'", seg.Text())
		output += "_" + seg.Text()
	}
	if seg.Err() != nil {
		t.Errorf("segmenter.Next() failed with error: %s", seg.Err())
	}
	if output != "_Hello_ _World!" {
		t.Errorf("expected segments around whitespace, have %s", output)
	}
}

func TestSimpleSegmenterWhitespaceRuns(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := NewSegmenter()
	seg.InitString("a\t\n b")
	var segments []string
	for seg.Next() {
		segments = append(segments, seg.Text())
	}
	require.NoError(t, seg.Err())
	require.Equal(t, []string{"a", "\t\n ", "b"}, segments)
}

func TestSegmenterNotInitialized(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := NewSegmenter()
	if seg.Next() {
		t.Error("expected Next() of uninitialized segmenter to be false")
	}
	if !errors.Is(seg.Err(), ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, have %v", seg.Err())
	}
}

func TestSegmenterEmptyInput(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := NewSegmenter()
	seg.Init([]byte{})
	if seg.Next() {
		t.Error("expected no segments for empty input")
	}
	if seg.Err() != nil {
		t.Errorf("expected no error for empty input, have %v", seg.Err())
	}
}

func TestSegmenterInvalidInput(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := NewSegmenter()
	seg.Init([]byte{'a', 0xff, 'b'})
	for seg.Next() {
	}
	if !errors.Is(seg.Err(), ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, have %v", seg.Err())
	}
}

func TestSegmenterSpans(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "ab  cd"
	seg := NewSegmenter()
	seg.InitString(text)
	prev := 0
	for seg.Next() {
		span := seg.Span()
		require.Equal(t, prev, span.Start, "spans must be contiguous")
		require.Equal(t, span.Len(), len(seg.Bytes()))
		require.Equal(t, text[span.Start:span.End], seg.Text())
		prev = span.End
	}
	require.NoError(t, seg.Err())
	require.Equal(t, len(text), prev, "spans must cover the input")
}

func TestSegmenterReInit(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := NewSegmenter()
	seg.InitString("one two")
	for seg.Next() {
	}
	seg.InitString("three")
	require.True(t, seg.Next())
	require.Equal(t, "three", seg.Text())
	require.False(t, seg.Next())
}

func TestSegmenterPool(t *testing.T) {
	tracing.SetTestingLog(t)
	seg := BorrowSegmenter(NewSimpleWordBreaker())
	seg.InitString("lease me")
	var segments []string
	for seg.Next() {
		segments = append(segments, seg.Text())
	}
	require.Equal(t, []string{"lease", " ", "me"}, segments)
	ReleaseSegmenter(seg)

	seg = BorrowSegmenter(NewSimpleWordBreaker())
	defer ReleaseSegmenter(seg)
	if seg.Next() { // not initialized after borrowing
		t.Error("expected borrowed segmenter to require Init")
	}
	require.ErrorIs(t, seg.Err(), ErrNotInitialized)
}

func TestSpan(t *testing.T) {
	span := Span{Start: 3, End: 7}
	require.Equal(t, 4, span.Len())
	require.False(t, span.IsEmpty())
	require.Equal(t, "[3,7)", span.String())
	require.True(t, Span{Start: 2, End: 2}.IsEmpty())
}
