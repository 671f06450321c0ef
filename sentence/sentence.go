package sentence

import (
	"sync"
	"unicode"

	"github.com/gonlp/segment"
)

//go:generate go run ./internal/generator -v

// setupOnce guards the initialization of the sentence range tables.
var setupOnce sync.Once

// SetupSentenceClasses initializes the code-point range tables for sentence
// breaking. Initialization is not done beforehand, as it consumes quite some
// memory. SetupSentenceClasses is called automatically by NewBreaker, and is
// safe to be called from concurrent goroutines.
func SetupSentenceClasses() {
	setupOnce.Do(func() {
		tracer().Infof("setting up sentence class tables")
		setupSentenceClasses()
	})
}

// ClassForRune returns the sentence break class for a Unicode code-point.
// ClassForRune is total: every rune maps to a class, with Any as the
// catch-all. It is safe for concurrent use once the tables are set up.
func ClassForRune(r rune) SentenceClass {
	for c := SentenceClass(0); c <= OLetterClass; c++ {
		urange := rangeFromSentenceClass[c]
		if urange != nil && unicode.Is(urange, r) {
			return c
		}
	}
	return Any
}

// Breaker is a type to provide sentence breaking for a Segmenter.
// Breakers are not safe for concurrent use; every goroutine gets its own.
type Breaker struct {
	state breakState
}

// NewBreaker creates a new UAX#29 sentence breaker, ready to be plugged
// into a segment.Segmenter.
//
// Clients may provide an empty Breaker{} themselves; the first call to
// Reset (done by Segmenter.Init) brings it into a usable state. NewBreaker
// additionally sets up the class tables.
func NewBreaker() *Breaker {
	SetupSentenceClasses()
	b := &Breaker{}
	b.Reset()
	return b
}

// Boundary reports whether a sentence boundary precedes code-point r. rest
// holds the unread rest of the text; rule SB8 of UAX#29 peeks into it
// without consuming anything.
//
// Boundary is part of interface segment.Breaker.
func (b *Breaker) Boundary(r rune, rest []byte) bool {
	brk, state := boundaryBefore(b.state, ClassForRune(r), rest)
	b.state = state
	return brk
}

// Reset brings the breaker back to the start-of-text state.
//
// Reset is part of interface segment.Breaker.
func (b *Breaker) Reset() {
	b.state = breakState{raw: sot, prev: sot}
}

// Spans breaks a string into sentences and returns the byte-offset spans of
// all sentences, in text order. The spans are contiguous and cover the
// complete input; spacing after a terminating punctuation mark belongs to
// the preceding sentence. Invalid UTF-8 input results in an error and a nil
// span list.
func Spans(s string) ([]segment.Span, error) {
	SetupSentenceClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	var spans []segment.Span
	for seg.Next() {
		spans = append(spans, seg.Span())
	}
	if seg.Err() != nil {
		tracer().Errorf("sentence spans: %v", seg.Err())
		return nil, seg.Err()
	}
	return spans, nil
}

// Sentences breaks a string into sentences and returns them in text order.
func Sentences(s string) []string {
	SetupSentenceClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	var sentences []string
	for seg.Next() {
		sentences = append(sentences, seg.Text())
	}
	if seg.Err() != nil {
		tracer().Errorf("sentences: %v", seg.Err())
	}
	return sentences
}
