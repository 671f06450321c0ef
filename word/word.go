package word

import (
	"sync"
	"unicode"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/emoji"
)

//go:generate go run ./internal/generator -v

// setupOnce guards the initialization of the word range tables.
var setupOnce sync.Once

// SetupWordClasses initializes the code-point range tables for word
// breaking. Initialization is not done beforehand, as it consumes quite some
// memory. SetupWordClasses is called automatically by NewBreaker, and is
// safe to be called from concurrent goroutines.
//
// Word breaking relies on the emoji classes as well, so these are set up,
// too.
func SetupWordClasses() {
	setupOnce.Do(func() {
		tracer().Infof("setting up word class tables")
		setupWordClasses()
		emoji.SetupEmojiClasses()
	})
}

// ClassForRune returns the word break class for a Unicode code-point.
// ClassForRune is total: every rune maps to a class, with Any as the
// catch-all. It is safe for concurrent use once the tables are set up.
func ClassForRune(r rune) WordClass {
	for c := WordClass(0); c <= ExtendNumLetClass; c++ {
		urange := rangeFromWordClass[c]
		if urange != nil && unicode.Is(urange, r) {
			return c
		}
	}
	return Any
}

// Breaker is a type to provide word breaking for a Segmenter.
// Breakers are not safe for concurrent use; every goroutine gets its own.
type Breaker struct {
	state breakState
}

// NewBreaker creates a new UAX#29 word breaker, ready to be plugged into a
// segment.Segmenter.
//
// Clients may provide an empty Breaker{} themselves; the first call to
// Reset (done by Segmenter.Init) brings it into a usable state. NewBreaker
// additionally sets up the class tables.
func NewBreaker() *Breaker {
	SetupWordClasses()
	b := &Breaker{}
	b.Reset()
	return b
}

// Boundary reports whether a word boundary precedes code-point r. rest holds
// the unread rest of the text; the lookahead rules of UAX#29 (WB6, WB7b,
// WB12) peek into it without consuming anything.
//
// Boundary is part of interface segment.Breaker.
func (b *Breaker) Boundary(r rune, rest []byte) bool {
	brk, state := boundaryBefore(b.state, ClassForRune(r), r, rest)
	b.state = state
	return brk
}

// Reset brings the breaker back to the start-of-text state.
//
// Reset is part of interface segment.Breaker.
func (b *Breaker) Reset() {
	b.state = breakState{raw: sot, prev: sot, prev2: sot}
}

// Spans breaks a string into word segments in the sense of UAX#29 and
// returns the byte-offset spans of all segments, in text order. The spans
// are contiguous and cover the complete input; runs of punctuation and
// spacing form segments of their own. Invalid UTF-8 input results in an
// error and a nil span list.
func Spans(s string) ([]segment.Span, error) {
	SetupWordClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	var spans []segment.Span
	for seg.Next() {
		spans = append(spans, seg.Span())
	}
	if seg.Err() != nil {
		tracer().Errorf("word spans: %v", seg.Err())
		return nil, seg.Err()
	}
	return spans, nil
}

// Words breaks a string into words and returns them in text order. Unlike
// Spans, the segments between words (spacing and punctuation) are filtered
// out: a segment counts as a word if it contains at least one letter, digit
// or symbol-like code-point.
func Words(s string) []string {
	SetupWordClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	var words []string
	for seg.Next() {
		if isWord(seg.Text()) {
			words = append(words, seg.Text())
		}
	}
	if seg.Err() != nil {
		tracer().Errorf("words: %v", seg.Err())
	}
	return words
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}
