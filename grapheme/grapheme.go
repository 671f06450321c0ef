package grapheme

import (
	"sync"
	"unicode"

	"github.com/gonlp/segment"
	"github.com/gonlp/segment/emoji"
)

//go:generate go run ./internal/generator -v

// setupOnce guards the initialization of the grapheme range tables.
var setupOnce sync.Once

// SetupGraphemeClasses initializes the code-point range tables for grapheme
// cluster breaking. Initialization is not done beforehand, as it consumes
// quite some memory. SetupGraphemeClasses is called automatically by
// NewBreaker, and is safe to be called from concurrent goroutines.
//
// Grapheme breaking relies on the emoji classes as well, so these are set
// up, too.
func SetupGraphemeClasses() {
	setupOnce.Do(func() {
		tracer().Infof("setting up grapheme class tables")
		setupGraphemeClasses()
		emoji.SetupEmojiClasses()
	})
}

// ClassForRune returns the grapheme cluster break class for a Unicode
// code-point. ClassForRune is total: every rune maps to a class, with Any
// as the catch-all. It is safe for concurrent use once the tables are set up.
func ClassForRune(r rune) GraphemeClass {
	if r >= 0xac00 && r <= 0xd7a3 {
		// Precomposed Hangul syllables follow the arithmetic of the
		// Unicode standard, ch. 3.12: every 28th syllable is an LV.
		if (r-0xac00)%28 == 0 {
			return LVClass
		}
		return LVTClass
	}
	for c := GraphemeClass(0); c <= ControlClass; c++ {
		urange := rangeFromGraphemeClass[c]
		if urange != nil && unicode.Is(urange, r) {
			return c
		}
	}
	return Any
}

// Breaker is a type to provide grapheme cluster breaking for a Segmenter.
// Breakers are not safe for concurrent use; every goroutine gets its own.
type Breaker struct {
	state breakState
}

// NewBreaker creates a new UAX#29 grapheme cluster breaker, ready to be
// plugged into a segment.Segmenter.
//
// Clients may provide an empty Breaker{} themselves; the first call to
// Reset (done by Segmenter.Init) brings it into a usable state. NewBreaker
// additionally sets up the class tables.
func NewBreaker() *Breaker {
	SetupGraphemeClasses()
	b := &Breaker{}
	b.Reset()
	return b
}

// Boundary reports whether a grapheme cluster boundary precedes code-point r.
// Grapheme cluster breaking needs no lookahead, so the remaining text is
// ignored.
//
// Boundary is part of interface segment.Breaker.
func (b *Breaker) Boundary(r rune, _ []byte) bool {
	brk, state := boundaryBefore(b.state, ClassForRune(r), r)
	b.state = state
	return brk
}

// Reset brings the breaker back to the start-of-text state.
//
// Reset is part of interface segment.Breaker.
func (b *Breaker) Reset() {
	b.state = breakState{prev: sot}
}

// Spans breaks a string into grapheme clusters and returns the byte-offset
// spans of all clusters, in text order. The spans are contiguous and cover
// the complete input. Invalid UTF-8 input results in an error and a nil
// span list.
//
// Spans is a convenience for one-shot scans; for iterating large texts
// clients should use a Segmenter directly.
func Spans(s string) ([]segment.Span, error) {
	SetupGraphemeClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	var spans []segment.Span
	for seg.Next() {
		spans = append(spans, seg.Span())
	}
	if seg.Err() != nil {
		tracer().Errorf("grapheme spans: %v", seg.Err())
		return nil, seg.Err()
	}
	return spans, nil
}

// Count returns the number of grapheme clusters in a string, i.e. its length
// in terms of user perceived characters.
func Count(s string) int {
	SetupGraphemeClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	n := 0
	for seg.Next() {
		n++
	}
	if seg.Err() != nil {
		tracer().Errorf("grapheme count: %v", seg.Err())
	}
	return n
}
