package segment

import "unicode"

// SimpleWordBreaker is a fallback breaking logic with no claim to Unicode
// conformance: it reports a boundary wherever the input switches between a
// run of whitespace and a run of anything else. Runs of whitespace are
// kept together as segments of their own, so that the spans still
// partition the buffer.
//
// SimpleWordBreaker is the default breaker of a Segmenter created without
// one. For linguistically meaningful word boundaries use the word
// sub-package instead.
type SimpleWordBreaker struct {
	started bool
	inSpace bool
}

// NewSimpleWordBreaker creates a breaker segmenting around whitespace runs.
func NewSimpleWordBreaker() *SimpleWordBreaker {
	return &SimpleWordBreaker{}
}

// Boundary reports a boundary whenever r switches between whitespace and
// non-whitespace (interface segment.Breaker).
func (swb *SimpleWordBreaker) Boundary(r rune, rest []byte) bool {
	space := unicode.IsSpace(r)
	if !swb.started {
		swb.started = true
		swb.inSpace = space
		return true
	}
	boundary := space != swb.inSpace
	swb.inSpace = space
	return boundary
}

// Reset discards all run state (interface segment.Breaker).
func (swb *SimpleWordBreaker) Reset() {
	swb.started = false
	swb.inSpace = false
}
