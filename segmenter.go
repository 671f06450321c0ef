package segment

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// A Breaker is the breaking logic driving a Segmenter. It decides for each
// position between two adjacent code-points whether a segment boundary
// exists there, according to one of the UAX rule sets (or any other
// user-defined notion of a segment).
//
// A Segmenter feeds every code-point of a segmentation run to its breaker
// exactly once, in buffer order. rest holds the not yet decoded bytes
// following r; rule sets with bounded lookahead may peek into it but must
// not retain it. The boundary reported is the one preceding r.
//
// Breakers carry the transient state of one scan and are not safe for
// concurrent use; create one breaker per segmentation run, or call Reset
// before re-using one.
type Breaker interface {
	Boundary(r rune, rest []byte) bool
	Reset()
}

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting an input buffer.
var ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")

// ErrInvalidUTF8 flags malformed input. Segmenting operates on Unicode
// scalar values only; an input buffer that cannot be decoded is rejected
// at the position of the offending byte, and the segmentation run stops.
var ErrInvalidUTF8 = errors.New("segmenter input is not valid UTF-8")

// A Segmenter breaks an in-memory text buffer into smaller parts, called
// segments. It resembles bufio.Scanner: successive calls to Next step
// through the segments of the buffer.
//
// The specification of a segment is given by a Breaker; sub-packages of
// this module provide breakers for the UAX#29 boundary classes (grapheme
// clusters, words, sentences).
type Segmenter struct {
	breaker Breaker // our work horse
	text    []byte  // the buffer we segment
	pos     int     // byte position where the current segment starts
	cursor  int     // byte position of the next code-point to decode
	span    Span    // the most recent segment
	inUse   bool    // Init(...) has been called
	err     error
}

// NewSegmenter creates a new Segmenter for a given breaking logic.
// Specifying no breaker results in getting a SimpleWordBreaker, which will
// break around runs of whitespace (see SimpleWordBreaker in this package).
//
// Before using a newly created segmenter, clients have to call Init(...) or
// InitString(...) on it to set an input buffer.
func NewSegmenter(breakers ...Breaker) *Segmenter {
	s := &Segmenter{}
	if len(breakers) == 0 {
		s.breaker = NewSimpleWordBreaker()
	} else {
		s.breaker = breakers[0]
	}
	return s
}

// Init initializes a Segmenter to read from buf. It may be called on a
// newly created segmenter or to restart a segmenter already in use; rule
// state from a previous run is discarded either way.
//
// The buffer is not copied. It must not be mutated while the segmenter
// is in use.
func (s *Segmenter) Init(buf []byte) {
	s.text = buf
	s.pos = 0
	s.cursor = 0
	s.span = Span{}
	s.err = nil
	s.inUse = true
	if s.breaker != nil {
		s.breaker.Reset()
	}
}

// InitString initializes a Segmenter to read from a string.
func (s *Segmenter) InitString(text string) {
	s.Init([]byte(text))
}

// Err returns the first error that was encountered by the Segmenter.
func (s *Segmenter) Err() error {
	return s.err
}

// Next advances the Segmenter to the next segment, which will then be
// available through the Span, Bytes or Text methods. It returns false when
// the segmenting stops, either by reaching the end of the buffer or on
// malformed input. After Next returns false, the Err method will return
// any error that occurred during scanning.
//
// Segments are produced lazily: Next never decodes further into the buffer
// than needed to decide the next boundary, so abandoning a segmenter
// before the end of the input is cheap and valid.
func (s *Segmenter) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.inUse {
		s.setErr(ErrNotInitialized)
		return false
	}
	for s.cursor < len(s.text) {
		r, w := utf8.DecodeRune(s.text[s.cursor:])
		if r == utf8.RuneError && w <= 1 {
			s.setErr(fmt.Errorf("%w (at byte %d)", ErrInvalidUTF8, s.cursor))
			s.span = Span{Start: s.pos, End: s.pos}
			return false
		}
		boundary := s.breaker.Boundary(r, s.text[s.cursor+w:])
		if boundary && s.cursor > s.pos {
			// the segment ends before r; r already belongs to the next one
			s.span = Span{Start: s.pos, End: s.cursor}
			s.pos = s.cursor
			s.cursor += w
			CT().P("span", s.span).Debugf("Next() = %q", s.text[s.span.Start:s.span.End])
			return true
		}
		s.cursor += w
	}
	if s.pos < s.cursor { // final segment, closed off by the end of the buffer
		s.span = Span{Start: s.pos, End: s.cursor}
		s.pos = s.cursor
		CT().P("span", s.span).Debugf("Next() = %q", s.text[s.span.Start:s.span.End])
		return true
	}
	return false
}

// Span returns the byte range of the most recent segment generated by a
// call to Next.
func (s *Segmenter) Span() Span {
	return s.span
}

// Bytes returns the most recent segment generated by a call to Next.
// The returned slice aliases the input buffer; no allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.text[s.span.Start:s.span.End]
}

// Text returns the most recent segment generated by a call to Next as a
// newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.text[s.span.Start:s.span.End])
}

// setErr records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}
