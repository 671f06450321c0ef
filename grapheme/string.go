package grapheme

import (
	"fmt"
	"math"

	"github.com/gonlp/segment"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes in a string (or array of bytes) is an operation with
// runtime complexity O(N). Clients should not convert large texts into
// grapheme strings in one go, but rather operate on manageable fragments.
//
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
}

// MaxByteLen is the maximum byte count a grapheme string may consist of.
const MaxByteLen int = math.MaxUint16 - 1

// StringFromString creates a grapheme string from a Go string.
// As grapheme strings are not meant to be created for large amounts of text,
// but rather for manageable segments, s is not allowed to exceed MaxByteLen
// bytes.
//
// StringFromString will panic if a larger input string is given.
//
// The input has to be valid UTF-8; otherwise an error wrapping
// segment.ErrInvalidUTF8 is returned.
//
func StringFromString(s string) (String, error) {
	if len(s) < math.MaxUint8 {
		return makeShortString(s)
	} else if len(s) < math.MaxUint16 {
		return makeMidString(s)
	}
	panic(fmt.Sprintf("grapheme.String may not be built from more than %d bytes, have %d",
		MaxByteLen, len(s)))
}

// StringFromBytes creates a grapheme string from an array of bytes. As
// grapheme strings are a read-only data structure, StringFromBytes will
// create a private copy of the input.
//
// As grapheme strings are not meant to be created for large amounts of text,
// but rather for manageable segments, b is not allowed to exceed MaxByteLen
// bytes.
//
// StringFromBytes will panic if a larger input slice is given.
//
func StringFromBytes(b []byte) (String, error) {
	return StringFromString(string(b))
}

// --- Short version ---------------------------------------------------------

// shortString keeps break positions as single bytes; most grapheme strings
// are small and this halves the footprint of the mid version.
type shortString struct {
	content string
	breaks  []uint8
}

func makeShortString(s string) (String, error) {
	breaks, err := scanBreaks(s)
	if err != nil {
		return nil, err
	}
	gstr := &shortString{content: s}
	gstr.breaks = make([]uint8, len(breaks))
	for i, br := range breaks {
		gstr.breaks[i] = uint8(br)
	}
	return gstr, nil
}

func (gstr *shortString) Nth(n int) string {
	if n < 0 || n > max(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, max(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *shortString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// --- Mid version -----------------------------------------------------------

type midString struct {
	content string
	breaks  []uint16
}

func makeMidString(s string) (String, error) {
	breaks, err := scanBreaks(s)
	if err != nil {
		return nil, err
	}
	gstr := &midString{content: s}
	gstr.breaks = make([]uint16, len(breaks))
	for i, br := range breaks {
		gstr.breaks[i] = uint16(br)
	}
	return gstr, nil
}

func (gstr *midString) Nth(n int) string {
	if n < 0 || n > max(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, max(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *midString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// ---------------------------------------------------------------------------

// scanBreaks segments s into grapheme clusters and returns the list of
// cluster break offsets. The offsets always start with position 0; offset i
// and i+1 delimit the i-th cluster. Invalid UTF-8 anywhere in s is an error,
// wrapping segment.ErrInvalidUTF8.
func scanBreaks(s string) ([]int, error) {
	SetupGraphemeClasses()
	seg := segment.BorrowSegmenter(&Breaker{})
	defer segment.ReleaseSegmenter(seg)
	seg.InitString(s)
	breaks := make([]int, 1, len(s)/4+2)
	for seg.Next() {
		tracer().Debugf("next grapheme = '%s'", seg.Text())
		breaks = append(breaks, seg.Span().End)
	}
	if seg.Err() != nil {
		tracer().Errorf("grapheme string scan stopped: %v", seg.Err())
		return nil, seg.Err()
	}
	return breaks, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
