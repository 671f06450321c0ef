package grapheme

import (
	"unicode"

	"github.com/gonlp/segment/emoji"
)

// The decision logic below implements the rules GB1 through GB999 of UAX#29,
// section 3.1.1. Each rule either forces or inhibits a break between two
// adjacent code-points; the first rule that matches wins. The rules with a
// regex-like left context (GB11, GB12/GB13) are driven by the small amount
// of extra state carried in breakState, so a single forward pass suffices
// and every code-point is inspected exactly once.

// emojiSeq tracks the progress through an extended-pictographic ZWJ
// sequence, as required by rule GB11.
type emojiSeq uint8

const (
	emojiNone    emojiSeq = iota
	emojiPict             // \p{Extended_Pictographic} Extend*
	emojiPictZWJ          // \p{Extended_Pictographic} Extend* ZWJ
)

// breakState is the complete rule state between two code-points. It is a
// small value type: copying it is cheap and a breaker reset is a plain
// re-assignment.
type breakState struct {
	prev     GraphemeClass // class of the preceding code-point, or sot
	riParity bool          // odd number of regional indicators since the last non-RI
	emoji    emojiSeq
}

// boundaryBefore reports whether a grapheme cluster boundary exists between
// the text position described by st and a next code-point r of class cl, and
// returns the state to carry beyond r.
func boundaryBefore(st breakState, cl GraphemeClass, r rune) (bool, breakState) {
	isPict := unicode.Is(emoji.Extended_Pictographic, r)
	return breakBefore(st, cl, isPict), advance(st, cl, isPict)
}

func breakBefore(st breakState, cl GraphemeClass, isPict bool) bool {
	switch {
	case st.prev == sot: // GB1
		return true
	case st.prev == CRClass && cl == LFClass: // GB3
		return false
	case st.prev == ControlClass || st.prev == CRClass || st.prev == LFClass: // GB4
		return true
	case cl == ControlClass || cl == CRClass || cl == LFClass: // GB5
		return true
	case st.prev == LClass &&
		(cl == LClass || cl == VClass || cl == LVClass || cl == LVTClass): // GB6
		return false
	case (st.prev == LVClass || st.prev == VClass) &&
		(cl == VClass || cl == TClass): // GB7
		return false
	case (st.prev == LVTClass || st.prev == TClass) && cl == TClass: // GB8
		return false
	case cl == ExtendClass || cl == ZWJClass: // GB9
		return false
	case cl == SpacingMarkClass: // GB9a
		return false
	case st.prev == PrependClass: // GB9b
		return false
	case st.emoji == emojiPictZWJ && isPict: // GB11
		return false
	case st.prev == Regional_IndicatorClass && cl == Regional_IndicatorClass &&
		st.riParity: // GB12, GB13
		return false
	}
	return true // GB999
}

func advance(st breakState, cl GraphemeClass, isPict bool) breakState {
	next := breakState{prev: cl}
	if cl == Regional_IndicatorClass {
		next.riParity = !st.riParity
	}
	switch {
	case st.emoji == emojiPict && cl == ExtendClass:
		next.emoji = emojiPict
	case st.emoji == emojiPict && cl == ZWJClass:
		next.emoji = emojiPictZWJ
	case isPict:
		next.emoji = emojiPict
	}
	return next
}
