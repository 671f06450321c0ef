package sentence

import (
	"unicode/utf8"
)

// The decision logic below implements the rules SB1 through SB998 of UAX#29,
// section 5.1. Sentence breaking differs from the other boundary kinds in
// its default: adjacent code-points do NOT break unless a terminator
// sequence is pending (rule SB998). The state therefore tracks the phase of
// a pending "SATerm Close* Sp*" sequence; rule SB8 additionally peeks ahead
// into the unread rest of the text.

// satPhase is the progress through a pending terminator sequence.
type satPhase uint8

const (
	satNone  satPhase = iota
	satTerm           // SATerm
	satClose          // SATerm Close+
	satSp             // SATerm Close* Sp+
)

// breakState is the complete rule state between two code-points. It is a
// small value type: copying it is cheap and a breaker reset is a plain
// re-assignment.
type breakState struct {
	raw   SentenceClass // class of the immediately preceding code-point
	prev  SentenceClass // class with rule SB5 applied
	phase satPhase
	aterm bool // the pending terminator sequence began with ATerm
	upLow bool // that ATerm immediately followed Upper or Lower (rule SB7)
}

// boundaryBefore reports whether a sentence boundary exists between the text
// position described by st and a next code-point of class cl, and returns
// the state to carry beyond it. rest holds the text following the code-point
// and is only inspected by rule SB8.
func boundaryBefore(st breakState, cl SentenceClass, rest []byte) (bool, breakState) {
	return breakBefore(st, cl, rest), advance(st, cl)
}

func breakBefore(st breakState, cl SentenceClass, rest []byte) bool {
	switch {
	case st.raw == sot: // SB1
		return true
	case st.raw == CRClass && cl == LFClass: // SB3
		return false
	case st.raw == SepClass || st.raw == CRClass || st.raw == LFClass: // SB4
		return true
	case cl == ExtendClass || cl == FormatClass: // SB5
		return false
	}
	pending := st.phase != satNone
	switch {
	case st.phase == satTerm && st.aterm && cl == NumericClass: // SB6
		return false
	case st.phase == satTerm && st.aterm && st.upLow && cl == UpperClass: // SB7
		return false
	case pending && st.aterm && lowerAhead(cl, rest): // SB8
		return false
	case pending && (cl == SContinueClass || cl == ATermClass || cl == STermClass): // SB8a
		return false
	case (st.phase == satTerm || st.phase == satClose) &&
		(cl == CloseClass || cl == SpClass || isParaSep(cl)): // SB9
		return false
	case st.phase == satSp && (cl == SpClass || isParaSep(cl)): // SB10
		return false
	case pending: // SB11
		return true
	}
	return false // SB998
}

func advance(st breakState, cl SentenceClass) breakState {
	if (cl == ExtendClass || cl == FormatClass) &&
		st.prev != sot && !isParaSep(st.prev) {
		return breakState{raw: cl, prev: st.prev, phase: st.phase,
			aterm: st.aterm, upLow: st.upLow}
	}
	next := breakState{raw: cl, prev: cl}
	switch {
	case cl == ATermClass:
		next.phase = satTerm
		next.aterm = true
		next.upLow = st.prev == UpperClass || st.prev == LowerClass
	case cl == STermClass:
		next.phase = satTerm
	case st.phase == satNone:
		// no terminator pending
	case cl == CloseClass && st.phase != satSp:
		next.phase = satClose
		next.aterm = st.aterm
	case cl == SpClass:
		next.phase = satSp
		next.aterm = st.aterm
	}
	return next
}

func isParaSep(cl SentenceClass) bool {
	return cl == SepClass || cl == CRClass || cl == LFClass
}

// lowerAhead implements the right context of rule SB8: starting with the
// current code-point (of class cl), the text may run through any number of
// code-points that cannot start a sentence before hitting a Lower one.
func lowerAhead(cl SentenceClass, rest []byte) bool {
	for {
		switch cl {
		case LowerClass:
			return true
		case OLetterClass, UpperClass, SepClass, CRClass, LFClass,
			ATermClass, STermClass:
			return false
		}
		if len(rest) == 0 {
			return false
		}
		r, w := utf8.DecodeRune(rest)
		if r == utf8.RuneError && w <= 1 {
			return false
		}
		rest = rest[w:]
		cl = ClassForRune(r)
	}
}
