package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/gonlp/segment/emoji"
)

// The decision logic below implements the rules WB1 through WB999 of UAX#29,
// section 4.1. Each rule either forces or inhibits a break between two
// adjacent code-points; the first rule that matches wins. Rule WB4 (ignore
// Extend, Format and ZWJ) is realized by folding: the state carries the
// class of the last non-ignorable code-point alongside the raw one. The few
// rules with a right context (WB6, WB7b, WB12) peek ahead into the unread
// rest of the text; everything else is a single forward pass.

// breakState is the complete rule state between two code-points. It is a
// small value type: copying it is cheap and a breaker reset is a plain
// re-assignment.
type breakState struct {
	raw      WordClass // class of the immediately preceding code-point
	prev     WordClass // class with rule WB4 applied
	prev2    WordClass // folded class before prev
	riParity bool      // odd number of regional indicators since the last non-RI
}

// boundaryBefore reports whether a word boundary exists between the text
// position described by st and a next code-point r of class cl, and returns
// the state to carry beyond r. rest holds the text following r and is only
// inspected by the lookahead rules.
func boundaryBefore(st breakState, cl WordClass, r rune, rest []byte) (bool, breakState) {
	return breakBefore(st, cl, r, rest), advance(st, cl)
}

func breakBefore(st breakState, cl WordClass, r rune, rest []byte) bool {
	switch {
	case st.raw == sot: // WB1
		return true
	case st.raw == CRClass && cl == LFClass: // WB3
		return false
	case st.raw == NewlineClass || st.raw == CRClass || st.raw == LFClass: // WB3a
		return true
	case cl == NewlineClass || cl == CRClass || cl == LFClass: // WB3b
		return true
	case st.raw == ZWJClass && unicode.Is(emoji.Extended_Pictographic, r): // WB3c
		return false
	case st.raw == WSegSpaceClass && cl == WSegSpaceClass: // WB3d
		return false
	case ignorable(cl): // WB4
		return false
	}
	switch {
	case isAHLetter(st.prev) && isAHLetter(cl): // WB5
	case isAHLetter(st.prev) && isMidLetterQ(cl) &&
		isAHLetter(nextSignificant(rest)): // WB6
	case isMidLetterQ(st.prev) && isAHLetter(st.prev2) && isAHLetter(cl): // WB7
	case st.prev == Hebrew_LetterClass && cl == Single_QuoteClass: // WB7a
	case st.prev == Hebrew_LetterClass && cl == Double_QuoteClass &&
		nextSignificant(rest) == Hebrew_LetterClass: // WB7b
	case st.prev == Double_QuoteClass && st.prev2 == Hebrew_LetterClass &&
		cl == Hebrew_LetterClass: // WB7c
	case st.prev == NumericClass && cl == NumericClass: // WB8
	case isAHLetter(st.prev) && cl == NumericClass: // WB9
	case st.prev == NumericClass && isAHLetter(cl): // WB10
	case isMidNumQ(st.prev) && st.prev2 == NumericClass && cl == NumericClass: // WB11
	case st.prev == NumericClass && isMidNumQ(cl) &&
		nextSignificant(rest) == NumericClass: // WB12
	case st.prev == KatakanaClass && cl == KatakanaClass: // WB13
	case cl == ExtendNumLetClass &&
		(isAHLetter(st.prev) || st.prev == NumericClass ||
			st.prev == KatakanaClass || st.prev == ExtendNumLetClass): // WB13a
	case st.prev == ExtendNumLetClass &&
		(isAHLetter(cl) || cl == NumericClass || cl == KatakanaClass): // WB13b
	case st.prev == Regional_IndicatorClass && cl == Regional_IndicatorClass &&
		st.riParity: // WB15, WB16
	default:
		return true // WB999
	}
	return false
}

func advance(st breakState, cl WordClass) breakState {
	if ignorable(cl) && st.prev != sot && st.prev != CRClass &&
		st.prev != LFClass && st.prev != NewlineClass {
		return breakState{raw: cl, prev: st.prev, prev2: st.prev2, riParity: st.riParity}
	}
	next := breakState{raw: cl, prev: cl, prev2: st.prev}
	if cl == Regional_IndicatorClass {
		next.riParity = !st.riParity
	}
	return next
}

// ignorable reports whether a class is skipped over by rule WB4.
func ignorable(cl WordClass) bool {
	return cl == ExtendClass || cl == FormatClass || cl == ZWJClass
}

// isAHLetter matches the AHLetter shorthand of UAX#29.
func isAHLetter(cl WordClass) bool {
	return cl == ALetterClass || cl == Hebrew_LetterClass
}

// isMidLetterQ matches (MidLetter | MidNumLetQ).
func isMidLetterQ(cl WordClass) bool {
	return cl == MidLetterClass || cl == MidNumLetClass || cl == Single_QuoteClass
}

// isMidNumQ matches (MidNum | MidNumLetQ).
func isMidNumQ(cl WordClass) bool {
	return cl == MidNumClass || cl == MidNumLetClass || cl == Single_QuoteClass
}

// nextSignificant returns the class of the first code-point in rest that is
// not ignorable per rule WB4, or eot if there is none. The lookahead is
// bounded by the run of ignorable code-points, which in real-world text is
// very short.
func nextSignificant(rest []byte) WordClass {
	for len(rest) > 0 {
		r, w := utf8.DecodeRune(rest)
		if r == utf8.RuneError && w <= 1 {
			return eot
		}
		if cl := ClassForRune(r); !ignorable(cl) {
			return cl
		}
		rest = rest[w:]
	}
	return eot
}
