package sentence

import (
	"strconv"
	"unicode"

	"github.com/gonlp/segment/internal/ucd"
	"golang.org/x/text/unicode/rangetable"
)

// SentenceClass is the type of the UAX#29 sentence break classes.
// Must be convertable to int.
type SentenceClass int

// These are all the sentence break classes. Their order is the lookup order
// of ClassForRune: overlaps between the underlying range tables (Upper and
// OLetter both cover the letter categories, for example) are resolved by
// testing the more specific class first.
const (
	CRClass SentenceClass = iota
	LFClass
	SepClass
	ExtendClass
	FormatClass
	SpClass
	ATermClass
	STermClass
	SContinueClass
	CloseClass
	NumericClass
	UpperClass
	LowerClass
	OLetterClass

	// Any identifies code-points with none of the above properties.
	Any SentenceClass = 999

	// sot is the class of the position before the first code-point.
	sot SentenceClass = -1
)

// String returns the UAX#29 name of a sentence break class.
func (c SentenceClass) String() string {
	switch c {
	case CRClass:
		return "CR"
	case LFClass:
		return "LF"
	case SepClass:
		return "Sep"
	case ExtendClass:
		return "Extend"
	case FormatClass:
		return "Format"
	case SpClass:
		return "Sp"
	case ATermClass:
		return "ATerm"
	case STermClass:
		return "STerm"
	case SContinueClass:
		return "SContinue"
	case CloseClass:
		return "Close"
	case NumericClass:
		return "Numeric"
	case UpperClass:
		return "Upper"
	case LowerClass:
		return "Lower"
	case OLetterClass:
		return "OLetter"
	case Any:
		return "Any"
	case sot:
		return "sot"
	}
	return "SentenceClass(" + strconv.FormatInt(int64(c), 10) + ")"
}

// Range tables for the sentence break classes.
// Will be initialized with SetupSentenceClasses().
// Clients can check with unicode.Is(..., rune).
var CR, LF, Sep, Extend, Format, Sp, ATerm, STerm, SContinue, Close,
	Numeric, Upper, Lower, OLetter *unicode.RangeTable

// Will be initialized in setupSentenceClasses()
var rangeFromSentenceClass []*unicode.RangeTable

func setupSentenceClasses() {
	CR = rangetable.New(0x000d)
	LF = rangetable.New(0x000a)
	Sep = _Sep
	Extend = rangetable.Merge(unicode.Mn, unicode.Me, unicode.Mc, _ExtendAdditions)
	Format = ucd.Subtract(unicode.Cf, _FormatExceptions)
	Sp = _Sp
	ATerm = _ATerm
	STerm = unicode.Sentence_Terminal
	SContinue = _SContinue
	Close = rangetable.Merge(unicode.Ps, unicode.Pe, unicode.Pi, unicode.Pf,
		unicode.Quotation_Mark)
	Numeric = rangetable.Merge(unicode.Nd, _NumericAdditions)
	Upper = rangetable.Merge(unicode.Lu, unicode.Lt, unicode.Other_Uppercase)
	Lower = rangetable.Merge(unicode.Ll, unicode.Other_Lowercase)
	OLetter = rangetable.Merge(unicode.L, unicode.Nl, _OLetterAdditions)

	rangeFromSentenceClass = make([]*unicode.RangeTable, int(OLetterClass)+1)
	rangeFromSentenceClass[int(CRClass)] = CR
	rangeFromSentenceClass[int(LFClass)] = LF
	rangeFromSentenceClass[int(SepClass)] = Sep
	rangeFromSentenceClass[int(ExtendClass)] = Extend
	rangeFromSentenceClass[int(FormatClass)] = Format
	rangeFromSentenceClass[int(SpClass)] = Sp
	rangeFromSentenceClass[int(ATermClass)] = ATerm
	rangeFromSentenceClass[int(STermClass)] = STerm
	rangeFromSentenceClass[int(SContinueClass)] = SContinue
	rangeFromSentenceClass[int(CloseClass)] = Close
	rangeFromSentenceClass[int(NumericClass)] = Numeric
	rangeFromSentenceClass[int(UpperClass)] = Upper
	rangeFromSentenceClass[int(LowerClass)] = Lower
	rangeFromSentenceClass[int(OLetterClass)] = OLetter
}
