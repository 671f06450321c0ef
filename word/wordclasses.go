package word

import (
	"strconv"
	"unicode"

	"github.com/gonlp/segment/internal/ucd"
	"golang.org/x/text/unicode/rangetable"
)

// WordClass is the type of the UAX#29 word break classes.
// Must be convertable to int.
type WordClass int

// These are all the word break classes. Their order is the lookup order of
// ClassForRune: overlaps between the underlying range tables (ZWJ, for
// example, is contained in the Format category as well) are resolved by
// testing the more specific class first.
const (
	CRClass WordClass = iota
	LFClass
	NewlineClass
	ZWJClass
	WSegSpaceClass
	ExtendClass
	FormatClass
	Regional_IndicatorClass
	KatakanaClass
	Hebrew_LetterClass
	ALetterClass
	Single_QuoteClass
	Double_QuoteClass
	MidNumLetClass
	MidLetterClass
	MidNumClass
	NumericClass
	ExtendNumLetClass

	// Any identifies code-points with none of the above properties.
	Any WordClass = 999

	// sot is the class of the position before the first code-point, eot the
	// class reported by a lookahead that runs off the end of the text.
	sot WordClass = -1
	eot WordClass = -2
)

// String returns the UAX#29 name of a word break class.
func (c WordClass) String() string {
	switch c {
	case CRClass:
		return "CR"
	case LFClass:
		return "LF"
	case NewlineClass:
		return "Newline"
	case ZWJClass:
		return "ZWJ"
	case WSegSpaceClass:
		return "WSegSpace"
	case ExtendClass:
		return "Extend"
	case FormatClass:
		return "Format"
	case Regional_IndicatorClass:
		return "Regional_Indicator"
	case KatakanaClass:
		return "Katakana"
	case Hebrew_LetterClass:
		return "Hebrew_Letter"
	case ALetterClass:
		return "ALetter"
	case Single_QuoteClass:
		return "Single_Quote"
	case Double_QuoteClass:
		return "Double_Quote"
	case MidNumLetClass:
		return "MidNumLet"
	case MidLetterClass:
		return "MidLetter"
	case MidNumClass:
		return "MidNum"
	case NumericClass:
		return "Numeric"
	case ExtendNumLetClass:
		return "ExtendNumLet"
	case Any:
		return "Any"
	case sot:
		return "sot"
	case eot:
		return "eot"
	}
	return "WordClass(" + strconv.FormatInt(int64(c), 10) + ")"
}

// Range tables for the word break classes.
// Will be initialized with SetupWordClasses().
// Clients can check with unicode.Is(..., rune).
var CR, LF, Newline, ZWJ, WSegSpace, Extend, Format, Regional_Indicator,
	Katakana, Hebrew_Letter, ALetter, Single_Quote, Double_Quote, MidNumLet,
	MidLetter, MidNum, Numeric, ExtendNumLet *unicode.RangeTable

// Will be initialized in setupWordClasses()
var rangeFromWordClass []*unicode.RangeTable

func setupWordClasses() {
	CR = rangetable.New(0x000d)
	LF = rangetable.New(0x000a)
	Newline = _Newline
	ZWJ = rangetable.New(0x200d)
	WSegSpace = _WSegSpace
	Extend = rangetable.Merge(unicode.Mn, unicode.Me, unicode.Mc, _ExtendAdditions)
	Format = ucd.Subtract(unicode.Cf, _FormatExceptions)
	Regional_Indicator = rangetable.New(rangeOfRunes(0x1f1e6, 0x1f1ff)...)
	Katakana = rangetable.Merge(unicode.Katakana, _KatakanaAdditions)
	Hebrew_Letter = _HebrewLetter
	// Letters of the ideographic and South-East Asian scripts do not form
	// words in the sense of UAX#29 and are carved out of ALetter.
	nonwordScripts := rangetable.Merge(unicode.Han, unicode.Hiragana,
		unicode.Katakana, unicode.Thai, unicode.Lao, unicode.Khmer,
		unicode.Myanmar, _HebrewLetter)
	ALetter = rangetable.Merge(
		ucd.Subtract(rangetable.Merge(unicode.L, unicode.Nl), nonwordScripts),
		_ALetterAdditions)
	Single_Quote = rangetable.New(0x0027)
	Double_Quote = rangetable.New(0x0022)
	MidNumLet = _MidNumLet
	MidLetter = _MidLetter
	MidNum = _MidNum
	Numeric = rangetable.Merge(unicode.Nd, _NumericAdditions)
	ExtendNumLet = rangetable.Merge(unicode.Pc, _ExtendNumLetAdditions)

	rangeFromWordClass = make([]*unicode.RangeTable, int(ExtendNumLetClass)+1)
	rangeFromWordClass[int(CRClass)] = CR
	rangeFromWordClass[int(LFClass)] = LF
	rangeFromWordClass[int(NewlineClass)] = Newline
	rangeFromWordClass[int(ZWJClass)] = ZWJ
	rangeFromWordClass[int(WSegSpaceClass)] = WSegSpace
	rangeFromWordClass[int(ExtendClass)] = Extend
	rangeFromWordClass[int(FormatClass)] = Format
	rangeFromWordClass[int(Regional_IndicatorClass)] = Regional_Indicator
	rangeFromWordClass[int(KatakanaClass)] = Katakana
	rangeFromWordClass[int(Hebrew_LetterClass)] = Hebrew_Letter
	rangeFromWordClass[int(ALetterClass)] = ALetter
	rangeFromWordClass[int(Single_QuoteClass)] = Single_Quote
	rangeFromWordClass[int(Double_QuoteClass)] = Double_Quote
	rangeFromWordClass[int(MidNumLetClass)] = MidNumLet
	rangeFromWordClass[int(MidLetterClass)] = MidLetter
	rangeFromWordClass[int(MidNumClass)] = MidNum
	rangeFromWordClass[int(NumericClass)] = Numeric
	rangeFromWordClass[int(ExtendNumLetClass)] = ExtendNumLet
}

func rangeOfRunes(from, to rune) []rune {
	runes := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		runes = append(runes, r)
	}
	return runes
}
