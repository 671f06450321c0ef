package grapheme

import (
	"strconv"
	"unicode"

	"github.com/gonlp/segment/internal/ucd"
	"golang.org/x/text/unicode/rangetable"
)

// GraphemeClass is the type of the UAX#29 grapheme cluster break classes.
// Must be convertable to int.
type GraphemeClass int

// These are all the grapheme break classes. Their order is the lookup order
// of ClassForRune: overlaps between the underlying range tables (the Control
// table, for example, still contains CR, LF and ZWJ) are resolved by testing
// the more specific class first.
const (
	CRClass GraphemeClass = iota
	LFClass
	PrependClass
	ExtendClass
	ZWJClass
	Regional_IndicatorClass
	SpacingMarkClass
	LClass
	VClass
	TClass
	LVClass
	LVTClass
	ControlClass

	// Any identifies code-points with none of the above properties.
	Any GraphemeClass = 999

	// sot is the class of the position before the first code-point.
	sot GraphemeClass = -1
)

// String returns the UAX#29 name of a grapheme break class.
func (c GraphemeClass) String() string {
	switch c {
	case CRClass:
		return "CR"
	case LFClass:
		return "LF"
	case PrependClass:
		return "Prepend"
	case ExtendClass:
		return "Extend"
	case ZWJClass:
		return "ZWJ"
	case Regional_IndicatorClass:
		return "Regional_Indicator"
	case SpacingMarkClass:
		return "SpacingMark"
	case LClass:
		return "L"
	case VClass:
		return "V"
	case TClass:
		return "T"
	case LVClass:
		return "LV"
	case LVTClass:
		return "LVT"
	case ControlClass:
		return "Control"
	case Any:
		return "Any"
	case sot:
		return "sot"
	}
	return "GraphemeClass(" + strconv.FormatInt(int64(c), 10) + ")"
}

// Range tables for the grapheme break classes.
// Will be initialized with SetupGraphemeClasses().
// Clients can check with unicode.Is(..., rune).
var CR, LF, Prepend, Extend, ZWJ, Regional_Indicator, SpacingMark,
	L, V, T, Control *unicode.RangeTable

// Will be initialized in setupGraphemeClasses()
var rangeFromGraphemeClass []*unicode.RangeTable

// The LV and LVT classes cover the precomposed Hangul syllable block and are
// computed arithmetically by ClassForRune, so no tables exist for them.
func setupGraphemeClasses() {
	CR = rangetable.New(0x000d)
	LF = rangetable.New(0x000a)
	Prepend = _Prepend
	Extend = rangetable.Merge(unicode.Mn, unicode.Me, _ExtendAdditions)
	ZWJ = rangetable.New(0x200d)
	Regional_Indicator = _Regional_Indicator
	SpacingMark = rangetable.Merge(ucd.Subtract(unicode.Mc, _SpacingMarkExceptions),
		_SpacingMarkAdditions)
	L = _HangulL
	V = _HangulV
	T = _HangulT
	Control = rangetable.Merge(unicode.Cc, unicode.Cf, unicode.Zl, unicode.Zp,
		unicode.Cs, _ControlAdditions)

	rangeFromGraphemeClass = make([]*unicode.RangeTable, int(ControlClass)+1)
	rangeFromGraphemeClass[int(CRClass)] = CR
	rangeFromGraphemeClass[int(LFClass)] = LF
	rangeFromGraphemeClass[int(PrependClass)] = Prepend
	rangeFromGraphemeClass[int(ExtendClass)] = Extend
	rangeFromGraphemeClass[int(ZWJClass)] = ZWJ
	rangeFromGraphemeClass[int(Regional_IndicatorClass)] = Regional_Indicator
	rangeFromGraphemeClass[int(SpacingMarkClass)] = SpacingMark
	rangeFromGraphemeClass[int(LClass)] = L
	rangeFromGraphemeClass[int(VClass)] = V
	rangeFromGraphemeClass[int(TClass)] = T
	rangeFromGraphemeClass[int(ControlClass)] = Control
}
