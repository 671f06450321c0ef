package sentence

// This file has been generated -- you probably should NOT EDIT IT !
//
// Exception tables for Unicode 13.0.0, derived from SentenceBreakProperty.txt
// by diffing the property classes against the standard library's category and
// property tables. The large classes (Extend, Format, Close, Numeric, Upper,
// Lower, OLetter) are assembled from those tables plus the deltas below in
// setupSentenceClasses().
//
// BSD License, Copyright (c) 2026, The gonlp/segment authors

import (
	"unicode"
)

var _Sep = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x0085, 0x0085, 1},
		{0x2028, 0x2029, 1},
	},
	LatinOffset: 1,
}

var _Sp = &unicode.RangeTable{ // 8 entries
	R16: []unicode.Range16{
		{0x0009, 0x0009, 1},
		{0x000b, 0x000c, 1},
		{0x0020, 0x0020, 1},
		{0x00a0, 0x00a0, 1},
		{0x1680, 0x1680, 1},
		{0x2000, 0x200a, 1},
		{0x202f, 0x202f, 1},
		{0x205f, 0x205f, 1},
		{0x3000, 0x3000, 1},
	},
	LatinOffset: 4,
}

// Extend minus the union of categories Mn, Me and Mc: the joiner controls,
// the halfwidth voicing marks, the emoji modifiers and the emoji tag
// characters.
var _ExtendAdditions = &unicode.RangeTable{ // 4 entries
	R16: []unicode.Range16{
		{0x200c, 0x200d, 1},
		{0xff9e, 0xff9f, 1},
	},
	R32: []unicode.Range32{
		{0x1f3fb, 0x1f3ff, 1},
		{0xe0020, 0xe007f, 1},
	},
}

// Category Cf minus Format: the joiner controls, which carry class Extend.
var _FormatExceptions = &unicode.RangeTable{ // 1 entries
	R16: []unicode.Range16{
		{0x200c, 0x200d, 1},
	},
}

var _ATerm = &unicode.RangeTable{ // 4 entries
	R16: []unicode.Range16{
		{0x002e, 0x002e, 1},
		{0x2024, 0x2024, 1},
		{0xfe52, 0xfe52, 1},
		{0xff0e, 0xff0e, 1},
	},
	LatinOffset: 1,
}

var _SContinue = &unicode.RangeTable{ // 19 entries
	R16: []unicode.Range16{
		{0x002c, 0x002d, 1},
		{0x003a, 0x003a, 1},
		{0x055d, 0x055d, 1},
		{0x060c, 0x060d, 1},
		{0x07f8, 0x07f8, 1},
		{0x1802, 0x1802, 1},
		{0x1808, 0x1808, 1},
		{0x2013, 0x2014, 1},
		{0x3001, 0x3001, 1},
		{0xfe10, 0xfe11, 1},
		{0xfe13, 0xfe13, 1},
		{0xfe31, 0xfe32, 1},
		{0xfe50, 0xfe51, 1},
		{0xfe55, 0xfe55, 1},
		{0xfe58, 0xfe58, 1},
		{0xfe63, 0xfe63, 1},
		{0xff0c, 0xff0d, 1},
		{0xff1a, 0xff1a, 1},
		{0xff64, 0xff64, 1},
	},
	LatinOffset: 2,
}

// Numeric minus category Nd: the Arabic decimal and thousands separators.
var _NumericAdditions = &unicode.RangeTable{ // 1 entries
	R16: []unicode.Range16{
		{0x066b, 0x066c, 1},
	},
}

// OLetter minus the letter categories: the Hebrew punctuation Geresh.
var _OLetterAdditions = &unicode.RangeTable{ // 1 entries
	R16: []unicode.Range16{
		{0x05f3, 0x05f3, 1},
	},
}
