package word

// This file has been generated -- you probably should NOT EDIT IT !
//
// Exception tables for Unicode 13.0.0, derived from WordBreakProperty.txt by
// diffing the property classes against the standard library's category and
// script tables. The large classes (Extend, Format, ALetter, Numeric,
// ExtendNumLet) are assembled from those tables plus the deltas below in
// setupWordClasses().
//
// BSD License, Copyright (c) 2026, The gonlp/segment authors

import (
	"unicode"
)

var _Newline = &unicode.RangeTable{ // 3 entries
	R16: []unicode.Range16{
		{0x000b, 0x000c, 1},
		{0x0085, 0x0085, 1},
		{0x2028, 0x2029, 1},
	},
	LatinOffset: 2,
}

var _WSegSpace = &unicode.RangeTable{ // 6 entries
	R16: []unicode.Range16{
		{0x0020, 0x0020, 1},
		{0x1680, 0x1680, 1},
		{0x2000, 0x2006, 1},
		{0x2008, 0x200a, 1},
		{0x205f, 0x205f, 1},
		{0x3000, 0x3000, 1},
	},
	LatinOffset: 1,
}

// Extend minus the union of categories Mn, Me and Mc: the zero-width
// non-joiner, the halfwidth voicing marks, the emoji modifiers and the emoji
// tag characters.
var _ExtendAdditions = &unicode.RangeTable{ // 4 entries
	R16: []unicode.Range16{
		{0x200c, 0x200c, 1},
		{0xff9e, 0xff9f, 1},
	},
	R32: []unicode.Range32{
		{0x1f3fb, 0x1f3ff, 1},
		{0xe0020, 0xe007f, 1},
	},
}

// Category Cf minus Format: the zero-width space and the joiner controls,
// which carry word break classes of their own.
var _FormatExceptions = &unicode.RangeTable{ // 1 entries
	R16: []unicode.Range16{
		{0x200b, 0x200d, 1},
	},
}

// Katakana minus the Katakana script: prolonged sound marks, iteration
// marks and the circled and squared Katakana of the Common script.
var _KatakanaAdditions = &unicode.RangeTable{ // 6 entries
	R16: []unicode.Range16{
		{0x3031, 0x3035, 1},
		{0x309b, 0x309c, 1},
		{0x30fc, 0x30fc, 1},
		{0x32d0, 0x32fe, 1},
		{0x3300, 0x3357, 1},
		{0xff70, 0xff70, 1},
	},
}

var _HebrewLetter = &unicode.RangeTable{ // 10 entries
	R16: []unicode.Range16{
		{0x05d0, 0x05ea, 1},
		{0x05ef, 0x05ef, 1},
		{0xfb1d, 0xfb1d, 1},
		{0xfb1f, 0xfb28, 1},
		{0xfb2a, 0xfb36, 1},
		{0xfb38, 0xfb3c, 1},
		{0xfb3e, 0xfb3e, 1},
		{0xfb40, 0xfb41, 1},
		{0xfb43, 0xfb44, 1},
		{0xfb46, 0xfb4f, 1},
	},
}

// ALetter minus the letter categories: spacing modifier symbols and
// letter-like punctuation.
var _ALetterAdditions = &unicode.RangeTable{ // 13 entries
	R16: []unicode.Range16{
		{0x02c2, 0x02c5, 1},
		{0x02d2, 0x02d7, 1},
		{0x02de, 0x02df, 1},
		{0x02e5, 0x02eb, 1},
		{0x02ed, 0x02ed, 1},
		{0x02ef, 0x02ff, 1},
		{0x055a, 0x055a, 1},
		{0x05f3, 0x05f3, 1},
		{0xa708, 0xa716, 1},
		{0xa720, 0xa721, 1},
		{0xa789, 0xa78a, 1},
		{0xab5b, 0xab5b, 1},
	},
	R32: []unicode.Range32{
		{0x1f130, 0x1f149, 1},
	},
}

var _MidNumLet = &unicode.RangeTable{ // 6 entries
	R16: []unicode.Range16{
		{0x002e, 0x002e, 1},
		{0x2018, 0x2019, 1},
		{0x2024, 0x2024, 1},
		{0xfe52, 0xfe52, 1},
		{0xff07, 0xff07, 1},
		{0xff0e, 0xff0e, 1},
	},
	LatinOffset: 1,
}

var _MidLetter = &unicode.RangeTable{ // 9 entries
	R16: []unicode.Range16{
		{0x003a, 0x003a, 1},
		{0x00b7, 0x00b7, 1},
		{0x0387, 0x0387, 1},
		{0x055f, 0x055f, 1},
		{0x05f4, 0x05f4, 1},
		{0x2027, 0x2027, 1},
		{0xfe13, 0xfe13, 1},
		{0xfe55, 0xfe55, 1},
		{0xff1a, 0xff1a, 1},
	},
	LatinOffset: 2,
}

var _MidNum = &unicode.RangeTable{ // 14 entries
	R16: []unicode.Range16{
		{0x002c, 0x002c, 1},
		{0x003b, 0x003b, 1},
		{0x037e, 0x037e, 1},
		{0x0589, 0x0589, 1},
		{0x060c, 0x060d, 1},
		{0x066c, 0x066c, 1},
		{0x07f8, 0x07f8, 1},
		{0x2044, 0x2044, 1},
		{0xfe10, 0xfe10, 1},
		{0xfe14, 0xfe14, 1},
		{0xfe50, 0xfe50, 1},
		{0xfe54, 0xfe54, 1},
		{0xff0c, 0xff0c, 1},
		{0xff1b, 0xff1b, 1},
	},
	LatinOffset: 2,
}

// Numeric minus category Nd: the Arabic decimal separator.
var _NumericAdditions = &unicode.RangeTable{ // 1 entries
	R16: []unicode.Range16{
		{0x066b, 0x066b, 1},
	},
}

// ExtendNumLet minus category Pc: the narrow no-break space.
var _ExtendNumLetAdditions = &unicode.RangeTable{ // 1 entries
	R16: []unicode.Range16{
		{0x202f, 0x202f, 1},
	},
}
