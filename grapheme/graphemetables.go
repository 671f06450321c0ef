package grapheme

// This file has been generated -- you probably should NOT EDIT IT !
//
// Exception tables for Unicode 13.0.0, derived from GraphemeBreakProperty.txt
// by diffing the property classes against the standard library's category
// tables. The large classes (Extend, SpacingMark, Control) are assembled from
// unicode.Categories plus these deltas in setupGraphemeClasses().
//
// BSD License, Copyright (c) 2026, The gonlp/segment authors

import (
	"unicode"
)

var _Prepend = &unicode.RangeTable{ // 9 entries
	R16: []unicode.Range16{
		{0x0600, 0x0605, 1},
		{0x06dd, 0x06dd, 1},
		{0x070f, 0x070f, 1},
		{0x08e2, 0x08e2, 1},
		{0x0d4e, 0x0d4e, 1},
	},
	R32: []unicode.Range32{
		{0x110bd, 0x110bd, 1},
		{0x110cd, 0x110cd, 1},
		{0x111c2, 0x111c3, 1},
		{0x1193f, 0x1193f, 1},
		{0x11941, 0x11941, 1},
		{0x11a3a, 0x11a3a, 1},
		{0x11a84, 0x11a89, 1},
		{0x11d46, 0x11d46, 1},
	},
}

var _Regional_Indicator = &unicode.RangeTable{ // 1 entries
	R32: []unicode.Range32{
		{0x1f1e6, 0x1f1ff, 1},
	},
}

var _HangulL = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x1100, 0x115f, 1},
		{0xa960, 0xa97c, 1},
	},
}

var _HangulV = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x1160, 0x11a7, 1},
		{0xd7b0, 0xd7c6, 1},
	},
}

var _HangulT = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x11a8, 0x11ff, 1},
		{0xd7cb, 0xd7fb, 1},
	},
}

// Extend minus the union of categories Mn and Me: the Other_Grapheme_Extend
// code-points, the emoji modifiers and the emoji tag characters.
var _ExtendAdditions = &unicode.RangeTable{ // 26 entries
	R16: []unicode.Range16{
		{0x09be, 0x09be, 1},
		{0x09d7, 0x09d7, 1},
		{0x0b3e, 0x0b3e, 1},
		{0x0b57, 0x0b57, 1},
		{0x0bbe, 0x0bbe, 1},
		{0x0bd7, 0x0bd7, 1},
		{0x0cc2, 0x0cc2, 1},
		{0x0cd5, 0x0cd6, 1},
		{0x0d3e, 0x0d3e, 1},
		{0x0d57, 0x0d57, 1},
		{0x0dcf, 0x0dcf, 1},
		{0x0ddf, 0x0ddf, 1},
		{0x200c, 0x200c, 1},
		{0x302e, 0x302f, 1},
		{0xff9e, 0xff9f, 1},
	},
	R32: []unicode.Range32{
		{0x1133e, 0x1133e, 1},
		{0x11357, 0x11357, 1},
		{0x114b0, 0x114b0, 1},
		{0x114bd, 0x114bd, 1},
		{0x115af, 0x115af, 1},
		{0x11930, 0x11930, 1},
		{0x1d165, 0x1d165, 1},
		{0x1d16e, 0x1d172, 1},
		{0x1f3fb, 0x1f3ff, 1},
		{0xe0020, 0xe007f, 1},
	},
}

// Category Mc minus SpacingMark: certain vowel signs and the Mc code-points
// that carry Grapheme_Extend.
var _SpacingMarkExceptions = &unicode.RangeTable{ // 37 entries
	R16: []unicode.Range16{
		{0x09be, 0x09be, 1},
		{0x09d7, 0x09d7, 1},
		{0x0b3e, 0x0b3e, 1},
		{0x0b57, 0x0b57, 1},
		{0x0bbe, 0x0bbe, 1},
		{0x0bd7, 0x0bd7, 1},
		{0x0cc2, 0x0cc2, 1},
		{0x0cd5, 0x0cd6, 1},
		{0x0d3e, 0x0d3e, 1},
		{0x0d57, 0x0d57, 1},
		{0x0dcf, 0x0dcf, 1},
		{0x0ddf, 0x0ddf, 1},
		{0x102b, 0x102c, 1},
		{0x1038, 0x1038, 1},
		{0x1062, 0x1064, 1},
		{0x1067, 0x106d, 1},
		{0x1083, 0x1083, 1},
		{0x1087, 0x108c, 1},
		{0x108f, 0x108f, 1},
		{0x109a, 0x109c, 1},
		{0x1a61, 0x1a61, 1},
		{0x1a63, 0x1a64, 1},
		{0x302e, 0x302f, 1},
		{0xaa7b, 0xaa7b, 1},
		{0xaa7d, 0xaa7d, 1},
	},
	R32: []unicode.Range32{
		{0x1133e, 0x1133e, 1},
		{0x11357, 0x11357, 1},
		{0x114b0, 0x114b0, 1},
		{0x114bd, 0x114bd, 1},
		{0x115af, 0x115af, 1},
		{0x11720, 0x11721, 1},
		{0x11930, 0x11930, 1},
		{0x1d165, 0x1d165, 1},
		{0x1d16e, 0x1d172, 1},
	},
}

// SpacingMark minus category Mc: two South-East Asian vowel signs of
// category Lo.
var _SpacingMarkAdditions = &unicode.RangeTable{ // 2 entries
	R16: []unicode.Range16{
		{0x0e33, 0x0e33, 1},
		{0x0eb3, 0x0eb3, 1},
	},
}

// Control minus the union of categories Cc, Cf, Zl, Zp and Cs: the
// unassigned default-ignorable code-points.
var _ControlAdditions = &unicode.RangeTable{ // 6 entries
	R16: []unicode.Range16{
		{0x2065, 0x2065, 1},
		{0xfff0, 0xfff8, 1},
	},
	R32: []unicode.Range32{
		{0xe0000, 0xe0000, 1},
		{0xe0002, 0xe001f, 1},
		{0xe0080, 0xe00ff, 1},
		{0xe01f0, 0xe0fff, 1},
	},
}
