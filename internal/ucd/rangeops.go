package ucd

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Subtract returns a range table holding every code-point of t that is not
// contained in except. The segmentation packages use it to carve the UAX#29
// property classes out of the standard library's category tables.
func Subtract(t *unicode.RangeTable, except *unicode.RangeTable) *unicode.RangeTable {
	var runes []rune
	Visit(t, func(r rune) {
		if !unicode.Is(except, r) {
			runes = append(runes, r)
		}
	})
	return rangetable.New(runes...)
}

// Visit calls f for every code-point of t, in ascending order.
func Visit(t *unicode.RangeTable, f func(rune)) {
	for _, r16 := range t.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			f(r)
		}
	}
	for _, r32 := range t.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			f(r)
		}
	}
}
