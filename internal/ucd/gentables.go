package ucd

import (
	"bytes"
	"fmt"
	"unicode"
)

// Creating Unicode tables is a rare task, performed by the per-package
// generators under internal/generator. The collector below accumulates
// code-point ranges for one class and writes them out as a
// unicode.RangeTable literal.

// A RangeTableCollector collects code-point ranges during iteration of a
// UCD file and outputs them as Go source code.
type RangeTableCollector struct {
	Name   string // name of the table variable to emit
	ranges [][2]rune
}

// Append adds a range of code-points to the collector. A single code-point
// is denoted by from == to. Adjacent and overlapping ranges are coalesced.
func (rt *RangeTableCollector) Append(from, to rune) {
	if n := len(rt.ranges); n > 0 && from <= rt.ranges[n-1][1]+1 {
		if to > rt.ranges[n-1][1] {
			rt.ranges[n-1][1] = to
		}
		return
	}
	rt.ranges = append(rt.ranges, [2]rune{from, to})
}

// Len returns the number of collected ranges.
func (rt *RangeTableCollector) Len() int {
	return len(rt.ranges)
}

// Output writes the collected ranges as a unicode.RangeTable literal.
func (rt *RangeTableCollector) Output(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "var _%s = &unicode.RangeTable{ // %d entries\n", rt.Name, len(rt.ranges))
	latinOffset := 0
	var r16, r32 [][2]rune
	for _, r := range rt.ranges {
		if r[1] <= 0xffff {
			r16 = append(r16, r)
			if r[1] <= unicode.MaxLatin1 {
				latinOffset++
			}
		} else {
			r32 = append(r32, r)
		}
	}
	if len(r16) > 0 {
		fmt.Fprintf(buf, "\tR16: []unicode.Range16{\n")
		for _, r := range r16 {
			fmt.Fprintf(buf, "\t\t{%#04x, %#04x, 1},\n", r[0], r[1])
		}
		fmt.Fprintf(buf, "\t},\n")
	}
	if len(r32) > 0 {
		fmt.Fprintf(buf, "\tR32: []unicode.Range32{\n")
		for _, r := range r32 {
			fmt.Fprintf(buf, "\t\t{%#04x, %#04x, 1},\n", r[0], r[1])
		}
		fmt.Fprintf(buf, "\t},\n")
	}
	if latinOffset > 0 {
		fmt.Fprintf(buf, "\tLatinOffset: %d,\n", latinOffset)
	}
	fmt.Fprintf(buf, "}\n\n")
}
