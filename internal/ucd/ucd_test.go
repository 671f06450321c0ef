package ucd

import (
	"bytes"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

const sample = `# GraphemeBreakProperty-13.0.0.txt
# © 2020 Unicode®, Inc.

0600..0605    ; Prepend # Cf   [6] ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE
06DD          ; Prepend # Cf       ARABIC END OF AYAH

000D          ; CR # Cc       <control-000D>
`

func TestParser(t *testing.T) {
	parser := New(strings.NewReader(sample))
	require.True(t, parser.Next())
	item := parser.Item()
	from, to := item.Range()
	require.Equal(t, rune(0x0600), from)
	require.Equal(t, rune(0x0605), to)
	require.Equal(t, "Prepend", item.Field(1))
	require.Contains(t, item.Comment, "ARABIC NUMBER SIGN")

	require.True(t, parser.Next())
	from, to = parser.Item().Range()
	require.Equal(t, rune(0x06dd), from)
	require.Equal(t, from, to)

	require.True(t, parser.Next())
	require.Equal(t, "CR", parser.Item().Field(1))
	require.Equal(t, "", parser.Item().Field(2))

	require.False(t, parser.Next())
	require.NoError(t, parser.Err())
}

func TestParserMalformed(t *testing.T) {
	parser := New(strings.NewReader("xyz ; Oops\n"))
	require.False(t, parser.Next())
	require.Error(t, parser.Err())
}

func TestBreakTestInput(t *testing.T) {
	in, out := BreakTestInput("÷ 0061 × 0308 ÷ 0062 ÷")
	require.Equal(t, "äb", in)
	require.Equal(t, []string{"ä", "b"}, out)
}

func TestBreakTestInputTrailingRun(t *testing.T) {
	// tolerate a missing final break mark
	in, out := BreakTestInput("÷ 0061 ÷ 0062")
	require.Equal(t, "ab", in)
	require.Equal(t, []string{"a", "b"}, out)
}

func TestSubtract(t *testing.T) {
	table := &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x41, Hi: 0x45, Stride: 1}}, // A..E
	}
	except := &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x43, Hi: 0x43, Stride: 1}}, // C
	}
	diff := Subtract(table, except)
	for _, r := range "ABDE" {
		require.True(t, unicode.Is(diff, r), "%c should survive the subtraction", r)
	}
	require.False(t, unicode.Is(diff, 'C'))
}

func TestRangeTableCollector(t *testing.T) {
	collector := RangeTableCollector{Name: "Stuff"}
	collector.Append(0x10, 0x1f)
	collector.Append(0x20, 0x2f) // adjacent, must coalesce
	collector.Append(0x40, 0x40)
	collector.Append(0x1f3fb, 0x1f3ff)
	require.Equal(t, 3, collector.Len())
	var buf bytes.Buffer
	collector.Output(&buf)
	src := buf.String()
	require.Contains(t, src, "var _Stuff = &unicode.RangeTable{")
	require.Contains(t, src, "{0x0010, 0x002f, 1},")
	require.Contains(t, src, "R32: []unicode.Range32{")
	require.Contains(t, src, "LatinOffset: 2,")
}
