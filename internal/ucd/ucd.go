/*
Package ucd reads Unicode Character Database files.

The format of UCD files is defined in https://www.unicode.org/reports/tr44/;
see https://www.unicode.org/Public/UCD/latest/ucd/ for the files themselves.
Data lines look like

	0600..0605    ; Prepend   # Cf   [6] ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE

i.e., a code-point or code-point range, followed by semicolon-separated
fields, followed by an optional comment. This package is used by the table
generators of this module and by the conformance tests.
*/
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Item is one data line of a UCD file.
type Item struct {
	From, To rune     // code-point range; From == To for a single code-point
	Fields   []string // semicolon-separated fields following the range
	Comment  string   // rest-of-line comment, if any
	LineNo   int
}

// Field gets field #1…n of the item, or "" if out of range.
func (it *Item) Field(i int) string {
	if i < 1 || i > len(it.Fields) {
		return ""
	}
	return it.Fields[i-1]
}

// Range gets the code-point range of the item.
func (it *Item) Range() (from, to rune) {
	return it.From, it.To
}

// A Parser walks the data lines of a UCD file, skipping comment-only and
// empty lines.
type Parser struct {
	scanner *bufio.Scanner
	lineno  int
	item    Item
	err     error
}

// New creates a Parser reading from r.
func New(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances the parser to the next data line, returning false at the
// end of the input or on a syntax error.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.scanner.Scan() {
		p.lineno++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		item, err := parseLine(line, p.lineno)
		if err != nil {
			p.err = err
			return false
		}
		p.item = item
		return true
	}
	p.err = p.scanner.Err()
	return false
}

// Item returns the data line the parser currently is positioned on.
func (p *Parser) Item() *Item {
	return &p.item
}

// Err returns the first error encountered while parsing.
func (p *Parser) Err() error {
	return p.err
}

func parseLine(line string, lineno int) (Item, error) {
	item := Item{LineNo: lineno}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		item.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	from, to, err := parseRange(fields[0], lineno)
	if err != nil {
		return item, err
	}
	item.From, item.To = from, to
	item.Fields = fields[1:]
	return item, nil
}

func parseRange(s string, lineno int) (from, to rune, err error) {
	parts := strings.SplitN(s, "..", 2)
	lo, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("ucd line %d: malformed code-point %q: %w", lineno, parts[0], err)
	}
	hi := lo
	if len(parts) == 2 {
		hi, err = strconv.ParseUint(parts[1], 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("ucd line %d: malformed code-point %q: %w", lineno, parts[1], err)
		}
	}
	return rune(lo), rune(hi), nil
}
