/*
Package for a generator for UAX#29 sentence break classes.

Content

Generator for the exception tables of package sentence. The large break
classes (Extend, Format, Close, Numeric, Upper, Lower, OLetter) are
assembled at runtime from the standard library's category and property
tables; this generator derives the deltas between those tables and the
classes defined in the companion file "SentenceBreakProperty.txt", plus the
small exact classes.

Usage

The generator has just one option, a "verbose" flag. It should usually
be turned on.

   generator [-v]

This creates a file "sentencetables.go" in the current directory. It is
designed to be called from the "sentence" directory.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The gonlp/segment authors
*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"log"
	"os"
	"runtime"
	"time"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/gonlp/segment/internal/ucd"
	"golang.org/x/text/unicode/rangetable"
)

var logger = log.New(os.Stderr, "UAX#29 generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Load the Unicode UAX#29 definition file: SentenceBreakProperty.txt
func loadUnicodeSentenceBreakFile() (map[string]*arraylist.List, error) {
	if verbose {
		logger.Printf("reading SentenceBreakProperty.txt")
	}
	defer timeTrack(time.Now(), "loading SentenceBreakProperty.txt")

	f, err := ucd.Reader("auxiliary/SentenceBreakProperty.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ranges := make(map[string]*arraylist.List, 16)
	parser := ucd.New(f)
	for parser.Next() {
		item := parser.Item()
		clstr := item.Field(1)
		list, ok := ranges[clstr]
		if !ok {
			list = arraylist.New()
			ranges[clstr] = list
		}
		from, to := item.Range()
		list.Add([2]rune{from, to})
	}
	return ranges, parser.Err()
}

// tableFor re-packages the ranges of one break class as a unicode.RangeTable,
// so that set arithmetic can be done with package ucd.
func tableFor(ranges map[string]*arraylist.List, key string) *unicode.RangeTable {
	var runes []rune
	list := ranges[key]
	if list == nil {
		logger.Fatalf("break class %s not found in property file", key)
	}
	list.Each(func(_ int, value interface{}) {
		r := value.([2]rune)
		for c := r[0]; c <= r[1]; c++ {
			runes = append(runes, c)
		}
	})
	return rangetable.New(runes...)
}

func collect(name string, t *unicode.RangeTable, buf *bytes.Buffer) {
	collector := ucd.RangeTableCollector{Name: name}
	ucd.Visit(t, func(r rune) {
		collector.Append(r, r)
	})
	if verbose {
		logger.Printf("table %s has %d ranges", name, collector.Len())
	}
	collector.Output(buf)
}

var header = `package sentence

// This file has been generated -- you probably should NOT EDIT IT !
//
// Exception tables derived from SentenceBreakProperty.txt by diffing the
// property classes against the standard library's category and property
// tables. The large classes are assembled from those tables plus these
// deltas in setupSentenceClasses().
//
// BSD License, Copyright (c) 2026, The gonlp/segment authors

import (
	"unicode"
)

`

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	ranges, err := loadUnicodeSentenceBreakFile()
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d sentence break classes\n", len(ranges))
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	marks := rangetable.Merge(unicode.Mn, unicode.Me, unicode.Mc)
	letters := rangetable.Merge(unicode.L, unicode.Nl)
	collect("Sep", tableFor(ranges, "Sep"), &buf)
	collect("Sp", tableFor(ranges, "Sp"), &buf)
	collect("ExtendAdditions", ucd.Subtract(tableFor(ranges, "Extend"), marks), &buf)
	collect("FormatExceptions", ucd.Subtract(unicode.Cf, tableFor(ranges, "Format")), &buf)
	collect("ATerm", tableFor(ranges, "ATerm"), &buf)
	collect("SContinue", tableFor(ranges, "SContinue"), &buf)
	collect("NumericAdditions", ucd.Subtract(tableFor(ranges, "Numeric"), unicode.Nd), &buf)
	collect("OLetterAdditions", ucd.Subtract(tableFor(ranges, "OLetter"), letters), &buf)

	f, ioerr := os.Create("sentencetables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.Write(buf.Bytes())
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
