/*
Package for a generator for UTS#51 emoji character classes.

Content

Generator for Unicode emoji code-point classes. For more information
see http://www.unicode.org/reports/tr51/#Emoji_Properties_and_Data_Files

Classes are generated from a companion file: "emoji-data.txt".


Usage

The generator has just one option, a "verbose" flag. It should usually
be turned on.

   generator [-v]

This creates a file "emojiclasses.go" in the current directory. It is designed
to be called from the "emoji" directory.


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
	"fmt"
	"log"
	"os"
	"runtime"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/gonlp/segment/internal/ucd"
)

var logger = log.New(os.Stderr, "UTS#51 generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// The segmentation rules only ever test these three emoji properties.
var emojiClassnames = []string{
	"Emoji_Modifier",
	"Emoji_Component",
	"Extended_Pictographic",
}

// Load the Unicode UTS#51 data file: emoji-data.txt
func loadUnicodeEmojiDataFile() (map[string]*arraylist.List, error) {
	if verbose {
		logger.Printf("reading emoji-data.txt")
	}
	defer timeTrack(time.Now(), "loading emoji-data.txt")

	f, err := ucd.Reader("emoji/emoji-data.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	wanted := make(map[string]bool, len(emojiClassnames))
	for _, c := range emojiClassnames {
		wanted[c] = true
	}
	ranges := make(map[string]*arraylist.List, len(emojiClassnames))
	parser := ucd.New(f)
	for parser.Next() {
		item := parser.Item()
		clstr := item.Field(1)
		if !wanted[clstr] {
			continue
		}
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

// --- Templates --------------------------------------------------------

var header = `package emoji

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2026, The gonlp/segment authors

import (
	"strconv"
	"unicode"
)
`

var templateClassType = `
// Class is the type of UTS#51 emoji code-point classes.
// Must be convertable to int.
type Class int

// Will be initialized in SetupEmojiClasses()
var rangeFromClass []*unicode.RangeTable
`

var templateClassConsts = `
// These are the emoji properties used for segmentation.
const ( {{$i:=0}}
{{range  .}}	{{.}}Class Class = {{$i}}{{$i = inc $i}}
{{end}}
	// Other identifies code-points with none of the above properties.
	Other Class = 999
)
`

var templateClassStringer = `
// String returns the Unicode name of an emoji class.
func (c Class) String() string {
	switch c {
{{range .}}	case {{.}}Class:
		return "{{.}}"
{{end}}	case Other:
		return "Other"
	}
	return "Class(" + strconv.FormatInt(int64(c), 10) + ")"
}
`

var templateRangeTableVars = `
// Range tables for the emoji code-point classes.
// Will be initialized with SetupEmojiClasses().
// Clients can check with unicode.Is(..., rune)
var {{$i:=0}}{{range .}}{{if notfirst $i}}, {{end}}{{$i = inc $i}}{{.}}{{end}} *unicode.RangeTable
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"notfirst": func(i int) bool {
		return i > 0
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateRanges(w *bufio.Writer, ranges map[string]*arraylist.List) {
	defer timeTrack(time.Now(), "generate range tables")
	var buf bytes.Buffer
	for _, key := range emojiClassnames {
		collector := ucd.RangeTableCollector{Name: key}
		list := ranges[key]
		if list != nil {
			list.Each(func(_ int, value interface{}) {
				r := value.([2]rune)
				collector.Append(r[0], r[1])
			})
		}
		if verbose {
			logger.Printf("class %s has %d ranges", key, collector.Len())
		}
		collector.Output(&buf)
	}
	w.Write(buf.Bytes())
	w.WriteString("func setupEmojiClasses() {\n")
	w.WriteString("\trangeFromClass = make([]*unicode.RangeTable, int(Extended_PictographicClass)+1)\n")
	for _, key := range emojiClassnames {
		w.WriteString(fmt.Sprintf("\t%s = _%s\n", key, key))
		w.WriteString(fmt.Sprintf("\trangeFromClass[int(%sClass)] = %s\n", key, key))
	}
	w.WriteString("}\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	ranges, err := loadUnicodeEmojiDataFile()
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d emoji classes\n", len(ranges))
	}
	f, ioerr := os.Create("emojiclasses.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	w.WriteString(templateClassType)
	t := makeTemplate("emoji classes", templateClassConsts)
	checkFatal(t.Execute(w, emojiClassnames))
	t = makeTemplate("emoji classes stringer", templateClassStringer)
	checkFatal(t.Execute(w, emojiClassnames))
	t = makeTemplate("emoji range tables", templateRangeTableVars)
	checkFatal(t.Execute(w, emojiClassnames))
	generateRanges(w, ranges)
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
