package ucd

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
)

// UAX conformance test files (GraphemeBreakTest.txt and friends) consist of
// lines of hexadecimal code-points interleaved with break marks:
//
//	÷ 0061 × 0308 ÷ 0062 ÷    #  ÷ [0.2] LATIN SMALL LETTER A …
//
// where ÷ denotes an expected boundary and × a suppressed one.

// A TestFile walks the test cases of a UAX conformance test file.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	text    string
	comment string
}

// OpenTestFile opens a UAX conformance test file. It returns nil together
// with the error if the file is not present; conformance tests should then
// be skipped (the test data is downloaded separately, see download.go).
func OpenTestFile(filename string) (*TestFile, error) {
	f, err := os.Open(Path(filename))
	if err != nil {
		return nil, err
	}
	tf := &TestFile{in: f}
	tf.scanner = bufio.NewScanner(f)
	return tf, nil
}

// Scan advances to the next test case, skipping comment lines.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if parts := strings.SplitN(line, "#", 2); len(parts) > 1 {
			tf.text, tf.comment = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		} else {
			tf.text, tf.comment = parts[0], ""
		}
		return true
	}
	return false
}

// Text returns the current test case, i.e. the line without its comment.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the comment of the current test case.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Err returns the first error encountered while scanning.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	_ = tf.in.Close()
}

// BreakTestInput decodes one test case into the input string to segment
// and the list of segments expected for it.
func BreakTestInput(ti string) (string, []string) {
	sc := bufio.NewScanner(strings.NewReader(ti))
	sc.Split(bufio.ScanWords)
	out := make([]string, 0, 5)
	inp := bytes.NewBuffer(make([]byte, 0, 20))
	run := bytes.NewBuffer(make([]byte, 0, 20))
	for sc.Scan() {
		token := sc.Text()
		switch token {
		case "÷":
			if run.Len() > 0 {
				out = append(out, run.String())
				run.Reset()
			}
		case "×":
			// no boundary; keep accumulating the current segment
		default:
			n, _ := strconv.ParseUint(token, 16, 32)
			run.WriteRune(rune(n))
			inp.WriteRune(rune(n))
		}
	}
	if run.Len() > 0 {
		out = append(out, run.String())
	}
	return inp.String(), out
}
