package ucd

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Path returns the local path for the given UCD file. The data files are
// not checked in; run download.go to fetch them.
func Path(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "data", file)
}

// Reader opens the given UCD file for reading. The caller closes it.
func Reader(file string) (io.ReadCloser, error) {
	return os.Open(Path(file))
}
