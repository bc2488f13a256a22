package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Files lists the UCD property files the width table generator consumes.
// All of them must come from the same Unicode version (see download.go);
// mixing versions produces inconsistent width artifacts.
var Files = []string{
	"extracted/DerivedGeneralCategory.txt",
	"extracted/DerivedCombiningClass.txt",
	"DerivedCoreProperties.txt",
	"PropList.txt",
	"HangulSyllableType.txt",
	"EastAsianWidth.txt",
}

// UCDReader returns a reader for the given ucd file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// UCDPath returns the path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
