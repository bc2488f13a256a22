//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// The Unicode version all width artifacts are generated from. Bumping it
// means regenerating every artifact: the property class files and the
// binary width table belong together.
const ucdBase = "https://www.unicode.org/Public/15.0.0/ucd/"

var files = []string{
	"extracted/DerivedGeneralCategory.txt",
	"extracted/DerivedCombiningClass.txt",
	"DerivedCoreProperties.txt",
	"PropList.txt",
	"HangulSyllableType.txt",
	"EastAsianWidth.txt",
}

func main() {
	for _, file := range files {
		if err := downloadUCDFile(ucdBase+file, filepath.Join("ucd", file)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download %v: %v\n", file, err)
			os.Exit(1)
		}
	}
}

func downloadUCDFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET failed: %s", resp.Status)
	}

	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
