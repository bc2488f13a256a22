/*
Package for a generator for terminal width code-point classes.

Content

Generator for the width property classes of package wcwidth: the zero-width
set, the East-Asian-Ambiguous set and the supplementary wide set. Classes
are generated from Unicode Character Database property files, which
internal/testdata/download.go fetches for the pinned Unicode version.

All width artifacts belong together: bumping the Unicode version means
re-running this generator and rebuilding the package. Emitting a partial
set of artifacts would leave the classification inconsistent, so any
parse failure aborts the generator before it writes a single file.


Usage

The generator has a "verbose" flag, which should usually be turned on,
and a flag for serializing the compiled three-stage width table:

   generator [-v] [-bin table.bin]

This re-creates the files "zerowidthclasses.go", "ambiguousclasses.go" and
"wideclasses.go" in the current directory. It is designed to be called
from the package root directory. The -bin blob reflects the property
classes compiled into the generator binary, so serializing it is a second
pass: regenerate the class files, rebuild, then run with -bin.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/template"
	"time"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/npillmayer/wcwidth"
	"github.com/npillmayer/wcwidth/internal/testdata"
	"github.com/npillmayer/wcwidth/internal/ucdparse"
)

var logger = log.New(os.Stderr, "width generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// The glibc carve-outs: code points which the Unicode format-control and
// ignorable properties over-include, but which terminals render with
// nonzero width. They are removed from the zero-width union and fall back
// to the regular classification rules.
var carveOuts = []rune{
	0x00AD, // SOFT HYPHEN
	0x115F, // HANGUL CHOSEONG FILLER
	0x3164, // HANGUL FILLER
	0xFFA0, // HALFWIDTH HANGUL FILLER
	0xFFF9, 0xFFFA, 0xFFFB, // INTERLINEAR ANNOTATION ANCHOR..TERMINATOR
	// EGYPTIAN HIEROGLYPH VERTICAL JOINER..END WALLED ENCLOSURE
	0x13430, 0x13431, 0x13432, 0x13433, 0x13434, 0x13435, 0x13436, 0x13437,
	0x13438, 0x13439, 0x1343A, 0x1343B, 0x1343C, 0x1343D, 0x1343E, 0x1343F,
}

// The wide block ranges hardcoded in the classification rules. W/F code
// points inside them need no table entry of their own.
var classicWideRanges = [][2]rune{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE10, 0xFE19},
	{0xFE30, 0xFE6F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

func coveredByClassicWide(r rune) bool {
	for _, w := range classicWideRanges {
		if r >= w[0] && r <= w[1] {
			return true
		}
	}
	return false
}

// loadPropertyFile reads one UCD property file and collects the code
// points of every property named in the selected fields, keyed by
// property value (field #1 of each data line).
func loadPropertyFile(file string, want ...string) (map[string][]rune, error) {
	if verbose {
		logger.Printf("reading %s", file)
	}
	defer timeTrack(time.Now(), "loading "+file)

	r, err := testdata.UCDReader(file)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(want))
	for _, w := range want {
		wanted[w] = true
	}
	codepoints := make(map[string][]rune, len(want))
	err = ucdparse.Parse(r, func(token *ucdparse.Token) {
		property := token.Field(1)
		if !wanted[property] {
			return
		}
		from, to := token.Range()
		for r := from; r <= to; r++ {
			codepoints[property] = append(codepoints[property], r)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return codepoints, nil
}

// loadCombining collects every code point with a nonzero canonical
// combining class.
func loadCombining(file string) ([]rune, error) {
	if verbose {
		logger.Printf("reading %s", file)
	}
	defer timeTrack(time.Now(), "loading "+file)

	r, err := testdata.UCDReader(file)
	if err != nil {
		return nil, err
	}
	var codepoints []rune
	err = ucdparse.Parse(r, func(token *ucdparse.Token) {
		if token.Field(1) == "0" {
			return
		}
		from, to := token.Range()
		for r := from; r <= to; r++ {
			codepoints = append(codepoints, r)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return codepoints, nil
}

// --- Property sets ------------------------------------------------------

type propertySets struct {
	zeroWidth *unicode.RangeTable
	ambiguous *unicode.RangeTable
	wideExtra *unicode.RangeTable
}

func extract() (*propertySets, error) {
	gc, err := loadPropertyFile("extracted/DerivedGeneralCategory.txt", "Cf")
	if err != nil {
		return nil, err
	}
	core, err := loadPropertyFile("DerivedCoreProperties.txt",
		"Grapheme_Extend", "Default_Ignorable_Code_Point")
	if err != nil {
		return nil, err
	}
	props, err := loadPropertyFile("PropList.txt", "Variation_Selector")
	if err != nil {
		return nil, err
	}
	hangul, err := loadPropertyFile("HangulSyllableType.txt", "V", "T")
	if err != nil {
		return nil, err
	}
	eaw, err := loadPropertyFile("EastAsianWidth.txt", "A", "W", "F")
	if err != nil {
		return nil, err
	}
	combining, err := loadCombining("extracted/DerivedCombiningClass.txt")
	if err != nil {
		return nil, err
	}

	sets := &propertySets{}
	sets.zeroWidth = subtract(rangetable.Merge(
		rangetable.New(gc["Cf"]...),
		rangetable.New(core["Grapheme_Extend"]...),
		rangetable.New(core["Default_Ignorable_Code_Point"]...),
		rangetable.New(props["Variation_Selector"]...),
		rangetable.New(hangul["V"]...),
		rangetable.New(hangul["T"]...),
		rangetable.New(combining...),
	), carveOuts)
	sets.ambiguous = rangetable.New(eaw["A"]...)

	var wideExtra []rune
	for _, r := range append(eaw["W"], eaw["F"]...) {
		if r >= 0x1100 && !coveredByClassicWide(r) {
			wideExtra = append(wideExtra, r)
		}
	}
	sets.wideExtra = rangetable.New(wideExtra...)
	return sets, nil
}

// subtract returns table minus the given code points.
func subtract(table *unicode.RangeTable, minus []rune) *unicode.RangeTable {
	drop := make(map[rune]bool, len(minus))
	for _, r := range minus {
		drop[r] = true
	}
	var kept []rune
	rangetable.Visit(table, func(r rune) {
		if !drop[r] {
			kept = append(kept, r)
		}
	})
	return rangetable.New(kept...)
}

// --- Templates ----------------------------------------------------------

var header = `package wcwidth

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
{{range .Comment}}// {{.}}
{{end}}
import "unicode"

var {{.Name}} = &unicode.RangeTable{
`

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	return template.Must(template.New(name).Parse(templString))
}

type classFile struct {
	Name    string
	Comment []string
}

// generateClassFile writes one generated Go source file holding a range
// table variable for a property class.
func generateClassFile(filename string, class classFile, table *unicode.RangeTable) {
	defer timeTrack(time.Now(), "generate "+filename)
	f, ioerr := os.Create(filename)
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	t := makeTemplate(class.Name, header)
	checkFatal(t.Execute(w, class))
	if len(table.R16) > 0 {
		w.WriteString("\tR16: []unicode.Range16{\n")
		for _, r := range table.R16 {
			fmt.Fprintf(w, "\t\t{0x%04x, 0x%04x, %d},\n", r.Lo, r.Hi, r.Stride)
		}
		w.WriteString("\t},\n")
	}
	if len(table.R32) > 0 {
		w.WriteString("\tR32: []unicode.Range32{\n")
		for _, r := range table.R32 {
			fmt.Fprintf(w, "\t\t{0x%04x, 0x%04x, %d},\n", r.Lo, r.Hi, r.Stride)
		}
		w.WriteString("\t},\n")
	}
	if table.LatinOffset > 0 {
		fmt.Fprintf(w, "\tLatinOffset: %d,\n", table.LatinOffset)
	}
	w.WriteString("}\n")
	checkFatal(w.Flush())
}

// --- Main ---------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	binFile := flag.String("bin", "", "write the serialized width table to this file")
	flag.Parse()
	verbose = *doVerbose

	for _, file := range testdata.Files {
		if _, err := os.Stat(testdata.UCDPath(file)); err != nil {
			checkFatal(fmt.Errorf("missing UCD input (run internal/testdata/download.go): %w", err))
		}
	}

	sets, err := extract()
	checkFatal(err)
	if verbose {
		logger.Printf("zero-width set compiles to %d dense ranges",
			wcwidth.CompileBitset(sets.zeroWidth).DenseRanges())
		logger.Printf("ambiguous set compiles to %d dense ranges",
			wcwidth.CompileBitset(sets.ambiguous).DenseRanges())
	}

	generateClassFile("zerowidthclasses.go", classFile{
		Name: "_ZeroWidth",
		Comment: []string{
			"Zero-width code points, Unicode 15.0.0. Union of general category Cf",
			"(minus SOFT HYPHEN), Grapheme_Extend, Variation_Selector,",
			"Default_Ignorable_Code_Point, Hangul syllable types V and T, and nonzero",
			"canonical combining classes; minus the glibc carve-outs U+115F, U+3164,",
			"U+FFA0, U+FFF9..U+FFFB and U+13430..U+1343F, which terminals render with",
			"nonzero width.",
		},
	}, sets.zeroWidth)
	generateClassFile("ambiguousclasses.go", classFile{
		Name: "_Ambiguous",
		Comment: []string{
			"East-Asian-Ambiguous code points (East_Asian_Width category \"A\"),",
			"Unicode 15.0.0. Rendered with one column by default, two columns under",
			"the EastAsian policy.",
		},
	}, sets.ambiguous)
	generateClassFile("wideclasses.go", classFile{
		Name: "_WideExtra",
		Comment: []string{
			"Supplementary wide code points, Unicode 15.0.0: East_Asian_Width",
			"categories \"W\" and \"F\" at or above U+1100 which are not already covered",
			"by the classical wide block ranges of the reference algorithm. Mostly",
			"emoji presentations, Tangut, Kana extensions and Hangul Jamo Extended-A.",
		},
	}, sets.wideExtra)

	if *binFile != "" {
		table := wcwidth.CompiledTable()
		checkFatal(os.WriteFile(*binFile, table.Bytes(), 0644))
		if verbose {
			logger.Printf("width table serialized, %d bytes", table.Size())
		}
	}
}

// --- Util ---------------------------------------------------------------

// Little helper for timing
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
