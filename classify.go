package wcwidth

import (
	"sync"
	"unicode"
)

// Process-wide classification state: three compiled bitsets and the
// three-stage width table. Constructed at most once, never mutated
// afterwards, shared by all readers for the process lifetime.
var (
	zeroWidthSet *SparseBitset
	ambiguousSet *SparseBitset
	wideExtraSet *SparseBitset
	widthTable   *Table
)

var setupOnce sync.Once

// SetupTables compiles the generated property tables into bitsets and builds
// the width lookup table. It is called automatically on first
// classification; clients may call it eagerly to move the one-time setup
// cost to a convenient point, e.g. program startup. (Concurrency-safe).
func SetupTables() {
	setupOnce.Do(setupTables)
}

func setupTables() {
	zeroWidthSet = CompileBitset(_ZeroWidth)
	ambiguousSet = CompileBitset(_Ambiguous)
	wideExtraSet = CompileBitset(_WideExtra)
	widthTable = BuildTable(func(r rune) byte {
		return classToByte(classifyByRules(r))
	})
	T().Infof("wcwidth: width table compiled, %d bytes", widthTable.Size())
}

// CompiledTable returns the process-wide width table. The generator uses it
// to serialize the table artifact; clients normally have no reason to touch
// it.
func CompiledTable() *Table {
	SetupTables()
	return widthTable
}

// classify is the runtime classification path: a single O(1) table lookup.
func classify(r rune) Class {
	SetupTables()
	return widthTable.Class(r)
}

// classifyEastAsian reclassifies East-Asian-Ambiguous code points as wide
// and delegates everything else to the width table.
func classifyEastAsian(r rune) Class {
	SetupTables()
	if ambiguousSet.Contains(r) {
		return Wide
	}
	return widthTable.Class(r)
}

// classifyByRules is the reference decision procedure the width table is
// compiled from. Rules are ordered; the first match is definitive.
//
// The fixed ranges follow the well-known wcwidth reference implementation,
// with the zero-width set and the supplementary wide set coming from the
// generated property tables. Code points matching nothing default to
// Narrow, so that future Unicode additions occupy a single column instead
// of being rejected.
func classifyByRules(r rune) Class {
	switch {
	case r < 0 || r > unicode.MaxRune || (r >= 0xD800 && r <= 0xDFFF):
		// Lone surrogates are not scalar values and classify as Invalid.
		return Invalid
	case r == 0:
		return Zero
	case r < 0x20 || (r >= 0x7F && r < 0xA0):
		return Invalid // C0/C1 controls and DEL
	}
	if zeroWidthSet.Contains(r) {
		return Zero
	}
	if r < 0x1100 {
		return Narrow
	}
	switch {
	case r <= 0x115F || r == 0x2329 || r == 0x232A:
		// Hangul Jamo leading consonants; angle brackets are rendered
		// full-width by long-standing terminal convention.
		return Wide
	case r == 0x3164:
		return Narrow // HANGUL FILLER
	case r >= 0x2E80 && r <= 0xA4CF && r != 0x303F:
		return Wide // CJK Radicals Supplement .. Yi Radicals
	case r >= 0xAC00 && r <= 0xD7A3, // Hangul Syllables
		r >= 0xF900 && r <= 0xFAFF, // CJK Compatibility Ideographs
		r >= 0xFE10 && r <= 0xFE19, // Vertical Forms
		r >= 0xFE30 && r <= 0xFE6F, // CJK Compatibility Forms
		r >= 0xFF00 && r <= 0xFF60, // Fullwidth Forms
		r >= 0xFFE0 && r <= 0xFFE6,
		r >= 0x20000 && r <= 0x2FFFD, // CJK Extension B and later
		r >= 0x30000 && r <= 0x3FFFD:
		return Wide
	}
	if wideExtraSet.Contains(r) {
		// East_Asian_Width W/F outside the classical blocks: emoji
		// presentations, Tangut, Kana Supplement, Jamo Extended-A, ...
		return Wide
	}
	return Narrow
}
