package wcwidth

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestBitsetMembership(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x0041, 0x005A, 1},
			{0x0300, 0x036F, 1},
			{0x1000, 0x1000, 1},
		},
		R32: []unicode.Range32{
			{0x1F600, 0x1F64F, 1},
		},
	}
	bs := CompileBitset(table)
	in := [...]rune{0x41, 0x5A, 0x300, 0x321, 0x36F, 0x1000, 0x1F600, 0x1F64F}
	out := [...]rune{0x40, 0x5B, 0x2FF, 0x370, 0x0FFF, 0x1001, 0x1F5FF, 0x1F650, 0x10FFFF}
	for _, r := range in {
		if !bs.Contains(r) {
			t.Errorf("expected %#U to be in the set, is not", r)
		}
	}
	for _, r := range out {
		if bs.Contains(r) {
			t.Errorf("expected %#U not to be in the set, is", r)
		}
	}
}

func TestBitsetStride(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	table := &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x0100, 0x0108, 2}, // every other code point
		},
	}
	bs := CompileBitset(table)
	for r := rune(0x0100); r <= 0x0108; r++ {
		want := (r-0x0100)%2 == 0
		if got := bs.Contains(r); got != want {
			t.Errorf("expected Contains(%#U) to be %v, is %v", r, want, got)
		}
	}
}

func TestBitsetDenseCollapse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// 16 consecutive fully-set blocks of 32 code points each.
	table := &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x1000, 0x11FF, 1},
		},
	}
	bs := CompileBitset(table)
	if n := bs.DenseRanges(); n != 1 {
		t.Errorf("expected 1 dense range, have %d", n)
	}
	if len(bs.blocks) != 0 {
		t.Errorf("expected no sparse blocks left, have %d", len(bs.blocks))
	}
	for r := rune(0x1000); r <= 0x11FF; r++ {
		if !bs.Contains(r) {
			t.Fatalf("expected %#U to be in the set, is not", r)
		}
	}
	if bs.Contains(0x0FFF) || bs.Contains(0x1200) {
		t.Errorf("dense range leaks beyond its bounds")
	}
}

func TestBitsetDenseBridging(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// Two long runs of fully-set blocks, separated by a single block which
	// holds one lonely code point. The runs must merge into one range with
	// the interior block excluded.
	table := &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x1000, 0x109F, 1}, // blocks 0x80..0x84
			{0x10A5, 0x10A5, 1}, // inside bridge block 0x85
			{0x10C0, 0x115F, 1}, // blocks 0x86..0x8A
		},
	}
	bs := CompileBitset(table)
	if n := bs.DenseRanges(); n != 1 {
		t.Fatalf("expected runs to merge into 1 dense range, have %d", n)
	}
	if bs.Mask(0x85) == fullBlock {
		t.Errorf("expected bridge block to keep its partial mask")
	}
	if !bs.Contains(0x10A5) {
		t.Errorf("expected %#U to be in the set, is not", rune(0x10A5))
	}
	if bs.Contains(0x10A4) || bs.Contains(0x10A6) {
		t.Errorf("bridge block classifies neighbors of its single member")
	}
	for _, r := range [...]rune{0x1000, 0x109F, 0x10C0, 0x115F} {
		if !bs.Contains(r) {
			t.Errorf("expected %#U to be in the set, is not", r)
		}
	}
}

func TestBitsetShortRunStaysSparse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	table := &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x1000, 0x101F, 1}, // a single fully-set block
		},
	}
	bs := CompileBitset(table)
	if n := bs.DenseRanges(); n != 0 {
		t.Errorf("expected no dense ranges for a single block, have %d", n)
	}
	if bs.Mask(0x80) != fullBlock {
		t.Errorf("expected sparse mask of block 0x80 to be all ones")
	}
}

func TestBitsetGeneratedTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	SetupTables()
	t.Logf("zero-width set has %d dense ranges", zeroWidthSet.DenseRanges())
	t.Logf("ambiguous set has %d dense ranges", ambiguousSet.DenseRanges())
	if !zeroWidthSet.Contains(0x0300) {
		t.Errorf("expected COMBINING GRAVE ACCENT in the zero-width set")
	}
	if zeroWidthSet.Contains(0x00AD) {
		t.Errorf("SOFT HYPHEN must not be in the zero-width set")
	}
	if !ambiguousSet.Contains(0xFFFD) {
		t.Errorf("expected REPLACEMENT CHARACTER in the ambiguous set")
	}
	// Plane 15/16 private use is ambiguous in its entirety and should have
	// collapsed into dense ranges.
	if !ambiguousSet.Contains(0xF0000) || !ambiguousSet.Contains(0x10FFFD) {
		t.Errorf("expected private use planes in the ambiguous set")
	}
}
