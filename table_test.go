package wcwidth

import (
	"bytes"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// A toy classification with class boundaries inside stage-3 rows, across
// rows and across stage-2 rows.
func toyClassify(r rune) byte {
	switch {
	case r < 0x20:
		return invalidByte
	case r < 0x1000:
		return byte(Narrow)
	case r < 0x2345:
		return byte(Wide)
	case r < 0x20000:
		return byte(Zero)
	default:
		return invalidByte
	}
}

func TestTableLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := BuildTable(toyClassify)
	t.Logf("toy table has %d bytes", table.Size())
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if got, want := table.Lookup(r), toyClassify(r); got != want {
			t.Fatalf("expected Lookup(%#U) to be %#02x, is %#02x", r, want, got)
		}
	}
}

func TestTableOutOfRange(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	table := BuildTable(toyClassify)
	for _, r := range [...]rune{unicode.MaxRune + 1, 0x200000, 1 << 30} {
		if got := table.Lookup(r); got != invalidByte {
			t.Errorf("expected Lookup(%#x) to be the sentinel, is %#02x", r, got)
		}
	}
}

func TestTableDeterministic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	t1 := BuildTable(toyClassify)
	t2 := BuildTable(toyClassify)
	if !bytes.Equal(t1.Bytes(), t2.Bytes()) {
		t.Errorf("expected two builds of the same classification to be byte-identical")
	}
}

func TestTableRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	built := BuildTable(toyClassify)
	loaded, err := LoadTable(built.Bytes())
	if err != nil {
		t.Fatalf("loading a freshly built table failed: %v", err)
	}
	for _, r := range [...]rune{0, 0x1F, 0x20, 0xFFF, 0x1000, 0x2344, 0x2345,
		0x1FFFF, 0x20000, unicode.MaxRune} {
		if got, want := loaded.Lookup(r), built.Lookup(r); got != want {
			t.Errorf("loaded table disagrees at %#U: %#02x vs %#02x", r, got, want)
		}
	}
}

func TestTableLoadErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if _, err := LoadTable(make([]byte, 10)); err == nil {
		t.Errorf("expected loading a truncated header to fail")
	}
	blob := make([]byte, tableHeaderLen)
	blob[0] = 33 // shift1 out of range
	if _, err := LoadTable(blob); err == nil {
		t.Errorf("expected loading a corrupt header to fail")
	}
	good := BuildTable(toyClassify).Bytes()
	if _, err := LoadTable(good[:tableHeaderLen+4]); err == nil {
		t.Errorf("expected loading a truncated stage 1 to fail")
	}
}

// The compiled process-wide table must agree with the rule-based decision
// procedure it was built from, over the whole code point range.
func TestTableAgreesWithRules(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	table := CompiledTable()
	t.Logf("width table has %d bytes", table.Size())
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if got, want := table.Class(r), classifyByRules(r); got != want {
			t.Fatalf("table disagrees with rules at %#U: %s vs %s", r, got, want)
		}
	}
}
