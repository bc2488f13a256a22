package ucdparse

import (
	"strings"
	"testing"
)

const sample = `# EastAsianWidth-15.0.0.txt
# =========================

1100..115F     ; W # Lo    [96] HANGUL CHOSEONG KIYEOK..HANGUL CHOSEONG FILLER
20A9           ; H # Sc         WON SIGN

3000           ; F # Zs         IDEOGRAPHIC SPACE
`

func TestParseSample(t *testing.T) {
	var tokens []*Token
	err := Parse(strings.NewReader(sample), func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 data lines, got %d", len(tokens))
	}
	from, to := tokens[0].Range()
	if from != 0x1100 || to != 0x115F {
		t.Errorf("expected range 1100..115F, got %#U..%#U", from, to)
	}
	if cat := tokens[0].Field(1); cat != "W" {
		t.Errorf("expected field 1 to be W, is %q", cat)
	}
	if from, to = tokens[1].Range(); from != 0x20A9 || to != from {
		t.Errorf("expected single code point 20A9, got %#U..%#U", from, to)
	}
	if !strings.HasPrefix(tokens[2].Comment, "Zs") {
		t.Errorf("expected comment to be carried, got %q", tokens[2].Comment)
	}
}

func TestParseFieldOutOfRange(t *testing.T) {
	var token *Token
	err := Parse(strings.NewReader("0041 ; Lu"), func(t *Token) { token = t })
	if err != nil {
		t.Fatal(err)
	}
	if f := token.Field(2); f != "" {
		t.Errorf("expected out-of-range field to be empty, got %q", f)
	}
}

func TestParseMalformed(t *testing.T) {
	inputs := []string{
		"XYZ ; W",
		"110000 ; W",
		"D7A3..AC00 ; W",
	}
	for _, in := range inputs {
		if err := Parse(strings.NewReader(in), func(*Token) {}); err == nil {
			t.Errorf("expected parse of %q to fail, did not", in)
		}
	}
}
