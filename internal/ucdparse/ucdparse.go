/*
Package ucdparse provides a parser for Unicode Character Database files.

UCD property files share a simple line format, defined in
http://www.unicode.org/reports/tr44/:

   0600..0605    ; Cf # ...comment...
   061C          ; Cf # ...comment...

Each data line carries a code point or a code point range, followed by
semicolon-separated property fields and an optional rest-of-line comment.
See http://www.unicode.org/Public/UCD/latest/ucd/ for example files.
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token subsumes the properties of a single data line of a UCD file.
type Token struct {
	LineNo   int      // 1-based line number within the input
	runeFrom rune     // first/single code point
	runeTo   rune     // final code point of range (may equal runeFrom)
	Fields   []string // property fields, without the code point field
	Comment  string   // rest-of-line comment, if any
}

// Range gets the code point range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Field gets field #i (1…n) from the current data item, trimmed of
// surrounding white space. Out-of-range indexes return "".
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Scanner is a line-level scanner for UCD files. Comment-only and blank
// lines are skipped transparently.
type Scanner struct {
	Token     *Token // data item of the current line
	LastError error  // first error encountered, if any
	buf       *bufio.Scanner
	lineno    int
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{buf: bufio.NewScanner(inputReader)}, nil
}

// Next advances the scanner to the next data line. It returns false when
// the input is exhausted or a malformed line has been encountered; the
// latter is reflected in LastError.
func (sc *Scanner) Next() bool {
	for sc.buf.Scan() {
		sc.lineno++
		line := sc.buf.Text()
		var comment string
		if i := strings.IndexByte(line, '#'); i >= 0 {
			comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		token, err := parseDataLine(line, sc.lineno)
		if err != nil {
			sc.LastError = err
			return false
		}
		token.Comment = comment
		sc.Token = token
		return true
	}
	if err := sc.buf.Err(); err != nil && sc.LastError == nil {
		sc.LastError = err
	}
	return false
}

// Parse iterates over each data line of a UCD file and calls callback f
// on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

func parseDataLine(line string, lineno int) (*Token, error) {
	fields := strings.Split(line, ";")
	token := &Token{LineNo: lineno}
	from, to, err := parseRuneRange(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineno, err)
	}
	token.runeFrom, token.runeTo = from, to
	for _, f := range fields[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return token, nil
}

// parseRuneRange decodes "10FFFF" and "AC00..D7A3" style code point fields.
func parseRuneRange(s string) (from, to rune, err error) {
	lo, hi := s, s
	if i := strings.Index(s, ".."); i >= 0 {
		lo, hi = s[:i], s[i+2:]
	}
	if from, err = parseRune(lo); err != nil {
		return 0, 0, err
	}
	if to, err = parseRune(hi); err != nil {
		return 0, 0, err
	}
	if to < from {
		return 0, 0, fmt.Errorf("code point range reversed: %s", s)
	}
	return from, to, nil
}

func parseRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if n > unicode.MaxRune {
		return 0, fmt.Errorf("code point out of range: %s", hex)
	}
	return rune(n), nil
}
