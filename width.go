package wcwidth

import "unicode/utf8"

// Policy selects the treatment of East-Asian-Ambiguous code points. The
// zero value is the Default policy; EastAsian is strictly opt-in, intended
// for emulation of legacy CJK terminal environments.
type Policy int8

const (
	// Default renders East-Asian-Ambiguous code points with one column.
	Default Policy = iota
	// EastAsian renders East-Asian-Ambiguous code points with two columns.
	EastAsian
)

func (p Policy) String() string {
	if p == EastAsian {
		return "EastAsian"
	}
	return "Default"
}

// Class returns the width class of a single code point under policy p.
func (p Policy) Class(r rune) Class {
	if p == EastAsian {
		return classifyEastAsian(r)
	}
	return classify(r)
}

// Width returns the number of columns a single code point occupies under
// policy p: 0, 1 or 2, or -1 if the code point is not printable or not a
// valid Unicode scalar value.
func (p Policy) Width(r rune) int {
	return int(p.Class(r))
}

// StringWidth returns the total number of columns occupied by s, or -1 as
// soon as any of its code points is unprintable. Undecodable input (stray
// bytes, encoded surrogates) counts as unprintable.
func (p Policy) StringWidth(s string) int {
	return p.stringWidth(s, len(s))
}

// StringWidthN is like StringWidth, but only considers the first n code
// points of s. Iteration is by decoded code point, not by byte, so a
// multi-byte character counts as one. n larger than the number of code
// points means the whole string; n <= 0 returns 0 without consulting the
// classifier.
func (p Policy) StringWidthN(s string, n int) int {
	if n < 0 {
		n = 0
	}
	return p.stringWidth(s, n)
}

func (p Policy) stringWidth(s string, limit int) int {
	width := 0
	for count := 0; count < limit && len(s) > 0; count++ {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return -1
		}
		c := p.Class(r)
		if c == Invalid {
			return -1
		}
		width += int(c)
		s = s[size:]
	}
	return width
}

// Width returns the column count of a single code point: 0, 1 or 2, or -1
// for unprintable input. It is the analogue of POSIX wcwidth(3).
func Width(r rune) int {
	return Default.Width(r)
}

// StringWidth returns the total column count of a string, or -1 if any of
// its code points is unprintable. It is the analogue of POSIX wcswidth(3).
func StringWidth(s string) int {
	return Default.StringWidth(s)
}

// StringWidthN is StringWidth restricted to the first n code points.
func StringWidthN(s string, n int) int {
	return Default.StringWidthN(s, n)
}

// WidthCJK is Width with East-Asian-Ambiguous code points counting two
// columns.
func WidthCJK(r rune) int {
	return EastAsian.Width(r)
}

// StringWidthCJK is StringWidth with East-Asian-Ambiguous code points
// counting two columns.
func StringWidthCJK(s string) int {
	return EastAsian.StringWidth(s)
}
