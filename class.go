package wcwidth

import "strconv"

// Class is the display width class of a single code point. Classification
// is a pure function of the code point (and the active Policy); a Class
// value never changes once computed.
type Class int8

// The four width classes. Their numeric values double as the column count
// for printable classes, which is what the aggregation functions sum up.
const (
	Invalid Class = -1 // not printable on a terminal
	Zero    Class = 0  // occupies no column
	Narrow  Class = 1  // occupies one column
	Wide    Class = 2  // occupies two columns
)

func (c Class) String() string {
	switch c {
	case Invalid:
		return "Invalid"
	case Zero:
		return "Zero"
	case Narrow:
		return "Narrow"
	case Wide:
		return "Wide"
	}
	return "Class(" + strconv.FormatInt(int64(c), 10) + ")"
}

// Classes are packed into single bytes in the multi-level lookup table,
// with 0xFF marking unclassified (= not printable) entries.
const invalidByte byte = 0xFF

func classToByte(c Class) byte {
	if c == Invalid {
		return invalidByte
	}
	return byte(c)
}

func classFromByte(b byte) Class {
	if b == invalidByte {
		return Invalid
	}
	return Class(b)
}
