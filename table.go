package wcwidth

import (
	"encoding/binary"
	"fmt"
	"unicode"
)

// The width table is a three-stage index over the 21-bit code point space,
// flattened into a single byte buffer:
//
//	header   5 × uint32: shift1, bound1, shift2, mask2, mask3
//	stage 1  bound1 uint32s, indexed by cp >> shift1
//	stage 2  rows of mask2+1 uint32s
//	stage 3  rows of mask3+1 classification bytes
//
// Stage-1 and stage-2 entries hold absolute byte positions within the same
// buffer, which makes the table one relocatable, immutable blob: loading it
// amounts to reading the header. The entry 0 is the "unclassified" sentinel
// at both stages, as is the stage-3 byte 0xFF.
//
// Identical rows are stored only once. Unicode consists of huge runs of
// blocks with identical widths, so deduplication shrinks the table to a few
// kilobytes.
const (
	tableShift1 = 9
	tableShift2 = 4
	tableMask2  = 0x1F
	tableMask3  = 0xF
	tableBound1 = (unicode.MaxRune >> tableShift1) + 1

	tableHeaderLen = 5 * 4
	stage2RowLen   = (tableMask2 + 1) * 4
	stage3RowLen   = tableMask3 + 1
)

// Table is a compiled three-stage width lookup table. It is immutable and
// safe for concurrent use. Lookup cost is three array index operations plus
// two shifts/masks, independent of the code point value.
type Table struct {
	data   []byte
	shift1 uint32
	bound1 uint32
	shift2 uint32
	mask2  uint32
	mask3  uint32
}

// Lookup returns the classification byte for a code point, or 0xFF if the
// code point is unclassified (not printable, or no valid scalar value).
func (t *Table) Lookup(r rune) byte {
	index1 := uint32(r) >> t.shift1
	if index1 >= t.bound1 {
		return invalidByte
	}
	offset2 := t.u32(tableHeaderLen + 4*index1)
	if offset2 == 0 {
		return invalidByte
	}
	offset3 := t.u32(offset2 + 4*((uint32(r)>>t.shift2)&t.mask2))
	if offset3 == 0 {
		return invalidByte
	}
	return t.data[offset3+uint32(r)&t.mask3]
}

// Class returns the width class for a code point.
func (t *Table) Class(r rune) Class {
	return classFromByte(t.Lookup(r))
}

// Bytes returns the serialized table. The returned slice is the table's
// backing store and must not be modified.
func (t *Table) Bytes() []byte {
	return t.data
}

// Size returns the serialized table size in bytes.
func (t *Table) Size() int {
	return len(t.data)
}

func (t *Table) u32(pos uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[pos:])
}

// BuildTable compiles a classification function, total over the code point
// range [0, 0x10FFFF], into a Table. classify must return the classification
// byte for each code point, 0xFF for unclassified ones.
//
// Building is deterministic: the code point space is walked in ascending
// order and rows are allocated in order of first occurrence, so the same
// classification yields a byte-identical table.
func BuildTable(classify func(rune) byte) *Table {
	sentinel3 := make([]byte, stage3RowLen)
	for i := range sentinel3 {
		sentinel3[i] = invalidByte
	}
	sentinel2 := make([]byte, stage2RowLen)

	var stage2, stage3 []byte               // row storage, sentinel rows excluded
	rows2 := map[string]uint32{string(sentinel2): 0} // row content -> row id, 0 = sentinel
	rows3 := map[string]uint32{string(sentinel3): 0}

	stage1 := make([]uint32, tableBound1) // stage-2 row ids
	row2 := make([]byte, stage2RowLen)
	row3 := make([]byte, stage3RowLen)

	for index1 := uint32(0); index1 < tableBound1; index1++ {
		for index2 := uint32(0); index2 <= tableMask2; index2++ {
			base := rune(index1<<tableShift1 | index2<<tableShift2)
			for index3 := rune(0); index3 <= tableMask3; index3++ {
				row3[index3] = classify(base | index3)
			}
			id3, ok := rows3[string(row3)]
			if !ok {
				id3 = uint32(len(stage3)/stage3RowLen) + 1
				rows3[string(row3)] = id3
				stage3 = append(stage3, row3...)
			}
			binary.LittleEndian.PutUint32(row2[4*index2:], id3)
		}
		id2, ok := rows2[string(row2)]
		if !ok {
			id2 = uint32(len(stage2)/stage2RowLen) + 1
			rows2[string(row2)] = id2
			stage2 = append(stage2, row2...)
		}
		stage1[index1] = id2
	}

	// Flatten, translating row ids into absolute byte positions.
	stage2Base := uint32(tableHeaderLen + 4*tableBound1)
	stage3Base := stage2Base + uint32(len(stage2))
	data := make([]byte, 0, stage3Base+uint32(len(stage3)))

	var header [tableHeaderLen]byte
	binary.LittleEndian.PutUint32(header[0:], tableShift1)
	binary.LittleEndian.PutUint32(header[4:], tableBound1)
	binary.LittleEndian.PutUint32(header[8:], tableShift2)
	binary.LittleEndian.PutUint32(header[12:], tableMask2)
	binary.LittleEndian.PutUint32(header[16:], tableMask3)
	data = append(data, header[:]...)

	var entry [4]byte
	for _, id2 := range stage1 {
		binary.LittleEndian.PutUint32(entry[:], rowOffset(id2, stage2Base, stage2RowLen))
		data = append(data, entry[:]...)
	}
	for i := 0; i < len(stage2); i += 4 {
		id3 := binary.LittleEndian.Uint32(stage2[i:])
		binary.LittleEndian.PutUint32(entry[:], rowOffset(id3, stage3Base, stage3RowLen))
		data = append(data, entry[:]...)
	}
	data = append(data, stage3...)

	return &Table{
		data:   data,
		shift1: tableShift1,
		bound1: tableBound1,
		shift2: tableShift2,
		mask2:  tableMask2,
		mask3:  tableMask3,
	}
}

func rowOffset(id, base uint32, rowLen int) uint32 {
	if id == 0 {
		return 0
	}
	return base + (id-1)*uint32(rowLen)
}

// LoadTable wraps a serialized table blob. The blob is used as is, without
// copying or further parsing; only the header is validated.
func LoadTable(data []byte) (*Table, error) {
	if len(data) < tableHeaderLen {
		return nil, fmt.Errorf("width table blob too short: %d bytes", len(data))
	}
	t := &Table{
		data:   data,
		shift1: binary.LittleEndian.Uint32(data[0:]),
		bound1: binary.LittleEndian.Uint32(data[4:]),
		shift2: binary.LittleEndian.Uint32(data[8:]),
		mask2:  binary.LittleEndian.Uint32(data[12:]),
		mask3:  binary.LittleEndian.Uint32(data[16:]),
	}
	if t.shift1 > 21 || t.shift2 >= t.shift1 {
		return nil, fmt.Errorf("width table header corrupt: shifts %d/%d", t.shift1, t.shift2)
	}
	if minLen := tableHeaderLen + 4*int(t.bound1); len(data) < minLen {
		return nil, fmt.Errorf("width table blob truncated: %d bytes, stage 1 needs %d",
			len(data), minLen)
	}
	return t, nil
}
