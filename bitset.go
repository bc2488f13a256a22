package wcwidth

import (
	"sort"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Code points are grouped into blocks of 32, one uint32 membership mask per
// block. The block index of a code point is its value shifted right by
// blockShift.
const (
	blockShift = 5
	blockMask  = 0x1F
	fullBlock  = ^uint32(0)
)

// Blocks which are completely contained in a property (mask = all ones) tend
// to come in long runs: think of the Unicode planes 15 and 16, which are
// ambiguous-width in their entirety. A blockRange represents such a run by
// its first and last block index. A run may bridge a single interior block
// which is not fully set; its index is listed in excluded and its partial
// mask remains in the sparse block map.
type blockRange struct {
	from, to uint32
	excluded []uint32
}

func (br blockRange) covers(block uint32) bool {
	if block < br.from || block > br.to {
		return false
	}
	for _, x := range br.excluded {
		if x == block {
			return false
		}
	}
	return true
}

// SparseBitset is a set of code points, organized as a mapping from block
// index to a 32-bit occupancy mask, together with a list of dense ranges for
// long runs of fully-set blocks. Blocks absent from the map have mask 0.
//
// A SparseBitset is immutable after compilation and safe for concurrent
// reads.
type SparseBitset struct {
	blocks map[uint32]uint32
	dense  []blockRange
}

// Mask returns the membership mask for a block index: all ones if the block
// lies in a dense range, otherwise the stored sparse mask, otherwise 0.
func (bs *SparseBitset) Mask(block uint32) uint32 {
	d := bs.dense
	i := sort.Search(len(d), func(i int) bool { return block <= d[i].to })
	if i < len(d) && d[i].covers(block) {
		return fullBlock
	}
	return bs.blocks[block]
}

// Contains tests a single code point for membership.
func (bs *SparseBitset) Contains(r rune) bool {
	block := uint32(r) >> blockShift
	return bs.Mask(block)&(1<<(uint32(r)&blockMask)) != 0
}

// DenseRanges reports how many block runs have been collapsed. Mainly of
// interest for the generator's statistics output.
func (bs *SparseBitset) DenseRanges() int {
	return len(bs.dense)
}

// Runs shorter than this stay in the sparse map; a range entry would not be
// smaller than the masks it replaces.
const denseRunMin = 2

// CompileBitset turns a range table into a SparseBitset. Construction is
// deterministic: the block masks are assembled in code point order and the
// collapse pass scans block indexes in ascending order, so identical input
// yields an identical bitset.
func CompileBitset(table *unicode.RangeTable) *SparseBitset {
	m := treemap.NewWith(utils.UInt32Comparator)
	eachRange(table, func(lo, hi rune) {
		orRange(m, uint32(lo), uint32(hi))
	})

	bs := &SparseBitset{blocks: make(map[uint32]uint32, m.Size())}

	// Collapse maximal runs of consecutive all-ones blocks.
	var runStart, runLen uint32
	var prev uint32
	flush := func() {
		if runLen >= denseRunMin {
			bs.dense = append(bs.dense, blockRange{from: runStart, to: runStart + runLen - 1})
			for b := runStart; b < runStart+runLen; b++ {
				delete(bs.blocks, b)
			}
		}
		runLen = 0
	}
	it := m.Iterator()
	for it.Next() {
		block := it.Key().(uint32)
		mask := it.Value().(uint32)
		bs.blocks[block] = mask
		if mask != fullBlock || (runLen > 0 && block != prev+1) {
			flush()
			if mask != fullBlock {
				prev = block
				continue
			}
		}
		if runLen == 0 {
			runStart = block
		}
		runLen++
		prev = block
	}
	flush()

	// Bridge pairs of runs separated by a single block. The odd block out is
	// recorded as an excluded index; its mask (possibly 0) stays sparse.
	merged := bs.dense[:0]
	for _, br := range bs.dense {
		if n := len(merged); n > 0 && br.from == merged[n-1].to+2 {
			merged[n-1].excluded = append(merged[n-1].excluded, br.from-1)
			merged[n-1].to = br.to
			continue
		}
		merged = append(merged, br)
	}
	bs.dense = merged

	return bs
}

// orRange sets the bits for all code points in [lo, hi] in their blocks.
func orRange(m *treemap.Map, lo, hi uint32) {
	for block := lo >> blockShift; block <= hi>>blockShift; block++ {
		mask := fullBlock
		if block == lo>>blockShift {
			mask &= fullBlock << (lo & blockMask)
		}
		if block == hi>>blockShift {
			mask &= fullBlock >> (blockMask - hi&blockMask)
		}
		if prev, ok := m.Get(block); ok {
			mask |= prev.(uint32)
		}
		m.Put(block, mask)
	}
}

// eachRange walks a unicode.RangeTable and reports maximal stride-1 ranges.
func eachRange(table *unicode.RangeTable, f func(lo, hi rune)) {
	for _, r16 := range table.R16 {
		if r16.Stride == 1 {
			f(rune(r16.Lo), rune(r16.Hi))
			continue
		}
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			f(r, r)
		}
	}
	for _, r32 := range table.R32 {
		if r32.Stride == 1 {
			f(rune(r32.Lo), rune(r32.Hi))
			continue
		}
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			f(r, r)
		}
	}
}
