package perms

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitSlice is a read-only window over a bitset.BitSet. Views are index
// based: a sub-slice shares the backing set and narrows the window, so
// duplicating views for read-only use is free and safe.
type BitSlice struct {
	set *bitset.BitSet
	off uint
	n   uint
}

// NewBitSlice returns a window over the first n bits of set.
func NewBitSlice(set *bitset.BitSet, n uint) BitSlice {
	return BitSlice{set: set, n: n}
}

// BitSliceFromBools packs bools into a fresh backing set and returns the
// covering window.
func BitSliceFromBools(bits []bool) BitSlice {
	set := bitset.New(uint(len(bits)))
	for i, b := range bits {
		set.SetTo(uint(i), b)
	}
	return BitSlice{set: set, n: uint(len(bits))}
}

// Len returns the window length in bits.
func (s BitSlice) Len() uint {
	return s.n
}

// Test reports the bit at index i within the window. Indexing outside the
// window panics, matching slice bounds semantics.
func (s BitSlice) Test(i uint) bool {
	if i >= s.n {
		panic(fmt.Sprintf("perms: bit index %d out of range [0,%d)", i, s.n))
	}
	return s.set.Test(s.off + i)
}

// Slice narrows the window to [a, b), like slicing. a <= b <= Len() must
// hold or Slice panics.
func (s BitSlice) Slice(a, b uint) BitSlice {
	if a > b || b > s.n {
		panic(fmt.Sprintf("perms: bit slice bounds [%d:%d] out of range [0,%d)", a, b, s.n))
	}
	return BitSlice{set: s.set, off: s.off + a, n: b - a}
}

// Bools copies the window out as a boolean slice.
func (s BitSlice) Bools() []bool {
	out := make([]bool, s.n)
	for i := uint(0); i < s.n; i++ {
		out[i] = s.set.Test(s.off + i)
	}
	return out
}
