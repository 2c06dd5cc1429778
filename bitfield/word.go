// Package bitfield packs and unpacks logical values across ordered,
// possibly non-contiguous bit or byte ranges of instruction-sized words
// and code buffers.
//
// Instruction encodings routinely split one logical field (an immediate,
// a register index) across non-adjacent bit positions. Describing a field
// as an ordered list of ranges lets every format be declared as data
// instead of hand-written shift/mask code per field. Ranges are half-open
// and concatenated least-significant range first: the first range receives
// the lowest bits of the value, the next range the bits above those, and
// so on.
package bitfield

// Range is a half-open bit range [Start, End) within a 32-bit word.
// A zero-width range contributes nothing.
type Range struct {
	Start uint32
	End   uint32
}

// Width returns the number of bits the range spans.
func (r Range) Width() uint32 {
	return r.End - r.Start
}

// TotalWidth returns the combined width of the ranges.
func TotalWidth(ranges []Range) uint32 {
	var n uint32
	for _, r := range ranges {
		n += r.Width()
	}
	return n
}

// Word is a fixed 32-bit instruction word.
type Word uint32

// With returns a copy of the word where, for each range in order, the
// next-least-significant unconsumed bits of val are written into that range.
// Bits outside the ranges keep their prior values. Bits of val beyond the
// total range width are discarded (masking, not saturation).
//
// Ranges must not overlap; overlap is not detected, and later ranges win
// for any shared destination bits.
func (w Word) With(ranges []Range, val uint32) Word {
	code := uint32(w)
	var off uint32
	for _, r := range ranges {
		// Masks are built in 64 bits so a full-width range does not
		// overflow the shift.
		mask := uint32((uint64(1)<<r.Width() - 1) << r.Start)
		code = code&^mask | (val>>off<<r.Start)&mask
		off += r.Width()
	}
	return Word(code)
}

// Extract is the inverse of With: for each range in order, its bits are read
// from the word and placed into the next-least-significant unconsumed bits
// of the result. Result bits beyond the total range width are zero.
func (w Word) Extract(ranges []Range) uint32 {
	var val uint32
	var off uint32
	for _, r := range ranges {
		mask := uint32((uint64(1)<<r.Width() - 1) << r.Start)
		val |= (uint32(w) & mask) >> r.Start << off
		off += r.Width()
	}
	return val
}
