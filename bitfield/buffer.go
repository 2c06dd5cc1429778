package bitfield

// ByteRange is a half-open byte range [Start, End) within a code buffer.
type ByteRange struct {
	Start int
	End   int
}

// Width returns the number of bytes the range spans.
func (r ByteRange) Width() int {
	return r.End - r.Start
}

// TotalBytes returns the combined width of the ranges, in bytes.
func TotalBytes(ranges []ByteRange) int {
	var n int
	for _, r := range ranges {
		n += r.Width()
	}
	return n
}

// Buffer is a variable-length code buffer addressed at byte granularity.
// Each selected byte contributes its full 8 bits to the packed value,
// concatenated across ranges low-to-high exactly like Word ranges.
//
// Out-of-range byte indices panic with the usual slice bounds failure;
// they are never silently truncated.
type Buffer []byte

// Extract64 reads the bytes selected by the ranges, in order, into a 64-bit
// value, lowest byte first. Bytes beyond the low eight contribute nothing.
func (b Buffer) Extract64(ranges []ByteRange) uint64 {
	var val uint64
	var off uint
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			val |= uint64(b[i]) << off
			off += 8
		}
	}
	return val
}

// With64 writes the low bytes of val into the bytes selected by the ranges,
// in order. Bytes of val beyond the total range width are discarded; if the
// ranges span more than eight bytes, the excess destination bytes are
// zeroed.
func (b Buffer) With64(ranges []ByteRange, val uint64) {
	var off uint
	for _, r := range ranges {
		for i := r.Start; i < r.End; i++ {
			b[i] = byte(val >> off)
			off += 8
		}
	}
}
