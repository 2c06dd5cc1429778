package bitstream

import (
	"io"
)

// Writer writes bits to an io.Writer, least-significant bit first.
type Writer struct {
	stream io.Writer
	// Low `fill` bits of pending are queued for output, LSB-first.
	pending uint16
	fill    uint
	buf     [1]byte
}

// NewWriter returns a new Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{stream: w}
}

// WriteBit appends a single bit to the stream.
func (bw *Writer) WriteBit(bit Bit) error {
	if bit {
		bw.pending |= 1 << bw.fill
	}
	bw.fill++

	if bw.fill == 8 {
		bw.buf[0] = byte(bw.pending)
		if err := bw.emit(); err != nil {
			return err
		}
		bw.pending = 0
		bw.fill = 0
	}
	return nil
}

// WriteBits appends the low numBits bits of val, LSB-first. numBits may be
// at most 64; higher bits of val are ignored.
func (bw *Writer) WriteBits(val uint64, numBits uint) error {
	for ; numBits >= 8; numBits -= 8 {
		if err := bw.writeByte(byte(val)); err != nil {
			return err
		}
		val >>= 8
	}
	for ; numBits > 0; numBits-- {
		if err := bw.WriteBit(val&1 == 1); err != nil {
			return err
		}
		val >>= 1
	}
	return nil
}

// WriteBytes appends the first numBits bits of data, LSB of data[0] first.
func (bw *Writer) WriteBytes(data []byte, numBits uint) error {
	var idx int
	for ; numBits >= 8; numBits -= 8 {
		if err := bw.writeByte(data[idx]); err != nil {
			return err
		}
		idx++
	}
	if numBits > 0 {
		b := data[idx]
		for ; numBits > 0; numBits-- {
			if err := bw.WriteBit(b&1 == 1); err != nil {
				return err
			}
			b >>= 1
		}
	}
	return nil
}

// Flush pads the stream up to the next byte boundary with the given bit and
// emits the final byte. A no-op on an aligned stream.
func (bw *Writer) Flush(pad Bit) error {
	for bw.fill != 0 {
		if err := bw.WriteBit(pad); err != nil {
			return err
		}
	}
	return nil
}

// writeByte appends a full byte regardless of the current alignment.
func (bw *Writer) writeByte(b byte) error {
	bw.pending |= uint16(b) << bw.fill
	bw.buf[0] = byte(bw.pending)
	if err := bw.emit(); err != nil {
		return err
	}
	bw.pending >>= 8
	return nil
}

func (bw *Writer) emit() error {
	n, err := bw.stream.Write(bw.buf[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}
