package bitstream

import (
	"io"
)

// Reader reads bits from an io.Reader, least-significant bit first.
type Reader struct {
	stream io.Reader
	// Low `fill` bits of pending are buffered input, LSB-first.
	pending uint16
	fill    uint
	buf     [1]byte
}

// NewReader returns a new Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{stream: r}
}

// ReadBit reads the next single bit from the stream.
func (br *Reader) ReadBit() (Bit, error) {
	if br.fill == 0 {
		if err := br.fetch(); err != nil {
			return Zero, err
		}
	}
	bit := br.pending&1 == 1
	br.pending >>= 1
	br.fill--
	return Bit(bit), nil
}

// ReadBits reads the next numBits bits as a uint64, LSB-first. numBits may
// be at most 64.
func (br *Reader) ReadBits(numBits uint) (uint64, error) {
	var val uint64
	var off uint
	for ; numBits >= 8; numBits -= 8 {
		b, err := br.readByte()
		if err != nil {
			return 0, err
		}
		val |= uint64(b) << off
		off += 8
	}
	for ; numBits > 0; numBits-- {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			val |= 1 << off
		}
		off++
	}
	return val, nil
}

// ReadBytes reads the next numBits bits into a byte slice, LSB of the first
// byte first. The final byte of a non-multiple-of-8 read has its unused
// high bits zero.
func (br *Reader) ReadBytes(numBits uint) ([]byte, error) {
	data := make([]byte, (numBits+7)/8)
	var idx int
	for ; numBits >= 8; numBits -= 8 {
		b, err := br.readByte()
		if err != nil {
			return nil, err
		}
		data[idx] = b
		idx++
	}
	if numBits > 0 {
		var last byte
		for i := uint(0); i < numBits; i++ {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, err
			}
			if bit {
				last |= 1 << i
			}
		}
		data[idx] = last
	}
	return data, nil
}

// readByte reads a full byte regardless of the current alignment.
func (br *Reader) readByte() (byte, error) {
	if br.fill < 8 {
		if err := br.fetch(); err != nil {
			return 0, err
		}
	}
	b := byte(br.pending)
	br.pending >>= 8
	br.fill -= 8
	return b, nil
}

func (br *Reader) fetch() error {
	n, err := br.stream.Read(br.buf[:])
	if n != 1 {
		if err == nil || err == io.EOF {
			return io.EOF
		}
		return err
	}
	br.pending |= uint16(br.buf[0]) << br.fill
	br.fill += 8
	return nil
}
