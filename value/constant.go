package value

import (
	"github.com/portal-co/asm-common/bitstream"
)

// ConstantWords is the number of 64-bit words backing a Constant.
const ConstantWords = 8

// Constant is a fixed 512-bit storage cell holding a value that can be read
// or written at any Bitness. The byte order of the cell is little-endian:
// Data[0] holds bytes 0..7, its lowest byte first. Storage beyond the
// significant width is conventionally zero; the FromBytes/FromBits
// constructors guarantee it, and nothing else enforces it.
type Constant struct {
	Data [ConstantWords]uint64
}

// ConstantFromUint64 returns a constant holding v in its low 64 bits.
func ConstantFromUint64(v uint64) Constant {
	var c Constant
	c.Data[0] = v
	return c
}

// Bytes returns the first b.Bytes() bytes of the cell, lowest byte first,
// truncating the 512-bit store to the requested width.
func (c Constant) Bytes(b Bitness) []byte {
	out := make([]byte, b.Bytes())
	for i := range out {
		out[i] = byte(c.Data[i/8] >> (uint(i%8) * 8))
	}
	return out
}

// Bits returns the first b.Bits() bits of the cell as booleans, LSB of the
// lowest-order byte first.
func (c Constant) Bits(b Bitness) []bool {
	out := make([]bool, b.Bits())
	for i := range out {
		out[i] = c.Data[i/64]>>(uint(i)%64)&1 == 1
	}
	return out
}

// ConstantFromBytes builds a constant from exactly b.Bytes() leading bytes
// of data, zero-filling the remainder of the cell. It reports failure if
// data is too short; extra bytes are ignored.
func ConstantFromBytes(b Bitness, data []byte) (Constant, bool) {
	need := int(b.Bytes())
	if len(data) < need {
		return Constant{}, false
	}
	var c Constant
	for i := 0; i < need; i++ {
		c.Data[i/8] |= uint64(data[i]) << (uint(i%8) * 8)
	}
	return c, true
}

// ConstantFromBits builds a constant from exactly b.Bits() leading booleans,
// LSB-first. Bits are packed eight at a time into bytes; a trailing partial
// byte is padded with zero high bits. It reports failure if bits is too
// short; extra bits are ignored.
func ConstantFromBits(b Bitness, bits []bool) (Constant, bool) {
	need := int(b.Bits())
	if len(bits) < need {
		return Constant{}, false
	}
	packed := make([]byte, b.Bytes())
	for i := 0; i < need; i++ {
		if bits[i] {
			packed[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return ConstantFromBytes(b, packed)
}

// WriteTo streams the first b.Bits() bits of the cell, LSB-first.
func (c Constant) WriteTo(w *bitstream.Writer, b Bitness) error {
	remaining := b.Bits()
	for i := 0; remaining > 0; i++ {
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(c.Data[i], n); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// ReadConstant consumes b.Bits() bits from the stream, LSB-first, and
// zero-fills the remainder of the cell.
func ReadConstant(r *bitstream.Reader, b Bitness) (Constant, error) {
	var c Constant
	remaining := b.Bits()
	for i := 0; remaining > 0; i++ {
		n := remaining
		if n > 64 {
			n = 64
		}
		word, err := r.ReadBits(n)
		if err != nil {
			return Constant{}, err
		}
		c.Data[i] = word
		remaining -= n
	}
	return c, nil
}
