// Package value provides bit-width aware value representations: the
// logarithmic Bitness width tag, the 512-bit Constant storage cell with
// byte- and bit-granular views, and the Value/LoadStoreFrame types that tag
// locations with an access width.
package value

import "fmt"

// Bitness is a power-of-two bit width, stored as its base-2 logarithm.
// The actual width is 1<<Log2; Log2 ranges over 3..9 for 8..512 bits.
type Bitness struct {
	Log2 uint8
}

var (
	B8   = Bitness{Log2: 3}
	B16  = Bitness{Log2: 4}
	B32  = Bitness{Log2: 5}
	B64  = Bitness{Log2: 6}
	B128 = Bitness{Log2: 7}
	B256 = Bitness{Log2: 8}
	B512 = Bitness{Log2: 9}
)

// BitnessFromBits returns the Bitness for a width in bits. The width must
// be a power of two between 8 and 512.
func BitnessFromBits(bits uint) (Bitness, bool) {
	for log2 := uint8(3); log2 <= 9; log2++ {
		if bits == 1<<log2 {
			return Bitness{Log2: log2}, true
		}
	}
	return Bitness{}, false
}

// Bits returns the width in bits.
func (b Bitness) Bits() uint {
	return 1 << b.Log2
}

// Bytes returns the width in whole bytes, rounding a sub-byte width up.
func (b Bitness) Bytes() uint {
	return (b.Bits() + 7) / 8
}

func (b Bitness) String() string {
	return fmt.Sprintf("b%d", b.Bits())
}
