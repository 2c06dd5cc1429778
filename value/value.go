package value

// Value pairs a caller-supplied offset or location tag (a register, a
// memory address) with the bit width stored there.
type Value[G any] struct {
	Offset  G
	Bitness Bitness
}

// MapValue transforms the offset, preserving the bitness. It fails if the
// transform fails.
func MapValue[G, G2 any](v Value[G], f func(G) (G2, error)) (Value[G2], error) {
	offset, err := f(v.Offset)
	if err != nil {
		return Value[G2]{}, err
	}
	return Value[G2]{Offset: offset, Bitness: v.Bitness}, nil
}

// LoadStoreFrame describes one side of a load/store: either an access at a
// bit offset within a Value, or a Constant read directly. Both variants
// carry the access width.
type LoadStoreFrame[G any] interface {
	isLoadStoreFrame()

	// FrameBits returns the access width of the frame.
	FrameBits() Bitness
}

// ValueFrame is a read or write of Bits-wide data at BitOffset within Val.
type ValueFrame[G any] struct {
	Bits      Bitness
	Val       Value[G]
	BitOffset uint
}

// ConstantFrame is a direct read of a Constant at the given width.
type ConstantFrame[G any] struct {
	Bits     Bitness
	Constant Constant
}

func (ValueFrame[G]) isLoadStoreFrame()    {}
func (ConstantFrame[G]) isLoadStoreFrame() {}

func (f ValueFrame[G]) FrameBits() Bitness    { return f.Bits }
func (f ConstantFrame[G]) FrameBits() Bitness { return f.Bits }

// MapFrame transforms the offset of a Value variant, leaving Constant
// variants untouched.
func MapFrame[G, G2 any](frame LoadStoreFrame[G], f func(G) (G2, error)) (LoadStoreFrame[G2], error) {
	switch fr := frame.(type) {
	case ValueFrame[G]:
		val, err := MapValue(fr.Val, f)
		if err != nil {
			return nil, err
		}
		return ValueFrame[G2]{Bits: fr.Bits, Val: val, BitOffset: fr.BitOffset}, nil
	case ConstantFrame[G]:
		return ConstantFrame[G2]{Bits: fr.Bits, Constant: fr.Constant}, nil
	default:
		// The marker method is unexported; no other variants can exist.
		panic("value: unknown LoadStoreFrame variant")
	}
}
