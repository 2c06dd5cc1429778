package value_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/portal-co/asm-common/reg"
	"github.com/portal-co/asm-common/value"
)

func TestBitness(t *testing.T) {
	req := require.New(t)

	req.Equal(uint(64), value.B64.Bits())
	req.Equal(uint(8), value.B64.Bytes())
	req.Equal(uint(512), value.B512.Bits())
	req.Equal("b32", value.B32.String())

	b, ok := value.BitnessFromBits(128)
	req.True(ok)
	req.Equal(value.B128, b)

	_, ok = value.BitnessFromBits(48)
	req.False(ok)
	_, ok = value.BitnessFromBits(4)
	req.False(ok)
}

func TestMapValue(t *testing.T) {
	req := require.New(t)

	v := value.Value[reg.Reg]{Offset: reg.Reg(35), Bitness: value.B64}
	mapped, err := value.MapValue(v, func(r reg.Reg) (reg.Reg, error) {
		return r.R32(), nil
	})
	req.NoError(err)
	req.Equal(reg.Reg(3), mapped.Offset)
	req.Equal(value.B64, mapped.Bitness)

	boom := errors.New("boom")
	_, err = value.MapValue(v, func(reg.Reg) (reg.Reg, error) {
		return 0, boom
	})
	req.ErrorIs(err, boom)
}

func TestMapFrame(t *testing.T) {
	req := require.New(t)

	vf := value.ValueFrame[reg.Reg]{
		Bits:      value.B32,
		Val:       value.Value[reg.Reg]{Offset: reg.Reg(0), Bitness: value.B64},
		BitOffset: 16,
	}
	mapped, err := value.MapFrame[reg.Reg, reg.Reg](vf, func(r reg.Reg) (reg.Reg, error) {
		return r.R32Swap0And31(), nil
	})
	req.NoError(err)
	got, ok := mapped.(value.ValueFrame[reg.Reg])
	req.True(ok)
	req.Equal(reg.Reg(31), got.Val.Offset)
	req.Equal(uint(16), got.BitOffset)
	req.Equal(value.B32, mapped.FrameBits())

	cf := value.ConstantFrame[reg.Reg]{Bits: value.B64, Constant: value.ConstantFromUint64(42)}
	mapped, err = value.MapFrame[reg.Reg, reg.Reg](cf, func(reg.Reg) (reg.Reg, error) {
		return 0, errors.New("must not be called")
	})
	req.NoError(err)
	gotc, ok := mapped.(value.ConstantFrame[reg.Reg])
	req.True(ok)
	req.Equal(uint64(42), gotc.Constant.Data[0])
}
