package reg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/portal-co/asm-common/reg"
)

func TestR32(t *testing.T) {
	req := require.New(t)

	req.Equal(reg.Reg(3), reg.Reg(35).R32())
	req.Equal(reg.Reg(0), reg.Reg(0).R32())
	req.Equal(reg.Reg(31), reg.Reg(31).R32())
	req.Equal(reg.Reg(31), reg.CTX.R32())
}

func TestR32Swap0And31(t *testing.T) {
	req := require.New(t)

	req.Equal(reg.Reg(31), reg.Reg(0).R32Swap0And31())
	req.Equal(reg.Reg(0), reg.Reg(31).R32Swap0And31())
	req.Equal(reg.Reg(5), reg.Reg(5).R32Swap0And31())

	// Normalization happens before the swap.
	req.Equal(reg.Reg(31), reg.Reg(32).R32Swap0And31())
	req.Equal(reg.Reg(0), reg.Reg(63).R32Swap0And31())
}

func TestString(t *testing.T) {
	req := require.New(t)

	req.Equal("r7", reg.Reg(7).String())
	req.Equal("ctx", reg.CTX.String())
}
