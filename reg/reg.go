// Package reg provides a platform-independent register identifier.
package reg

import "fmt"

// Reg identifies a register by a single byte. The numbering is abstract;
// targets map it onto hardware registers as needed.
type Reg uint8

// CTX is the context register.
const CTX = Reg(255)

// R32 normalizes the register into a 32-register window, returning the
// identifier modulo 32.
func (r Reg) R32() Reg {
	return r % 32
}

// R32Swap0And31 normalizes into a 32-register window and swaps registers
// 0 and 31, leaving every other register unchanged. Some calling-convention
// remappings need exactly this exchange.
func (r Reg) R32Swap0And31() Reg {
	switch v := r % 32; v {
	case 0:
		return 31
	case 31:
		return 0
	default:
		return v
	}
}

func (r Reg) String() string {
	if r == CTX {
		return "ctx"
	}
	return fmt.Sprintf("r%d", uint8(r))
}
