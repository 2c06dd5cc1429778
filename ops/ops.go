// Package ops defines the closed tag sets describing arithmetic and logical
// operations, signedness, byte order, extension modes and comparisons.
// The values carry no behavior; they are classification data passed by value
// between the encoding primitives and their consumers.
package ops

import "fmt"

// Sign selects the signed or unsigned interpretation of a value, which
// affects division, comparison and right shifts.
type Sign uint8

const (
	Unsigned Sign = iota
	Signed
)

func (s Sign) String() string {
	switch s {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	}
	return fmt.Sprintf("Sign(%d)", uint8(s))
}

// ArithKind enumerates the arithmetic and bitwise operation families.
type ArithKind uint8

const (
	KindAdd ArithKind = iota
	KindSub
	// KindMul doubles the result bitness (increments its log2 width).
	KindMul
	KindDiv
	KindRem
	KindAnd
	KindOr
	KindXor
	KindShl
	KindShr
	KindRotl
	KindRotr
)

var arithKindNames = map[ArithKind]string{
	KindAdd:  "add",
	KindSub:  "sub",
	KindMul:  "mul",
	KindDiv:  "div",
	KindRem:  "rem",
	KindAnd:  "and",
	KindOr:   "or",
	KindXor:  "xor",
	KindShl:  "shl",
	KindShr:  "shr",
	KindRotl: "rotl",
	KindRotr: "rotr",
}

func (k ArithKind) String() string {
	if name, ok := arithKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ArithKind(%d)", uint8(k))
}

// Arith is an arithmetic or logical operation. For the families that depend
// on signedness (Div, Rem, Shr, Rotl, Rotr) the Sign field is meaningful;
// for all others it is Unsigned by construction.
type Arith struct {
	Kind ArithKind
	Sign Sign
}

var (
	Add = Arith{Kind: KindAdd}
	Sub = Arith{Kind: KindSub}
	Mul = Arith{Kind: KindMul}
	And = Arith{Kind: KindAnd}
	Or  = Arith{Kind: KindOr}
	Xor = Arith{Kind: KindXor}
	Shl = Arith{Kind: KindShl}
)

// Div returns the division operation with the given signedness.
func Div(s Sign) Arith { return Arith{Kind: KindDiv, Sign: s} }

// Rem returns the remainder operation with the given signedness.
func Rem(s Sign) Arith { return Arith{Kind: KindRem, Sign: s} }

// Shr returns the right-shift operation; Signed selects the arithmetic shift.
func Shr(s Sign) Arith { return Arith{Kind: KindShr, Sign: s} }

// Rotl returns the rotate-left operation with the given signedness.
func Rotl(s Sign) Arith { return Arith{Kind: KindRotl, Sign: s} }

// Rotr returns the rotate-right operation with the given signedness.
func Rotr(s Sign) Arith { return Arith{Kind: KindRotr, Sign: s} }

func (a Arith) String() string {
	switch a.Kind {
	case KindDiv, KindRem, KindShr, KindRotl, KindRotr:
		return fmt.Sprintf("%s.%s", a.Kind, a.Sign)
	}
	return a.Kind.String()
}

// Endian is the byte order of a multi-byte value.
type Endian uint8

const (
	Little Endian = iota
	Big
)

func (e Endian) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	}
	return fmt.Sprintf("Endian(%d)", uint8(e))
}

// Ext selects how a value is widened: replicating the sign bit or
// filling with zeros.
type Ext uint8

const (
	SignExt Ext = iota
	ZeroExt
)

func (e Ext) String() string {
	switch e {
	case SignExt:
		return "sext"
	case ZeroExt:
		return "zext"
	}
	return fmt.Sprintf("Ext(%d)", uint8(e))
}

// CmpKind enumerates the comparison families.
type CmpKind uint8

const (
	KindLe CmpKind = iota
	KindLt
	KindEq
	KindGt
	KindGe
	KindNe
)

var cmpKindNames = map[CmpKind]string{
	KindLe: "le",
	KindLt: "lt",
	KindEq: "eq",
	KindGt: "gt",
	KindGe: "ge",
	KindNe: "ne",
}

func (k CmpKind) String() string {
	if name, ok := cmpKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CmpKind(%d)", uint8(k))
}

// Cmp is a comparison operation. Ordered comparisons carry a signedness;
// Eq and Ne do not.
type Cmp struct {
	Kind CmpKind
	Sign Sign
}

var (
	Eq = Cmp{Kind: KindEq}
	Ne = Cmp{Kind: KindNe}
)

// Le returns the less-than-or-equal comparison with the given signedness.
func Le(s Sign) Cmp { return Cmp{Kind: KindLe, Sign: s} }

// Lt returns the less-than comparison with the given signedness.
func Lt(s Sign) Cmp { return Cmp{Kind: KindLt, Sign: s} }

// Gt returns the greater-than comparison with the given signedness.
func Gt(s Sign) Cmp { return Cmp{Kind: KindGt, Sign: s} }

// Ge returns the greater-than-or-equal comparison with the given signedness.
func Ge(s Sign) Cmp { return Cmp{Kind: KindGe, Sign: s} }

func (c Cmp) String() string {
	switch c.Kind {
	case KindEq, KindNe:
		return c.Kind.String()
	}
	return fmt.Sprintf("%s.%s", c.Kind, c.Sign)
}
