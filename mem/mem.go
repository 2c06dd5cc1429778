// Package mem provides memory access sizing tags.
package mem

import "fmt"

// MemorySize is the width of a memory load or store, in bits.
type MemorySize uint8

const (
	Size8 MemorySize = iota
	Size16
	Size32
	// Size64 is the default access width.
	Size64
	Size128
	Size256
	Size512
)

// DefaultSize is the access width assumed when none is specified.
const DefaultSize = Size64

// Bits returns the access width in bits.
func (s MemorySize) Bits() uint {
	return 8 << uint(s)
}

func (s MemorySize) String() string {
	if s > Size512 {
		return fmt.Sprintf("MemorySize(%d)", uint8(s))
	}
	return fmt.Sprintf("m%d", s.Bits())
}

// MemorySized pairs a value with the width of the memory access it takes
// part in.
type MemorySized[T any] struct {
	Value T
	Size  MemorySize
}
