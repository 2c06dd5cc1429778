// Package perms provides the permission-parallel code buffer: a byte
// sequence paired with four independent per-byte boolean tag streams
// (read/write/execute/no-jump) kept at exactly the same length as the code.
//
// The tags travel with the code as it is rewritten and relocated so that
// later stages can enforce W^X-style policies and jump-target validity
// without a second pass over the original source. They are stored as
// parallel bit vectors rather than interleaved per-byte structs, keeping
// memory dense.
package perms

import "fmt"

// Perm is one of the four per-byte permission tags.
type Perm uint8

const (
	Read Perm = iota
	Write
	Exec
	// NoJump marks a byte as an invalid control-flow-transfer target even
	// if otherwise executable.
	NoJump

	NumPerms = 4
)

func (p Perm) String() string {
	switch p {
	case Read:
		return "r"
	case Write:
		return "w"
	case Exec:
		return "x"
	case NoJump:
		return "nj"
	}
	return fmt.Sprintf("Perm(%d)", uint8(p))
}

// AllPerms lists the tags in stream order.
var AllPerms = [NumPerms]Perm{Read, Write, Exec, NoJump}

// Perms holds one value per permission tag. The hot path works on this
// struct directly; conversion to a dynamic map happens only at the boundary
// via ToMap/PermsFromMap.
type Perms[T any] struct {
	R  T
	W  T
	X  T
	NJ T
}

// Get returns the value for the given tag.
func (p Perms[T]) Get(perm Perm) T {
	switch perm {
	case Read:
		return p.R
	case Write:
		return p.W
	case Exec:
		return p.X
	case NoJump:
		return p.NJ
	}
	panic(fmt.Sprintf("perms: invalid perm %d", uint8(perm)))
}

// Set replaces the value for the given tag.
func (p *Perms[T]) Set(perm Perm, v T) {
	switch perm {
	case Read:
		p.R = v
	case Write:
		p.W = v
	case Exec:
		p.X = v
	case NoJump:
		p.NJ = v
	default:
		panic(fmt.Sprintf("perms: invalid perm %d", uint8(perm)))
	}
}

// ToMap copies the four values into a dynamic map.
func (p Perms[T]) ToMap() map[Perm]T {
	return map[Perm]T{Read: p.R, Write: p.W, Exec: p.X, NoJump: p.NJ}
}

// PermsFromMap builds a Perms from a map holding all four tags. It reports
// failure if any tag is missing.
func PermsFromMap[T any](m map[Perm]T) (Perms[T], bool) {
	var p Perms[T]
	for _, perm := range AllPerms {
		v, ok := m[perm]
		if !ok {
			return Perms[T]{}, false
		}
		p.Set(perm, v)
	}
	return p, true
}

// MapPerms transforms each of the four values with f.
func MapPerms[T, U any](p Perms[T], f func(T) U) Perms[U] {
	return Perms[U]{R: f(p.R), W: f(p.W), X: f(p.X), NJ: f(p.NJ)}
}

// TryMapPerms transforms each of the four values with f, stopping at the
// first failure.
func TryMapPerms[T, U any](p Perms[T], f func(T) (U, error)) (Perms[U], error) {
	var out Perms[U]
	var err error
	if out.R, err = f(p.R); err != nil {
		return Perms[U]{}, err
	}
	if out.W, err = f(p.W); err != nil {
		return Perms[U]{}, err
	}
	if out.X, err = f(p.X); err != nil {
		return Perms[U]{}, err
	}
	if out.NJ, err = f(p.NJ); err != nil {
		return Perms[U]{}, err
	}
	return out, nil
}
