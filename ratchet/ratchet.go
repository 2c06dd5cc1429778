// Package ratchet generates deterministic marker sequences by repeatedly
// hashing a seed with SHA3-256, and locates those markers inside code
// buffers.
//
// Markers are embedded in emitted assembly to designate sections for
// targeted processing; a consumer holding the same seed recovers the
// sections by splitting on the regenerated markers. Splitting yields
// index-based spans over the caller's single buffer rather than aliased
// sub-slices.
package ratchet

import (
	"bytes"

	"golang.org/x/crypto/sha3"
)

// MarkerSize is the length of a ratchet marker in bytes.
const MarkerSize = 32

// Ratchet holds the current seed. Next advances it, so a Ratchet used for
// splitting must start from the same seed that generated the markers.
// The zero value is a ratchet seeded with all zeros.
type Ratchet struct {
	seed [MarkerSize]byte
}

// FromSeed returns a ratchet starting at the given seed.
func FromSeed(seed [MarkerSize]byte) Ratchet {
	return Ratchet{seed: seed}
}

// Next returns the current seed value and advances the internal state to
// its SHA3-256 digest.
func (r *Ratchet) Next() [MarkerSize]byte {
	s := r.seed
	r.seed = sha3.Sum256(s[:])
	return s
}

// Span is an index-based slice of a buffer: data[Start : Start+Len].
type Span struct {
	Start int
	Len   int
}

// Split locates the marker-delimited chunks of data. One marker is drawn
// from the ratchet per produced span: the span covers the bytes before the
// marker's first occurrence, the marker itself is skipped, and the scan
// continues after it. A tail with no marker becomes the final span; empty
// input yields no spans. The receiver is taken by value, so the caller's
// ratchet state is unchanged.
func (r Ratchet) Split(data []byte) []Span {
	return r.scan(data, nil)
}

// Replace is Split with each located marker overwritten in place by
// replacement. Only marker bytes are mutated.
func (r Ratchet) Replace(data []byte, replacement [MarkerSize]byte) []Span {
	return r.scan(data, replacement[:])
}

func (r *Ratchet) scan(data []byte, replacement []byte) []Span {
	var spans []Span
	pos := 0
	for pos < len(data) {
		marker := r.Next()
		i := bytes.Index(data[pos:], marker[:])
		if i < 0 {
			spans = append(spans, Span{Start: pos, Len: len(data) - pos})
			break
		}
		spans = append(spans, Span{Start: pos, Len: i})
		if replacement != nil {
			copy(data[pos+i:pos+i+MarkerSize], replacement)
		}
		pos += i + MarkerSize
	}
	return spans
}
