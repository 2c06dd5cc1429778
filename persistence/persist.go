// Package persistence stores permission-tagged code buffers on disk as
// XDR-framed records. Each record carries the code bytes, the four tag
// streams bit-packed LSB-first, and a SHA-256 digest so a loader can reject
// torn or tampered files before trusting the permission bits.
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	xdr "github.com/nullstyle/go-xdr/xdr3"
	sha256 "github.com/spacemeshos/sha256-simd"

	"github.com/portal-co/asm-common/bitstream"
	"github.com/portal-co/asm-common/perms"
)

// OwnerReadWriteExec is a standard owner read / write / exec file permission.
const OwnerReadWriteExec = 0700

// OwnerReadWrite is a standard owner read / write file permission.
const OwnerReadWrite = 0600

var (
	// ErrCorrupted is returned when a record's digest does not match its
	// contents.
	ErrCorrupted = errors.New("record digest mismatch")

	// ErrMalformed is returned when a record's tag streams do not cover its
	// code bytes.
	ErrMalformed = errors.New("record tag streams malformed")
)

type record struct {
	Code   []byte
	R      []byte
	W      []byte
	X      []byte
	NJ     []byte
	Digest []byte
}

// Persist writes a single buffer to a new file at path.
func Persist(path string, in *perms.Input) error {
	var buf bytes.Buffer
	if err := encodeRecord(&buf, in); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}
	return nil
}

// Fetch reads back a buffer persisted with Persist.
func Fetch(path string) (*perms.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file failure: %w", err)
	}
	return decodeRecord(bytes.NewReader(data))
}

func encodeRecord(w io.Writer, in *perms.Input) error {
	ref := in.AsRef()
	tags := ref.Tags()

	rec := record{
		Code: ref.Code(),
		R:    packBits(tags.R),
		W:    packBits(tags.W),
		X:    packBits(tags.X),
		NJ:   packBits(tags.NJ),
	}
	rec.Digest = digest(rec)

	if _, err := xdr.Marshal(w, &rec); err != nil {
		return fmt.Errorf("serialization failure: %w", err)
	}
	return nil
}

func decodeRecord(r io.Reader) (*perms.Input, error) {
	var rec record
	if _, err := xdr.Unmarshal(r, &rec); err != nil {
		return nil, fmt.Errorf("deserialization failure: %w", err)
	}

	want := digest(rec)
	if !bytes.Equal(want, rec.Digest) {
		return nil, ErrCorrupted
	}

	n := len(rec.Code)
	tags := perms.Perms[[]bool]{}
	for _, p := range []struct {
		packed []byte
		dst    *[]bool
	}{
		{rec.R, &tags.R},
		{rec.W, &tags.W},
		{rec.X, &tags.X},
		{rec.NJ, &tags.NJ},
	} {
		bits, err := unpackBits(p.packed, n)
		if err != nil {
			return nil, err
		}
		*p.dst = bits
	}

	in, ok := perms.NewInputFromBools(rec.Code, tags)
	if !ok {
		return nil, ErrMalformed
	}
	return in, nil
}

// packBits packs a tag stream into ceil(n/8) bytes, LSB-first, padding the
// final byte with zeros.
func packBits(s perms.BitSlice) []byte {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	for i := uint(0); i < s.Len(); i++ {
		// bytes.Buffer writes cannot fail.
		_ = w.WriteBit(bitstream.Bit(s.Test(i)))
	}
	_ = w.Flush(bitstream.Zero)
	return buf.Bytes()
}

func unpackBits(packed []byte, n int) ([]bool, error) {
	if len(packed) != (n+7)/8 {
		return nil, ErrMalformed
	}
	r := bitstream.NewReader(bytes.NewReader(packed))
	bits := make([]bool, n)
	for i := range bits {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, ErrMalformed
		}
		bits[i] = bool(bit)
	}
	return bits, nil
}

func digest(rec record) []byte {
	h := sha256.New()
	h.Write(rec.Code)
	h.Write(rec.R)
	h.Write(rec.W)
	h.Write(rec.X)
	h.Write(rec.NJ)
	return h.Sum(nil)
}
