package perms_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/portal-co/asm-common/perms"
)

func tagSlices(r, w, x, nj []bool) perms.Perms[perms.BitSlice] {
	return perms.Perms[perms.BitSlice]{
		R:  perms.BitSliceFromBools(r),
		W:  perms.BitSliceFromBools(w),
		X:  perms.BitSliceFromBools(x),
		NJ: perms.BitSliceFromBools(nj),
	}
}

func sampleRef(t *testing.T) perms.InputRef {
	t.Helper()
	code := []byte{0x90, 0x91, 0x92, 0xCC}
	ref, ok := perms.NewInputRef(code, tagSlices(
		[]bool{true, true, true, true},
		[]bool{false, false, true, false},
		[]bool{true, true, false, true},
		[]bool{false, true, false, false},
	))
	require.True(t, ok)
	return ref
}

func TestNewInputRef_RejectsMismatchedLengths(t *testing.T) {
	req := require.New(t)

	code := []byte{1, 2, 3}
	short := []bool{true, false}
	full := []bool{true, false, true}

	_, ok := perms.NewInputRef(code, tagSlices(short, full, full, full))
	req.False(ok)
	_, ok = perms.NewInputRef(code, tagSlices(full, full, full, short))
	req.False(ok)
	_, ok = perms.NewInputRef(code, tagSlices(full, full, full, full))
	req.True(ok)
}

func TestNewInput_RejectsMismatchedLengths(t *testing.T) {
	req := require.New(t)

	code := []byte{1, 2, 3}
	_, ok := perms.NewInput(code, perms.Perms[*bitset.BitSet]{
		R:  bitset.New(2),
		W:  bitset.New(3),
		X:  bitset.New(3),
		NJ: bitset.New(3),
	})
	req.False(ok)

	in, ok := perms.NewInput(code, perms.Perms[*bitset.BitSet]{
		R:  bitset.New(3),
		W:  bitset.New(3),
		X:  bitset.New(3),
		NJ: bitset.New(3),
	})
	req.True(ok)
	req.Equal(3, in.Len())
}

func TestInputRef_At(t *testing.T) {
	req := require.New(t)

	ref := sampleRef(t)
	b, tags := ref.At(1)
	req.Equal(byte(0x91), b)
	req.Equal(perms.Perms[bool]{R: true, W: false, X: true, NJ: true}, tags)
}

func TestInputRef_Subref(t *testing.T) {
	req := require.New(t)

	ref := sampleRef(t)
	sub := ref.Subref(1, 3)
	req.Equal(2, sub.Len())
	req.Equal([]byte{0x91, 0x92}, sub.Code())

	// All five sequences slice in lockstep.
	tags := sub.Tags()
	req.Equal(uint(2), tags.R.Len())
	req.Equal(uint(2), tags.W.Len())
	req.Equal(uint(2), tags.X.Len())
	req.Equal(uint(2), tags.NJ.Len())

	b, t0 := sub.At(0)
	req.Equal(byte(0x91), b)
	req.True(t0.NJ)

	empty := ref.Subref(4, 4)
	req.Equal(0, empty.Len())
}

func TestInputRef_IterRestartable(t *testing.T) {
	req := require.New(t)

	ref := sampleRef(t)
	for pass := 0; pass < 2; pass++ {
		it := ref.Iter()
		var got []byte
		for {
			b, tags, ok := it.Next()
			if !ok {
				break
			}
			req.True(tags.R)
			got = append(got, b)
		}
		req.Equal([]byte{0x90, 0x91, 0x92, 0xCC}, got)
	}
}

func TestInput_ExtendKeepsInvariant(t *testing.T) {
	req := require.New(t)

	in := perms.NewInputEmpty()
	req.Equal(0, in.Len())

	ref := sampleRef(t)
	in.Extend(ref.Iter())
	in.Extend(ref.Subref(0, 2).Iter())
	req.Equal(6, in.Len())

	out := in.AsRef()
	req.Equal(6, out.Len())
	tags := out.Tags()
	for _, s := range []perms.BitSlice{tags.R, tags.W, tags.X, tags.NJ} {
		req.Equal(uint(6), s.Len())
	}

	// Appended pairs land with their tags intact.
	b, t4 := out.At(4)
	req.Equal(byte(0x90), b)
	req.Equal(perms.Perms[bool]{R: true, W: false, X: true, NJ: false}, t4)
}

func TestInput_ToOwnedRoundTrip(t *testing.T) {
	req := require.New(t)

	ref := sampleRef(t)
	owned := ref.ToOwned()
	req.Equal(ref.Len(), owned.Len())

	back := owned.AsRef()
	for i := 0; i < ref.Len(); i++ {
		wantB, wantT := ref.At(i)
		gotB, gotT := back.At(i)
		req.Equal(wantB, gotB)
		req.Equal(wantT, gotT)
	}
}

func TestInput_IntoPartsRoundTrip(t *testing.T) {
	req := require.New(t)

	code := []byte{0x90, 0x91, 0x92, 0xCC}
	sets := perms.Perms[*bitset.BitSet]{
		R:  bitset.New(4).Set(0).Set(1).Set(2).Set(3),
		W:  bitset.New(4).Set(2),
		X:  bitset.New(4).Set(0).Set(1).Set(3),
		NJ: bitset.New(4).Set(1),
	}
	in, ok := perms.NewInput(code, sets)
	req.True(ok)
	want := in.AsRef()

	outCode, outSets := in.IntoParts()
	req.Equal(code, outCode)

	rebuilt, ok := perms.NewInput(outCode, outSets)
	req.True(ok)
	back := rebuilt.AsRef()
	req.Equal(want.Len(), back.Len())
	for i := 0; i < back.Len(); i++ {
		wantB, wantT := want.At(i)
		gotB, gotT := back.At(i)
		req.Equal(wantB, gotB)
		req.Equal(wantT, gotT)
	}
}

func TestInput_Truncate(t *testing.T) {
	req := require.New(t)

	ref := sampleRef(t)
	in := ref.ToOwned()
	mark := in.Len()
	in.Extend(ref.Iter())
	req.Equal(8, in.Len())

	in.Truncate(mark)
	req.Equal(4, in.Len())
	req.Equal(4, in.AsRef().Len())
}

func TestBitSlice_Bounds(t *testing.T) {
	req := require.New(t)

	s := perms.BitSliceFromBools([]bool{true, false, true})
	req.True(s.Test(0))
	req.False(s.Test(1))
	req.Panics(func() { s.Test(3) })
	req.Panics(func() { s.Slice(2, 1) })
	req.Panics(func() { s.Slice(0, 4) })

	sub := s.Slice(1, 3)
	req.Equal([]bool{false, true}, sub.Bools())
	req.Panics(func() { sub.Test(2) })
}
