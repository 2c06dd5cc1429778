package perms

import (
	"github.com/bits-and-blooms/bitset"
)

// InputRef is a borrowed view over code bytes and their four permission tag
// streams. All five sequences have the same length; the only constructor
// checks it, so holding an InputRef attests the invariant.
//
// Views may be freely duplicated for read-only use. Mutating the underlying
// owned buffer while views into it are live is the caller's responsibility,
// as with any Go slice aliasing.
type InputRef struct {
	code []byte
	tags Perms[BitSlice]
}

// NewInputRef builds a view from code and its four tag windows. It reports
// failure if any tag stream's length differs from the code length.
func NewInputRef(code []byte, tags Perms[BitSlice]) (InputRef, bool) {
	n := uint(len(code))
	if tags.R.Len() != n || tags.W.Len() != n || tags.X.Len() != n || tags.NJ.Len() != n {
		return InputRef{}, false
	}
	return InputRef{code: code, tags: tags}, true
}

// Len returns the view length in bytes.
func (in InputRef) Len() int {
	return len(in.code)
}

// Code returns the code bytes of the view. The slice aliases the backing
// storage; treat it as read-only.
func (in InputRef) Code() []byte {
	return in.code
}

// Tags returns the four tag stream windows.
func (in InputRef) Tags() Perms[BitSlice] {
	return in.tags
}

// At returns the byte at position i together with its four tags.
func (in InputRef) At(i int) (byte, Perms[bool]) {
	u := uint(i)
	return in.code[i], Perms[bool]{
		R:  in.tags.R.Test(u),
		W:  in.tags.W.Test(u),
		X:  in.tags.X.Test(u),
		NJ: in.tags.NJ.Test(u),
	}
}

// Subref narrows the view to [a, b), slicing the code and all four tag
// streams in lockstep, so the equal-length invariant is preserved by
// construction.
func (in InputRef) Subref(a, b int) InputRef {
	return InputRef{
		code: in.code[a:b],
		tags: Perms[BitSlice]{
			R:  in.tags.R.Slice(uint(a), uint(b)),
			W:  in.tags.W.Slice(uint(a), uint(b)),
			X:  in.tags.X.Slice(uint(a), uint(b)),
			NJ: in.tags.NJ.Slice(uint(a), uint(b)),
		},
	}
}

// Iter returns a restartable iterator over (byte, tags) pairs. Each call
// starts a fresh pass.
func (in InputRef) Iter() *Iter {
	return &Iter{in: in}
}

// ToOwned deep-copies the view into an owned Input.
func (in InputRef) ToOwned() *Input {
	out := NewInputEmpty()
	out.code = append(out.code, in.code...)
	for i := 0; i < in.Len(); i++ {
		u := uint(i)
		out.r.SetTo(u, in.tags.R.Test(u))
		out.w.SetTo(u, in.tags.W.Test(u))
		out.x.SetTo(u, in.tags.X.Test(u))
		out.nj.SetTo(u, in.tags.NJ.Test(u))
	}
	return out
}

// Iter walks an InputRef one position at a time.
type Iter struct {
	in InputRef
	i  int
}

// Next returns the next (byte, tags) pair, reporting false when the view is
// exhausted.
func (it *Iter) Next() (byte, Perms[bool], bool) {
	if it.i >= it.in.Len() {
		return 0, Perms[bool]{}, false
	}
	b, tags := it.in.At(it.i)
	it.i++
	return b, tags, true
}

// Seq is a position-by-position source of tagged code bytes, consumed by
// Input.Extend. InputRef.Iter satisfies it.
type Seq interface {
	Next() (byte, Perms[bool], bool)
}

// Input owns a code buffer and its four tag streams, growing all five in
// lockstep. The zero value is not usable; construct with NewInput or
// NewInputEmpty. Single-writer: concurrent mutation requires external
// synchronization, while any number of read-only views may coexist.
type Input struct {
	code []byte
	r    *bitset.BitSet
	w    *bitset.BitSet
	x    *bitset.BitSet
	nj   *bitset.BitSet
}

// NewInputEmpty returns an empty owned buffer.
func NewInputEmpty() *Input {
	return &Input{
		r:  bitset.New(0),
		w:  bitset.New(0),
		x:  bitset.New(0),
		nj: bitset.New(0),
	}
}

// NewInput builds an owned buffer from validated equal-length parts. Each
// tag set must hold exactly one bit per code byte; it reports failure
// otherwise. The parts are taken over, not copied.
func NewInput(code []byte, tags Perms[*bitset.BitSet]) (*Input, bool) {
	n := uint(len(code))
	if tags.R.Len() != n || tags.W.Len() != n || tags.X.Len() != n || tags.NJ.Len() != n {
		return nil, false
	}
	return &Input{code: code, r: tags.R, w: tags.W, x: tags.X, nj: tags.NJ}, true
}

// NewInputFromBools builds an owned buffer from boolean tag slices.
func NewInputFromBools(code []byte, tags Perms[[]bool]) (*Input, bool) {
	n := len(code)
	if len(tags.R) != n || len(tags.W) != n || len(tags.X) != n || len(tags.NJ) != n {
		return nil, false
	}
	in := NewInputEmpty()
	in.code = append(in.code, code...)
	for i := 0; i < n; i++ {
		u := uint(i)
		in.r.SetTo(u, tags.R[i])
		in.w.SetTo(u, tags.W[i])
		in.x.SetTo(u, tags.X[i])
		in.nj.SetTo(u, tags.NJ[i])
	}
	return in, true
}

// Len returns the byte count.
func (in *Input) Len() int {
	return len(in.code)
}

// AsRef returns a borrowed view over the whole buffer.
func (in *Input) AsRef() InputRef {
	n := uint(len(in.code))
	return InputRef{
		code: in.code,
		tags: Perms[BitSlice]{
			R:  NewBitSlice(in.r, n),
			W:  NewBitSlice(in.w, n),
			X:  NewBitSlice(in.x, n),
			NJ: NewBitSlice(in.nj, n),
		},
	}
}

// Push appends one byte with its tags, growing all five sequences by one.
func (in *Input) Push(b byte, tags Perms[bool]) {
	u := uint(len(in.code))
	in.code = append(in.code, b)
	in.r.SetTo(u, tags.R)
	in.w.SetTo(u, tags.W)
	in.x.SetTo(u, tags.X)
	in.nj.SetTo(u, tags.NJ)
}

// Extend appends every pair the sequence yields, end to end. The invariant
// holds after every step, so a caller observing a partial Extend (after a
// panic in the source, say) still sees a consistent buffer.
func (in *Input) Extend(seq Seq) {
	for {
		b, tags, ok := seq.Next()
		if !ok {
			return
		}
		in.Push(b, tags)
	}
}

// Truncate shortens the buffer to n bytes. Callers wanting an atomic
// Extend/WriteAll snapshot Len beforehand and Truncate on failure.
func (in *Input) Truncate(n int) {
	in.code = in.code[:n]
}

// IntoParts surrenders the backing storage. The Input must not be used
// afterwards. After a Truncate the surrendered tag sets may still carry
// stale bits beyond the code length; the code slice is authoritative.
func (in *Input) IntoParts() ([]byte, Perms[*bitset.BitSet]) {
	return in.code, Perms[*bitset.BitSet]{R: in.r, W: in.w, X: in.x, NJ: in.nj}
}

// Write appends the whole view, satisfying InputStream. It always consumes
// everything offered and cannot fail.
func (in *Input) Write(ref InputRef) (int, error) {
	it := ref.Iter()
	for {
		b, tags, ok := it.Next()
		if !ok {
			return ref.Len(), nil
		}
		in.Push(b, tags)
	}
}
