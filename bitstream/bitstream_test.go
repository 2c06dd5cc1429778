package bitstream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/portal-co/asm-common/bitstream"
)

func TestBits_RoundTrip(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := bitstream.NewWriter(buf)

	// Mixed widths crossing byte boundaries in every combination.
	widths := []uint{1, 3, 7, 8, 9, 13, 17, 31, 33, 63, 64}
	for i, n := range widths {
		err := w.WriteBits(uint64(i)*0x9E3779B97F4A7C15, n)
		req.NoError(err)
	}
	req.NoError(w.Flush(bitstream.Zero))

	r := bitstream.NewReader(buf)
	for i, n := range widths {
		want := uint64(i) * 0x9E3779B97F4A7C15
		if n < 64 {
			want &= 1<<n - 1
		}
		got, err := r.ReadBits(n)
		req.NoError(err)
		req.Equal(want, got, "width %d", n)
	}
}

func TestBit_ByBit(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := bitstream.NewWriter(buf)
	pattern := []bitstream.Bit{bitstream.One, bitstream.Zero, bitstream.One, bitstream.One, bitstream.Zero}
	for _, b := range pattern {
		req.NoError(w.WriteBit(b))
	}
	req.NoError(w.Flush(bitstream.Zero))

	// LSB-first: 1,0,1,1,0 packs to 0b01101.
	req.Equal([]byte{0x0D}, buf.Bytes())

	r := bitstream.NewReader(buf)
	for _, want := range pattern {
		got, err := r.ReadBit()
		req.NoError(err)
		req.Equal(want, got)
	}
}

func TestBytes_RoundTrip(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := bitstream.NewWriter(buf)

	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x05}
	// 35 bits: four full bytes plus three bits of the fifth.
	req.NoError(w.WriteBytes(data, 35))
	req.NoError(w.Flush(bitstream.Zero))

	r := bitstream.NewReader(buf)
	got, err := r.ReadBytes(35)
	req.NoError(err)
	req.Equal([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x05}, got)
}

func TestRead_PastEnd(t *testing.T) {
	req := require.New(t)

	r := bitstream.NewReader(bytes.NewReader([]byte{0xFF}))
	_, err := r.ReadBits(8)
	req.NoError(err)
	_, err = r.ReadBit()
	req.ErrorIs(err, io.EOF)
}

func TestRead_PropagatesStreamError(t *testing.T) {
	req := require.New(t)

	r := bitstream.NewReader(iotest{})
	_, err := r.ReadBits(16)
	req.Error(err)
	req.NotErrorIs(err, io.EOF)
}

func TestWriter_Alignment(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := bitstream.NewWriter(buf)
	req.NoError(w.WriteBits(0x5, 3))
	req.NoError(w.Flush(bitstream.One))

	// 101 then padded with ones: 0b11111101.
	req.Equal([]byte{0xFD}, buf.Bytes())
}

type iotest struct{}

func (iotest) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}
