// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the LSB pattern, where
// least-significant bits are written/read first.
//
// It is the transport layer for values whose width is not a whole number of
// bytes: constants interpreted at arbitrary bitness, and the per-byte
// permission tag streams packed into persisted records.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
