package persistence

import (
	"bufio"
	"io"
	"os"

	"github.com/portal-co/asm-common/perms"
)

// Reader iterates the records of a file produced by Writer.
type Reader struct {
	f *os.File
	r *bufio.Reader
}

// NewReader opens the record file at path.
func NewReader(path string) (*Reader, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, OwnerReadWrite)
	if err != nil {
		return nil, err
	}
	return &Reader{
		f: f,
		r: bufio.NewReader(f),
	}, nil
}

// Next returns the next buffer, or io.EOF after the last record.
func (r *Reader) Next() (*perms.Input, error) {
	if _, err := r.r.Peek(1); err == io.EOF {
		return nil, io.EOF
	}
	return decodeRecord(r.r)
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
