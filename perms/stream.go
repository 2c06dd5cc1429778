package perms

import (
	"fmt"
	"io"
)

// InputStream receives code together with its permission tags, mirroring
// io.Writer: a sink accepts some prefix of the offered view and reports how
// many bytes it consumed. It may consume fewer bytes than offered; WriteAll
// composes over that.
type InputStream interface {
	Write(in InputRef) (int, error)
}

// WriteAll writes the whole view to s, re-offering the unconsumed suffix
// until everything is consumed or a write fails.
//
// A Write that reports zero consumed bytes while input remains violates the
// sink contract; WriteAll fails immediately with an error wrapping
// io.ErrNoProgress rather than retrying forever. A Write claiming to have
// consumed more than it was offered is reported the same way it would be by
// io.Writer plumbing: as an error, with nothing further offered.
func WriteAll(s InputStream, in InputRef) error {
	for in.Len() > 0 {
		n, err := s.Write(in)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("input stream stalled with %d bytes remaining: %w", in.Len(), io.ErrNoProgress)
		}
		if n > in.Len() {
			return fmt.Errorf("input stream reported %d bytes consumed of %d offered", n, in.Len())
		}
		in = in.Subref(n, in.Len())
	}
	return nil
}
