package persistence

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/portal-co/asm-common/perms"
)

// Writer appends permission-buffer records to a single file.
type Writer struct {
	f      *os.File
	w      *bufio.Writer
	logger *zap.Logger
	n      int
}

// NewWriter creates the file at path, truncating any previous contents.
// A nil logger disables logging.
func NewWriter(path string, logger *zap.Logger) (*Writer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, OwnerReadWrite)
	if err != nil {
		return nil, err
	}
	return &Writer{
		f:      f,
		w:      bufio.NewWriter(f),
		logger: logger,
	}, nil
}

// Write appends one buffer as a record.
func (w *Writer) Write(in *perms.Input) error {
	if err := encodeRecord(w.w, in); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	w.n++
	return nil
}

// Close flushes buffered records and closes the file.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	w.w = nil

	if info, err := w.f.Stat(); err == nil {
		w.logger.Info("closing file",
			zap.String("filename", info.Name()),
			zap.Int("num_records", w.n),
			zap.Int64("size_in_bytes", info.Size()),
		)
	}

	if err := w.f.Close(); err != nil {
		return err
	}
	w.f = nil
	return nil
}
