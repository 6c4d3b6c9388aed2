// Package gamelog writes the per-frame text log: an ASCII snapshot of the
// play field followed by the entities drawn in that frame.
package gamelog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Log is an append-only, buffered text sink. Write failures never surface to
// the caller; the first one is kept for Err and logged once.
type Log struct {
	w       *bufio.Writer
	closer  io.Closer
	logger  *slog.Logger
	err     error
	flushes int
	closed  bool
}

// Create opens path for writing, truncating any previous log, and creates
// its parent directory if needed.
func Create(path string, logger *slog.Logger) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}
	l := New(f, logger)
	l.closer = f
	return l, nil
}

// New wraps w. If w is also an io.Closer it is not closed by Close; use
// Create for files.
func New(w io.Writer, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Log{w: bufio.NewWriter(w), logger: logger}
}

// Line appends s and a newline.
func (l *Log) Line(s string) {
	if l.closed {
		return
	}
	if _, err := l.w.WriteString(s); err != nil {
		l.fail(err)
		return
	}
	if err := l.w.WriteByte('\n'); err != nil {
		l.fail(err)
	}
}

// WriteFrame appends one frame section.
func (l *Log) WriteFrame(f *Frame) {
	for _, line := range f.Lines() {
		l.Line(line)
	}
}

// Flush pushes buffered lines to the underlying writer.
func (l *Log) Flush() {
	if l.closed {
		return
	}
	l.flushes++
	if err := l.w.Flush(); err != nil {
		l.fail(err)
	}
}

// Close flushes the log and releases the file. Calling it again is a no-op.
func (l *Log) Close() error {
	if l.closed {
		return nil
	}
	l.Flush()
	l.closed = true
	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			return fmt.Errorf("close log: %w", err)
		}
	}
	return nil
}

// Err returns the first write failure, if any.
func (l *Log) Err() error { return l.err }

func (l *Log) fail(err error) {
	if l.err != nil {
		return
	}
	l.err = err
	l.logger.Warn("frame log: write failed, further errors suppressed", "error", err)
}
