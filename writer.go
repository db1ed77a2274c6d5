package charm

import (
	"bufio"
	"fmt"
	"io"
)

// Writer buffers text output and remembers the first error it meets. Once an
// error is recorded every further call is a no-op returning it, so a caller
// can write a whole row and look at Err once.
type Writer struct {
	buf *bufio.Writer
	n   int64 // bytes accepted into the buffer
	err error
}

// NewWriterSize returns a Writer with a buffer of at least size bytes. A
// Writer stacked on another *Writer shares its buffer.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	switch w := w.(type) {
	case nil:
		return nil, ErrNilIO
	case *Writer:
		return &Writer{buf: w.buf}, nil
	default:
		return &Writer{buf: bufio.NewWriterSize(w, size)}, nil
	}
}

// NewWriter returns a Writer with the default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

func (w *Writer) track(n int, err error) (int, error) {
	if n < 0 {
		n, err = 0, ErrInvalidWrite
	}
	w.n += int64(n)
	if w.err == nil {
		w.err = err
	}
	return n, w.err
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil || len(p) == 0 {
		return 0, w.err
	}
	return w.track(w.buf.Write(p))
}

func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil || s == "" {
		return 0, w.err
	}
	return w.track(w.buf.WriteString(s))
}

func (w *Writer) WriteByte(c byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.buf.WriteByte(c); err != nil {
		_, err = w.track(0, err)
		return err
	}
	w.n++
	return nil
}

// Printf formats according to format and writes the result.
func (w *Writer) Printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	w.track(fmt.Fprintf(w.buf, format, args...))
}

// Pad writes n spaces.
func (w *Writer) Pad(n int) {
	for ; n > 0 && w.err == nil; n-- {
		w.WriteByte(' ')
	}
}

// WriteLine writes the fields back to back and ends the line.
func (w *Writer) WriteLine(fields ...string) {
	for _, f := range fields {
		w.WriteString(f)
	}
	w.WriteByte('\n')
}

// Count returns the number of bytes written, buffered ones included.
func (w *Writer) Count() int64 { return w.n }

// Err returns the first error met, if any.
func (w *Writer) Err() error { return w.err }

// Flush sends buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.err = w.buf.Flush()
	}
	return w.err
}

// Result flushes and reports the totals.
func (w *Writer) Result() (int64, error) {
	err := w.Flush()
	return w.n, err
}
