package charm

import (
	"fmt"
	"io"
)

// ForwardSeeker returns r as an io.ReadSeeker. A reader whose Seek works is
// returned as is. Anything else, including an *os.File on a pipe, is wrapped
// so that seeking forward reads and drops the skipped bytes.
func ForwardSeeker(r io.Reader) io.ReadSeeker {
	if r == nil {
		panic("charm: ForwardSeeker called with a nil io.Reader")
	}
	if s, ok := r.(io.ReadSeeker); ok {
		if _, err := s.Seek(0, io.SeekCurrent); err == nil {
			return s
		}
	}
	return &forwardSeeker{r: r}
}

// forwardSeeker keeps its own position over a reader that cannot seek.
type forwardSeeker struct {
	r   io.Reader
	pos int64
}

func (s *forwardSeeker) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.pos += int64(n)
	return n, err
}

// Close closes the underlying reader if it is an io.Closer.
func (s *forwardSeeker) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Seek moves forward relative to the start or to the current position.
// Moving backward fails with ErrUnsupportedNegativeSeek.
func (s *forwardSeeker) Seek(offset int64, whence int) (int64, error) {
	target := offset
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		target += s.pos
	default:
		return s.pos, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}
	if target < s.pos {
		return s.pos, fmt.Errorf("%w: from %d to %d", ErrUnsupportedNegativeSeek, s.pos, target)
	}
	n, err := Discard(s.r, target-s.pos)
	s.pos += n
	return s.pos, err
}

// Skip drops the first n bytes of r and returns a reader positioned after
// them. A source shorter than n bytes is left at its end without an error.
func Skip(r io.Reader, n int64) (io.Reader, error) {
	switch {
	case n < 0:
		return nil, ErrDiscardNegative
	case n == 0:
		return r, nil
	}
	s := ForwardSeeker(r)
	if _, err := s.Seek(n, io.SeekCurrent); err != nil && err != io.EOF {
		return nil, fmt.Errorf("charm: skip %d bytes: %w", n, err)
	}
	return s, nil
}
