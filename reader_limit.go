package charm

import "io"

// LimitedReader reads at most N bytes from R and closes R on Close.
type LimitedReader struct {
	*io.LimitedReader
}

// LimitReader returns a reader that stops with io.EOF after n bytes. A
// negative n means no limit and returns r unchanged.
func LimitReader(r io.Reader, n int64) io.ReadCloser {
	if n < 0 {
		if rc, ok := r.(io.ReadCloser); ok {
			return rc
		}
		return io.NopCloser(r)
	}
	return &LimitedReader{&io.LimitedReader{R: r, N: n}}
}

// Close closes the underlying reader if it implements io.Closer.
func (r *LimitedReader) Close() error {
	if c, ok := r.R.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Remaining returns how many bytes may still be read.
func (r *LimitedReader) Remaining() int64 { return r.N }
