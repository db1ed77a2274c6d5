package charm

import (
	"bytes"
	"io"
	"slices"
)

// bom is the UTF-8 encoding of U+FEFF.
var bom = []byte{0xEF, 0xBB, 0xBF}

// PeekableReader lets a caller look at the start of a stream before deciding
// how to read it. Peeked bytes are served again by Read.
type PeekableReader struct {
	r    io.Reader
	head []byte // peeked, not yet read
}

// PeekReader wraps r. A *PeekableReader is returned unchanged.
func PeekReader(r io.Reader) *PeekableReader {
	if pr, ok := r.(*PeekableReader); ok {
		return pr
	}
	return &PeekableReader{r: r}
}

// Peek returns the next n bytes without consuming them. A shorter result
// comes with the error that ended it (io.ErrUnexpectedEOF, or io.EOF when
// nothing is left).
func (p *PeekableReader) Peek(n int) ([]byte, error) {
	if have := len(p.head); have < n {
		p.head = slices.Grow(p.head, n-have)[:n]
		m, err := io.ReadAtLeast(p.r, p.head[have:], n-have)
		p.head = p.head[:have+m]
		if err != nil {
			return p.head, err
		}
	}
	return p.head[:n], nil
}

func (p *PeekableReader) Read(b []byte) (int, error) {
	if len(p.head) == 0 {
		return p.r.Read(b)
	}
	n := copy(b, p.head)
	p.head = p.head[n:]
	return n, nil
}

// Close closes the underlying reader if it is an io.Closer.
func (p *PeekableReader) Close() error {
	if c, ok := p.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SkipBOM drops a leading UTF-8 byte order mark and reports whether there
// was one. Bytes that are not a mark stay readable. Only read errors other
// than running out of input are returned.
func SkipBOM(r io.Reader) (io.Reader, bool, error) {
	pr := PeekReader(r)
	head, err := pr.Peek(len(bom))
	switch {
	case bytes.Equal(head, bom):
		pr.head = pr.head[len(bom):]
		Logger().Debug("skipped byte order mark")
		return pr, true, nil
	case err == nil, err == io.EOF, err == io.ErrUnexpectedEOF:
		return pr, false, nil
	default:
		return pr, false, err
	}
}
