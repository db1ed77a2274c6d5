package charm

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

const BUFFER_SIZE = 4096

var discard [BUFFER_SIZE]byte

// Discard reads and drops n bytes from r, returning how many were dropped.
func Discard(r io.Reader, n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 {
		return 0, ErrDiscardNegative
	}
	if n <= BUFFER_SIZE {
		skip, err := io.ReadFull(r, discard[:n])
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return int64(skip), err
	}
	return io.CopyN(io.Discard, r, n)
}

// Roundup rounds n up to the nearest multiple of align, which must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// Digits returns the number of decimal digits needed to print n.
func Digits[T constraints.Integer](n T) int {
	d := 1
	if n < 0 {
		d++
		for ten := T(10); n <= -ten; {
			n /= ten
			d++
		}
		return d
	}
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Buffered returns a buffered view of r for byte-at-a-time decoding.
// In-memory and already buffered readers are returned unchanged; anything
// else is wrapped in a bufio.Reader of the given size (0 picks the bufio
// default).
func Buffered(r io.Reader, size int) (io.Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch r.(type) {
	case *bytes.Reader, *bytes.Buffer, *strings.Reader:
		return r, nil
	case *bufio.Reader:
		return r, nil
	}

	if size == 0 {
		return bufio.NewReader(r), nil
	}
	if size < 16 {
		return nil, ErrSizeTooSmall
	}
	return bufio.NewReaderSize(r, size), nil
}
