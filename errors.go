package charm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIO indicates that a constructor was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("charm: called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a buffer size below what bufio accepts.
	ErrSizeTooSmall = errors.New("charm: buffer size smaller than 16 conflicts with bufio")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a forward-only seeker.
	ErrUnsupportedNegativeSeek = errors.New("charm: unsupported negative offset for forward-only seeker")

	// ErrInvalidWhence is returned for io.SeekEnd and unknown whence values.
	ErrInvalidWhence = errors.New("charm: unsupported whence for forward-only seeker")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("charm: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("charm: reader returned invalid count from Read")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("charm: cannot discard negative number of bytes")

	// ErrTrailingData is returned by Outcome.UnmarshalBinary when bytes remain
	// after the first unit.
	ErrTrailingData = errors.New("charm: trailing data found after decoding")

	// ErrTruncatedData indicates that a buffer ended before a single unit could be read.
	ErrTruncatedData = errors.New("charm: truncated data")
)

// StreamError reports an I/O failure of the byte source during a decode step.
// Bytes already collected for the unit in progress are kept in Partial; they
// are not reported in any Outcome.
type StreamError struct {
	Offset  int64  // stream offset of the unit's lead byte
	Partial []byte // bytes of the unit read before the failure, may be empty
	Err     error
}

func (e *StreamError) Error() string {
	if len(e.Partial) == 0 {
		return fmt.Sprintf("charm: read at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("charm: read at offset %d after % x: %v", e.Offset, e.Partial, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
