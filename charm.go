// Package charm inspects arbitrary byte streams one UTF-8 unit at a time.
//
// Unlike a validating decoder, a [Decoder] never rejects its input: every
// consumed byte ends up in exactly one [Outcome], valid or not, so malformed
// sequences can be shown to the user byte for byte. A [Classifier] derives
// display properties (control, combining, width) for the valid ones.
package charm

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their binary size.
type Sizer interface {
	// Size returns the number of raw bytes the value occupies.
	Size() int
}

// Marshaler emits the raw bytes a value was decoded from.
type Marshaler interface {
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	io.WriterTo              // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo copies the raw bytes into a pre-allocated buffer, returning
	// io.ErrShortWrite if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler decodes a value from a byte slice or a stream.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	io.ReaderFrom              // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates all raw-byte serialization interfaces.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
