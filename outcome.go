package charm

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
)

// Outcome is the result of one decode step.
//
// A valid outcome carries the decoded scalar value in Rune. An invalid one
// leaves Rune at utf8.RuneError and only the raw bytes are meaningful. In
// both cases Bytes[:N] holds exactly the bytes the step consumed.
type Outcome struct {
	Rune  rune
	Valid bool
	Bytes [UTFMax]byte
	N     int
}

// Statically ensure that Outcome implements Codec.
var _ Codec = (*Outcome)(nil)

// Raw returns the bytes consumed by the step.
func (o *Outcome) Raw() []byte { return o.Bytes[:o.N] }

// Size returns the number of bytes consumed by the step.
func (o *Outcome) Size() int { return o.N }

// Hex returns the raw bytes as lowercase, space separated hex pairs.
func (o *Outcome) Hex() string { return fmt.Sprintf("% x", o.Raw()) }

// String returns "U+XXXX" for a valid outcome and "invalid(..)" otherwise.
// It has a value receiver so that fmt can print Outcomes that are not
// addressable, such as map values and iterator results.
func (o Outcome) String() string {
	if o.Valid {
		return fmt.Sprintf("U+%04X", o.Rune)
	}
	return fmt.Sprintf("invalid(%s)", hex.EncodeToString(o.Raw()))
}

// WriteTo writes the raw bytes to w.
func (o *Outcome) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(o.Raw())
	if err != nil {
		return int64(n), err
	}
	if n < o.N {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// MarshalBinary returns a copy of the raw bytes.
func (o *Outcome) MarshalBinary() ([]byte, error) {
	return bytes.Clone(o.Raw()), nil
}

// MarshalTo copies the raw bytes into p.
func (o *Outcome) MarshalTo(p []byte) (int, error) {
	if len(p) < o.N {
		return 0, io.ErrShortWrite
	}
	return copy(p, o.Raw()), nil
}

// ReadFrom performs a single decode step on r. A clean end of stream before
// the lead byte is reported as io.EOF.
func (o *Outcome) ReadFrom(r io.Reader) (int64, error) {
	d, err := NewDecoder(r)
	if err != nil {
		return 0, err
	}
	out, err := d.Next()
	if err != nil {
		return d.Count(), err
	}
	*o = out
	// An error returned along with the unit's last bytes is still held by the
	// decoder, which is discarded here.
	if err := d.pending; err != nil && err != io.EOF {
		return int64(out.N), err
	}
	return int64(out.N), nil
}

// UnmarshalBinary decodes exactly one unit from data. Bytes left over after
// the first unit are reported as ErrTrailingData.
func (o *Outcome) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return ErrTruncatedData
	}
	n, err := o.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if int(n) < len(data) {
		return fmt.Errorf("%w: %d of %d bytes used", ErrTrailingData, n, len(data))
	}
	return nil
}
