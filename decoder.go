package charm

import (
	"bytes"
	"io"
	"iter"
	"unicode/utf8"

	"go.uber.org/zap"
)

// maxConsecutiveEmptyReads matches bufio: a source that keeps returning
// (0, nil) is treated as broken.
const maxConsecutiveEmptyReads = 100

// Decoder turns a byte source into a forward-only sequence of Outcomes.
//
// Each step reads a lead byte, then as many continuation bytes as the lead
// announces, and reports whatever it collected. A bad lead byte consumes only
// itself, so the decoder resynchronizes on the very next byte. Malformed input
// is never an error; only failures of the source are.
//
// A Decoder owns its source: nothing else may read from it concurrently.
// After an I/O error the Decoder stays usable and the next step reads the
// source again.
type Decoder struct {
	r       io.Reader
	br      io.ByteReader // set when r can hand out single bytes
	count   int64         // bytes consumed so far
	pending error         // error returned alongside data, reported on the next read
	log     *zap.Logger
}

// NewDecoder creates a Decoder reading directly from r. Every lead byte costs
// one call to r, so slow or unbuffered sources should use NewDecoderSize.
func NewDecoder(r io.Reader) (*Decoder, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	d := &Decoder{r: r, log: Logger()}
	if br, ok := r.(io.ByteReader); ok {
		d.br = br
	}
	return d, nil
}

// NewDecoderSize creates a Decoder over a buffered view of r (see Buffered).
func NewDecoderSize(r io.Reader, size int) (*Decoder, error) {
	br, err := Buffered(r, size)
	if err != nil {
		return nil, err
	}
	return NewDecoder(br)
}

// Count returns the number of bytes consumed from the source.
func (d *Decoder) Count() int64 { return d.count }

// Next performs one decode step. It returns io.EOF when the source ends
// cleanly before a lead byte, and a *StreamError when the source fails.
func (d *Decoder) Next() (Outcome, error) {
	start := d.count

	lead, err := d.readLead()
	if err != nil {
		if err == io.EOF {
			return Outcome{}, io.EOF
		}
		d.log.Debug("read lead byte", zap.Int64("offset", start), zap.Error(err))
		return Outcome{}, &StreamError{Offset: start, Err: err}
	}

	out := Outcome{Rune: utf8.RuneError, N: 1}
	out.Bytes[0] = lead

	width := LeadWidth(lead)
	switch width {
	case 0:
		d.invalid(start, &out, "bad lead byte")
		return out, nil
	case 1:
		out.Rune = rune(lead)
		out.Valid = true
		return out, nil
	}

	for out.N < width {
		n, err := d.read(out.Bytes[out.N:width])
		out.N += n
		if err == io.EOF {
			clear(out.Bytes[out.N:])
			d.invalid(start, &out, "truncated")
			return out, nil
		}
		if err != nil {
			d.log.Debug("read unit tail", zap.Int64("offset", start), zap.Int("have", out.N), zap.Int("want", width), zap.Error(err))
			return Outcome{}, &StreamError{Offset: start, Partial: bytes.Clone(out.Raw()), Err: err}
		}
	}

	if r, ok := decodeUnit(out.Raw()); ok {
		out.Rune = r
		out.Valid = true
		return out, nil
	}
	d.invalid(start, &out, "malformed")
	return out, nil
}

// All returns the lazy sequence of decode steps. It ends at the clean end of
// the source. I/O errors are yielded with a zero Outcome; ranging on after
// one retries the source, breaking out abandons it.
func (d *Decoder) All() iter.Seq2[Outcome, error] {
	return func(yield func(Outcome, error) bool) {
		for {
			out, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(out, err) {
				return
			}
		}
	}
}

// DecodeAll decodes r to the end and returns every outcome. It stops at the
// first I/O error and returns the outcomes decoded before it.
func DecodeAll(r io.Reader) ([]Outcome, error) {
	d, err := NewDecoderSize(r, 0)
	if err != nil {
		return nil, err
	}
	var outs []Outcome
	for out, err := range d.All() {
		if err != nil {
			return outs, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func (d *Decoder) invalid(offset int64, out *Outcome, reason string) {
	if ce := d.log.Check(zap.DebugLevel, "invalid unit"); ce != nil {
		ce.Write(zap.Int64("offset", offset), zap.String("bytes", out.Hex()), zap.String("reason", reason))
	}
}

func (d *Decoder) readLead() (byte, error) {
	if d.br != nil && d.pending == nil {
		b, err := d.br.ReadByte()
		if err != nil {
			return 0, err
		}
		d.count++
		return b, nil
	}
	var p [1]byte
	if _, err := d.read(p[:]); err != nil {
		return 0, err
	}
	return p[0], nil
}

// read reads into p and returns either n > 0 with a nil error or 0 with the
// error. An error that arrives together with data is held back for the next
// call, so no byte is ever dropped.
func (d *Decoder) read(p []byte) (int, error) {
	if d.pending != nil {
		err := d.pending
		d.pending = nil
		return 0, err
	}
	for empty := 0; ; empty++ {
		n, err := d.r.Read(p)
		if n < 0 || n > len(p) {
			return 0, ErrInvalidRead
		}
		if n > 0 {
			d.count += int64(n)
			d.pending = err
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		if empty >= maxConsecutiveEmptyReads {
			return 0, io.ErrNoProgress
		}
	}
}
