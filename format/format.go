// Package format renders decode outcomes for people and for programs.
package format

import (
	"fmt"
	"io"

	"github.com/oy3o/charm"
)

// Encoder writes one record per described outcome.
type Encoder interface {
	Encode(info charm.Info) error
	// Flush writes out anything still buffered.
	Flush() error
}

// Options controls which columns are produced.
type Options struct {
	Bytes   bool    // count bytes instead of characters
	Names   bool    // include the Unicode name
	Scripts bool    // include the script
	Styles  *Styles // nil means no color
}

// New returns the encoder registered under name: "line" or "json".
func New(name string, w io.Writer, opts Options) (Encoder, error) {
	switch name {
	case "", "line":
		return NewLineEncoder(w, opts)
	case "json":
		return NewJSONEncoder(w, opts)
	default:
		return nil, fmt.Errorf("format: unknown format %q (expected line or json)", name)
	}
}

// Counter is the running position shown next to each outcome. It counts
// characters by default and bytes when Bytes is set; both start at 1.
type Counter struct {
	Bytes  bool
	index  int64
	offset int64
}

// Next returns the position of an outcome spanning n bytes and advances past it.
func (c *Counter) Next(n int) (pos, index, offset int64) {
	c.index++
	index, offset = c.index, c.offset
	c.offset += int64(n)
	if c.Bytes {
		return offset + 1, index, offset
	}
	return index, index, offset
}
