package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oy3o/charm"
)

// JSONEncoder writes one JSON object per outcome, newline delimited.
type JSONEncoder struct {
	w       *charm.Writer
	opts    Options
	counter Counter
}

// NewJSONEncoder returns a JSONEncoder writing to w.
func NewJSONEncoder(w io.Writer, opts Options) (*JSONEncoder, error) {
	cw, err := charm.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &JSONEncoder{w: cw, opts: opts, counter: Counter{Bytes: opts.Bytes}}, nil
}

type jsonOutcome struct {
	Index     int64  `json:"index"`
	Offset    int64  `json:"offset"`
	Valid     bool   `json:"valid"`
	Bytes     string `json:"bytes"`
	Char      string `json:"char,omitempty"`
	Codepoint string `json:"codepoint,omitempty"`
	Category  string `json:"category,omitempty"`
	Width     *int   `json:"width,omitempty"`
	Name      string `json:"name,omitempty"`
	Script    string `json:"script,omitempty"`
}

func (e *JSONEncoder) Encode(info charm.Info) error {
	_, index, offset := e.counter.Next(info.Outcome.N)
	text, err := e.MarshalInfo(info, index, offset)
	if err != nil {
		return err
	}
	e.w.Write(text)
	e.w.WriteByte('\n')
	return e.w.Err()
}

// MarshalInfo returns the JSON object for a single outcome.
func (e *JSONEncoder) MarshalInfo(info charm.Info, index, offset int64) ([]byte, error) {
	o := info.Outcome
	out := jsonOutcome{
		Index:  index,
		Offset: offset,
		Valid:  o.Valid,
		Bytes:  o.Hex(),
	}
	if o.Valid {
		out.Char = string(o.Rune)
		out.Codepoint = fmt.Sprintf("U+%04X", o.Rune)
		out.Category = info.Category.String()
		if info.HasWidth {
			w := info.Width
			out.Width = &w
		}
		if e.opts.Names {
			out.Name = info.Name
		}
		if e.opts.Scripts {
			out.Script = info.Script
		}
	}
	return json.Marshal(out)
}

func (e *JSONEncoder) Flush() error { return e.w.Flush() }
