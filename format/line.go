package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/oy3o/charm"
)

const (
	minCounterWidth = 5
	glyphColumns    = 8
	hexColumns      = 3*charm.UTFMax - 1
)

// LineEncoder writes one aligned text row per outcome:
//
//	    1: 'A'      = 41
//	    2: ' ́'      = cc 81
//	    3: #7       = 07
//	    4: invalid  = c0
type LineEncoder struct {
	w       *charm.Writer
	opts    Options
	styles  Styles
	counter Counter
}

// NewLineEncoder returns a LineEncoder writing to w.
func NewLineEncoder(w io.Writer, opts Options) (*LineEncoder, error) {
	cw, err := charm.NewWriter(w)
	if err != nil {
		return nil, err
	}
	styles := PlainStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return &LineEncoder{
		w:       cw,
		opts:    opts,
		styles:  styles,
		counter: Counter{Bytes: opts.Bytes},
	}, nil
}

func (e *LineEncoder) Encode(info charm.Info) error {
	pos, _, _ := e.counter.Next(info.Outcome.N)

	width := max(minCounterWidth, charm.Roundup(charm.Digits(pos), 4))
	e.w.Printf("%*d: ", width, pos)

	glyph, cells, style := e.glyph(info)
	e.w.WriteString(style(glyph))
	e.w.Pad(glyphColumns - cells)
	e.w.WriteString(" = ")

	hex := info.Outcome.Hex()
	var extra []string
	if e.opts.Names && info.Outcome.Valid {
		extra = append(extra, info.Name)
	}
	if e.opts.Scripts && info.Outcome.Valid {
		extra = append(extra, info.Script)
	}
	if len(extra) == 0 {
		e.w.WriteLine(hex)
		return e.w.Err()
	}
	e.w.WriteString(hex)
	e.w.Pad(hexColumns - len(hex))
	e.w.WriteLine("  ", strings.Join(extra, "  "))
	return e.w.Err()
}

func (e *LineEncoder) Flush() error { return e.w.Flush() }

// glyph returns the text shown for the character, the number of columns it
// takes and the style to print it in. Characters that cannot be seen on their
// own are shown by number.
func (e *LineEncoder) glyph(info charm.Info) (string, int, func(...string) string) {
	o := info.Outcome
	var text string
	switch {
	case !o.Valid:
		return "invalid", len("invalid"), e.styles.Invalid.Render
	case info.Category == charm.Control:
		text = fmt.Sprintf("#%d", o.Rune)
		return text, len(text), e.styles.Control.Render
	case info.Category == charm.Combining:
		return "' " + string(o.Rune) + "'", 3, e.styles.Combining.Render
	case !info.HasWidth:
		text = fmt.Sprintf("#%d", o.Rune)
		return text, len(text), e.styles.Control.Render
	default:
		return "'" + string(o.Rune) + "'", 2 + info.Width, plain
	}
}

func plain(strs ...string) string { return strings.Join(strs, "") }
