package format

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/oy3o/charm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Helpers ---

func render(t *testing.T, name, input string, opts Options) string {
	t.Helper()
	outs, err := charm.DecodeAll(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	enc, err := New(name, &buf, opts)
	require.NoError(t, err)
	for _, o := range outs {
		require.NoError(t, enc.Encode(charm.Describe(o)))
	}
	require.NoError(t, enc.Flush())
	return buf.String()
}

func jsonRows(t *testing.T, text string) []map[string]any {
	t.Helper()
	var rows []map[string]any
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		var row map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &row), "line %q", line)
		rows = append(rows, row)
	}
	return rows
}

// --- Line format ---

type LineTestSuite struct {
	suite.Suite
}

func (s *LineTestSuite) TestRows() {
	got := render(s.T(), "line", "A\u0301\x07\xc0", Options{})
	want := "" +
		"    1: 'A'      = 41\n" +
		"    2: ' \u0301'      = cc 81\n" +
		"    3: #7       = 07\n" +
		"    4: invalid  = c0\n"
	s.Equal(want, got)
}

func (s *LineTestSuite) TestWideAndZeroWidth() {
	got := render(s.T(), "", "日\u200b", Options{})
	want := "" +
		"    1: '日'     = e6 97 a5\n" +
		"    2: #8203    = e2 80 8b\n"
	s.Equal(want, got)
}

func (s *LineTestSuite) TestTruncatedUnit() {
	got := render(s.T(), "line", "\xe2\x82", Options{})
	s.Equal("    1: invalid  = e2 82\n", got)
}

func (s *LineTestSuite) TestByteCounter() {
	got := render(s.T(), "line", "A€B", Options{Bytes: true})
	want := "" +
		"    1: 'A'      = 41\n" +
		"    2: '€'      = e2 82 ac\n" +
		"    5: 'B'      = 42\n"
	s.Equal(want, got)
}

func (s *LineTestSuite) TestNamesAndScripts() {
	got := render(s.T(), "line", "A€\xff", Options{Names: true, Scripts: true})
	want := "" +
		"    1: 'A'      = 41" + strings.Repeat(" ", 11) + "LATIN CAPITAL LETTER A  Latin\n" +
		"    2: '€'      = e2 82 ac" + strings.Repeat(" ", 5) + "EURO SIGN  Common\n" +
		"    3: invalid  = ff\n"
	s.Equal(want, got)
}

func (s *LineTestSuite) TestNamesOnly() {
	got := render(s.T(), "line", "\u0301", Options{Names: true})
	s.Equal("    1: ' \u0301'      = cc 81"+strings.Repeat(" ", 8)+"COMBINING ACUTE ACCENT\n", got)
}

func (s *LineTestSuite) TestCounterColumnGrows() {
	var buf bytes.Buffer
	enc, err := NewLineEncoder(&buf, Options{})
	s.Require().NoError(err)
	enc.counter.index = 99999

	info := charm.Describe(charm.Outcome{Rune: 'x', Valid: true, Bytes: [charm.UTFMax]byte{'x'}, N: 1})
	s.Require().NoError(enc.Encode(info))
	s.Require().NoError(enc.Flush())
	s.Equal("  100000: 'x'      = 78\n", buf.String())
}

func (s *LineTestSuite) TestStyles() {
	color := ColorStyles(io.Discard)
	got := render(s.T(), "line", "A\xc0", Options{Styles: &color})
	lines := strings.Split(got, "\n")
	s.Equal("    1: 'A'      = 41", lines[0], "normal characters are never styled")
	s.Contains(lines[1], "\x1b[")
	s.Contains(lines[1], "invalid")
	s.True(strings.HasSuffix(lines[1], "  = c0"))

	plain := PlainStyles()
	s.NotContains(render(s.T(), "line", "\x07\u0301\xc0", Options{Styles: &plain}), "\x1b[")
}

// TestLine runs the LineTestSuite.
func TestLine(t *testing.T) {
	suite.Run(t, new(LineTestSuite))
}

// --- JSON format ---

func TestJSONEncoder(t *testing.T) {
	rows := jsonRows(t, render(t, "json", "A\u0301\x07\xc0", Options{}))
	require.Len(t, rows, 4)

	assert.Equal(t, map[string]any{
		"index": 1.0, "offset": 0.0, "valid": true, "bytes": "41",
		"char": "A", "codepoint": "U+0041", "category": "normal", "width": 1.0,
	}, rows[0])
	assert.Equal(t, map[string]any{
		"index": 2.0, "offset": 1.0, "valid": true, "bytes": "cc 81",
		"char": "\u0301", "codepoint": "U+0301", "category": "combining",
	}, rows[1])
	assert.Equal(t, map[string]any{
		"index": 3.0, "offset": 3.0, "valid": true, "bytes": "07",
		"char": "\a", "codepoint": "U+0007", "category": "control",
	}, rows[2])
	assert.Equal(t, map[string]any{
		"index": 4.0, "offset": 4.0, "valid": false, "bytes": "c0",
	}, rows[3])
}

func TestJSONEncoderNames(t *testing.T) {
	rows := jsonRows(t, render(t, "json", "あ", Options{Names: true, Scripts: true}))
	require.Len(t, rows, 1)
	assert.Equal(t, "HIRAGANA LETTER A", rows[0]["name"])
	assert.Equal(t, "Hiragana", rows[0]["script"])
	assert.Equal(t, 2.0, rows[0]["width"])

	rows = jsonRows(t, render(t, "json", "あ", Options{}))
	assert.NotContains(t, rows[0], "name")
	assert.NotContains(t, rows[0], "script")
}

// --- Standalone Tests ---

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("yaml", io.Discard, Options{})
	assert.ErrorContains(t, err, `unknown format "yaml"`)

	_, err = New("line", nil, Options{})
	assert.ErrorIs(t, err, charm.ErrNilIO)
}

func TestCounter(t *testing.T) {
	c := Counter{}
	pos, index, offset := c.Next(1)
	assert.Equal(t, [3]int64{1, 1, 0}, [3]int64{pos, index, offset})
	pos, index, offset = c.Next(3)
	assert.Equal(t, [3]int64{2, 2, 1}, [3]int64{pos, index, offset})

	c = Counter{Bytes: true}
	c.Next(1)
	pos, index, offset = c.Next(3)
	assert.Equal(t, [3]int64{2, 2, 1}, [3]int64{pos, index, offset})
	pos, _, _ = c.Next(1)
	assert.EqualValues(t, 5, pos)
}
