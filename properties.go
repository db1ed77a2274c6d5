package charm

import (
	"maps"
	"slices"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Properties is the set of Unicode property lookups a Classifier relies on.
// Implementations must be pure: the same rune always yields the same answer.
type Properties interface {
	// CombiningClass returns the canonical combining class of r.
	CombiningClass(r rune) uint8
	// IsControl reports whether r has the control character property.
	IsControl(r rune) bool
	// DisplayWidth returns the number of monospace columns r occupies.
	// ok is false when the rune has no width mapping.
	DisplayWidth(r rune) (width int, ok bool)
	// Script returns the name of the script r belongs to.
	Script(r rune) (string, bool)
	// Name returns the Unicode character name of r.
	Name(r rune) (string, bool)
}

// scriptNames holds the keys of unicode.Scripts in a stable order.
var scriptNames = slices.Sorted(maps.Keys(unicode.Scripts))

// Unicode answers property lookups from the Unicode tables shipped with Go,
// golang.org/x/text and go-runewidth. It is safe for concurrent use.
type Unicode struct {
	width *runewidth.Condition
	// scripts caches Script results; finding a script means scanning every
	// script table.
	scripts *xsync.Map[rune, string]
}

var _ Properties = (*Unicode)(nil)

// NewUnicode returns a Unicode property oracle. eastAsian selects whether
// characters of ambiguous East Asian width count as wide.
func NewUnicode(eastAsian bool) *Unicode {
	return &Unicode{
		width:   &runewidth.Condition{EastAsianWidth: eastAsian},
		scripts: xsync.NewMap[rune, string](),
	}
}

func (u *Unicode) CombiningClass(r rune) uint8 {
	return norm.NFD.PropertiesString(string(r)).CCC()
}

func (u *Unicode) IsControl(r rune) bool {
	return unicode.IsControl(r)
}

func (u *Unicode) DisplayWidth(r rune) (int, bool) {
	return u.width.RuneWidth(r), true
}

func (u *Unicode) Script(r rune) (string, bool) {
	if name, ok := u.scripts.Load(r); ok {
		return name, name != ""
	}
	var found string
	for _, name := range scriptNames {
		if unicode.Is(unicode.Scripts[name], r) {
			found = name
			break
		}
	}
	u.scripts.Store(r, found)
	return found, found != ""
}

func (u *Unicode) Name(r rune) (string, bool) {
	name := runenames.Name(r)
	return name, name != ""
}
