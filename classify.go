package charm

// Category says how a character has to be treated when it is displayed.
type Category uint8

const (
	// Normal characters can be printed as they are.
	Normal Category = iota
	// Combining characters attach to the preceding character and need a
	// base to be displayed on.
	Combining
	// Control characters have no glyph; their code point is shown instead.
	Control
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "normal"
	case Combining:
		return "combining"
	case Control:
		return "control"
	default:
		return "unknown"
	}
}

// Classifier derives display properties from a set of Properties.
type Classifier struct {
	props Properties
}

// Default classifies with the Unicode tables, East Asian ambiguous
// characters counted as narrow.
var Default = NewClassifier(nil)

// NewClassifier returns a Classifier backed by props, or by NewUnicode(false)
// when props is nil.
func NewClassifier(props Properties) *Classifier {
	if props == nil {
		props = NewUnicode(false)
	}
	return &Classifier{props: props}
}

// Properties returns the oracle the classifier consults.
func (c *Classifier) Properties() Properties { return c.props }

// Classify returns the display category of r. The control property wins over
// a non-zero combining class.
func (c *Classifier) Classify(r rune) Category {
	if c.props.IsControl(r) {
		return Control
	}
	if c.props.CombiningClass(r) != 0 {
		return Combining
	}
	return Normal
}

// Width returns the number of columns r occupies. ok is false for control
// characters and zero-width characters, which cannot be printed as a cell of
// their own. Runes without a width mapping count as narrow.
func (c *Classifier) Width(r rune) (int, bool) {
	if c.props.IsControl(r) {
		return 0, false
	}
	w, ok := c.props.DisplayWidth(r)
	switch {
	case !ok:
		return 1, true
	case w <= 0:
		return 0, false
	case w >= 2:
		return 2, true
	default:
		return 1, true
	}
}

// Info is everything known about one Outcome.
type Info struct {
	Outcome  Outcome
	Category Category
	Width    int  // meaningful when HasWidth
	HasWidth bool // false for hazards: control and zero-width characters
	Name     string
	Script   string
}

// Describe classifies a decoded outcome. Invalid outcomes only carry their
// bytes.
func (c *Classifier) Describe(o Outcome) Info {
	info := Info{Outcome: o}
	if !o.Valid {
		return info
	}
	info.Category = c.Classify(o.Rune)
	info.Width, info.HasWidth = c.Width(o.Rune)
	info.Name, _ = c.props.Name(o.Rune)
	info.Script, _ = c.props.Script(o.Rune)
	return info
}

// Classify returns the display category of r using Default.
func Classify(r rune) Category { return Default.Classify(r) }

// Width returns the display width of r using Default.
func Width(r rune) (int, bool) { return Default.Width(r) }

// Describe classifies o using Default.
func Describe(o Outcome) Info { return Default.Describe(o) }
