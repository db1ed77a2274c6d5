package charm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// stubProperties answers from fixed tables; runes missing from a table get
// the zero answer.
type stubProperties struct {
	ccc     map[rune]uint8
	control map[rune]bool
	width   map[rune]int
}

func (s stubProperties) CombiningClass(r rune) uint8 { return s.ccc[r] }
func (s stubProperties) IsControl(r rune) bool       { return s.control[r] }
func (s stubProperties) DisplayWidth(r rune) (int, bool) {
	w, ok := s.width[r]
	return w, ok
}
func (s stubProperties) Script(r rune) (string, bool) { return "", false }
func (s stubProperties) Name(r rune) (string, bool)   { return "", false }

type ClassifierTestSuite struct {
	suite.Suite
	c *Classifier
}

func (s *ClassifierTestSuite) SetupTest() {
	s.c = NewClassifier(NewUnicode(false))
}

func (s *ClassifierTestSuite) TestClassify() {
	tests := []struct {
		name string
		r    rune
		want Category
	}{
		{"Letter", 'A', Normal},
		{"Euro", '€', Normal},
		{"Bell", 0x07, Control},
		{"Delete", 0x7F, Control},
		{"C1Control", 0x85, Control},
		{"CombiningAcute", 0x0301, Combining},
		{"HebrewAccent", 0x0591, Combining},
		{"DevanagariNukta", 0x093C, Combining},
		{"CombiningArrowAbove", 0x20D7, Combining},
		{"GraphemeJoinerHasClassZero", 0x034F, Normal},
		{"SpacingMark", 0x0903, Normal},
		{"ZeroWidthSpace", 0x200B, Normal},
		{"Unassigned", 0x0378, Normal},
		{"CombiningParenthesisAbove", 0x1AC1, Combining},
		{"CombiningDotBelowLeft", 0x1DFA, Combining},
		{"ArabicSmallHighWordAlJuz", 0x0898, Combining},
	}
	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.c.Classify(tt.r))
		})
	}
}

func (s *ClassifierTestSuite) TestWidth() {
	tests := []struct {
		name   string
		r      rune
		want   int
		wantOK bool
	}{
		{"Narrow", 'A', 1, true},
		{"Wide", '日', 2, true},
		{"Emoji", '😀', 2, true},
		{"Bell", 0x07, 0, false},
		{"CombiningAcute", 0x0301, 0, false},
		{"ZeroWidthSpace", 0x200B, 0, false},
		{"AmbiguousIsNarrow", '±', 1, true},
	}
	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			w, ok := s.c.Width(tt.r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, w)
		})
	}

	s.T().Run("AmbiguousEastAsian", func(t *testing.T) {
		w, ok := NewClassifier(NewUnicode(true)).Width('±')
		assert.True(t, ok)
		assert.Equal(t, 2, w)
	})
}

func (s *ClassifierTestSuite) TestPurity() {
	for _, r := range []rune{'A', 0x07, 0x0301, '日', 0x200B} {
		cat := s.c.Classify(r)
		w, ok := s.c.Width(r)
		for range 50 {
			s.Assert().Equal(cat, s.c.Classify(r))
			w2, ok2 := s.c.Width(r)
			s.Assert().Equal(w, w2)
			s.Assert().Equal(ok, ok2)
		}
	}
}

func (s *ClassifierTestSuite) TestDescribe() {
	s.T().Run("Valid", func(t *testing.T) {
		info := s.c.Describe(valid('A', 0x41))
		assert.Equal(t, Normal, info.Category)
		assert.True(t, info.HasWidth)
		assert.Equal(t, 1, info.Width)
		assert.Equal(t, "LATIN CAPITAL LETTER A", info.Name)
		assert.Equal(t, "Latin", info.Script)
	})

	s.T().Run("Combining", func(t *testing.T) {
		info := s.c.Describe(valid(0x0301, 0xCC, 0x81))
		assert.Equal(t, Combining, info.Category)
		assert.False(t, info.HasWidth)
		assert.Equal(t, "COMBINING ACUTE ACCENT", info.Name)
		assert.Equal(t, "Inherited", info.Script)
	})

	s.T().Run("Invalid", func(t *testing.T) {
		o := invalid(0xC0)
		assert.Equal(t, Info{Outcome: o}, s.c.Describe(o))
	})
}

func (s *ClassifierTestSuite) TestStubProperties() {
	c := NewClassifier(stubProperties{
		ccc:     map[rune]uint8{'x': 230, 'y': 230},
		control: map[rune]bool{'y': true},
		width:   map[rune]int{'x': 0, 'w': 2, 'z': 0},
	})

	s.Assert().Equal(Combining, c.Classify('x'))
	s.Assert().Equal(Control, c.Classify('y'), "control wins over combining class")
	s.Assert().Equal(Normal, c.Classify('q'))

	w, ok := c.Width('q')
	s.Assert().True(ok, "unmapped runes are narrow")
	s.Assert().Equal(1, w)

	w, ok = c.Width('w')
	s.Assert().True(ok)
	s.Assert().Equal(2, w)

	_, ok = c.Width('z')
	s.Assert().False(ok)
	_, ok = c.Width('y')
	s.Assert().False(ok)
}

// TestClassifier runs the ClassifierTestSuite.
func TestClassifier(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}

// --- Standalone Tests ---

func TestPackageHelpers(t *testing.T) {
	assert.Equal(t, Combining, Classify(0x0301))
	assert.Equal(t, Control, Classify(0x07))
	_, ok := Width(0x07)
	assert.False(t, ok)
	assert.Equal(t, "EURO SIGN", Describe(valid('€', 0xE2, 0x82, 0xAC)).Name)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "combining", Combining.String())
	assert.Equal(t, "control", Control.String())
	assert.Equal(t, "unknown", Category(9).String())
}

func TestUnicodeProperties(t *testing.T) {
	u := NewUnicode(false)

	name, ok := u.Name('あ')
	assert.True(t, ok)
	assert.Equal(t, "HIRAGANA LETTER A", name)

	script, ok := u.Script('あ')
	assert.True(t, ok)
	assert.Equal(t, "Hiragana", script)

	script, ok = u.Script('€')
	assert.True(t, ok)
	assert.Equal(t, "Common", script)

	_, ok = u.Script(0x0378)
	assert.False(t, ok, "unassigned code points have no script")
	_, ok = u.Script(0x0378)
	assert.False(t, ok, "cached misses stay misses")

	name, ok = u.Name(0x1AC1)
	assert.True(t, ok, "names cover the marks the classifier knows")
	assert.Equal(t, "COMBINING LEFT PARENTHESIS ABOVE RIGHT", name)

	assert.EqualValues(t, 230, u.CombiningClass(0x0301))
	assert.NotZero(t, u.CombiningClass(0x1AC1))
	assert.EqualValues(t, 0, u.CombiningClass('a'))
}

func TestUnicodeScriptCacheConcurrent(t *testing.T) {
	u := NewUnicode(false)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			script, ok := u.Script('Ж')
			assert.True(t, ok)
			assert.Equal(t, "Cyrillic", script)
		}()
	}
	wg.Wait()
}
