package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// StringType is the alphabet a generated string is drawn from.
type StringType int

const (
	TypeAlpha StringType = iota
	TypeAlphanumeric
	TypeCJK
	TypeHTML
	TypeLatin1
	TypeNumeric
	TypeUTF8
)

// StringTypes lists every StringType in canonical order.
var StringTypes = []StringType{
	TypeAlpha,
	TypeAlphanumeric,
	TypeCJK,
	TypeHTML,
	TypeLatin1,
	TypeNumeric,
	TypeUTF8,
}

var typeNames = map[StringType]string{
	TypeAlpha:        "alpha",
	TypeAlphanumeric: "alphanumeric",
	TypeCJK:          "cjk",
	TypeHTML:         "html",
	TypeLatin1:       "latin1",
	TypeNumeric:      "numeric",
	TypeUTF8:         "utf8",
}

func (t StringType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("StringType(%d)", int(t))
}

// ParseStringType maps a name such as "alpha" or "cjk" to its StringType.
func ParseStringType(name string) (StringType, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown string type: %q", name)
}

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

var (
	alphaRunes        = []rune(lowerLetters + upperLetters)
	alphanumericRunes = []rune(lowerLetters + upperLetters + digits)
	numericRunes      = []rune(digits)
	latin1Runes       = runeRange(0x00C0, 0x00FF, 0x00D7, 0x00F7)
	cjkRunes          = runeRange(0x4E00, 0x9FFF)
	// Greek, Cyrillic and Armenian letters; all are unicode.IsLetter.
	utf8Runes = concatRunes(
		runeRange(0x0391, 0x03A9, 0x03A2),
		runeRange(0x03B1, 0x03C9),
		runeRange(0x0410, 0x044F),
		runeRange(0x0531, 0x0556),
	)
	htmlSpecialRunes = []rune(`<>&"'`)
	htmlTags         = []string{"a", "b", "i", "p", "em", "li", "td", "div", "span", "blink", "strong", "script"}
)

func runeRange(lo, hi rune, skip ...rune) []rune {
	out := make([]rune, 0, hi-lo+1)
Next:
	for r := lo; r <= hi; r++ {
		for _, s := range skip {
			if r == s {
				continue Next
			}
		}
		out = append(out, r)
	}
	return out
}

func concatRunes(sets ...[]rune) []rune {
	var out []rune
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// StringGenerator produces random strings of an exact rune length.
// It owns its random source and is not safe for concurrent use.
type StringGenerator struct {
	rng *rand.Rand
}

func NewStringGenerator(r *rand.Rand) *StringGenerator {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &StringGenerator{rng: r}
}

// Generate returns a string of exactly length runes drawn from t's alphabet.
// A length of zero or less yields the empty string.
func (sg *StringGenerator) Generate(t StringType, length int) string {
	if length <= 0 {
		return ""
	}

	switch t {
	case TypeAlpha:
		return sg.fromRunes(alphaRunes, length)
	case TypeAlphanumeric:
		return sg.fromRunes(alphanumericRunes, length)
	case TypeCJK:
		return sg.fromRunes(cjkRunes, length)
	case TypeHTML:
		return sg.html(length)
	case TypeLatin1:
		return sg.fromRunes(latin1Runes, length)
	case TypeNumeric:
		return sg.fromRunes(numericRunes, length)
	case TypeUTF8:
		return sg.fromRunes(utf8Runes, length)
	default:
		// Unknown types fall back to alpha, like the payload generator's default branch.
		return sg.fromRunes(alphaRunes, length)
	}
}

// IntN returns a random int in [lo, hi].
func (sg *StringGenerator) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + sg.rng.IntN(hi-lo+1)
}

func (sg *StringGenerator) fromRunes(set []rune, length int) string {
	var b strings.Builder
	b.Grow(length * 3)
	for i := 0; i < length; i++ {
		b.WriteRune(set[sg.rng.IntN(len(set))])
	}
	return b.String()
}

// html wraps alpha text in a random tag that fits within length.
func (sg *StringGenerator) html(length int) string {
	var fitting []string
	for _, tag := range htmlTags {
		// <tag>x</tag>
		if 2*len(tag)+6 <= length {
			fitting = append(fitting, tag)
		}
	}
	if len(fitting) == 0 {
		return sg.fromRunes(htmlSpecialRunes, length)
	}

	tag := fitting[sg.rng.IntN(len(fitting))]
	inner := length - (2*len(tag) + 5)
	return "<" + tag + ">" + sg.fromRunes(alphaRunes, inner) + "</" + tag + ">"
}
