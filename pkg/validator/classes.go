package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Equivalence classes reported by Classes.
const (
	ClassNull     = "null"
	ClassInteger  = "integer"
	ClassEmpty    = "empty"
	ClassBlank    = "blank"
	ClassPadded   = "padded"
	ClassNumeric  = "numeric"
	ClassASCII    = "ascii"
	ClassLatin1   = "latin1"
	ClassCJK      = "cjk"
	ClassUnicode  = "unicode"
	ClassHTML     = "html"
	ClassOverlong = "overlong"
)

var htmlTagRegex = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9]*>`)

// Classes names the equivalence classes value falls into, in a fixed order.
func Classes(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{ClassNull}
	case int, int64:
		return []string{ClassInteger}
	case string:
		return stringClasses(v)
	default:
		return nil
	}
}

func stringClasses(s string) []string {
	if s == "" {
		return []string{ClassEmpty}
	}
	if strings.TrimSpace(s) == "" {
		return []string{ClassBlank}
	}

	var classes []string
	if strings.TrimSpace(s) != s {
		classes = append(classes, ClassPadded)
	}

	ascii, numeric, cjk := true, true, false
	for _, r := range s {
		if r > unicode.MaxASCII {
			ascii = false
		}
		if r < '0' || r > '9' {
			numeric = false
		}
		if unicode.Is(unicode.Han, r) {
			cjk = true
		}
	}

	switch {
	case numeric:
		classes = append(classes, ClassNumeric)
	case ascii:
		classes = append(classes, ClassASCII)
	case IsLatin1(s):
		classes = append(classes, ClassLatin1)
	case cjk:
		classes = append(classes, ClassCJK)
	default:
		classes = append(classes, ClassUnicode)
	}

	if htmlTagRegex.MatchString(s) {
		classes = append(classes, ClassHTML)
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		classes = append(classes, ClassOverlong)
	}
	return classes
}
