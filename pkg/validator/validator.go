package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

// Category identifies the field a value is validated as.
type Category int

const (
	CategoryName Category = iota
	CategoryEmail
	CategoryUsername
	CategoryLabel
	CategoryEnvironment
	CategoryID
)

func (c Category) String() string {
	switch c {
	case CategoryName:
		return "name"
	case CategoryEmail:
		return "email"
	case CategoryUsername:
		return "username"
	case CategoryLabel:
		return "label"
	case CategoryEnvironment:
		return "environment"
	case CategoryID:
		return "id"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Field limits enforced by the product.
const (
	MaxNameLength        = 255
	MaxEmailLength       = 60
	MaxUsernameLength    = 60
	MaxLabelLength       = 128
	MaxEnvironmentLength = 255
)

var (
	// atext from RFC 5322 plus any unicode letter or digit.
	dotAtomRegex     = regexp.MustCompile("^[\\p{L}\\p{N}!#$%&'*+/=?^_`{|}~-]+(\\.[\\p{L}\\p{N}!#$%&'*+/=?^_`{|}~-]+)*$")
	quotedLocalRegex = regexp.MustCompile(`^"[^"\\\r\n]*"$`)
	hostnameRegex    = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+$`)
	usernameRegex    = regexp.MustCompile(`^[\p{L}\p{N}_.@-]+$`)
	labelRegex       = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	environmentRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Check reports whether value is acceptable for category c. Non-string
// values are only ever valid as IDs.
func Check(c Category, value any) bool {
	if c == CategoryID {
		return ValidID(value)
	}

	s, ok := value.(string)
	if !ok {
		return false
	}

	switch c {
	case CategoryName:
		return ValidName(s)
	case CategoryEmail:
		return ValidEmail(s)
	case CategoryUsername:
		return ValidUsername(s)
	case CategoryLabel:
		return ValidLabel(s)
	case CategoryEnvironment:
		return ValidEnvironment(s)
	default:
		return false
	}
}

// ValidName accepts 1..255 runes that are not all whitespace.
func ValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxNameLength {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func ValidEmail(s string) bool {
	if utf8.RuneCountInString(s) > MaxEmailLength {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]

	if !hostnameRegex.MatchString(domain) {
		return false
	}
	return dotAtomRegex.MatchString(local) || quotedLocalRegex.MatchString(local)
}

func ValidUsername(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxUsernameLength && usernameRegex.MatchString(s)
}

func ValidLabel(s string) bool {
	return len(s) <= MaxLabelLength && labelRegex.MatchString(s)
}

func ValidEnvironment(s string) bool {
	return len(s) <= MaxEnvironmentLength && environmentRegex.MatchString(s)
}

// ValidID accepts a positive integer, a positive decimal string or a UUID.
func ValidID(value any) bool {
	switch v := value.(type) {
	case int:
		return v > 0
	case int64:
		return v > 0
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n > 0
		}
		// Only the canonical 36 character form, uuid.Parse also takes urn and braces.
		if len(v) != 36 {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	default:
		return false
	}
}

// IsLatin1 reports whether s can be encoded as ISO-8859-1.
func IsLatin1(s string) bool {
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}
