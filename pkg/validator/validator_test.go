package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"single letter", "a", true},
		{"unicode", "新用戶-ab", true},
		{"leading space", " name", true},
		{"max length", strings.Repeat("x", MaxNameLength), true},
		{"empty", "", false},
		{"space", " ", false},
		{"tab", "\t", false},
		{"too long", strings.Repeat("x", MaxNameLength+1), false},
		{"too long multibyte", strings.Repeat("é", MaxNameLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@example.com", true},
		{"a+tag@example.com", true},
		{`"():;"@example.com`, true},
		{"ελληνικά@example.com", true},
		{"foreman@", false},
		{"@foreman", false},
		{"@", false},
		{"Abc.example.com", false},
		{"A@b@c@example.com", false},
		{"email@example..com", false},
		{"dot..dot@example.com", false},
		{"s p a c e s@example.com", false},
		{"user@localhost", false},
		{strings.Repeat("a", 49) + "@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.input))
		})
	}
}

func TestValidUsernameLabelEnvironment(t *testing.T) {
	assert.True(t, ValidUsername("admin"))
	assert.True(t, ValidUsername("first.last@example.com"))
	assert.False(t, ValidUsername(""))
	assert.False(t, ValidUsername("with space"))
	assert.False(t, ValidUsername(strings.Repeat("u", MaxUsernameLength+1)))

	assert.True(t, ValidLabel("my_label-1"))
	assert.False(t, ValidLabel("my label"))
	assert.False(t, ValidLabel("étiquette"))
	assert.False(t, ValidLabel(strings.Repeat("l", MaxLabelLength+1)))

	assert.True(t, ValidEnvironment("Library_2"))
	assert.False(t, ValidEnvironment("dev-env"))
	assert.False(t, ValidEnvironment(""))
}

func TestValidID(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"positive int", 42, true},
		{"positive int64", int64(7), true},
		{"numeric string", "15", true},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"urn uuid", "urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"negative", -1, false},
		{"zero string", "0", false},
		{"empty", "", false},
		{"nil", nil, false},
		{"alpha", "abcdef", false},
		{"float", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.input))
		})
	}
}

func TestCheck(t *testing.T) {
	assert.True(t, Check(CategoryName, "name"))
	assert.False(t, Check(CategoryName, 5))
	assert.True(t, Check(CategoryID, 5))
	assert.False(t, Check(Category(99), "x"))
	assert.Equal(t, "environment", CategoryEnvironment.String())
}

func TestIsLatin1(t *testing.T) {
	assert.True(t, IsLatin1("Ãñëÿ"))
	assert.False(t, IsLatin1("新用戶"))
	assert.False(t, IsLatin1("ελληνικά"))
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{"nil", nil, []string{ClassNull}},
		{"int", -1, []string{ClassInteger}},
		{"empty", "", []string{ClassEmpty}},
		{"blank", " \t", []string{ClassBlank}},
		{"numeric", "0123", []string{ClassNumeric}},
		{"padded ascii", " abc", []string{ClassPadded, ClassASCII}},
		{"latin1", "Ãñë", []string{ClassLatin1}},
		{"cjk", "新用戶", []string{ClassCJK}},
		{"greek", "νέος", []string{ClassUnicode}},
		{"html", "<b>x</b>", []string{ClassASCII, ClassHTML}},
		{"overlong", strings.Repeat("a", 300), []string{ClassASCII, ClassOverlong}},
		{"float", 1.5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classes(tt.input))
		})
	}
}
