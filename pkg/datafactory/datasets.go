package datafactory

import (
	"edgedata/pkg/generator"
)

const (
	// invalidNameLength exceeds every name limit enforced by the product.
	invalidNameLength = 300
	// overlongLocalPart plus "@example.com" exceeds the 60 rune email limit.
	overlongLocalPart = 49
)

// GenerateStrings returns one random string per string type, in canonical
// order, skipping excluded types. All strings share one length: length when
// positive, otherwise a random length from the factory's range.
func (f *Factory) GenerateStrings(length int, exclude ...generator.StringType) []string {
	if length <= 0 {
		length = f.randomLength()
	}

	skip := make(map[generator.StringType]bool, len(exclude))
	for _, t := range exclude {
		skip[t] = true
	}

	var values []string
	for _, t := range generator.StringTypes {
		if skip[t] {
			continue
		}
		values = append(values, f.str(t, length))
	}
	return pick(f, values)
}

// ValidData returns one value per string type, each acceptable as a name
// or description.
func (f *Factory) ValidData() []string {
	return pick(f, f.validData(InterfaceDefault))
}

// ValidDataFor is ValidData for a given interface. The UI renders markup,
// so the HTML entry is left out for InterfaceUI.
func (f *Factory) ValidDataFor(iface Interface) ([]string, error) {
	if !iface.valid() {
		return nil, &InvalidArgumentError{Arg: "interface", Value: iface.String(), Allowed: interfaceNames}
	}
	return pick(f, f.validData(iface)), nil
}

func (f *Factory) validData(iface Interface) []string {
	values := []string{
		f.str(generator.TypeAlphanumeric, f.gen.IntN(1, 255)),
		f.str(generator.TypeAlpha, f.gen.IntN(1, 255)),
		f.str(generator.TypeCJK, f.gen.IntN(1, 85)),
		f.str(generator.TypeLatin1, f.gen.IntN(1, 255)),
		f.str(generator.TypeNumeric, f.gen.IntN(1, 255)),
		f.str(generator.TypeUTF8, f.gen.IntN(1, 85)),
	}
	if iface != InterfaceUI {
		values = append(values, f.str(generator.TypeHTML, f.gen.IntN(1, 85)))
	}
	return values
}

// InvalidNames returns over-long names, one per string type.
func (f *Factory) InvalidNames() []string {
	return pick(f, f.invalidNames())
}

func (f *Factory) invalidNames() []string {
	return []string{
		f.str(generator.TypeAlphanumeric, invalidNameLength),
		f.str(generator.TypeAlpha, invalidNameLength),
		f.str(generator.TypeCJK, invalidNameLength),
		f.str(generator.TypeHTML, invalidNameLength),
		f.str(generator.TypeLatin1, invalidNameLength),
		f.str(generator.TypeNumeric, invalidNameLength),
		f.str(generator.TypeUTF8, invalidNameLength),
	}
}

// InvalidValues returns values no text field should accept: empty,
// whitespace-only and over-long. The UI trims tabs before validating, so
// the tab entry is left out for InterfaceUI.
func (f *Factory) InvalidValues(iface Interface) ([]string, error) {
	if !iface.valid() {
		return nil, &InvalidArgumentError{Arg: "interface", Value: iface.String(), Allowed: interfaceNames}
	}

	values := []string{"", " "}
	if iface != InterfaceUI {
		values = append(values, "\t")
	}
	values = append(values, f.invalidNames()...)
	return pick(f, values), nil
}

func (f *Factory) InvalidEmails() []string {
	return pick(f, []string{
		"foreman@",
		"@foreman",
		"@",
		"Abc.example.com",
		"A@b@c@example.com",
		"email@example..com",
		f.str(generator.TypeAlpha, overlongLocalPart) + "@example.com",
		f.str(generator.TypeAlphanumeric, overlongLocalPart) + "@example.com",
		f.str(generator.TypeNumeric, overlongLocalPart) + "@example.com",
		"s p a c e s@example.com",
	})
}

// InvalidIDs mixes a non-numeric string, nil, the empty string and a
// negative integer.
func (f *Factory) InvalidIDs() []any {
	return pick(f, []any{
		f.str(generator.TypeAlpha, f.randomLength()),
		nil,
		"",
		-1,
	})
}

func (f *Factory) ValidEmails() []string {
	return pick(f, []string{
		f.str(generator.TypeAlpha, 10) + "@example.com",
		f.str(generator.TypeAlphanumeric, 10) + "@example.com",
		f.str(generator.TypeNumeric, 10) + "@example.com",
		f.str(generator.TypeAlphanumeric, 6) + "+" + f.str(generator.TypeAlphanumeric, 6) + "@example.com",
		f.str(generator.TypeAlpha, 6) + "." + f.str(generator.TypeAlpha, 6) + "@example.com",
		`"():;"@example.com`,
		"!#$%&*+-/=?^`{|}~@example.com",
		f.str(generator.TypeUTF8, 10) + "@example.com",
	})
}

func (f *Factory) ValidNames() []string {
	return pick(f, []string{
		f.str(generator.TypeAlpha, 1),
		f.str(generator.TypeAlpha, 5),
		f.str(generator.TypeAlpha, 255),
		f.str(generator.TypeAlpha, 4) + "-" + f.str(generator.TypeAlpha, 4),
		f.str(generator.TypeAlpha, 4) + "." + f.str(generator.TypeAlpha, 4),
		"նոր օգտվող-" + f.str(generator.TypeAlpha, 2),
		"新用戶-" + f.str(generator.TypeAlpha, 2),
		"новый пользователь-" + f.str(generator.TypeAlpha, 2),
		"uusi käyttäjä-" + f.str(generator.TypeAlpha, 2),
		"νέος χρήστης-" + f.str(generator.TypeAlpha, 2),
		"foo@!#$^&*( ) " + f.str(generator.TypeUTF8, f.randomLength()),
		"<blink>" + f.str(generator.TypeAlpha, 2) + "</blink>",
		`bar+{}|"?hi ` + f.str(generator.TypeUTF8, f.randomLength()),
		" " + f.str(generator.TypeUTF8, f.randomLength()),
		f.str(generator.TypeUTF8, f.randomLength()) + " ",
	})
}

func (f *Factory) ValidUsernames() []string {
	return pick(f, []string{
		f.str(generator.TypeAlphanumeric, f.gen.IntN(1, 50)),
		f.str(generator.TypeAlpha, 10) + "@example.com",
		f.str(generator.TypeAlpha, 4) + "_" + f.str(generator.TypeAlpha, 4) + "." + f.str(generator.TypeAlpha, 4) + "-" + f.str(generator.TypeNumeric, 2),
		f.str(generator.TypeUTF8, f.gen.IntN(1, 50)),
	})
}

// ValidLabels stays inside the label-safe charset [A-Za-z0-9_-].
func (f *Factory) ValidLabels() []string {
	return pick(f, []string{
		f.str(generator.TypeAlpha, f.gen.IntN(1, 128)),
		f.str(generator.TypeAlphanumeric, 4) + "_" + f.str(generator.TypeAlphanumeric, 4) + "-" + f.str(generator.TypeNumeric, 4),
	})
}

func (f *Factory) ValidEnvironments() []string {
	return pick(f, []string{
		f.str(generator.TypeAlpha, f.randomLength()),
		f.str(generator.TypeAlphanumeric, f.randomLength()),
		f.str(generator.TypeAlpha, 4) + "_" + f.str(generator.TypeNumeric, 4),
	})
}
