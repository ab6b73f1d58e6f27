package datafactory

import (
	"fmt"

	"edgedata/pkg/validator"
)

// Expectation is how a target is expected to treat a dataset's values.
type Expectation int

const (
	ExpectAccept Expectation = iota
	ExpectReject
)

func (e Expectation) String() string {
	if e == ExpectReject {
		return "reject"
	}
	return "accept"
}

// DatasetInfo describes a registered dataset.
type DatasetInfo struct {
	Name        string
	Description string
	Category    validator.Category
	Expect      Expectation

	build func(f *Factory, iface Interface) ([]any, error)
}

func strs(fn func(*Factory) []string) func(*Factory, Interface) ([]any, error) {
	return func(f *Factory, _ Interface) ([]any, error) {
		return toAny(fn(f)), nil
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var registry = []DatasetInfo{
	{
		Name:        "strings",
		Description: "one random string per string type",
		Category:    validator.CategoryName,
		Expect:      ExpectAccept,
		build:       strs(func(f *Factory) []string { return f.GenerateStrings(0) }),
	},
	{
		Name:        "valid-data",
		Description: "values accepted as a name or description",
		Category:    validator.CategoryName,
		Expect:      ExpectAccept,
		build: func(f *Factory, iface Interface) ([]any, error) {
			values, err := f.ValidDataFor(iface)
			return toAny(values), err
		},
	},
	{
		Name:        "valid-names",
		Description: "accepted names, including unicode and markup",
		Category:    validator.CategoryName,
		Expect:      ExpectAccept,
		build:       strs((*Factory).ValidNames),
	},
	{
		Name:        "valid-emails",
		Description: "accepted email addresses",
		Category:    validator.CategoryEmail,
		Expect:      ExpectAccept,
		build:       strs((*Factory).ValidEmails),
	},
	{
		Name:        "valid-usernames",
		Description: "accepted user logins",
		Category:    validator.CategoryUsername,
		Expect:      ExpectAccept,
		build:       strs((*Factory).ValidUsernames),
	},
	{
		Name:        "valid-labels",
		Description: "labels within the label-safe charset",
		Category:    validator.CategoryLabel,
		Expect:      ExpectAccept,
		build:       strs((*Factory).ValidLabels),
	},
	{
		Name:        "valid-environments",
		Description: "accepted lifecycle environment names",
		Category:    validator.CategoryEnvironment,
		Expect:      ExpectAccept,
		build:       strs((*Factory).ValidEnvironments),
	},
	{
		Name:        "invalid-names",
		Description: "names over the length limit",
		Category:    validator.CategoryName,
		Expect:      ExpectReject,
		build:       strs((*Factory).InvalidNames),
	},
	{
		Name:        "invalid-emails",
		Description: "malformed or over-long email addresses",
		Category:    validator.CategoryEmail,
		Expect:      ExpectReject,
		build:       strs((*Factory).InvalidEmails),
	},
	{
		Name:        "invalid-values",
		Description: "empty, blank and over-long values",
		Category:    validator.CategoryName,
		Expect:      ExpectReject,
		build: func(f *Factory, iface Interface) ([]any, error) {
			values, err := f.InvalidValues(iface)
			if err != nil {
				return nil, err
			}
			return toAny(values), nil
		},
	},
	{
		Name:        "invalid-ids",
		Description: "non-numeric, null, empty and negative ids",
		Category:    validator.CategoryID,
		Expect:      ExpectReject,
		build: func(f *Factory, _ Interface) ([]any, error) {
			return f.InvalidIDs(), nil
		},
	},
}

// Datasets lists every registered dataset in a stable order.
func Datasets() []DatasetInfo {
	out := make([]DatasetInfo, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the dataset registered under name.
func Lookup(name string) (DatasetInfo, error) {
	for _, info := range registry {
		if info.Name == name {
			return info, nil
		}
	}
	return DatasetInfo{}, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
}

// Dataset builds the named dataset. iface only matters for valid-data and
// invalid-values.
func (f *Factory) Dataset(name string, iface Interface) ([]any, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return info.build(f, iface)
}
