package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"edgedata/pkg/validator"
)

// Value is one exported dataset element with its equivalence classes.
type Value struct {
	Value   any      `json:"value" yaml:"value"`
	Classes []string `json:"classes" yaml:"classes"`
}

type Dataset struct {
	Name   string  `json:"name" yaml:"name"`
	Expect string  `json:"expect" yaml:"expect"`
	Values []Value `json:"values" yaml:"values"`
}

func NewDataset(name, expect string, values []any) Dataset {
	ds := Dataset{Name: name, Expect: expect, Values: make([]Value, len(values))}
	for i, v := range values {
		ds.Values[i] = Value{Value: v, Classes: validator.Classes(v)}
	}
	return ds
}

// ExportDatasets encodes datasets. The text format prints one value per
// line using Go quoting, so whitespace-only values stay visible.
func ExportDatasets(sets []Dataset, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(sets, "", "  ")
	case FormatYAML:
		return yaml.Marshal(sets)
	case FormatText, "":
		var b bytes.Buffer
		for _, ds := range sets {
			for _, v := range ds.Values {
				if s, ok := v.Value.(string); ok {
					fmt.Fprintf(&b, "%q\n", s)
				} else {
					fmt.Fprintf(&b, "%v\n", v.Value)
				}
			}
		}
		return b.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
