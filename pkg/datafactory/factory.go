package datafactory

import (
	"fmt"
	"math/rand/v2"

	"edgedata/pkg/generator"
)

// Default random length range used when a caller does not fix a length.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 30
)

// MaxRandomLength bounds the configurable length range. Valid names pad a
// random string with up to 14 runes and must stay within the 255 rune limit.
const MaxRandomLength = 241

// Settings is the configuration block the factory is built from.
type Settings struct {
	RunOneDatapoint bool   `yaml:"run_one_datapoint" json:"run_one_datapoint"`
	Seed            uint64 `yaml:"seed" json:"seed"`
	MinLength       int    `yaml:"min_length" json:"min_length"`
	MaxLength       int    `yaml:"max_length" json:"max_length"`
}

// Factory builds datasets. When oneDatapoint is set every dataset is
// truncated to its first element.
//
// A Factory owns a random source and is not safe for concurrent use.
type Factory struct {
	oneDatapoint bool
	seed         uint64
	seeded       bool
	minLength    int
	maxLength    int

	gen *generator.StringGenerator
}

type Option func(*Factory)

func WithOneDatapoint(one bool) Option {
	return func(f *Factory) {
		f.oneDatapoint = one
	}
}

// WithSeed makes every randomized value reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Factory) {
		f.seed = seed
		f.seeded = true
	}
}

// WithLengthRange sets the range random lengths are drawn from when no
// explicit length is given. Invalid ranges are ignored.
func WithLengthRange(min, max int) Option {
	return func(f *Factory) {
		if err := CheckLengthRange(min, max); err != nil {
			return
		}
		f.minLength = min
		f.maxLength = max
	}
}

// CheckLengthRange reports whether min..max is usable as a random length
// range.
func CheckLengthRange(min, max int) error {
	if min <= 0 || max < min || max > MaxRandomLength {
		return &InvalidArgumentError{
			Arg:     "length range",
			Value:   fmt.Sprintf("%d..%d", min, max),
			Allowed: []string{fmt.Sprintf("1..%d", MaxRandomLength)},
		}
	}
	return nil
}

// WithSettings applies a configuration block. A zero seed means unseeded.
func WithSettings(s Settings) Option {
	return func(f *Factory) {
		WithOneDatapoint(s.RunOneDatapoint)(f)
		if s.Seed != 0 {
			WithSeed(s.Seed)(f)
		}
		WithLengthRange(s.MinLength, s.MaxLength)(f)
	}
}

func New(opts ...Option) *Factory {
	f := &Factory{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.reset()
	return f
}

func (f *Factory) reset() {
	var src rand.Source
	if f.seeded {
		src = rand.NewPCG(f.seed, f.seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	f.gen = generator.NewStringGenerator(rand.New(src))
}

// OneDatapoint returns a copy of f with the mode set to one. The copy
// starts from f's seed, so f itself is left untouched.
func (f *Factory) OneDatapoint(one bool) *Factory {
	clone := *f
	clone.oneDatapoint = one
	clone.reset()
	return &clone
}

// IsOneDatapoint reports the factory's mode.
func (f *Factory) IsOneDatapoint() bool {
	return f.oneDatapoint
}

func (f *Factory) randomLength() int {
	return f.gen.IntN(f.minLength, f.maxLength)
}

func (f *Factory) str(t generator.StringType, length int) string {
	return f.gen.Generate(t, length)
}

// pick truncates values to their first element in one-datapoint mode.
func pick[T any](f *Factory, values []T) []T {
	if f.oneDatapoint && len(values) > 1 {
		return values[:1:1]
	}
	return values
}
