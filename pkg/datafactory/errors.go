package datafactory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("datafactory: invalid argument")

	// ErrUnknownDataset is returned when a dataset name is not registered.
	ErrUnknownDataset = errors.New("datafactory: unknown dataset")
)

// InvalidArgumentError reports an argument outside its enumerated domain.
type InvalidArgumentError struct {
	Arg   string
	Value string
	// Allowed lists the accepted values, if the domain is enumerable.
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Arg, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: valid values are %v", e.Arg, e.Value, e.Allowed)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
