package datafactory

import "fmt"

// Interface is the product surface a dataset is aimed at. The zero value,
// InterfaceDefault, means no particular surface and behaves like API and CLI.
type Interface int

const (
	InterfaceDefault Interface = iota
	InterfaceAPI
	InterfaceCLI
	InterfaceUI
)

var interfaceNames = []string{"api", "cli", "ui"}

func (i Interface) String() string {
	switch i {
	case InterfaceDefault:
		return "default"
	case InterfaceAPI:
		return "api"
	case InterfaceCLI:
		return "cli"
	case InterfaceUI:
		return "ui"
	default:
		return fmt.Sprintf("Interface(%d)", int(i))
	}
}

func (i Interface) valid() bool {
	return i >= InterfaceDefault && i <= InterfaceUI
}

// ParseInterface accepts exactly "api", "cli" or "ui". Matching is case
// sensitive and surrounding whitespace is not trimmed.
func ParseInterface(s string) (Interface, error) {
	switch s {
	case "api":
		return InterfaceAPI, nil
	case "cli":
		return InterfaceCLI, nil
	case "ui":
		return InterfaceUI, nil
	}
	return InterfaceDefault, &InvalidArgumentError{Arg: "interface", Value: s, Allowed: interfaceNames}
}
