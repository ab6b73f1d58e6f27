package utils

import (
	"github.com/pterm/pterm"
)

var (
	// Logger instances
	Info    = pterm.Info
	Success = pterm.Success
	Warning = pterm.Warning
	Error   = pterm.Error
	Debug   = pterm.Debug
)

// InitLogger toggles debug output and, for scripted use, colour.
func InitLogger(debugMode, noColor bool) {
	if debugMode {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
	if noColor {
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}
}
