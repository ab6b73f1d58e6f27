package utils

import "github.com/pterm/pterm"

// PrintCompactBanner prints a one-line header
func PrintCompactBanner(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Printf(" edgedata v%s ", version)
	pterm.Println()
}

// PrintMismatch prints a value the target treated against expectation.
func PrintMismatch(dataset string, value string, status int) {
	pterm.NewStyle(pterm.FgRed, pterm.Bold).Printf("[MISMATCH] ")
	pterm.Printf("%s %q (Status: %d)\n", dataset, value, status)
}
