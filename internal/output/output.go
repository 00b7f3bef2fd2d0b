// Package output provides styled terminal output for the nativekit CLI.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bannerStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("green")).
			Padding(0, 2)

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// Called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
func Success(msg string) {
	fmt.Println(successStyle.Render("🌱 " + msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✖ " + msg))
}

// Info prints a status update in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ " + msg))
}

// Step prints an indented sub-item in gray. Use for actionable next steps.
//
// Example:
//
//	output.Step("npm install")
//	output.Step("npm run ios")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}

// Banner prints a bordered headline message. Used for the end-of-run summary.
func Banner(msg string) {
	fmt.Println(bannerStyle.Render(msg))
}
