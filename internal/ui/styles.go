// Package ui holds the shared lipgloss styles used by every aimcp command,
// so setup, doctor, and status render status lines the same way.
//
// Colors are disabled for non-TTY output and when NO_COLOR is set
// (https://no-color.org/).
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(colorProfile())
}

// colorProfile picks the termenv profile for the current terminal.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return termenv.ANSI256
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

var (
	// Title is used for command headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")) // Cyan

	// Success is used for success messages and passing checks.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	// Warning is used for non-fatal problems.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	// Error is used for failures.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	// Dim is used for hints and secondary information.
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))
)

// Separator renders a horizontal divider of the given width.
func Separator(width int) string {
	if width <= 0 {
		width = 50
	}
	return Dim.Render(strings.Repeat("=", width))
}

// OK, Warn, and Fail are the status symbols used by doctor and status output.
func OK() string   { return Success.Render("[OK]") }
func Warn() string { return Warning.Render("[!!]") }
func Fail() string { return Error.Render("[FAIL]") }
