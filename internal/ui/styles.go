// Package ui renders suggestion lists, prompts and status lines.
// Suggestion output goes to stdout so it can be piped; everything
// decorative stays on stderr.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette, ANSI 256 so it follows the user's theme.
var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Color helpers. Green marks commands and success, red failure, yellow
// warnings, cyan headings, HiBlack secondary detail.

func Green(s string) string {
	return greenStyle.Render(s)
}

func Red(s string) string {
	return redStyle.Render(s)
}

func Yellow(s string) string {
	return yellowStyle.Render(s)
}

func Cyan(s string) string {
	return cyanStyle.Render(s)
}

func HiBlack(s string) string {
	return dimStyle.Render(s)
}

// Formatted variants of the color helpers.

func Greenf(format string, a ...interface{}) string {
	return Green(fmt.Sprintf(format, a...))
}

func Redf(format string, a ...interface{}) string {
	return Red(fmt.Sprintf(format, a...))
}

func Yellowf(format string, a ...interface{}) string {
	return Yellow(fmt.Sprintf(format, a...))
}

func Cyanf(format string, a ...interface{}) string {
	return Cyan(fmt.Sprintf(format, a...))
}

func HiBlackf(format string, a ...interface{}) string {
	return HiBlack(fmt.Sprintf(format, a...))
}
