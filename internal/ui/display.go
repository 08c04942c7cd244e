package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mewisme/wtf/internal/match"
)

const wrapWidth = 76

// SimpleOutput formats suggestions as a numbered list for non-TTY use.
func SimpleOutput(suggestions []match.Suggestion, showExplanations bool) string {
	var b strings.Builder

	for i, s := range suggestions {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, s.Command))
		if showExplanations && s.Explanation != "" {
			b.WriteString(fmt.Sprintf("  (%s, %s)", confidenceLabel(s.Confidence, s.Score), s.Explanation))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// PrintSuggestions writes suggestions to stdout with styling.
func PrintSuggestions(input string, suggestions []match.Suggestion, showExplanations bool) {
	fmt.Println(Cyanf("Did you mean (instead of %q):", input))
	for i, s := range suggestions {
		fmt.Printf("  %s %s", HiBlackf("%d.", i+1), Green(s.Command))
		if showExplanations {
			detail := confidenceLabel(s.Confidence, s.Score)
			if s.Explanation != "" {
				detail += " · " + s.Explanation
			}
			fmt.Printf("  %s", HiBlack(detail))
		}
		fmt.Println()
	}
}

// PrintNoSuggestions tells the user nothing matched.
func PrintNoSuggestions(input string) {
	fmt.Println(Yellowf("No fix found for %q.", input))
	fmt.Println(HiBlack(Wrap(fmt.Sprintf("Add one with: wtf add %q \"<correction>\", or enable the AI fallback with: wtf toggle-ai", input))))
}

// PrintRunning announces the command about to be executed.
func PrintRunning(command string) {
	fmt.Printf("%s %s\n", HiBlack("Running:"), Green(command))
}

// Success prints a success message
func Success(format string, a ...interface{}) {
	fmt.Println(Greenf("✓ "+format, a...))
}

// Failure prints an error message
func Failure(format string, a ...interface{}) {
	fmt.Println(Redf("✗ "+format, a...))
}

// Note prints a dimmed informational message
func Note(format string, a ...interface{}) {
	fmt.Println(HiBlackf(format, a...))
}

// Wrap wraps long text to the display width.
func Wrap(text string) string {
	return wordwrap.String(text, wrapWidth)
}

// Confirm asks a yes/no question.
func Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

// CopyToClipboard puts a command on the system clipboard.
func CopyToClipboard(command string) error {
	return clipboard.WriteAll(command)
}
