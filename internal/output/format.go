// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/service"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [ ]  {TEXT}\n", with [x] for completed tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s  %s\n", num, Checkbox(task.Completed), NormalizeText(task.Text))
}

// FormatTaskWithID is FormatTask followed by the remote id in brackets.
func FormatTaskWithID(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s  %s  (%s)\n", num, Checkbox(task.Completed), NormalizeText(task.Text), task.ID)
}

// Checkbox renders a completion flag.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// NormalizeText normalizes task text for single-line display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only text becomes "(empty)"
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(empty)"
	}
	return text
}
