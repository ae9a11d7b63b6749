package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Print helpers that ignore (n, err) to satisfy linters.
func Wprintf(w io.Writer, format string, a ...any)        { _, _ = fmt.Fprintf(w, format, a...) }
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

var (
	errorLabel   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// Error and Warning render a "label: msg" line with a colored label.
// Styling is dropped when the output is not a terminal.
func Error(msg string) string   { return errorLabel.Render("error") + ": " + msg }
func Warning(msg string) string { return warningLabel.Render("warning") + ": " + msg }
