// Package style renders diagnostics for the terminal. Severity picks
// the color; color is disabled automatically when stdout is not a
// terminal or the environment cannot display it.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/result"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	// PathStyle marks file and directory paths inside messages.
	PathStyle = lipgloss.NewStyle().Italic(true)

	// MutedStyle is used for codes and secondary detail.
	MutedStyle = lipgloss.NewStyle().Faint(true)
)

// SeverityStyle returns the pterm style for a severity level.
func SeverityStyle(s messages.Severity) *pterm.Style {
	switch s {
	case messages.SeverityDebug:
		return pterm.NewStyle(pterm.FgGray)
	case messages.SeverityWarning:
		return pterm.NewStyle(pterm.FgYellow)
	case messages.SeverityError:
		return pterm.NewStyle(pterm.FgRed)
	case messages.SeverityCritical:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGreen)
	}
}

// Renderer formats diagnostics and outcomes as display lines.
type Renderer struct {
	color bool
}

// NewRenderer detects terminal capabilities and returns a renderer.
func NewRenderer() *Renderer {
	color := isatty.IsTerminal(os.Stdout.Fd()) &&
		termenv.EnvColorProfile() != termenv.Ascii
	return &Renderer{color: color}
}

// Diagnostic renders one diagnostic as a single display line.
func (r *Renderer) Diagnostic(d *messages.Diagnostic) string {
	if d == nil {
		return ""
	}
	label := fmt.Sprintf("%-8s", d.Severity.String())
	code := fmt.Sprintf("[%d]", d.Code)

	if !r.color {
		return fmt.Sprintf("%s %s %s", label, code, d.Text)
	}
	return fmt.Sprintf("%s %s %s",
		SeverityStyle(d.Severity).Sprint(label),
		MutedStyle.Render(code),
		d.Text)
}

// Outcome renders whichever diagnostic the outcome carries; empty
// outcomes render as the empty string.
func (r *Renderer) Outcome(o result.Outcome) string {
	return r.Diagnostic(o.Diagnostic())
}
