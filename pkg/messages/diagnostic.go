// Package messages provides coded, severity-leveled diagnostics and the
// catalog that produces them. Every filesystem and repository operation
// reports through a Diagnostic rather than a raw error so the CLI can
// style and log them uniformly.
package messages

import (
	"fmt"
	"strings"
)

// Severity mirrors the standard log levels.
type Severity int

const (
	SeverityDebug    Severity = 10
	SeverityInfo     Severity = 20
	SeverityWarning  Severity = 30
	SeverityError    Severity = 40
	SeverityCritical Severity = 50
)

// severityNames maps catalog severity labels to levels. Unknown labels
// degrade to INFO.
var severityNames = map[string]Severity{
	"DEBUG":    SeverityDebug,
	"INFO":     SeverityInfo,
	"WARNING":  SeverityWarning,
	"ERROR":    SeverityError,
	"CRITICAL": SeverityCritical,
}

// SeverityFromName returns the level for a catalog label, INFO when the
// label is unknown.
func SeverityFromName(name string) Severity {
	if s, ok := severityNames[name]; ok {
		return s
	}
	return SeverityInfo
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "INFO"
	}
}

// Diagnostic is one coded, human-readable message. Instances are built
// fresh by the catalog on every lookup and are immutable afterwards.
type Diagnostic struct {
	Code     int
	Severity Severity
	Text     string
	Extra    string
}

// extraSlot is the interpolation slot in catalog text templates. When a
// lookup carries no extra detail, the quoted slot and its trailing space
// are stripped instead.
const (
	extraSlot     = "{}"
	extraArtifact = "'{}' "
)

// newDiagnostic interpolates the catalog text template with the optional
// extra detail.
func newDiagnostic(code int, severity Severity, text, extra string) *Diagnostic {
	if extra != "" {
		text = strings.ReplaceAll(text, extraSlot, extra)
	} else {
		text = strings.ReplaceAll(text, extraArtifact, "")
	}
	return &Diagnostic{
		Code:     code,
		Severity: severity,
		Text:     text,
		Extra:    extra,
	}
}

// WithDetail returns a copy of the diagnostic with detail appended to the
// text, used to carry underlying OS error strings.
func (d *Diagnostic) WithDetail(detail string) *Diagnostic {
	if detail == "" {
		return d
	}
	dup := *d
	dup.Text = dup.Text + " " + detail
	return &dup
}

// String renders the diagnostic the way the CLI logs it.
func (d *Diagnostic) String() string {
	return fmt.Sprintf("(%d,%s,%s)", d.Code, d.Severity, d.Text)
}
