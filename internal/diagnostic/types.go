package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Report holds all findings collected during plan resolution and generation.
type Report struct {
	Errors   []Finding
	Warnings []Finding
	Infos    []Finding
}

// Finding represents a single diagnostic message.
type Finding struct {
	// Severity of the finding.
	Severity Severity
	// Code is a unique identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Table identifies which message table this relates to (if any).
	Table string
	// Path identifies which file this relates to (if any).
	Path string
	// Suggestions are likely intended names (if any).
	Suggestions []string
}

// Severity represents the severity level of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add buckets a finding by its severity.
func (r *Report) Add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Infos = append(r.Infos, f)
	}
}

// AddError adds an error finding.
func (r *Report) AddError(code, message, table, path string) {
	r.Errors = append(r.Errors, Finding{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Table:    table,
		Path:     path,
	})
}

// AddWarning adds a warning finding.
func (r *Report) AddWarning(code, message, table, path string) {
	r.Warnings = append(r.Warnings, Finding{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Table:    table,
		Path:     path,
	})
}

// AddInfo adds an info finding.
func (r *Report) AddInfo(code, message, table, path string) {
	r.Infos = append(r.Infos, Finding{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Table:    table,
		Path:     path,
	})
}

// HasErrors returns true if there are any error findings.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Merge merges another Report instance into this one.
func (r *Report) Merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Infos = append(r.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error from all error findings, or nil if valid.
func (r *Report) Error() error {
	if r.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range r.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted finding string.
func (f Finding) String() string {
	var prefix []string
	if f.Table != "" {
		prefix = append(prefix, "["+f.Table+"]")
	}

	if f.Path != "" {
		prefix = append(prefix, f.Path)
	}

	msg := f.Message
	if f.Code != "" {
		msg = fmt.Sprintf("[%s] %s", f.Code, msg)
	}

	if len(f.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(f.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
