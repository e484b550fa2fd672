package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"svg-sprite-generator/internal/common"
)

// Diagnostics holds all diagnostics of a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single diagnostic message.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// Entry identifies the manifest icon entry (if any), e.g. "icons[2]".
	Entry string
	// Field identifies the field within the entry (if any).
	Field string
}

// Severity is the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, entry, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Entry:    entry,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, entry, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Entry:    entry,
		Field:    field,
	})
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Err returns all error diagnostics joined into one error, or nil if valid.
func (d *Diagnostics) Err() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, len(d.Errors))
	for i, e := range d.Errors {
		errs[i] = errors.New(e.String())
	}

	return errors.Join(errs...)
}

// String formats the diagnostic as "entry.field: [code] message".
func (d Diagnostic) String() string {
	var loc []string
	if d.Entry != "" {
		loc = append(loc, d.Entry)
	}

	if d.Field != "" {
		loc = append(loc, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(loc) > 0 {
		return strings.Join(loc, ".") + ": " + msg
	}

	return msg
}
