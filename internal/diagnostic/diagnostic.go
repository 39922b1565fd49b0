package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity ranks a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity    Severity `yaml:"severity"`
	Code        string   `yaml:"code"`
	Message     string   `yaml:"message"`
	Application string   `yaml:"application,omitempty"`
	Parameter   string   `yaml:"parameter,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// String formats the diagnostic on one line.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Application != "" {
		fmt.Fprintf(&b, "[%s] ", d.Application)
	}

	if d.Parameter != "" {
		b.WriteString(d.Parameter)
		b.WriteString(": ")
	}

	fmt.Fprintf(&b, "%s (%s)", d.Message, d.Code)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, "; did you mean %s?", strings.Join(d.Suggestions, " or "))
	}

	return b.String()
}

// Diagnostics accumulates findings in the order they were reported.
type Diagnostics struct {
	items []Diagnostic
}

// Add appends d.
func (ds *Diagnostics) Add(d Diagnostic) {
	ds.items = append(ds.items, d)
}

// Errorf reports an error.
func (ds *Diagnostics) Errorf(code, application, parameter, format string, args ...any) {
	ds.add(Error, code, application, parameter, format, args)
}

// Warnf reports a warning.
func (ds *Diagnostics) Warnf(code, application, parameter, format string, args ...any) {
	ds.add(Warning, code, application, parameter, format, args)
}

// Infof reports an informational finding.
func (ds *Diagnostics) Infof(code, application, parameter, format string, args ...any) {
	ds.add(Info, code, application, parameter, format, args)
}

func (ds *Diagnostics) add(s Severity, code, application, parameter, format string, args []any) {
	ds.Add(Diagnostic{
		Severity:    s,
		Code:        code,
		Message:     fmt.Sprintf(format, args...),
		Application: application,
		Parameter:   parameter,
	})
}

// All returns every diagnostic.
func (ds *Diagnostics) All() []Diagnostic {
	return ds.items
}

// Filter returns the diagnostics of severity s.
func (ds *Diagnostics) Filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range ds.items {
		if d.Severity == s {
			out = append(out, d)
		}
	}

	return out
}

// HasErrors reports whether an error was reported.
func (ds *Diagnostics) HasErrors() bool {
	for _, d := range ds.items {
		if d.Severity == Error {
			return true
		}
	}

	return false
}

// Merge appends the diagnostics of other.
func (ds *Diagnostics) Merge(other *Diagnostics) {
	ds.items = append(ds.items, other.items...)
}

// Err joins the error diagnostics, or returns nil when there are none.
func (ds *Diagnostics) Err() error {
	var errs []error
	for _, d := range ds.Filter(Error) {
		errs = append(errs, errors.New(d.String()))
	}

	return errors.Join(errs...)
}
