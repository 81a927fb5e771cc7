// Package render projects a canonical resume document into an HTML visual
// tree through one of a fixed set of interchangeable template strategies.
package render

import "fmt"

// TemplateError represents an error parsing or executing a template.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %s: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template %s: %s", e.Template, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
