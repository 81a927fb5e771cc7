// Package export captures a rendered resume and assembles it into a
// fixed-page-size PDF artifact.
package export

import "fmt"

// ValidationError indicates a required personal info field was missing at
// export time. It is raised before any off-screen resources are created.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// CaptureError represents a rasterization failure: a missing rendered root,
// a browser capture exception, or an undecodable bitmap. Off-screen
// resources are always cleaned up before it is returned.
type CaptureError struct {
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capture error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("capture error: %s", e.Message)
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}
