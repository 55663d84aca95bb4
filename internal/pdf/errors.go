package pdf

import "fmt"

// RenderError represents a page-rendering failure: bad block content, an
// unwritable destination, or an underlying document build error. The caller
// receives it whole; no partial file is left at the destination.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
