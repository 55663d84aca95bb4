package layout

import "fmt"

// ComposeError represents a record that cannot be composed into blocks at all.
// Malformed sections degrade within their renderer instead of raising this.
type ComposeError struct {
	Message string
	Cause   error
}

func (e *ComposeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compose error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compose error: %s", e.Message)
}

func (e *ComposeError) Unwrap() error {
	return e.Cause
}
