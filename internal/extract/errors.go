package extract

import "fmt"

// ExtractionError represents a failure to recover text from a resume file.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
