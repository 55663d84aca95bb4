package optimize

import "fmt"

// OptimizationError represents a failed optimization call: transport failure,
// an empty reply, or a reply that is not a valid resume record.
type OptimizationError struct {
	Message string
	Cause   error
}

func (e *OptimizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("optimization error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("optimization error: %s", e.Message)
}

func (e *OptimizationError) Unwrap() error {
	return e.Cause
}
