package govalue

import "fmt"

// ConvertError represents an error converting between Go values and
// tree nodes.
type ConvertError struct {
	FieldPath string // path to the offending value (e.g. "person.friends.0")
	Message   string
	Err       error
}

func (e *ConvertError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("convert error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("convert error: %s", e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
