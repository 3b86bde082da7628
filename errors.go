package genval

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation failures.
var (
	// ErrWrongType is returned when a value has the wrong JSON type.
	ErrWrongType = errors.New("genval: value has wrong type")

	// ErrCheckFailed is returned when a string check rejects a value.
	ErrCheckFailed = errors.New("genval: string check failed")

	// ErrOutOfRange is returned when a numeric or length bound is violated.
	ErrOutOfRange = errors.New("genval: value out of range")

	// ErrMissingField is returned when a required object field is absent.
	ErrMissingField = errors.New("genval: missing required field")

	// ErrNoMatch is returned when no enum value, literal, or union branch
	// accepts the value.
	ErrNoMatch = errors.New("genval: no matching value")
)

// ValidationError reports why a value was rejected by a schema.
type ValidationError struct {
	Path    string // path to the offending value, empty at the root
	Message string // human-readable rejection reason
	Err     error  // sentinel category
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("genval: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("genval: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
