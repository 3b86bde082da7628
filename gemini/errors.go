package gemini

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion failures.
var (
	// ErrUnsupported is returned when a source construct has no Gemini
	// schema representation.
	ErrUnsupported = errors.New("gemini: unsupported source construct")

	// ErrMalformed is returned when a Gemini schema violates a structural
	// precondition of the reverse conversion.
	ErrMalformed = errors.New("gemini: malformed schema")
)

// UnsupportedError reports a source construct that cannot be expressed in
// the Gemini schema grammar. Construct names the offending check kind,
// literal type, or node kind.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("gemini: %s has no Gemini schema representation", e.Construct)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// MalformedError reports a Gemini schema that cannot be converted back into
// a source schema.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("gemini: malformed schema: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
