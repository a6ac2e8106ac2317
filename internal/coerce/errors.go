package coerce

import (
	"fmt"
	"strings"
)

// TypeMismatchError reports a raw JSON value that satisfied none of the
// expected shapes. Callers should use [errors.As] to match against it.
type TypeMismatchError struct {
	// Value is the offending raw value as produced by the JSON decoder.
	Value any

	// Expected lists the names of the shapes that were attempted, in the
	// order they were tried.
	Expected []string

	// causes holds the failure of each attempted shape, aligned with
	// Expected. Exposed through Unwrap only.
	causes []error
}

func (e *TypeMismatchError) Error() string {
	if len(e.Expected) == 1 {
		return fmt.Sprintf("value %v must be %s", e.Value, e.Expected[0])
	}
	return fmt.Sprintf("value %v must be one of [%s]", e.Value, strings.Join(e.Expected, ", "))
}

// Unwrap exposes the per-alternative failures so that a nested cause,
// such as an indexed list element mismatch, stays matchable with
// [errors.As] and [errors.Is].
func (e *TypeMismatchError) Unwrap() []error {
	return e.causes
}

// FieldError attaches the name of the config field whose value failed its
// check chain, so diagnostics identify the exact field rather than a generic
// "invalid config".
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
