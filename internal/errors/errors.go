package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports the first invariant violation found in an
// environment spec. Validation is a pure check; the spec is never mutated
// on failure.
type ValidationError struct {
	Field      string
	Message    string
	Suggestion string
}

func (e ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field: %s)", e.Message, e.Field)
	}
	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}
	return msg
}

// DeserializationError reports a document that could not be parsed into the
// expected structure: malformed syntax, or entries missing required
// sub-fields.
type DeserializationError struct {
	Path    string
	Message string
	Err     error
}

func (e DeserializationError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("cannot parse %s", e.Path))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if len(parts) == 0 && e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e DeserializationError) Unwrap() error {
	return e.Err
}

// UserError represents a failure that should be shown to the user with
// helpful context, typically wrapping an underlying I/O error.
type UserError struct {
	Message    string
	Details    string
	Suggestion string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// WrapIO wraps a filesystem failure with the path that was being touched.
// I/O errors are never retried; they abort the current operation.
func WrapIO(operation, path string, err error) error {
	return UserError{
		Message:    fmt.Sprintf("Failed to %s %s", operation, path),
		Details:    err.Error(),
		Suggestion: "Check file permissions and that the parent directory exists",
		Err:        err,
	}
}
