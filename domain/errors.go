package domain

import "fmt"

// GenerationError wraps a failed call to an upstream generative service.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed during %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ParseError reports model output that did not contain the expected
// structural markers, or a malformed structured payload inside it.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse failed: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a persona field that violates the schema.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid persona field %q: %s", e.Field, e.Reason)
}
