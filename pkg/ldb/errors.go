package ldb

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload wraps errors from a payload that is not valid JSON.
var ErrMalformedPayload = errors.New("malformed board payload")

// SchemaViolationError is returned when a required key is missing from the
// payload or holds a value of the wrong JSON type.
type SchemaViolationError struct {
	Key    string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("schema violation: required key %q is missing", e.Key)
	}

	return fmt.Sprintf("schema violation: key %q %s", e.Key, e.Reason)
}

// MalformedTimeError is returned when a clock field is neither HH:MM nor a
// recognised status sentinel.
type MalformedTimeError struct {
	Field string
	Value string
}

func (e *MalformedTimeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed time %q", e.Value)
	}

	return fmt.Sprintf("malformed time %q in %s", e.Value, e.Field)
}

func missingKey(key string) error {
	return &SchemaViolationError{Key: key}
}

// withField labels a MalformedTimeError with the JSON key it came from.
func withField(err error, field string) error {
	if timeErr, ok := err.(*MalformedTimeError); ok {
		timeErr.Field = field
	}

	return err
}
