package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidData is matched by every validation failure raised by a record setter.
var ErrInvalidData = errors.New("invalid data")

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("setting %s failed: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidData) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidData
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
