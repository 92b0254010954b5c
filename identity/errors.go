package identity

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField matches any MissingRequiredFieldError via errors.Is.
var ErrMissingRequiredField = errors.New("missing required profile field")

// MissingRequiredFieldError is returned when the provider profile lacks a field the identity cannot exist without.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingRequiredField.Error(), e.Field)
}

// Is reports whether target is ErrMissingRequiredField.
func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
