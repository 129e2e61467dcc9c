package domain

import (
	"errors"
	"fmt"
)

// UserMessage is shown to end users for any validation failure.
const UserMessage = "Please enter valid numbers"

var ErrInvalidNumber = errors.New("invalid number")

// InvalidNumberError reports the field whose raw value could not be used.
type InvalidNumberError struct {
	Field string
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number for %s: %q", e.Field, e.Value)
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

func NewInvalidNumber(field, value string) *InvalidNumberError {
	return &InvalidNumberError{Field: field, Value: value}
}
