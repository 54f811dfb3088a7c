package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTypeMismatch matches every *TypeMismatchError through errors.Is.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError is returned when a value's type disagrees with what a
// field or a manager expects. Field is empty for manager saves.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("can only save %s instances, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s must be %s, got %s", e.Field, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// UnknownFieldError reports a value addressed to a name the model does not declare.
type UnknownFieldError struct {
	Model string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %s", e.Model, e.Field)
}

func ParseLineError(line int, reason string) error {
	return errors.Errorf("Error parsing line %d: %s", line, reason)
}
