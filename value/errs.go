package value

import (
	"errors"
	"fmt"
)

var (
	ErrKeyMismatch     = errors.New("key does not match container")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrConversion      = errors.New("conversion failed")
)

// ConversionError locates a failed conversion inside a composite value.
type ConversionError struct {
	Path     string
	Expected string
	Actual   Type
}

func (e *ConversionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: expected %s, got %s", ErrConversion, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s at %s: expected %s, got %s", ErrConversion, e.Path, e.Expected, e.Actual)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}
