package permissions

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every conversion failure in this package.
var ErrInvalidInput = errors.New("❌ invalid permission input")

// InvalidInputError reports a string rejected by one of the validators.
type InvalidInputError struct {
	// Input is the rejected string, unmodified.
	Input string
	// Want is the encoding the caller asked for, or EncodingUnknown when
	// either encoding would have been accepted.
	Want Encoding
}

func (e *InvalidInputError) Error() string {
	want := "binary or decimal"
	if e.Want != EncodingUnknown {
		want = e.Want.String()
	}
	return fmt.Sprintf("%v: %q is not a %s permission", ErrInvalidInput, e.Input, want)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(input string, want Encoding) error {
	return &InvalidInputError{Input: input, Want: want}
}
