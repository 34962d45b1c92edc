package validation

import (
	"errors"
	"fmt"
)

// ErrInvalid matches, via errors.Is, every error this package returns.
// Their messages are meant for the user.
var ErrInvalid = errors.New("invalid input")

type Error string

func (e Error) Error() string {
	return string(e)
}

func (e Error) Is(target error) bool {
	return target == ErrInvalid
}

func invalidf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...))
}
