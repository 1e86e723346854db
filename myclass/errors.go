package myclass

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports an operator tag (or other argument) that an
// operation does not accept.
type ArgumentError struct {
	Op  string
	Arg string
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s: unexpected argument %s", e.Op, e.Arg)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
