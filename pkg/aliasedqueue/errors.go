package aliasedqueue

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmpty is returned by Dequeue when every sub-queue is empty.
// It marks the normal end of iteration and is returned without a stack trace;
// test for it with errors.Is.
var ErrEmpty = errors.New("aliased priority queue is empty")

// ErrInvalidArgument is returned when a queue is constructed from invalid input.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the argument referred to, e.g., "keyFunc"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %v is invalid for argument %q", err.Value, err.Name)
	} else {
		return fmt.Sprintf("value %v is invalid for argument %q; %s", err.Value, err.Name, err.Message)
	}
}

// ErrUnknownAlias is returned whenever an operation names a sub-queue that doesn't exist.
// Message is optional and is omitted from the error message if not provided.
type ErrUnknownAlias struct {
	Alias   interface{}
	Message string
}

func (err *ErrUnknownAlias) Error() (s string) {
	s = fmt.Sprintf("no sub-queue with alias %v", err.Alias)
	if err.Message != "" {
		return s + fmt.Sprintf("; %s", err.Message)
	} else {
		return s
	}
}

// IsUnknownAlias reports whether err, or any error it wraps, is an *ErrUnknownAlias.
func IsUnknownAlias(err error) bool {
	var e *ErrUnknownAlias
	return errors.As(err, &e)
}

// IsInvalidArgument reports whether err, or any error it wraps, is an *ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	var e *ErrInvalidArgument
	return errors.As(err, &e)
}
