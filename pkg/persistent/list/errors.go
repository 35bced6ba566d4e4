package list

import (
	"errors"
	"fmt"
)

// Errors returned by list operations. The errors actually returned may carry
// more details, and should be checked with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexNotFound   = errors.New("index not found")
	ErrNoMoreElements  = errors.New("no more elements")
	ErrUnsupported     = errors.New("unsupported operation")
)

type invalidArgumentError struct {
	what string
}

func invalidArgument(what string) error { return invalidArgumentError{what} }

func (err invalidArgumentError) Error() string {
	return "invalid argument: " + err.what
}

func (err invalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

type indexError struct {
	index int
}

func (err indexError) Error() string {
	return fmt.Sprintf("index %d not found", err.index)
}

func (err indexError) Is(target error) bool {
	return target == ErrIndexNotFound
}

type unsupportedError struct {
	op string
}

func unsupported(op string) error { return unsupportedError{op} }

func (err unsupportedError) Error() string {
	return "unsupported operation on persistent list: " + err.op
}

func (err unsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
