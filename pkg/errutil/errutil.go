// Package errutil contains helpers for reporting the errors of programs that
// process several inputs in one run.
package errutil

import "strings"

// Named attaches the name of an input to err, which then reads
// "name: message". It returns nil if err is nil. The result unwraps to err.
func Named(name string, err error) error {
	if err == nil {
		return nil
	}
	return &namedError{name, err}
}

type namedError struct {
	name string
	err  error
}

func (e *namedError) Error() string { return e.name + ": " + e.err.Error() }

func (e *namedError) Unwrap() error { return e.err }

// Multi combines the non-nil errors among errs. It returns nil if there are
// none, and the only one if there is one. Otherwise the result reads
// "multiple errors: " followed by every message, separated by "; ", and
// errors.Is and errors.As see every one of them. Results of Multi among errs
// are flattened into the new result.
func Multi(errs ...error) error {
	var m multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case *multiError:
			m.errs = append(m.errs, err.errs...)
		default:
			m.errs = append(m.errs, err)
		}
	}
	switch len(m.errs) {
	case 0:
		return nil
	case 1:
		return m.errs[0]
	default:
		return &m
	}
}

type multiError struct {
	errs []error
}

func (m *multiError) Error() string {
	msgs := make([]string, len(m.errs))
	for i, err := range m.errs {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

func (m *multiError) Unwrap() []error { return m.errs }
