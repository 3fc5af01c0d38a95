package errs

import (
	"strings"

	"github.com/pkg/errors"
)

// Multi collects validation errors, e.g. from config Validate methods.
type Multi struct {
	errors []error
}

func NewMulti() *Multi {
	return &Multi{
		errors: []error{},
	}
}

func (m *Multi) Add(err error) {
	if err == nil {
		return
	}

	if other, ok := err.(*Multi); ok {
		if other == nil {
			return
		}
		m.errors = append(m.errors, other.errors...)
		return
	}

	m.errors = append(m.errors, err)
}

func (m *Multi) Err(msg string) {
	m.Add(errors.New(msg))
}

func (m *Multi) Errf(format string, args ...interface{}) {
	m.Add(errors.Errorf(format, args...))
}

func (m *Multi) Error() string {
	if !m.HasErrors() {
		return ""
	}

	strErrs := make([]string, len(m.errors))
	for i := range m.errors {
		strErrs[i] = m.errors[i].Error()
	}

	return strings.Join(strErrs, "; ")
}

// StackTrace returns the trace of the first collected error that has one.
func (m *Multi) StackTrace() errors.StackTrace {
	for _, curErr := range m.errors {
		var withStack stackTracer
		if errors.As(curErr, &withStack) {
			return withStack.StackTrace()
		}
	}

	return nil
}

func (m *Multi) Errors() []error {
	return m.errors
}

func (m *Multi) HasErrors() bool {
	return m != nil && len(m.errors) > 0
}
