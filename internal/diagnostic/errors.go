package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a structured engine failure. Subject names the offending
// pattern or identifier when one is known.
type Error struct {
	Kind        Kind
	Message     string
	Subject     string
	Suggestions []string
	// Err is the underlying cause, if any.
	Err error
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind Kind, subject, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Subject: subject,
	}
}

// Wrap builds an Error of the given kind around a cause.
func Wrap(kind Kind, subject string, err error, format string, args ...any) *Error {
	e := Errorf(kind, subject, format, args...)
	e.Err = err

	return e
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Subject != "" {
		fmt.Fprintf(&b, " (%q)", e.Subject)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "; did you mean %s?", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
