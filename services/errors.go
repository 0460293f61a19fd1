package services

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned on direct lookups of unknown ids or names.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when a principal lacks the role or the
	// ownership an operation requires. Nothing is mutated in that case;
	// the presentation layer decides how to surface it (a redirect).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials covers both unknown usernames and bad
	// passwords so that login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyResolved guards terminal requests against a second
	// accept or reject.
	ErrAlreadyResolved = errors.New("request already resolved")
)

// FieldError is a single inline validation message tied to a form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every failed check for a submission so the
// form can render all inline messages at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// For returns the message attached to a field, or "" if the field passed.
func (e *ValidationError) For(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// AsValidation unwraps err as a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
