package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a requested resource does not exist or is
	// not visible to the caller. Absence and non-ownership are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a uniqueness constraint is violated, e.g.
	// registering a username that is already taken.
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidCredentials is returned on login when the username is unknown
	// or the password does not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// FieldError describes a single invalid field of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the field-level detail of a rejected request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
