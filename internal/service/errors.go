package service

import "fmt"

// Business failures are typed so handlers can map them to HTTP statuses with
// errors.As instead of matching message strings. Messages are what the API
// returns in the apierror envelope.

// NotFoundError: the referenced id or key does not exist. Maps to 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func notFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// DuplicateError: a uniqueness pre-check failed before the write. Maps to 400.
type DuplicateError struct {
	Field string // "cpf", "email", "nome"
	Msg   string
}

func (e *DuplicateError) Error() string { return e.Msg }

func duplicate(field, format string, args ...any) *DuplicateError {
	return &DuplicateError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// HasDependentsError: a delete is blocked by records referencing the target.
// Carries the dependent count. Maps to 400.
type HasDependentsError struct {
	Count int64
	Msg   string
}

func (e *HasDependentsError) Error() string { return e.Msg }
