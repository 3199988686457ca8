package model

import "errors"

// ErrorKind classifies every failure the todo pipeline can report.
// The zero value is KindInternal so unclassified errors never leak as
// caller mistakes.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindInvalidInput
	KindInvalidFilter
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidFilter:
		return "invalid_filter"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified failure. Message is safe to show to callers for
// every kind except KindInternal; Err keeps the underlying cause.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed or missing payload content
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewInvalidInputError reports a malformed path or query parameter
func NewInvalidInputError(field, message string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Message: message}
}

// NewInvalidFilterError reports a filter whose fields cannot be combined
func NewInvalidFilterError(message string) *Error {
	return &Error{Kind: KindInvalidFilter, Message: message}
}

// NewNotFoundError reports a missing todo
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewInternalError wraps an unexpected failure
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not classified
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// AsError returns the classified error inside err, if any
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
