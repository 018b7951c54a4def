package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a read, update or delete targets an entity
// that does not exist.
var ErrNotFound = errors.New("not found")

// ErrorKind classifies failures raised by the data-access layer.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindValidation
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	default:
		return "unexpected"
	}
}

// Error carries its kind so that callers branch on Kind rather than on
// message text or concrete types.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports structurally invalid input. Validation errors
// are raised before any storage access.
func NewValidationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewStorageError reports a failure of the persistence layer.
func NewStorageError(message string, cause error) error {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &Error{Kind: KindStorage, Message: message, Err: cause}
}

// KindOf returns the kind of err. Errors not produced by this package are
// KindUnexpected.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}
