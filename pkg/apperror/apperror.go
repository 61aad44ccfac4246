package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error by how the API layer must answer it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPermission
	KindNotFound
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// HTTPStatus returns the status code the delivery layer uses for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindPermission:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error carrying a kind and a client-safe message.
// Usecases declare them as sentinels and callers match them with errors.Is.
type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Permission(message string) *Error {
	return New(KindPermission, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

// KindOf reports the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of err, or fallback for internal errors.
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.kind != KindInternal {
		return appErr.message
	}
	return fallback
}
