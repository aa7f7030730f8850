package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindUnauthorized
)

// Error is a failure that the request boundary turns into a user-facing
// message instead of a server error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUserExists         = &Error{Kind: KindValidation, Message: "Username already exists"}
	ErrInvalidCredentials = &Error{Kind: KindAuth, Message: "Sorry that Username and/or Password didn't match anything in our records"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrPropertyNotFound   = &Error{Kind: KindNotFound, Message: "Property not found"}
	ErrLoginRequired      = &Error{Kind: KindUnauthorized, Message: "Please log in to continue"}
)

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf reports the kind of err, KindInternal for anything not built by
// this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
