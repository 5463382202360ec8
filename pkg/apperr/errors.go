package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies application errors so that transports can map them to status codes.
type Kind string

const (
	KindInvalidArgument Kind = "InvalidArgument"
	KindNotFound        Kind = "NotFound"
	KindAlreadyExists   Kind = "AlreadyExists"
	KindEmptyCollection Kind = "EmptyCollection"
	KindUnauthorized    Kind = "Unauthorized"
	KindUnexpected      Kind = "Unexpected"
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrAlreadyExists   = &Error{Kind: KindAlreadyExists}
	ErrEmptyCollection = &Error{Kind: KindEmptyCollection}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func InvalidArgument(message string) *Error {
	return New(KindInvalidArgument, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func AlreadyExists(message string) *Error {
	return New(KindAlreadyExists, message)
}

func EmptyCollection(message string) *Error {
	return New(KindEmptyCollection, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// KindOf reports the Kind of err, or KindUnexpected for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
