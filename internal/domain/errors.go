package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories a handler can report.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

var kindInfo = map[Kind]struct {
	status int
	code   string
}{
	KindInternal:           {http.StatusInternalServerError, "internal_error"},
	KindValidation:         {http.StatusBadRequest, "validation_error"},
	KindInvalidCredentials: {http.StatusUnauthorized, "invalid_credentials"},
	// not logged in and logged in without privilege both answer 403
	KindUnauthorized: {http.StatusForbidden, "unauthorized"},
	KindForbidden:    {http.StatusForbidden, "forbidden"},
	KindNotFound:     {http.StatusNotFound, "not_found"},
	KindConflict:     {http.StatusConflict, "conflict"},
}

// HTTPStatus is the response status for the kind.
func (k Kind) HTTPStatus() int {
	if info, ok := kindInfo[k]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Code is the machine-readable error code for the kind.
func (k Kind) Code() string {
	if info, ok := kindInfo[k]; ok {
		return info.code
	}
	return "internal_error"
}

func (k Kind) String() string { return k.Code() }

// Error is the single error type crossing the repository/service/handler
// boundary. Msg is safe to show to clients; Err is for logs only.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Code()
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// PublicMessage is what a client may see. Internal errors never leak detail.
func (e *Error) PublicMessage() string {
	if e.Kind == KindInternal {
		return "internal server error"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Code()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, msg)
	}
	return msg
}

func Validation(field, msg string) error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

func InvalidCredentials(msg string) error {
	return &Error{Kind: KindInvalidCredentials, Msg: msg}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func NotFound(resource string) error {
	return &Error{Kind: KindNotFound, Msg: resource + " not found"}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Internal wraps an unexpected fault.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf reports the kind of err; anything untyped is internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool     { return err != nil && KindOf(err) == KindNotFound }
func IsValidation(err error) bool   { return err != nil && KindOf(err) == KindValidation }
func IsUnauthorized(err error) bool { return err != nil && KindOf(err) == KindUnauthorized }
func IsForbidden(err error) bool    { return err != nil && KindOf(err) == KindForbidden }

// PublicMessage returns the client-safe message for any error.
func PublicMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.PublicMessage()
	}
	return "internal server error"
}
