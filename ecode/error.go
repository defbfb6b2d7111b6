package ecode

import (
	"errors"
	"strings"
)

// Kind classifies an error for response mapping and observability.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// Error is the tagged error shared by repositories and services.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		b.WriteString(e.Msg)
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString(string(e.Kind))
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap tags err with kind. A nil err yields nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// NotFoundErr creates a not-found error.
func NotFoundErr(op, msg string) *Error {
	return New(KindNotFound, op, msg)
}

// ConflictErr creates a conflict error.
func ConflictErr(op, msg string) *Error {
	return New(KindConflict, op, msg)
}

// UnauthorizedErr creates an unauthorized error.
func UnauthorizedErr(op, msg string) *Error {
	return New(KindUnauthorized, op, msg)
}

// Internal wraps err as an internal failure.
func Internal(op string, err error) error {
	return Wrap(KindInternal, op, err)
}

// KindOf returns the kind of the outermost tagged error in err's chain.
// Untagged errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is tagged not-found.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err is tagged conflict.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// IsUnauthorized reports whether err is tagged unauthorized.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// Message returns the Msg of the outermost tagged error in err's chain.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return ""
}
