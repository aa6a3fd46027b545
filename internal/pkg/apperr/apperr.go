// Package apperr carries the typed error kinds the service layer reports.
// Controllers hand these to the fiber error middleware, which maps kinds to
// HTTP statuses without leaking internals.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuthorization
	KindStateConflict
	KindPersistence
)

type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "review.submit".
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

func NotFound(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

func Authorization(op, message string) *Error {
	return &Error{Kind: KindAuthorization, Op: op, Message: message}
}

func StateConflict(op, message string) *Error {
	return &Error{Kind: KindStateConflict, Op: op, Message: message}
}

func Persistence(op string, err error) *Error {
	return &Error{Kind: KindPersistence, Op: op, Message: "persistence failure", Err: err}
}

// KindOf reports the kind of err, or (0, false) when err is not an apperr.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
