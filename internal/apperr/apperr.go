// Package apperr defines the domain error type the HTTP layer maps to
// status codes and statusMessage bodies.
package apperr

import "fmt"

// Status classifies a domain failure.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusNotFound
	StatusBadRequest
	StatusConflict
	StatusNotImplemented
	StatusInternal
)

// Error is a domain failure with a user-facing message. The message
// is what ends up in the statusMessage field of the response body.
type Error struct {
	parent error
	status Status
	msg    string
}

func (e Error) Error() string {
	if e.parent != nil {
		return fmt.Sprintf("Status=%d, Msg=%s, Parent=(%v)", e.status, e.msg, e.parent)
	}
	return fmt.Sprintf("Status=%d, Msg=%s", e.status, e.msg)
}

// Unwrap returns the underlying cause, if any.
func (e Error) Unwrap() error {
	return e.parent
}

// WrapParent attaches an underlying cause to a predefined Error.
func (e Error) WrapParent(parent error) Error {
	e.parent = parent
	return e
}

// Status returns the failure classification.
func (e Error) Status() Status {
	return e.status
}

// Msg returns the user-facing message.
func (e Error) Msg() string {
	return e.msg
}

func NewNotFound(msg string) Error {
	return Error{status: StatusNotFound, msg: msg}
}

func NewBadRequest(msg string) Error {
	return Error{status: StatusBadRequest, msg: msg}
}

func NewConflict(msg string) Error {
	return Error{status: StatusConflict, msg: msg}
}

func NewNotImplemented(msg string) Error {
	return Error{status: StatusNotImplemented, msg: msg}
}

func NewInternal(msg string) Error {
	return Error{status: StatusInternal, msg: msg}
}
