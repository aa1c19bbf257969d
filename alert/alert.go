// Package alert maps failures to the message keys shown to console users.
package alert

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Type is the severity of an alert.
type Type int

const (
	Danger Type = iota
	Warning
	Info
	Success
)

func (typ Type) String() string {
	switch typ {
	case Danger:
		return "danger"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Success:
		return "success"
	}
	return "unknown"
}

// Message keys.
const (
	UnknownError       = "UNKNOWN_ERROR"
	BadRequestError    = "BAD_REQUEST_ERROR"
	UnauthorizedError  = "UNAUTHORIZED_ERROR"
	ForbiddenError     = "FORBIDDEN_ERROR"
	NotFoundError      = "NOT_FOUND_ERROR"
	PreconditionFailed = "PRECONDITION_FAILED"
	ConflictError      = "CONFLICT_ERROR"
	ServerError        = "SERVER_ERROR"
	Reloaded           = "RELOADED"
)

var keyByStatus = map[int]string{
	http.StatusBadRequest:          BadRequestError,
	http.StatusUnauthorized:        UnauthorizedError,
	http.StatusForbidden:           ForbiddenError,
	http.StatusNotFound:            NotFoundError,
	http.StatusPreconditionFailed:  PreconditionFailed,
	http.StatusConflict:            ConflictError,
	http.StatusInternalServerError: ServerError,
}

// StatusCoder is implemented by errors carrying an http status.
type StatusCoder interface {
	StatusCode() int
}

// StatusError is an error reported by the registry api.
type StatusError struct {
	Code int
	Msg  string
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", se.Code, se.Msg)
}

// StatusCode returns the http status.
func (se *StatusError) StatusCode() int {
	return se.Code
}

// Key returns the message key for err.
// Errors without a status fall back to their own message.
func Key(err error) string {

	if err == nil {
		return UnknownError
	}

	var coder StatusCoder
	if !errors.As(err, &coder) || coder.StatusCode() == 0 {
		return err.Error()
	}

	key, ok := keyByStatus[coder.StatusCode()]
	if !ok {
		return UnknownError
	}
	return key
}

// Unauthorized is true when err carries a 401, which the console handles
// at application level rather than per view.
func Unauthorized(err error) bool {

	var coder StatusCoder
	if !errors.As(err, &coder) {
		return false
	}
	return coder.StatusCode() == http.StatusUnauthorized
}

// Alert is a message shown until dismissed.
type Alert struct {
	Type    Type
	Message string
}

// FromError builds the alert for err.
// A 401 warns, anything else is danger.
func FromError(err error) Alert {

	if Unauthorized(err) {
		return Alert{Type: Warning, Message: UnauthorizedError}
	}
	return Alert{Type: Danger, Message: Key(err)}
}

// Empty is true when there is nothing to show.
func (al Alert) Empty() bool {
	return al.Message == ""
}
