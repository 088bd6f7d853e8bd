// Package failure carries an HTTP status code alongside a stable,
// user-facing message. Handlers map service errors to responses through
// GetCode without inspecting error text.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// BadRequestFromString rejects malformed or invalid input.
func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// NotFound reports a missing referenced entity.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a state clash, e.g. an overlapping booking.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// UnprocessableEntity rejects requests that are well formed but cannot be
// satisfied in the current state, e.g. a field under maintenance.
func UnprocessableEntity(msg string) error {
	return newFailure(http.StatusUnprocessableEntity, msg)
}

// InternalErrorFromString wraps an infrastructure fault without exposing the
// underlying error text to the caller.
func InternalErrorFromString(msg string) error {
	return newFailure(http.StatusInternalServerError, msg)
}

// GetCode extracts the HTTP status from an error, defaulting to 500 for
// errors that did not originate here.
func GetCode(err error) int {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}

	return http.StatusInternalServerError
}
