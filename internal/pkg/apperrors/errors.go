package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yigit/courseboard/internal/pkg/dberrors"
)

// HTTPError is an application error that carries the HTTP status it maps to.
// The zero-message values below act as kind sentinels for errors.Is.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

var (
	ErrBadRequest          = &HTTPError{Code: http.StatusBadRequest}
	ErrUnauthorized        = &HTTPError{Code: http.StatusUnauthorized}
	ErrForbidden           = &HTTPError{Code: http.StatusForbidden}
	ErrNotFound            = &HTTPError{Code: http.StatusNotFound}
	ErrConflict            = &HTTPError{Code: http.StatusConflict}
	ErrUnprocessableEntity = &HTTPError{Code: http.StatusUnprocessableEntity}
	ErrInternal            = &HTTPError{Code: http.StatusInternalServerError}
)

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.ToLower(http.StatusText(e.Code))
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is matches another HTTPError of the same code. A target with a message
// must also match the message.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// WithCause returns a copy of e wrapping err.
func (e *HTTPError) WithCause(err error) *HTTPError {
	clone := *e
	clone.Err = err
	return &clone
}

func newHTTPError(code int, fallback string, msg []string) *HTTPError {
	message := strings.Join(msg, ", ")
	if message == "" {
		message = fallback
	}
	return &HTTPError{Code: code, Message: message}
}

func BadRequest(msg ...string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, "bad request", msg)
}

func Unauthorized(msg ...string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, "unauthorized", msg)
}

func Forbidden(msg ...string) *HTTPError {
	return newHTTPError(http.StatusForbidden, "forbidden", msg)
}

func UnprocessableEntity(msg ...string) *HTTPError {
	return newHTTPError(http.StatusUnprocessableEntity, "unprocessable entity", msg)
}

func InternalError(msg ...string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, "internal server error", msg)
}

// NotFound accepts either a single message or (entity, field, value), which
// renders as "<entity> with <field>='<value>' not found".
func NotFound(args ...string) *HTTPError {
	if len(args) == 3 {
		return &HTTPError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("%s with %s='%s' not found", args[0], args[1], args[2]),
		}
	}
	return newHTTPError(http.StatusNotFound, "resource not found", args)
}

// Conflict follows the same argument conventions as NotFound.
func Conflict(args ...string) *HTTPError {
	if len(args) == 3 {
		return &HTTPError{
			Code:    http.StatusConflict,
			Message: fmt.Sprintf("%s with %s='%s' already exists", args[0], args[1], args[2]),
		}
	}
	return newHTTPError(http.StatusConflict, "resource already exists", args)
}

// Translate classifies a storage error into the HTTP taxonomy. SQLSTATE codes
// are consulted first, then the lowercased driver message. Anything
// unrecognised becomes an InternalError carrying only the caller's operation description.
func Translate(err error, op string) *HTTPError {
	if err == nil {
		return nil
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var notFound *dberrors.NotFoundError
	if errors.As(err, &notFound) {
		return NotFound(notFound.Entity, notFound.Field, notFound.Value).WithCause(err)
	}

	switch dberrors.SQLState(err) {
	case dberrors.ForeignKeyViolation:
		return BadRequest("invalid reference").WithCause(err)
	case dberrors.CheckViolation:
		return BadRequest("violated a check constraint").WithCause(err)
	case dberrors.UniqueViolation:
		return Conflict("duplicate value").WithCause(err)
	case dberrors.NotNullViolation:
		return BadRequest("missing required value").WithCause(err)
	}

	if isTimeout(err) {
		return InternalError("database operation timed out").WithCause(err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "foreign key"):
		return BadRequest("invalid reference").WithCause(err)
	case strings.Contains(msg, "check constraint"):
		return BadRequest("violated a check constraint").WithCause(err)
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return Conflict("duplicate value").WithCause(err)
	case strings.Contains(msg, "connection refused"):
		return InternalError("database connection refused").WithCause(err)
	}

	return InternalError(op).WithCause(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
