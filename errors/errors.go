// Package errors provides an API for errors across the application.
package errors

import (
	"fmt"
	"net/http"
)

// RequestError is an error that carries the HTTP status a client should see.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NotFound returns a RequestError with status 404 for the named entity.
func NotFound(entity string) *RequestError {
	return &RequestError{
		StatusCode: http.StatusNotFound,
		Err:        fmt.Errorf("%s not found", entity),
	}
}

// BadRequest wraps err in a RequestError with status 400.
func BadRequest(err error) *RequestError {
	return &RequestError{
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}
