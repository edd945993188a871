package openai

import (
	"fmt"
	"net/http"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConflict
	ErrInternalServerError
	ErrNotAuthorized
	ErrRateLimited
	ErrUnexpectedResponse
	ErrDecode
	ErrTransport
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// APIError is returned when the remote API responds with a non-2xx status.
// The fields are populated from the provider's error body when present.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`
	Param      string `json:"param,omitempty"`
	Code       string `json:"code,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - Err

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConflict:
		return "conflict"
	case ErrInternalServerError:
		return "internal server error"
	case ErrNotAuthorized:
		return "not authorized"
	case ErrRateLimited:
		return "rate limited"
	case ErrUnexpectedResponse:
		return "unexpected response"
	case ErrDecode:
		return "decode error"
	case ErrTransport:
		return "transport error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - APIError

func (e *APIError) Error() string {
	status := http.StatusText(e.StatusCode)
	if status == "" {
		status = fmt.Sprint("status ", e.StatusCode)
	}
	switch {
	case e.Message != "" && e.Code != "":
		return fmt.Sprintf("%s: %s (%s)", status, e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", status, e.Message)
	default:
		return status
	}
}

// Unwrap returns the error code which corresponds to the status code,
// so that errors.Is(err, ErrNotFound) works on API errors.
func (e *APIError) Unwrap() error {
	return StatusErr(e.StatusCode)
}

// StatusErr maps an HTTP status code to an error code
func StatusErr(code int) Err {
	switch {
	case code >= 200 && code < 300:
		return ErrSuccess
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return ErrBadParameter
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrNotAuthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code == http.StatusNotImplemented:
		return ErrNotImplemented
	case code >= 500:
		return ErrInternalServerError
	}
	return ErrUnexpectedResponse
}
