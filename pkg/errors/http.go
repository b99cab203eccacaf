package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and error code returned to the client.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError with the given code. Codes in the 4xx/5xx range are
// used as the HTTP status directly; any other code is returned with 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 400 && code < 600 {
		status = code
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

// NewUnauthorizedHTTPError returns the standard 401 error.
func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}

// NewForbiddenHTTPError returns the standard 403 error.
func NewForbiddenHTTPError() *HTTPError {
	return NewHTTPError(http.StatusForbidden, "Forbidden")
}

func (e *HTTPError) Error() string {
	return e.Message
}
