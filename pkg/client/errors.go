package client

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx HTTP response from the booking service.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsTransport returns true if err came from the transport rather than an
// HTTP status, meaning the service was never reached or the connection died.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	var httpErr *HTTPError
	return !errors.As(err, &httpErr)
}
