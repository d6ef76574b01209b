package datafeed

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")

	// ErrInvalidQuoteRequest is returned before any I/O when a quote request
	// has no symbols or a blank symbol.
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
	// ErrMissingTokens is returned when a 2xx login response lacks either
	// half of the token pair.
	ErrMissingTokens = errors.New("response carries no token pair")
	// ErrUnexpectedPayload is returned when a 2xx body is valid JSON but
	// not an object.
	ErrUnexpectedPayload = errors.New("response is not a JSON object")
)

// HTTPStatusError is a non-2xx response. Body is the trimmed response body.
type HTTPStatusError struct {
	Code int
	Body string
}

func (e *HTTPStatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, body)
}

// Unwrap classifies the status code into one of the package sentinels, or
// nil for codes without one.
func (e *HTTPStatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Code == http.StatusForbidden:
		return ErrForbidden
	case e.Code == http.StatusNotFound:
		return ErrNotFound
	case e.Code >= http.StatusInternalServerError:
		return ErrServerError
	default:
		return nil
	}
}

// ConnectionError is a failure to complete the exchange at all: DNS, TLS
// handshake, connect, reset, timeout or context cancellation.
type ConnectionError struct {
	Op    string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s request: %v", e.Op, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
