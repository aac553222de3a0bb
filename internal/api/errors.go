package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NetworkError reports a transport-level failure: the request never produced
// an HTTP response (DNS, connection refused, TLS, timeout). It is a distinct
// type so callers can show a connectivity message instead of a server one.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error reaching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from the backend. Message carries the
// server-supplied message when the error payload had one, otherwise a generic
// fallback. Payload keeps the raw body so callers can branch on details.
type APIError struct {
	Status  int
	Message string
	Payload json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNetworkError reports whether err is a transport failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsAuthError reports whether err is a 401 or 403 response.
func IsAuthError(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusUnauthorized || ae.Status == http.StatusForbidden
}

// IsConflict reports whether err is a 409 response, e.g. buying more milk
// than a farm has available.
func IsConflict(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusConflict
}

// StatusOf returns the HTTP status of an APIError, or 0 for anything else.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}
