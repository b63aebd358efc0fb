package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind separates failures where the server answered from failures
// where no response arrived at all. Only server errors carry a status
// and a backend-provided message worth showing verbatim.
type ErrorKind int

const (
	// KindNetwork means no response was received (DNS, refused, timeout).
	KindNetwork ErrorKind = iota
	// KindServer means the backend answered with a non-2xx status.
	KindServer
)

// Error is the normalized form of every gateway failure.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Kind == KindNetwork {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsNetwork reports whether err is a no-response failure.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// IsUnauthorized reports whether err is a 401 from the backend,
// the signal that the stored token is no longer valid.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindServer && apiErr.Status == http.StatusUnauthorized
}

// UserMessage extracts the text to surface for err. Server messages pass
// through untouched; anything else collapses to a generic connectivity line.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == KindServer && apiErr.Message != "" {
			return apiErr.Message
		}
		return "Network error. Please check your connection."
	}
	return err.Error()
}
