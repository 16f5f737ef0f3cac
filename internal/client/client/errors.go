package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found")
	ErrBadResponse           = errors.New("unexpected server response")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)

// APIError is a non-2xx response from the backend. Message is the text the
// backend meant to show to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Is lets callers match API errors against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	}
	return false
}

// UserMessage returns the text to show for err: the backend's message for an
// APIError, the error text otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Describe formats a failed call for display: transport problems as
// "Network error: ...", backend rejections as prefix followed by the
// backend's message.
func Describe(prefix string, err error) string {
	var apiErr *APIError
	if errors.Is(err, ErrUnavailable) && !errors.As(err, &apiErr) {
		return "Network error: " + err.Error()
	}
	msg := UserMessage(err)
	if msg == "" {
		msg = "Unknown error"
	}
	return prefix + msg
}
