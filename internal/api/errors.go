package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrSessionExpired is returned by authenticated requests that were
	// answered with 401, the session has already been cleared by then.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrUnauthorized matches any *StatusError with a 401 status.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotLoggedIn is returned by authenticated requests when there is no
	// token to send.
	ErrNotLoggedIn = errors.New("not logged in")
)

// StatusError is a non-2xx response. Detail holds the backend's
// error message when the body carried one.
type StatusError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, detail)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Message is what the user should see, the backend detail when there is
// one and the status text otherwise.
func (e *StatusError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}

// NetworkError is a request that never got a response.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: could not reach the api: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// decodeDetail reads the "detail" field of an error body. validation errors
// carry a list there instead of a string, it is kept as raw json.
func decodeDetail(body []byte) string {
	var parsed struct {
		Detail json.RawMessage `json:"detail"`
	}
	err := json.Unmarshal(body, &parsed)
	if err != nil || len(parsed.Detail) == 0 {
		return ""
	}
	var text string
	err = json.Unmarshal(parsed.Detail, &text)
	if err == nil {
		return text
	}
	if string(parsed.Detail) == "null" {
		return ""
	}
	return strings.TrimSpace(string(parsed.Detail))
}
