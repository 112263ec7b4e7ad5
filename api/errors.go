package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a rejection by the board service. Scenarios assert on
// kinds, never on raw HTTP status codes.
type ErrorKind string

const (
	// ErrorKindValidation means the request had malformed or missing fields.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindAuth means the credentials were invalid or the session was
	// absent or expired.
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindPermission means the actor was authenticated but lacks the
	// role or ownership required for the operation.
	ErrorKindPermission ErrorKind = "permission"
	// ErrorKindNotFound means a referenced resource does not exist or was
	// already removed.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindConflict means a uniqueness or state-transition constraint was
	// violated.
	ErrorKindConflict ErrorKind = "conflict"
)

// Error is a rejection decoded from a service response.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s error from service (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error from service: %s", e.Kind, e.Message)
}

// IsKind reports whether err is a service rejection of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrorKindValidation
	case http.StatusUnauthorized:
		return ErrorKindAuth
	case http.StatusForbidden:
		return ErrorKindPermission
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusConflict:
		return ErrorKindConflict
	}
	return ""
}

// newServiceError builds an *Error from a non-2xx response. Statuses outside
// the taxonomy come back as plain errors: they indicate a broken service or
// harness, not a contract behavior any scenario should expect.
func newServiceError(status int, body []byte) error {
	kind := kindForStatus(status)
	if kind == "" {
		return fmt.Errorf("unexpected response status %d from service: %s", status, string(body))
	}
	e := &Error{Kind: kind, Message: http.StatusText(status)}
	var parsed errorBody
	if json.Unmarshal(body, &parsed) == nil && parsed.Error.Message != "" {
		e.Code = parsed.Error.Code
		e.Message = parsed.Error.Message
	}
	return e
}
