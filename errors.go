package nflapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorKind classifies an Error into one of the failure families callers
// can branch on.
type ErrorKind int

const (
	// ErrInvalidArgument is raised before any network call when an
	// argument fails a coercion or cross-field rule.
	ErrInvalidArgument ErrorKind = iota
	// ErrUnauthorized maps HTTP 401 (bad key or usage limits).
	ErrUnauthorized
	// ErrBadParameters maps HTTP 404 (the API rejected the parameters).
	ErrBadParameters
	// ErrRateLimited maps HTTP 429.
	ErrRateLimited
	// ErrServer maps HTTP 500.
	ErrServer
	// ErrAPI covers any other non-200 status and in-body error payloads.
	ErrAPI
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrUnauthorized:
		return "UNAUTHORIZED"
	case ErrBadParameters:
		return "BAD_PARAMETERS"
	case ErrRateLimited:
		return "RATE_LIMITED"
	case ErrServer:
		return "SERVER_ERROR"
	default:
		return "API_ERROR"
	}
}

// Error is the single error value produced by this package. Validation
// failures carry a zero StatusCode; transport failures carry the HTTP
// status and, when the body could be decoded, the API's errors payload.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	APIErrors  json.RawMessage
}

func (e *Error) Error() string {
	if len(e.APIErrors) > 0 {
		return fmt.Sprintf("%s\nResponse Errors: %s", e.Message, e.APIErrors)
	}
	return e.Message
}

func invalidArg(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

var statusKinds = map[int]ErrorKind{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrBadParameters,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrServer,
}

func statusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "API returned a 401 error. Check your API key and usage limits."
	case http.StatusNotFound:
		return "API returned a 404 error. Check your parameters."
	case http.StatusTooManyRequests:
		return "API returned a 429 error."
	case http.StatusInternalServerError:
		return "API returned a 500 server error."
	default:
		return "An unknown API error occurred."
	}
}

// statusError classifies a non-200 response.
func statusError(status int, apiErrors json.RawMessage) *Error {
	kind, ok := statusKinds[status]
	if !ok {
		kind = ErrAPI
	}
	return &Error{
		Kind:       kind,
		Message:    statusMessage(status),
		StatusCode: status,
		APIErrors:  apiErrors,
	}
}

// apiError covers 200 responses whose body carries a truthy errors value.
func apiError(apiErrors json.RawMessage) *Error {
	return &Error{
		Kind:       ErrAPI,
		Message:    "An unknown API error occurred.",
		StatusCode: http.StatusOK,
		APIErrors:  apiErrors,
	}
}
