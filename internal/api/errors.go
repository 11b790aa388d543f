package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized marks authentication failures. Callers match it with
// errors.Is to treat the response as "not logged in" rather than as a
// generic error.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a structured failure decoded from a non-success response.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the human-readable error, suitable for direct display.
	Message string
	// Messages carries the per-field messages of a multi-field validation
	// failure, when the backend returned an array.
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return e.Message
}

// Is reports whether this error represents an authorization failure, so that
// errors.Is(err, ErrUnauthorized) works on decoded API errors.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// decodeError builds an *Error from a failed response body. The backend
// answers with {"message": "..."} on most failures and with
// {"status": "error", "message": ["...", ...]} on multi-field validation
// failures; plain-text bodies and unparseable payloads degrade to a generic
// message carrying the status code.
func decodeError(status int, body []byte) *Error {
	apiErr := &Error{Status: status, Message: http.StatusText(status)}

	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
			apiErr.Message = text
		}
		return apiErr
	}

	var single string
	if err := json.Unmarshal(payload.Message, &single); err == nil {
		apiErr.Message = single
		return apiErr
	}

	var many []string
	if err := json.Unmarshal(payload.Message, &many); err == nil && len(many) > 0 {
		apiErr.Message = many[0]
		apiErr.Messages = many
	}
	return apiErr
}
