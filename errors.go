package solaredge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// TransportError reports that the HTTP collaborator could not complete the
// round trip (connection refused, TLS failure, timeout). The underlying
// error is available through errors.Unwrap.
type TransportError struct {
	cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach the monitoring API: %v", e.cause)
}

func (e *TransportError) Unwrap() error { return e.cause }

// APIError reports that the monitoring API rejected the request, including
// invalid credentials (403) and quota exhaustion (429). The client never
// retries these; only the caller knows an acceptable retry policy.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("monitoring API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("monitoring API returned status %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited reports whether the request was rejected for exceeding the
// hourly request quota.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsForbidden reports whether access was denied. This usually means the API
// key is invalid or not enabled for the site.
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// ParseError reports a 2xx response whose body did not match the documented
// shape. Field names the missing or malformed JSON field.
type ParseError struct {
	Field string
	cause error
}

func newParseError(field string, cause error) *ParseError {
	return &ParseError{Field: field, cause: cause}
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid value for field %q: %v", e.Field, e.cause)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *ParseError) Unwrap() error { return e.cause }

// asParseError passes a ParseError raised by nested decoding through
// unchanged and files any other decoding failure under the given field.
func asParseError(field string, err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr
	}
	return newParseError(field, err)
}

// newAPIError builds an APIError from a non-2xx response body. The API
// reports failures as {"message": ...} (sometimes {"String": ...}); anything
// else is carried verbatim.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Str     string `json:"String"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = payload.Str
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	return &APIError{StatusCode: statusCode, Message: message}
}
