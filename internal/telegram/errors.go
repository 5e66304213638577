package telegram

import (
	"errors"
	"fmt"
)

// ErrTransport matches every failure where no valid Bot API envelope was received:
// network errors, timeouts and undecodable responses.
var ErrTransport = errors.New("telegram transport failure")

// APIError is returned when Telegram answers with "ok": false.
type APIError struct {
	Method      string
	Code        int
	Description string
	// RetryAfter is set on 429 responses (seconds).
	RetryAfter int
	// MigrateToChatID is set when a group was upgraded to a supergroup.
	MigrateToChatID int64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed: %d %s", e.Method, e.Code, e.Description)
}

// TransportError wraps network and timeout failures.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("telegram %s transport error: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports TransportError as an ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodingError is returned when the response body is not a Bot API JSON envelope.
// Callers treat it like a TransportError.
type DecodingError struct {
	Method     string
	StatusCode int
	Err        error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("telegram %s: cannot decode response (HTTP %d): %v", e.Method, e.StatusCode, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// Is reports DecodingError as an ErrTransport.
func (e *DecodingError) Is(target error) bool { return target == ErrTransport }

// MissingParameterError is returned before any network call when a required
// parameter of a Bot API method is absent.
type MissingParameterError struct {
	Method string
	Param  string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("telegram %s: missing required parameter %q", e.Method, e.Param)
}

// InvalidTokenError means a bot token is malformed or was rejected by getMe.
type InvalidTokenError struct {
	Reason string
	Err    error
}

func (e *InvalidTokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid bot token: %s: %v", e.Reason, e.Err)
	}
	return "invalid bot token: " + e.Reason
}

func (e *InvalidTokenError) Unwrap() error { return e.Err }

// IsTransient reports whether err is worth retrying: transport failures,
// rate limiting and Telegram-side 5xx errors.
func IsTransient(err error) bool {
	if errors.Is(err, ErrTransport) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return false
}
