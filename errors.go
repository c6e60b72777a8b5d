package microhttp

import (
	"errors"
	"fmt"
)

// Error is the single normalized error type carried by failure Results.
// Transport failures, non-2xx statuses, undecodable bodies, and guard
// rejections all collapse into it; callers needing finer branching inspect
// Response (nil means the failure happened before a response arrived) or its
// status code.
type Error struct {
	// Message describes the failure.
	Message string
	// Response is the raw response, when one was received.
	Response *Response
	// RequestID is the X-Request-Id stamped on the outbound request.
	RequestID string
	// Cause is the underlying error, when the failure wraps one.
	Cause error
}

// Error implements the error interface, rendering the causal chain.
func (e *Error) Error() string {
	var msg string
	if e.RequestID != "" {
		msg = fmt.Sprintf("microhttp: [%s] %s", e.RequestID, e.Message)
	} else {
		msg = "microhttp: " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newTransportError wraps a failure of the transport itself. No response
// was received, so Response stays nil.
func newTransportError(requestID string, cause error) *Error {
	return &Error{
		Message:   "transport request failed",
		RequestID: requestID,
		Cause:     cause,
	}
}

// newStatusError reports a response whose status code is outside 2xx.
func newStatusError(requestID string, resp *Response) *Error {
	return &Error{
		Message:   fmt.Sprintf("request failed with status %d", resp.StatusCode),
		Response:  resp,
		RequestID: requestID,
	}
}

// newDecodeError reports a response body that could not be decoded.
func newDecodeError(requestID string, resp *Response, cause error) *Error {
	return &Error{
		Message:   "decode response body",
		Response:  resp,
		RequestID: requestID,
		Cause:     cause,
	}
}

// newGuardError reports a decoded body rejected by the caller's shape guard.
// The status was successful, so the original response is preserved.
func newGuardError(requestID string, resp *Response) *Error {
	return &Error{
		Message:   "response shape validation failed",
		Response:  resp,
		RequestID: requestID,
	}
}

// IsTransport reports whether err is a microhttp failure that happened before
// any response was received.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Response == nil
}

// ResponseFrom extracts the raw response attached to a microhttp error, if
// any.
func ResponseFrom(err error) *Response {
	var e *Error
	if errors.As(err, &e) {
		return e.Response
	}
	return nil
}
