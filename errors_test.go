package microhttp

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestError_MessageFormat(t *testing.T) {
	resp := &Response{StatusCode: 404, Status: "404 Not Found", Headers: make(http.Header)}

	e := newStatusError("req-1", resp)
	msg := e.Error()
	if !strings.Contains(msg, "404") {
		t.Errorf("message should mention the status, got %q", msg)
	}
	if !strings.Contains(msg, "req-1") {
		t.Errorf("message should carry the request id, got %q", msg)
	}
}

func TestError_MessageWithoutRequestID(t *testing.T) {
	e := &Error{Message: "something broke"}
	if got := e.Error(); got != "microhttp: something broke" {
		t.Errorf("expected plain prefix without a request id, got %q", got)
	}

	e.Cause = errors.New("root cause")
	if got := e.Error(); got != "microhttp: something broke: root cause" {
		t.Errorf("expected cause appended, got %q", got)
	}
}

func TestError_CausalChain(t *testing.T) {
	cause := errors.New("connection reset")
	e := newTransportError("req-2", cause)

	if !strings.Contains(e.Error(), "connection reset") {
		t.Errorf("rendered message should include the cause, got %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestError_Kinds(t *testing.T) {
	resp := &Response{StatusCode: 200, Status: "200 OK", Headers: make(http.Header)}

	tests := []struct {
		name        string
		err         *Error
		hasResponse bool
	}{
		{"transport", newTransportError("id", errors.New("dns")), false},
		{"status", newStatusError("id", &Response{StatusCode: 500, Headers: make(http.Header)}), true},
		{"decode", newDecodeError("id", resp, errors.New("bad json")), true},
		{"guard", newGuardError("id", resp), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Response != nil; got != tt.hasResponse {
				t.Errorf("expected hasResponse=%v, got %v", tt.hasResponse, got)
			}
			if got := IsTransport(tt.err); got != !tt.hasResponse {
				t.Errorf("IsTransport = %v, want %v", got, !tt.hasResponse)
			}
		})
	}
}

func TestResponseFrom_ForeignError(t *testing.T) {
	if got := ResponseFrom(errors.New("not ours")); got != nil {
		t.Errorf("expected nil for foreign error, got %+v", got)
	}
}
