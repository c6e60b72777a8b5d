package microhttp

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
	"testing"
)

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	if r == nil {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read payload: %v", err)
	}
	return data
}

func TestEncodeBody_Passthrough(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"string", "raw text", "raw text"},
		{"bytes", []byte("raw bytes"), "raw bytes"},
		{"reader", strings.NewReader("streamed"), "streamed"},
		{"url values", url.Values{"a": {"1"}}, "a=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ct, err := encodeBody(tt.body, "application/json")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ct != "" {
				t.Errorf("passthrough should not rewrite content type, got %q", ct)
			}
			if got := string(readAll(t, r)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEncodeBody_NilProducesNoPayload(t *testing.T) {
	r, ct, err := encodeBody(nil, "application/json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil || ct != "" {
		t.Errorf("expected no payload, got %v %q", r, ct)
	}
}

func TestEncodeBody_JSONRoundTrip(t *testing.T) {
	for _, ct := range []string{"application/json", "text/plain", "application/json; charset=utf-8"} {
		t.Run(ct, func(t *testing.T) {
			r, _, err := encodeBody(map[string]int{"x": 1}, ct)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var decoded map[string]int
			if err := json.Unmarshal(readAll(t, r), &decoded); err != nil {
				t.Fatalf("payload is not valid JSON: %v", err)
			}
			if decoded["x"] != 1 {
				t.Errorf("expected x=1, got %v", decoded)
			}
		})
	}
}

func TestEncodeBody_URLFormRoundTrip(t *testing.T) {
	r, _, err := encodeBody(map[string]string{"a": "1"}, "application/x-www-form-urlencoded")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values, err := url.ParseQuery(string(readAll(t, r)))
	if err != nil {
		t.Fatalf("payload is not a valid form: %v", err)
	}
	if values.Get("a") != "1" {
		t.Errorf("expected a=1, got %v", values)
	}
}

func TestEncodeBody_MultipartRoundTrip(t *testing.T) {
	r, ct, err := encodeBody(map[string]string{"field": "value"}, "multipart/form-data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mt, params, err := mime.ParseMediaType(ct)
	if err != nil || mt != "multipart/form-data" {
		t.Fatalf("expected boundary content type, got %q (%v)", ct, err)
	}

	reader := multipart.NewReader(bytes.NewReader(readAll(t, r)), params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("parse multipart payload: %v", err)
	}
	if got := form.Value["field"]; len(got) != 1 || got[0] != "value" {
		t.Errorf("expected field=value, got %v", form.Value)
	}
}

func TestEncodeBody_HTMLCoercesToString(t *testing.T) {
	r, _, err := encodeBody(42, "text/html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(readAll(t, r)); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
}

func TestEncodeBody_UnrecognizedContentTypeDrops(t *testing.T) {
	for _, ct := range []string{"", "application/xml", "image/png"} {
		t.Run("ct="+ct, func(t *testing.T) {
			r, rewritten, err := encodeBody(map[string]string{"a": "1"}, ct)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r != nil || rewritten != "" {
				t.Errorf("expected dropped body, got %v %q", r, rewritten)
			}
		})
	}
}

func TestEncodeBody_FormRequiresFlatMap(t *testing.T) {
	if _, _, err := encodeBody([]int{1, 2}, "application/x-www-form-urlencoded"); err == nil {
		t.Error("expected error for non-map form body")
	}
	if _, _, err := encodeBody(42, "multipart/form-data"); err == nil {
		t.Error("expected error for non-map multipart body")
	}
}

func TestEncodeBody_AnyMapCoercesValues(t *testing.T) {
	r, _, err := encodeBody(map[string]any{"n": 3}, "application/x-www-form-urlencoded")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values, err := url.ParseQuery(string(readAll(t, r)))
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	if values.Get("n") != "3" {
		t.Errorf("expected n=3, got %v", values)
	}
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"application/json", "application/json"},
		{"Application/JSON; charset=utf-8", "application/json"},
		{"text/plain;charset=us-ascii", "text/plain"},
	}

	for _, tt := range tests {
		if got := mediaType(tt.in); got != tt.want {
			t.Errorf("mediaType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
