package microhttp

import (
	"encoding/json"
	"io"
	"net/http"
)

// Request describes a single outbound HTTP request. The zero value is a
// GET of the base URL's root path.
type Request struct {
	// URL is absolute or relative to the client's BaseURL. Defaults to "/".
	URL string
	// Method is the HTTP verb. Defaults to GET.
	Method string
	// Headers are call-level headers, overriding client defaults key-by-key.
	Headers map[string]string
	// Query is appended to the URL, replacing any query string already
	// present. Accepts map[string]string, map[string][]string, or a
	// pre-built url.Values.
	Query any
	// Body is the request body. io.Reader, []byte, string, url.Values, and
	// *MultipartBody pass through untouched; anything else is serialized
	// according to the declared Content-Type. See encodeBody.
	Body any
	// Guard optionally validates the decoded response body. A false return
	// fails the call even though the HTTP status was successful.
	Guard func(data any) bool
}

// applyDefaults fills the zero-value request fields.
func (r *Request) applyDefaults() {
	if r.Method == "" {
		r.Method = http.MethodGet
	}
	if r.URL == "" {
		r.URL = "/"
	}
}

// Response is the raw result of a dispatched request, with the body fully
// read into memory.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the full status line, e.g. "200 OK".
	Status string
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ContentType returns the response's Content-Type header.
func (r *Response) ContentType() string {
	return r.Headers.Get("Content-Type")
}

// JSON decodes the body into out, regardless of the declared content type.
func (r *Response) JSON(out any) error {
	return json.Unmarshal(r.Body, out)
}

// readResponse drains and closes the raw body.
func readResponse(raw *http.Response) (*Response, error) {
	defer func() { _ = raw.Body.Close() }()

	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: raw.StatusCode,
		Status:     raw.Status,
		Headers:    raw.Header.Clone(),
		Body:       body,
	}, nil
}
