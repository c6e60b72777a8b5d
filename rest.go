package microhttp

import (
	"context"
	"net/http"
	"net/url"
)

// RequestOption configures a single request made through the verb helpers.
type RequestOption func(*Request)

// WithHeaders sets call-level headers, overriding client defaults.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		r.Headers = headers
	}
}

// WithHeader adds one call-level header.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQuery sets the query parameters (map[string]string,
// map[string][]string, or url.Values).
func WithQuery(query any) RequestOption {
	return func(r *Request) {
		r.Query = query
	}
}

// WithQueryParam adds one query parameter. The existing query is copied, so
// a map or url.Values the caller handed to WithQuery is never mutated.
func WithQueryParam(key, value string) RequestOption {
	return func(r *Request) {
		values, err := queryValues(r.Query)
		if err != nil {
			panic("microhttp: " + err.Error())
		}
		merged := make(url.Values, len(values)+1)
		for k, vs := range values {
			merged[k] = append([]string(nil), vs...)
		}
		merged.Add(key, value)
		r.Query = merged
	}
}

// WithGuard sets the shape validator applied to the decoded response body.
func WithGuard(guard func(data any) bool) RequestOption {
	return func(r *Request) {
		r.Guard = guard
	}
}

// Get performs a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, url string, opts ...RequestOption) Result[T] {
	return doVerb[T](ctx, c, http.MethodGet, url, nil, opts...)
}

// Post performs a POST request with the given body and decodes the response
// into T.
func Post[T any](ctx context.Context, c *Client, url string, body any, opts ...RequestOption) Result[T] {
	return doVerb[T](ctx, c, http.MethodPost, url, body, opts...)
}

// Put performs a PUT request with the given body and decodes the response
// into T.
func Put[T any](ctx context.Context, c *Client, url string, body any, opts ...RequestOption) Result[T] {
	return doVerb[T](ctx, c, http.MethodPut, url, body, opts...)
}

// Patch performs a PATCH request with the given body and decodes the
// response into T.
func Patch[T any](ctx context.Context, c *Client, url string, body any, opts ...RequestOption) Result[T] {
	return doVerb[T](ctx, c, http.MethodPatch, url, body, opts...)
}

// Delete performs a DELETE request and decodes the response into T.
func Delete[T any](ctx context.Context, c *Client, url string, opts ...RequestOption) Result[T] {
	return doVerb[T](ctx, c, http.MethodDelete, url, nil, opts...)
}

func doVerb[T any](ctx context.Context, c *Client, method, url string, body any, opts ...RequestOption) Result[T] {
	req := Request{
		Method: method,
		URL:    url,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	// The verb helpers are JSON-leaning: a plain data body with no declared
	// content type is sent as application/json.
	if body != nil && !isNativePayload(body) {
		if mergeHeaders(c.config.Headers, req.Headers).Get("Content-Type") == "" {
			WithHeader("Content-Type", "application/json")(&req)
		}
	}

	return Do[T](ctx, c, req)
}
