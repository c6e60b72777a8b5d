package microhttp

import "net/http"

// Doer is the transport capability that performs a single network request.
// *http.Client satisfies it; tests and callers wanting custom timeout, retry,
// or abort policy inject their own implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

// Do implements Doer.
func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// defaultTransport builds the fallback transport used when none is injected.
func defaultTransport(cfg Config) Doer {
	return &http.Client{Timeout: cfg.Timeout}
}
