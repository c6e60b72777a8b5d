package microhttp

import (
	"fmt"
	"net/url"
)

// resolveURL resolves rawURL against the client's base URL and serializes
// query into the query string, replacing any query string already present.
// An absolute rawURL ignores the base entirely.
func resolveURL(base *url.URL, rawURL string, query any) (*url.URL, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse request url %q: %w", rawURL, err)
	}

	resolved := base.ResolveReference(ref)

	q, err := queryValues(query)
	if err != nil {
		return nil, err
	}
	if q != nil {
		resolved.RawQuery = q.Encode()
	}

	return resolved, nil
}

// queryValues normalizes the supported query shapes into url.Values.
// Array-like values become repeated occurrences of their key.
func queryValues(query any) (url.Values, error) {
	switch q := query.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return q, nil
	case map[string][]string:
		return url.Values(q), nil
	case map[string]string:
		values := make(url.Values, len(q))
		for k, v := range q {
			values.Set(k, v)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("unsupported query type %T", query)
	}
}
