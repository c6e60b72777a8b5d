package microhttp

import (
	"encoding/json"
	"fmt"
)

// decodeMode selects the decode strategy for a response body.
type decodeMode int

const (
	decodeModeText decodeMode = iota
	decodeModeJSON
)

// decodeModes maps a response media type to its decode strategy. A missing
// Content-Type defaults to JSON; anything not listed decodes as plain text.
// This table is part of the stable external contract.
var decodeModes = map[string]decodeMode{
	"":                 decodeModeJSON,
	"application/json": decodeModeJSON,
}

// decodeModeFor picks the strategy for a Content-Type header value.
func decodeModeFor(contentType string) decodeMode {
	if mode, ok := decodeModes[mediaType(contentType)]; ok {
		return mode
	}
	return decodeModeText
}

// decodeResponse materializes the response body as T according to the
// response's declared content type.
func decodeResponse[T any](resp *Response) (T, error) {
	var out T

	switch decodeModeFor(resp.ContentType()) {
	case decodeModeJSON:
		if len(resp.Body) == 0 {
			return out, nil
		}
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			return out, err
		}
		return out, nil
	default:
		if v, ok := any(string(resp.Body)).(T); ok {
			return v, nil
		}
		if v, ok := any(append([]byte(nil), resp.Body...)).(T); ok {
			return v, nil
		}
		return out, fmt.Errorf("text response is not assignable to %T", out)
	}
}
