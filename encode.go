package microhttp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"
)

// encoderFunc serializes a body value for one content type. The returned
// content type, when non-empty, replaces the declared header value (used by
// multipart to carry the boundary).
type encoderFunc func(body any) (io.Reader, string, error)

// bodyEncoders maps a declared media type to its serializer. This table is
// part of the stable external contract.
var bodyEncoders = map[string]encoderFunc{
	"application/json":                  encodeJSON,
	"text/plain":                        encodeJSON,
	"multipart/form-data":               encodeMultipartForm,
	"application/x-www-form-urlencoded": encodeURLForm,
	"text/html":                         encodeText,
}

// encodeBody turns a call-supplied body into a transport payload. Native
// payload kinds pass through untouched; everything else branches on the
// declared content type. An unrecognized content type drops the body
// silently, matching the documented contract.
func encodeBody(body any, contentType string) (io.Reader, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "", nil
	case url.Values:
		return strings.NewReader(v.Encode()), "", nil
	case *MultipartBody:
		return v.encode()
	}

	encode, ok := bodyEncoders[mediaType(contentType)]
	if !ok {
		return nil, "", nil
	}
	return encode(body)
}

func encodeJSON(body any) (io.Reader, string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "", nil
}

func encodeURLForm(body any) (io.Reader, string, error) {
	fields, err := formFields(body)
	if err != nil {
		return nil, "", err
	}
	values := make(url.Values, len(fields))
	for k, v := range fields {
		values.Set(k, v)
	}
	return strings.NewReader(values.Encode()), "", nil
}

func encodeMultipartForm(body any) (io.Reader, string, error) {
	fields, err := formFields(body)
	if err != nil {
		return nil, "", err
	}
	m := &MultipartBody{Fields: fields}
	return m.encode()
}

func encodeText(body any) (io.Reader, string, error) {
	return strings.NewReader(fmt.Sprint(body)), "", nil
}

// formFields coerces the flat string maps accepted by the form encoders.
func formFields(body any) (map[string]string, error) {
	switch v := body.(type) {
	case map[string]string:
		return v, nil
	case map[string]any:
		fields := make(map[string]string, len(v))
		for k, val := range v {
			fields[k] = fmt.Sprint(val)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("form body must be a flat string map, got %T", body)
	}
}

// isNativePayload reports whether body is one of the transport's native
// payload kinds that pass through serialization untouched.
func isNativePayload(body any) bool {
	switch body.(type) {
	case nil, io.Reader, []byte, string, url.Values, *MultipartBody:
		return true
	}
	return false
}

// mediaType extracts the bare media type from a Content-Type header value.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Fall back to the raw value before any parameters.
		mt, _, _ = strings.Cut(contentType, ";")
		return strings.ToLower(strings.TrimSpace(mt))
	}
	return mt
}
