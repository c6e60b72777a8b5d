package microhttp

import "net/http"

// mergeHeaders overlays call-level headers onto client defaults. Call-level
// values win key-by-key; keys present only in the defaults are preserved.
// http.Header canonicalization makes the merge case-insensitive.
func mergeHeaders(defaults, overrides map[string]string) http.Header {
	merged := make(http.Header, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged.Set(k, v)
	}
	for k, v := range overrides {
		merged.Set(k, v)
	}
	return merged
}
