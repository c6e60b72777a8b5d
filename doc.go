// Package microhttp provides a small, configurable HTTP request client built
// on top of an injectable transport capability. Every call is turned into a
// tagged Result value: the request operation never returns a Go error and
// never panics for operational failures, so callers branch on the Result's
// OK discriminant instead of wrapping calls in error plumbing.
//
// The pipeline for a single call is: merge client default headers with
// call-level headers, serialize the body according to the declared
// content type, resolve the request URL against the base URL, dispatch via
// the transport exactly once, then decode the response by its content type
// and optionally validate its shape with a caller-supplied guard.
//
// # Basic Usage
//
//	client, err := microhttp.New(microhttp.Config{
//	    BaseURL: "https://api.example.com",
//	    Headers: map[string]string{"Accept": "application/json"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	res := microhttp.Get[User](ctx, client, "/users/123")
//	if !res.OK {
//	    log.Printf("lookup failed: %v", res.Err)
//	    return
//	}
//	fmt.Println(res.Data.Name)
//
// # Failure Model
//
// Transport failures, non-2xx statuses, undecodable bodies, and guard
// rejections all surface as the failure branch of the Result, carrying a
// single *Error that preserves the raw response (when one was received) and
// the underlying cause. Truly malformed inputs, such as an unparseable
// request URL or a body JSON cannot represent, are programmer errors and
// panic rather than being modeled as Results.
//
// # Transport
//
// The network primitive is the Doer interface; it defaults to a *http.Client
// honoring Config.Timeout. Retry, caching, and cancellation policy belong to
// the injected transport and the caller's context, not to this package.
package microhttp
