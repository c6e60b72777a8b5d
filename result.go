package microhttp

// Result is the tagged outcome of a single request. Exactly one branch is
// populated: OK=true carries Data and the raw Response, OK=false carries Err.
// Callers must branch on OK; a failure Result never has a nil Err.
type Result[T any] struct {
	// OK discriminates the two branches.
	OK bool
	// Data is the decoded response body. Zero value on failure.
	Data T
	// Response is the raw response the success was built from.
	Response *Response
	// Err describes the failure. Nil on success.
	Err *Error
}

// Unpack bridges the Result into Go's conventional (value, error) shape for
// callers composing with error-returning code.
func (r Result[T]) Unpack() (T, error) {
	if r.OK {
		return r.Data, nil
	}
	return r.Data, r.Err
}

// succeed builds the success branch.
func succeed[T any](data T, resp *Response) Result[T] {
	return Result[T]{OK: true, Data: data, Response: resp}
}
