package restree

import "context"

// Request is the transport-neutral description of a single REST call.
type Request struct {
	// URL is the fully-qualified request URL computed from the route.
	URL string
	// Method is the lowercase HTTP method name.
	Method string
	// Properties is the body payload; nil for body-less verbs.
	Properties map[string]any
	// Query are query-string parameters; nil when none.
	Query map[string]string
	// Headers are the fully-merged request headers.
	Headers map[string]string
}

// Result is what a transport reports for a completed call.
type Result struct {
	// Status is the HTTP status code.
	Status int
	// Model is the decoded response body.
	Model any
	// Body is the raw response body.
	Body []byte
}

// RequestFunc is the abstract transport collaborator. The core never
// retries, inspects status codes, or transforms errors; whatever the
// transport reports is forwarded verbatim, exactly once per invocation.
// A transport may return both a populated Result and an error (e.g. a
// non-2xx response alongside its classification).
type RequestFunc func(ctx context.Context, req Request) (*Result, error)
