package restree

import "context"

// HookRequest is the view of a pending call handed to the BeforeEach hook.
type HookRequest struct {
	// Verb is the canonical verb being invoked.
	Verb Verb
	// Route is the computed URL for the call.
	Route string
	// Properties is the body payload as supplied by the caller.
	Properties map[string]any
	// Query are the query parameters as supplied by the caller.
	Query map[string]string
	// Headers are the merged default and per-resource headers.
	Headers map[string]string
}

// Overrides are shallow-merged over the pending request before the
// transport call; keys present here win over the originals.
type Overrides struct {
	Headers    map[string]string
	Properties map[string]any
	Query      map[string]string
}

// Hook runs before every transport call. Returning an error skips the
// transport call and surfaces the error to the caller; returning a nil
// Overrides leaves the request untouched.
type Hook func(ctx context.Context, req *HookRequest) (*Overrides, error)

// applyOverrides shallow-merges ov into req.
func applyOverrides(req *Request, ov *Overrides) {
	if ov == nil {
		return
	}
	if len(ov.Headers) > 0 {
		if req.Headers == nil {
			req.Headers = make(map[string]string, len(ov.Headers))
		}
		for k, v := range ov.Headers {
			req.Headers[k] = v
		}
	}
	if len(ov.Properties) > 0 {
		if req.Properties == nil {
			req.Properties = make(map[string]any, len(ov.Properties))
		}
		for k, v := range ov.Properties {
			req.Properties[k] = v
		}
	}
	if len(ov.Query) > 0 {
		if req.Query == nil {
			req.Query = make(map[string]string, len(ov.Query))
		}
		for k, v := range ov.Query {
			req.Query[k] = v
		}
	}
}
