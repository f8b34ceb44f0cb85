package restree

import (
	"context"
	"fmt"
	"maps"

	"github.com/kbukum/restree/endpoint"
	"github.com/kbukum/restree/tree"
)

// Resource is one compiled node of the hierarchy. Nodes are immutable:
// ID and Child build fresh values and never mutate the receiver, so
// concurrent navigation to different identifiers never interferes.
//
// A Resource without an identifier operates on the collection route
// (root/.../name); after ID it operates on the instance route
// (root/.../name/id) and its children chain through that instance.
type Resource struct {
	client *Client
	parent *Resource
	node   *tree.Node
	opts   *endpoint.Options

	name  string
	path  string // slash-joined tree position, identifiers excluded
	id    string
	hasID bool
}

// Name returns the resource's segment name.
func (r *Resource) Name() string { return r.name }

// Route computes the fully-qualified URL for this node by walking the
// ancestor chain. Ancestor routes are recomputed on every call, never
// cached across identifier changes.
func (r *Resource) Route() string {
	base := r.client.root
	if r.parent != nil {
		base = r.parent.Route()
	}
	route := base + "/" + r.name
	if r.hasID {
		route += "/" + r.id
	}
	return route
}

// ID returns a fresh node bound to one instance of this resource. The
// identifier is rendered with fmt.Sprint, so numeric ids work as-is.
func (r *Resource) ID(id any) *Resource {
	return &Resource{
		client: r.client,
		parent: r.parent,
		node:   r.node,
		opts:   r.opts,
		name:   r.name,
		path:   r.path,
		id:     fmt.Sprint(id),
		hasID:  true,
	}
}

// Child returns the named child resource with this node as its parent for
// route chaining, or nil if the merged tree has no such child here.
func (r *Resource) Child(name string) *Resource {
	child := r.node.Child(name)
	if child == nil {
		return nil
	}
	path := r.path + "/" + name
	return &Resource{
		client: r.client,
		parent: r,
		node:   child,
		opts:   r.client.options[path],
		name:   name,
		path:   path,
	}
}

// Children returns the child resource names in merged declaration order.
func (r *Resource) Children() []string {
	return r.node.Children()
}

// Create posts the given properties to the resource route.
func (r *Resource) Create(ctx context.Context, props map[string]any) (*Result, error) {
	return r.do(ctx, VerbCreate, props, nil)
}

// Get fetches a single resource representation.
func (r *Resource) Get(ctx context.Context, query map[string]string) (*Result, error) {
	return r.do(ctx, VerbGet, nil, query)
}

// List fetches the resource collection.
func (r *Resource) List(ctx context.Context, query map[string]string) (*Result, error) {
	return r.do(ctx, VerbList, nil, query)
}

// Update replaces the resource with the given properties.
func (r *Resource) Update(ctx context.Context, props map[string]any) (*Result, error) {
	return r.do(ctx, VerbUpdate, props, nil)
}

// Patch partially updates the resource with the given properties.
func (r *Resource) Patch(ctx context.Context, props map[string]any) (*Result, error) {
	return r.do(ctx, VerbPatch, props, nil)
}

// Delete deletes the resource.
func (r *Resource) Delete(ctx context.Context) (*Result, error) {
	return r.do(ctx, VerbDelete, nil, nil)
}

// Invoke dispatches a verb by its public name, honoring AltMethodNames
// renames. A renamed verb is not reachable under its default name.
func (r *Resource) Invoke(ctx context.Context, name string, props map[string]any, query map[string]string) (*Result, error) {
	verb, ok := r.client.verbs[name]
	if !ok {
		return nil, fmt.Errorf("restree: resource %q has no operation %q", r.name, name)
	}
	return r.do(ctx, verb, props, query)
}

// do assembles the request, runs the BeforeEach hook, and hands off to the
// transport. Exactly one outcome is delivered: a hook error skips the
// transport entirely. The caller's property and query maps are cloned so
// hook overrides never write into them.
func (r *Resource) do(ctx context.Context, verb Verb, props map[string]any, query map[string]string) (*Result, error) {
	req := Request{
		URL:        r.Route(),
		Method:     r.method(verb),
		Properties: maps.Clone(props),
		Query:      maps.Clone(query),
		Headers:    r.headers(),
	}

	if hook := r.client.config.BeforeEach; hook != nil {
		ov, err := hook(ctx, &HookRequest{
			Verb:       verb,
			Route:      req.URL,
			Properties: req.Properties,
			Query:      req.Query,
			Headers:    req.Headers,
		})
		if err != nil {
			return nil, err
		}
		applyOverrides(&req, ov)
	}

	return r.client.config.Request(ctx, req)
}

// method resolves the HTTP method for a verb. Only create honors the
// per-resource override; update stays put.
func (r *Resource) method(verb Verb) string {
	if verb == VerbCreate && r.opts != nil && r.opts.CreateMethod != "" {
		return r.opts.CreateMethod
	}
	return defaultMethods[verb]
}

// headers layers the built-in JSON defaults, client defaults, and
// per-resource overrides, later layers winning. A fresh map is built per
// call so hook overrides never leak between invocations.
func (r *Resource) headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	for k, v := range r.client.config.Headers {
		h[k] = v
	}
	if r.opts != nil {
		for k, v := range r.opts.Headers {
			h[k] = v
		}
	}
	return h
}
