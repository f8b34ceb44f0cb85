// Package restree builds a callable REST resource hierarchy from a
// declarative list of endpoint paths.
//
// Declarations sharing a path prefix are merged into one tree, and every
// node exposes CRUD verbs operating on its computed route:
//
//	api, err := restree.New(restree.Config{
//	    Root: "https://api.example.com",
//	    Endpoints: []endpoint.Declaration{
//	        endpoint.Simple("users"),
//	        endpoint.Simple("users/posts"),
//	    },
//	    Request: transport.New(transport.Config{}),
//	})
//
//	users := api.Resource("users")
//	res, err := users.ID(9000).Child("posts").Create(ctx, map[string]any{"title": "t"})
//	// POST https://api.example.com/users/9000/posts
//
// The transport is an abstract collaborator: any
// restree.RequestFunc works. Package transport provides the net/http
// implementation; package config loads declarations from YAML.
//
// Construction is synchronous and performs no I/O. The compiled hierarchy
// is immutable: ID and Child return fresh node values, so concurrent
// navigation to different identifiers never interferes.
package restree
