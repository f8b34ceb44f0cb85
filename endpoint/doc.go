// Package endpoint models REST endpoint declarations and normalizes them
// into canonical path-segment sequences.
//
// A declaration is either a plain slash-delimited path or a path with
// per-resource options:
//
//	endpoint.Simple("users/posts")
//	endpoint.Configured("accounts", endpoint.Options{
//	    CreateMethod: "put",
//	    Versions:     []string{"v2"},
//	})
//
// Normalize resolves the declarations against the global version prefixes
// and produces the ordered sequences the tree merger consumes.
package endpoint
