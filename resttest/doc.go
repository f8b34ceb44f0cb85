// Package resttest runs an in-memory REST API for exercising restree
// clients end to end. Given the same declarative paths a client is built
// from, it registers conventional CRUD routes and stores models in memory:
//
//	srv := resttest.New([]string{"users", "users/posts"})
//	defer srv.Close()
//
//	api, _ := restree.New(restree.Config{
//	    Root:      srv.URL(),
//	    Endpoints: []endpoint.Declaration{endpoint.Simple("users")},
//	    Request:   transport.New(transport.Config{}),
//	})
//
// Collections are keyed by the concrete request path, so /users/1/posts and
// /users/2/posts are independent. Parent existence is not enforced.
package resttest
