package restree_test

import (
	"context"
	"testing"

	"github.com/kbukum/restree"
	"github.com/kbukum/restree/endpoint"
	"github.com/kbukum/restree/resttest"
	"github.com/kbukum/restree/transport"
)

// TestFullStackCRUD drives a compiled hierarchy through the default
// transport against the in-memory API.
func TestFullStackCRUD(t *testing.T) {
	srv := resttest.New([]string{"users", "users/posts"})
	defer srv.Close()

	api, err := restree.New(restree.Config{
		Root: srv.URL(),
		Endpoints: []endpoint.Declaration{
			endpoint.Simple("users"),
			endpoint.Simple("users/posts"),
		},
		Request: transport.New(transport.Config{}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	users := api.Resource("users")

	res, err := users.Create(ctx, map[string]any{"name": "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != 201 {
		t.Fatalf("create status = %d", res.Status)
	}
	id, _ := res.Model.(map[string]any)["id"].(string)
	if id == "" {
		t.Fatal("no id in create response")
	}

	alice := users.ID(id)
	res, err = alice.Get(ctx, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if res.Model.(map[string]any)["name"] != "alice" {
		t.Errorf("get model = %v", res.Model)
	}

	if _, err := alice.Patch(ctx, map[string]any{"role": "admin"}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	res, err = alice.Child("posts").Create(ctx, map[string]any{"title": "t"})
	if err != nil {
		t.Fatalf("nested create: %v", err)
	}
	postID, _ := res.Model.(map[string]any)["id"].(string)

	res, err = alice.Child("posts").List(ctx, nil)
	if err != nil {
		t.Fatalf("nested list: %v", err)
	}
	posts, ok := res.Model.([]any)
	if !ok || len(posts) != 1 {
		t.Fatalf("posts = %v, want one entry", res.Model)
	}

	if _, err := alice.Child("posts").ID(postID).Delete(ctx); err != nil {
		t.Fatalf("nested delete: %v", err)
	}
	if _, err := alice.Child("posts").ID(postID).Get(ctx, nil); err == nil {
		t.Error("expected not-found error after delete")
	}
}

// TestFullStackNotFoundClassification checks the transport error shape
// surfaces through the verb call unchanged.
func TestFullStackNotFoundClassification(t *testing.T) {
	srv := resttest.New([]string{"users"})
	defer srv.Close()

	api, err := restree.New(restree.Config{
		Root:      srv.URL(),
		Endpoints: []endpoint.Declaration{endpoint.Simple("users")},
		Request:   transport.New(transport.Config{}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := api.Resource("users").ID("missing").Get(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	terr, ok := err.(*transport.Error)
	if !ok || terr.Code != transport.ErrCodeNotFound {
		t.Errorf("err = %v, want transport not_found", err)
	}
	if res == nil || res.Status != 404 {
		t.Errorf("result = %+v, want populated 404 result", res)
	}
}

// TestFullStackBeforeEachToken injects an auth-style header via the hook
// and checks it reaches the transport merged with the JSON defaults.
func TestFullStackBeforeEachToken(t *testing.T) {
	srv := resttest.New([]string{"users"})
	defer srv.Close()

	base := transport.New(transport.Config{})
	var wire restree.Request
	api, err := restree.New(restree.Config{
		Root:      srv.URL(),
		Endpoints: []endpoint.Declaration{endpoint.Simple("users")},
		BeforeEach: func(context.Context, *restree.HookRequest) (*restree.Overrides, error) {
			return &restree.Overrides{Headers: map[string]string{"X-Token": "abc"}}, nil
		},
		Request: func(ctx context.Context, req restree.Request) (*restree.Result, error) {
			wire = req
			return base(ctx, req)
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := api.Resource("users").List(context.Background(), nil); err != nil {
		t.Fatalf("list: %v", err)
	}
	if wire.Headers["X-Token"] != "abc" {
		t.Errorf("headers = %v, want hook token merged", wire.Headers)
	}
	if wire.Headers["Accept"] != "application/json" {
		t.Errorf("headers = %v, want JSON defaults kept", wire.Headers)
	}
}
