package resttest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func doJSON(t *testing.T, method, url string, body map[string]any) (*http.Response, map[string]any) {
	t.Helper()
	var payload *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var model map[string]any
	json.NewDecoder(resp.Body).Decode(&model)
	return resp, model
}

func TestCRUDLifecycle(t *testing.T) {
	srv := New([]string{"users"})
	defer srv.Close()

	resp, created := doJSON(t, http.MethodPost, srv.URL()+"/users", map[string]any{"name": "alice"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("create did not assign an id")
	}

	resp, got := doJSON(t, http.MethodGet, srv.URL()+"/users/"+id, nil)
	if resp.StatusCode != http.StatusOK || got["name"] != "alice" {
		t.Errorf("get = %d %v", resp.StatusCode, got)
	}

	resp, patched := doJSON(t, http.MethodPatch, srv.URL()+"/users/"+id, map[string]any{"role": "admin"})
	if resp.StatusCode != http.StatusOK || patched["name"] != "alice" || patched["role"] != "admin" {
		t.Errorf("patch = %d %v", resp.StatusCode, patched)
	}

	resp, replaced := doJSON(t, http.MethodPut, srv.URL()+"/users/"+id, map[string]any{"name": "bob"})
	if resp.StatusCode != http.StatusOK || replaced["role"] != nil {
		t.Errorf("put = %d %v, want full replace", resp.StatusCode, replaced)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL()+"/users/"+id, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, srv.URL()+"/users/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete = %d", resp.StatusCode)
	}
}

func TestNestedCollectionsAreIndependent(t *testing.T) {
	srv := New([]string{"users/posts"})
	defer srv.Close()

	srv.Seed("/users/1/posts", "a", map[string]any{"title": "first"})
	srv.Seed("/users/2/posts", "b", map[string]any{"title": "second"})

	resp, _ := doJSON(t, http.MethodGet, srv.URL()+"/users/1/posts/a", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("users/1 post = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, srv.URL()+"/users/1/posts/b", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("cross-collection read = %d, want 404", resp.StatusCode)
	}
}

func TestSharedPrefixRoutesRegisterOnce(t *testing.T) {
	// Duplicate gin routes panic; overlapping declarations must not.
	srv := New([]string{"users", "users/posts", "users/comments"})
	defer srv.Close()

	resp, _ := doJSON(t, http.MethodGet, srv.URL()+"/users", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("list status = %d", resp.StatusCode)
	}
}

func TestListOrder(t *testing.T) {
	srv := New([]string{"users"})
	defer srv.Close()

	srv.Seed("/users", "1", map[string]any{"name": "a"})
	srv.Seed("/users", "2", map[string]any{"name": "b"})

	req, _ := http.NewRequest(http.MethodGet, srv.URL()+"/users", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var models []map[string]any
	json.NewDecoder(resp.Body).Decode(&models)
	if len(models) != 2 || models[0]["id"] != "1" || models[1]["id"] != "2" {
		t.Errorf("list = %v, want insertion order", models)
	}
}
