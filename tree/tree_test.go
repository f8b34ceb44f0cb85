package tree

import (
	"reflect"
	"testing"
)

func TestMergeSharedPrefix(t *testing.T) {
	root := Merge([][]string{
		{"users", "posts"},
		{"users", "comments"},
	})

	if got := root.Children(); !reflect.DeepEqual(got, []string{"users"}) {
		t.Fatalf("top-level = %v, want [users]", got)
	}
	users := root.Child("users")
	if got := users.Children(); !reflect.DeepEqual(got, []string{"posts", "comments"}) {
		t.Errorf("users children = %v, want [posts comments]", got)
	}
	if !users.Child("posts").IsLeaf() {
		t.Error("posts should be a leaf")
	}
}

func TestMergePromotesStandaloneToInternal(t *testing.T) {
	// "users" is declared standalone and as a parent; longer-first merge
	// must leave it internal.
	root := Merge([][]string{
		{"users"},
		{"users", "posts"},
	})

	users := root.Child("users")
	if users == nil {
		t.Fatal("users missing")
	}
	if users.IsLeaf() {
		t.Error("users should be internal")
	}
	if users.Child("posts") == nil {
		t.Error("posts child missing")
	}
}

func TestMergeStableOrderAmongEqualLengths(t *testing.T) {
	root := Merge([][]string{
		{"zebras"},
		{"accounts"},
		{"users"},
	})
	want := []string{"zebras", "accounts", "users"}
	if got := root.Children(); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestMergeDoesNotDuplicateNodes(t *testing.T) {
	root := Merge([][]string{
		{"users", "posts", "tags"},
		{"users", "posts"},
		{"users"},
	})
	if got := len(root.Children()); got != 1 {
		t.Fatalf("expected 1 top-level node, got %d", got)
	}
	posts := root.Child("users").Child("posts")
	if posts == nil || posts.Child("tags") == nil {
		t.Fatal("deep chain not merged")
	}
}

func TestMergeEmpty(t *testing.T) {
	root := Merge(nil)
	if !root.IsLeaf() {
		t.Error("empty merge should produce a bare root")
	}
}
