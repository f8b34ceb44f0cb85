// Package tree folds path-segment sequences into a single prefix tree so
// that declarations sharing a prefix share one node. "users/posts" and
// "users/comments" produce one "users" node with two children; a name
// declared both standalone and as a parent of a deeper path ends up as an
// internal node, not a leaf.
package tree
