package tree

import "sort"

// Node is one level of the merged resource hierarchy. A node with no
// children is a leaf; merging a deeper path through it promotes it to an
// internal node in place, keeping previously placed siblings.
type Node struct {
	children map[string]*Node
	order    []string
}

// Child returns the named child, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// Children returns the child names in merge order.
func (n *Node) Children() []string {
	return n.order
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// ensure returns the named child, creating it as a leaf if absent.
func (n *Node) ensure(name string) *Node {
	if child, ok := n.children[name]; ok {
		return child
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	child := &Node{}
	n.children[name] = child
	n.order = append(n.order, name)
	return child
}

// Merge folds an ordered list of segment sequences into one tree rooted at
// the returned node. Longer sequences are merged first so that a resource
// declared both standalone and as a prefix of a deeper path becomes an
// internal node; equal-length sequences keep their declaration order.
func Merge(seqs [][]string) *Node {
	sorted := make([][]string, len(seqs))
	copy(sorted, seqs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	root := &Node{}
	for _, segs := range sorted {
		n := root
		for _, seg := range segs {
			n = n.ensure(seg)
		}
	}
	return root
}
