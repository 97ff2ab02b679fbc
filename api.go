package bst

import "cmp"

// Map is an ordered key-value store backed by an unbalanced binary search
// tree. Keys are unique and ordered by <; the tree is not self-balancing
// and may degrade to a chain under sorted insertion order. Not safe for
// concurrent use.
type Map[K cmp.Ordered, V any] interface {
	Insert(key K, value V)
	Search(key K) (V, bool)
	Delete(key K) bool
	// Height is the number of nodes on the longest root-to-leaf path,
	// 0 for an empty tree.
	Height() int
	// IsBalanced reports whether every node's left and right subtree
	// heights differ by at most 1.
	IsBalanced() bool
	Size() int
}

func New[K cmp.Ordered, V any]() Map[K, V] {
	return &tree[K, V]{}
}
