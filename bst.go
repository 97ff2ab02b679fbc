// Package bst implements an ordered key-value map backed by an
// unbalanced binary search tree.
package bst

import (
	"cmp"
	"fmt"
)

type (
	tree[K cmp.Ordered, V any] struct {
		size int
		root *node[K, V]
	}

	// node owns its subtrees exclusively, a nil child means no subtree
	node[K cmp.Ordered, V any] struct {
		key   K
		value V
		left  *node[K, V]
		right *node[K, V]
	}
)

func newNode[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
	}
}

func (n *node[K, V]) String() string {
	return fmt.Sprintf("node(key=%v, value=%v)", n.key, n.value)
}
