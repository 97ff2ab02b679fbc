package bst

import "cmp"

// find the minimum node under n, the leftmost of its subtree
func (n *node[K, V]) minimum() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// checkBalance computes subtree height and balance in a single pass so
// ancestors reuse child heights instead of recomputing them per level.
// It always descends the full subtree, an imbalance found below must not
// cut the height computation short.
func (n *node[K, V]) checkBalance() (int, bool) {
	if n == nil {
		return 0, true
	}

	leftHeight, leftBalanced := n.left.checkBalance()
	rightHeight, rightBalanced := n.right.checkBalance()

	diff := leftHeight - rightHeight
	if diff < 0 {
		diff = -diff
	}
	return 1 + max(leftHeight, rightHeight), leftBalanced && rightBalanced && diff <= 1
}

// in-order walk over the subtree, kept for verification in tests
func (n *node[K, V]) inorder(visit func(*node[K, V])) {
	if n == nil {
		return
	}
	n.left.inorder(visit)
	visit(n)
	n.right.inorder(visit)
}

// modify the owning ref of a subtree in place, ** means ref to pointer
func replaceRef[K cmp.Ordered, V any](ref **node[K, V], n *node[K, V]) {
	*ref = n
}
