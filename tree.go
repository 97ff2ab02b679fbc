package bst

func (t *tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, V]) Insert(key K, value V) {
	ref := t.find(key)
	if curr := *ref; curr != nil {
		// overwrite in place, no structural change
		curr.value = value
		return
	}
	replaceRef(ref, newNode(key, value))
	t.size++
}

func (t *tree[K, V]) Search(key K) (V, bool) {
	if curr := *t.find(key); curr != nil {
		return curr.value, true
	}
	var zero V
	return zero, false
}

// find walks from the root and returns the ref holding the node with the
// given key, or the nil ref where such a node would be attached.
func (t *tree[K, V]) find(key K) **node[K, V] {
	ref := &t.root
	for curr := *ref; curr != nil; curr = *ref {
		if key == curr.key {
			break
		}
		if key < curr.key {
			ref = &curr.left
		} else {
			ref = &curr.right
		}
	}
	return ref
}

func (t *tree[K, V]) Delete(key K) bool {
	if !t.removeNode(&t.root, key) {
		return false
	}
	t.size--
	return true
}

// removeNode unlinks the node with the given key from the subtree owned
// by ref, rewriting refs on the way back up so ownership transfers
// through every ancestor. Reports whether a node was removed.
func (t *tree[K, V]) removeNode(ref **node[K, V], key K) bool {
	curr := *ref
	if curr == nil {
		return false
	}

	if key < curr.key {
		return t.removeNode(&curr.left, key)
	}
	if key > curr.key {
		return t.removeNode(&curr.right, key)
	}

	switch {
	case curr.left == nil && curr.right == nil:
		// leaf, the parent ref becomes empty
		replaceRef(ref, nil)
	case curr.left == nil:
		// splice out, the lone child takes over the position
		replaceRef(ref, curr.right)
	case curr.right == nil:
		replaceRef(ref, curr.left)
	default:
		// two children: promote the in-order successor into this node,
		// then remove its original node from the right subtree. The
		// successor has no left child, so that removal never lands here.
		succ := curr.right.minimum()
		curr.key, curr.value = succ.key, succ.value
		t.removeNode(&curr.right, succ.key)
	}
	return true
}

func (t *tree[K, V]) Height() int {
	return t.root.height()
}

func (t *tree[K, V]) IsBalanced() bool {
	_, balanced := t.root.checkBalance()
	return balanced
}
