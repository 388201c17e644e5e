package avl

// Insert returns a tree with key bound to value. An existing binding
// for key is overwritten in place of the old entry without changing
// the tree shape. The input tree remains valid and unchanged; ancestors
// of the touched position are rebuilt, everything else is shared.
func Insert[K, V any](n *Node[K, V], compare CompareFunc[K], key K, value V) *Node[K, V] {
	assert(compare != nil, "avl: Insert requires a comparator")
	if n == nil {
		return makeLeaf(key, value)
	}
	c := compare(key, n.key)
	if n.IsLeaf() {
		switch {
		case c < 0:
			return makeBranch(nil, key, value, n)
		case c > 0:
			return makeBranch(n, key, value, nil)
		default:
			return makeLeaf(key, value)
		}
	}
	switch {
	case c < 0:
		return rebalance(Insert(n.left, compare, key, value), n.key, n.value, n.right)
	case c > 0:
		return rebalance(n.left, n.key, n.value, Insert(n.right, compare, key, value))
	default:
		// same key: replace the value, keep the shape
		return &Node[K, V]{key: key, value: value, left: n.left, right: n.right, height: n.height}
	}
}

// Delete returns a tree without key. Deleting an absent key is a no-op
// and returns the original tree, pointer-identical. When a branch with
// two children is removed, the successor (the minimum of the right
// subtree) is spliced out and takes its place.
func Delete[K, V any](n *Node[K, V], compare CompareFunc[K], key K) *Node[K, V] {
	assert(compare != nil, "avl: Delete requires a comparator")
	if n == nil {
		return nil
	}
	c := compare(key, n.key)
	if n.IsLeaf() {
		if c == 0 {
			return nil
		}
		return n
	}
	switch {
	case c < 0:
		left := Delete(n.left, compare, key)
		if left == n.left {
			return n
		}
		return rebalance(left, n.key, n.value, n.right)
	case c > 0:
		right := Delete(n.right, compare, key)
		if right == n.right {
			return n
		}
		return rebalance(n.left, n.key, n.value, right)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		sk, sv, right := spliceOutSuccessor(n.right)
		return rebalance(n.left, sk, sv, right)
	}
}

// spliceOutSuccessor removes the minimum entry of n and returns it
// together with the remainder of the subtree.
func spliceOutSuccessor[K, V any](n *Node[K, V]) (K, V, *Node[K, V]) {
	assert(n != nil, "avl: spliceOutSuccessor on empty subtree")
	if n.left == nil {
		return n.key, n.value, n.right
	}
	k, v, left := spliceOutSuccessor(n.left)
	return k, v, rebalance(left, n.key, n.value, n.right)
}

// Lookup returns the value bound to key, with ok reporting presence.
// Absence is not an error condition here; see Find for the loud
// variant.
func Lookup[K, V any](n *Node[K, V], compare CompareFunc[K], key K) (V, bool) {
	assert(compare != nil, "avl: Lookup requires a comparator")
	for n != nil {
		c := compare(key, n.key)
		switch {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// Find returns the value bound to key or ErrKeyNotFound.
func Find[K, V any](n *Node[K, V], compare CompareFunc[K], key K) (V, error) {
	if v, ok := Lookup(n, compare, key); ok {
		return v, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Contains reports whether key is present in n.
func Contains[K, V any](n *Node[K, V], compare CompareFunc[K], key K) bool {
	_, ok := Lookup(n, compare, key)
	return ok
}

// Min returns the smallest entry of n, with ok false for the empty
// tree.
func Min[K, V any](n *Node[K, V]) (key K, value V, ok bool) {
	if n == nil {
		return key, value, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the largest entry of n, with ok false for the empty
// tree.
func Max[K, V any](n *Node[K, V]) (key K, value V, ok bool) {
	if n == nil {
		return key, value, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}
