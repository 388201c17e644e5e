package avl

// CompareFunc is the total order capability over keys.
//
// It returns a negative number if a sorts before b, zero if both are
// equal, and a positive number if a sorts after b. The order must be
// strict and total, and a tree must be used with one consistent
// comparator for its whole lifetime.
type CompareFunc[K any] func(a, b K) int

// Node is one vertex of a persistent AVL tree.
//
// A nil *Node is the empty tree. A childless node is a leaf holding
// exactly one entry at height 1. A branch additionally carries its two
// subtrees and a cached height, recomputed on every construction as
// 1 + max(height(left), height(right)). Nodes are never modified after
// construction, so subtrees may be aliased freely across any number of
// tree versions.
type Node[K, V any] struct {
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
	height int
}

// Key returns the entry key stored in n.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the entry value stored in n.
func (n *Node[K, V]) Value() V { return n.value }

// Left returns the left subtree. Read-only structure access, mainly
// for diagnostic output.
func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree. Read-only structure access, mainly
// for diagnostic output.
func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of n, 0 for the empty tree.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// IsLeaf reports whether n holds exactly one entry.
func (n *Node[K, V]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Count returns the number of entries in n.
//
// Entry counts are not cached in nodes; this is a full traversal.
func Count[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return Count(n.left) + 1 + Count(n.right)
}

// makeLeaf creates a single-entry subtree.
func makeLeaf[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, height: 1}
}

// makeBranch rebuilds a node from its parts, recomputing the cached
// height. It never rotates.
func makeBranch[K, V any](left *Node[K, V], key K, value V, right *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		left:   left,
		right:  right,
		height: 1 + max(left.Height(), right.Height()),
	}
}

// rebalance rebuilds a node after a single-level change, rotating when
// one side has grown more than two levels taller than the other.
//
// The threshold is 2, not the classic AVL 1: the tree tolerates
// slightly looser balance in exchange for fewer rotations, and height
// stays O(log n). A double rotation is chosen exactly when the taller
// child's inner grandchild reaches above the short side plus one.
func rebalance[K, V any](left *Node[K, V], key K, value V, right *Node[K, V]) *Node[K, V] {
	hl := left.Height()
	hr := right.Height()
	if hr > hl+2 {
		// right-heavy
		assert(right != nil, "rebalance: right-heavy over empty right subtree")
		if right.left.Height() > hl+1 {
			// inner grandchild too tall: rotate it to the top
			rl := right.left
			return makeBranch(
				makeBranch(left, key, value, rl.left),
				rl.key, rl.value,
				makeBranch(rl.right, right.key, right.value, right.right),
			)
		}
		// single left rotation
		return makeBranch(
			makeBranch(left, key, value, right.left),
			right.key, right.value,
			right.right,
		)
	}
	if hl > hr+2 {
		// left-heavy, mirrored
		assert(left != nil, "rebalance: left-heavy over empty left subtree")
		if left.right.Height() > hr+1 {
			lr := left.right
			return makeBranch(
				makeBranch(left.left, left.key, left.value, lr.left),
				lr.key, lr.value,
				makeBranch(lr.right, key, value, right),
			)
		}
		// single right rotation
		return makeBranch(
			left.left,
			left.key, left.value,
			makeBranch(left.right, key, value, right),
		)
	}
	return makeBranch(left, key, value, right)
}
