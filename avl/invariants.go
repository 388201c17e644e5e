package avl

import "fmt"

// Check validates the structural invariants of a tree: strict key
// ordering under compare, correctness of every cached height, and the
// balance bound |height(left) − height(right)| ≤ 2 on every branch.
//
// This checker is intentionally strict and visits every node; it is
// meant for tests.
func Check[K, V any](n *Node[K, V], compare CompareFunc[K]) error {
	if compare == nil {
		return fmt.Errorf("%w: comparator is nil", ErrInvalidComparator)
	}
	_, err := checkNode(n, compare, nil, nil)
	return err
}

func checkNode[K, V any](n *Node[K, V], compare CompareFunc[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v does not sort above its lower bound", ErrInvariant, n.key)
	}
	if hi != nil && compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v does not sort below its upper bound", ErrInvariant, n.key)
	}
	hl, err := checkNode(n.left, compare, lo, &n.key)
	if err != nil {
		return 0, err
	}
	hr, err := checkNode(n.right, compare, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if hl-hr > 2 || hr-hl > 2 {
		return 0, fmt.Errorf("%w: balance factor out of bounds at key %v (left=%d, right=%d)",
			ErrInvariant, n.key, hl, hr)
	}
	h := 1 + max(hl, hr)
	if n.height != h {
		return 0, fmt.Errorf("%w: cached height %d differs from true height %d at key %v",
			ErrInvariant, n.height, h, n.key)
	}
	return h, nil
}
