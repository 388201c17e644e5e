package avl

// ForEach visits every entry of n in ascending key order. It stops
// early when fn returns false and reports whether the traversal ran to
// the end.
func ForEach[K, V any](n *Node[K, V], fn func(key K, value V) bool) bool {
	if n == nil {
		return true
	}
	if !ForEach(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return ForEach(n.right, fn)
}

// Fold accumulates over the entries of n from the smallest key to the
// largest.
func Fold[K, V, A any](n *Node[K, V], acc A, fn func(acc A, key K, value V) A) A {
	if n == nil {
		return acc
	}
	acc = Fold(n.left, acc, fn)
	acc = fn(acc, n.key, n.value)
	return Fold(n.right, acc, fn)
}

// FoldBack accumulates over the entries of n from the largest key to
// the smallest.
func FoldBack[K, V, A any](n *Node[K, V], fn func(key K, value V, acc A) A, acc A) A {
	if n == nil {
		return acc
	}
	acc = FoldBack(n.right, fn, acc)
	acc = fn(n.key, n.value, acc)
	return FoldBack(n.left, fn, acc)
}

// FoldRange folds over the entries with lo ≤ key ≤ hi, in ascending
// key order. Subtrees entirely outside the range are pruned without
// being visited. An empty range (lo > hi) returns acc unchanged.
func FoldRange[K, V, A any](n *Node[K, V], compare CompareFunc[K], lo, hi K, acc A, fn func(acc A, key K, value V) A) A {
	assert(compare != nil, "avl: FoldRange requires a comparator")
	if compare(lo, hi) > 0 {
		return acc
	}
	return foldRange(n, compare, lo, hi, acc, fn)
}

func foldRange[K, V, A any](n *Node[K, V], compare CompareFunc[K], lo, hi K, acc A, fn func(acc A, key K, value V) A) A {
	if n == nil {
		return acc
	}
	if compare(lo, n.key) < 0 {
		acc = foldRange(n.left, compare, lo, hi, acc, fn)
	}
	if compare(lo, n.key) <= 0 && compare(n.key, hi) <= 0 {
		acc = fn(acc, n.key, n.value)
	}
	if compare(n.key, hi) < 0 {
		acc = foldRange(n.right, compare, lo, hi, acc, fn)
	}
	return acc
}

// All reports whether every entry of n satisfies pred.
func All[K, V any](n *Node[K, V], pred func(key K, value V) bool) bool {
	return ForEach(n, pred)
}

// Any reports whether at least one entry of n satisfies pred.
func Any[K, V any](n *Node[K, V], pred func(key K, value V) bool) bool {
	return !ForEach(n, func(k K, v V) bool { return !pred(k, v) })
}

// TryPick returns the first chooser result, in ascending key order,
// for which chooser reports ok.
func TryPick[K, V, R any](n *Node[K, V], chooser func(key K, value V) (R, bool)) (R, bool) {
	var picked R
	found := false
	ForEach(n, func(k K, v V) bool {
		if r, ok := chooser(k, v); ok {
			picked, found = r, true
			return false
		}
		return true
	})
	return picked, found
}

// Pick is the loud variant of TryPick: it returns ErrKeyNotFound when
// chooser accepts no entry.
func Pick[K, V, R any](n *Node[K, V], chooser func(key K, value V) (R, bool)) (R, error) {
	if r, ok := TryPick(n, chooser); ok {
		return r, nil
	}
	var zero R
	return zero, ErrKeyNotFound
}

// MapValues builds a tree of identical shape with every value mapped
// through fn. Keys and therefore tree shape are unchanged, so no
// rebalancing happens.
func MapValues[K, V, W any](n *Node[K, V], fn func(key K, value V) W) *Node[K, W] {
	if n == nil {
		return nil
	}
	left := MapValues(n.left, fn)
	w := fn(n.key, n.value)
	right := MapValues(n.right, fn)
	return &Node[K, W]{key: n.key, value: w, left: left, right: right, height: n.height}
}

// Filter builds a fresh tree holding exactly the entries that satisfy
// pred. Matching entries are re-inserted into an empty accumulator;
// the input shape is not reused.
func Filter[K, V any](n *Node[K, V], compare CompareFunc[K], pred func(key K, value V) bool) *Node[K, V] {
	assert(compare != nil, "avl: Filter requires a comparator")
	return Fold(n, (*Node[K, V])(nil), func(acc *Node[K, V], k K, v V) *Node[K, V] {
		if pred(k, v) {
			return Insert(acc, compare, k, v)
		}
		return acc
	})
}

// Partition splits the entries of n into a tree of those satisfying
// pred and a tree of those that do not.
func Partition[K, V any](n *Node[K, V], compare CompareFunc[K], pred func(key K, value V) bool) (yes, no *Node[K, V]) {
	assert(compare != nil, "avl: Partition requires a comparator")
	ForEach(n, func(k K, v V) bool {
		if pred(k, v) {
			yes = Insert(yes, compare, k, v)
		} else {
			no = Insert(no, compare, k, v)
		}
		return true
	})
	return yes, no
}
