package avl

import "iter"

// Cursor is a restartable external iterator over one tree, yielding
// entries in ascending key order.
//
// It is a plain state machine, deliberately built without any lazy
// sequence machinery: a stack of pending subtrees plus a started flag.
// The stack is kept normalized so that its top is always the next
// unvisited entry. A cursor never mutates the tree it walks; any
// number of cursors may traverse the same tree independently, but one
// cursor must only be driven by a single caller at a time.
type Cursor[K, V any] struct {
	root    *Node[K, V]
	stack   []*Node[K, V]
	started bool
}

// NewCursor creates a cursor positioned before the first entry of n.
func NewCursor[K, V any](n *Node[K, V]) *Cursor[K, V] {
	c := &Cursor[K, V]{root: n}
	c.Reset()
	return c
}

// Reset repositions the cursor before the first entry of the same
// tree. The tree is persistent, so restarting is always safe.
func (c *Cursor[K, V]) Reset() {
	c.stack = c.stack[:0]
	c.push(c.root)
	c.collapse()
	c.started = false
}

// MoveNext advances the cursor. The first call positions it on the
// first entry; every call reports whether an entry is available.
func (c *Cursor[K, V]) MoveNext() bool {
	if !c.started {
		c.started = true
		return len(c.stack) > 0
	}
	if len(c.stack) == 0 {
		return false
	}
	// pop the entry yielded last and expose the next one
	c.stack = c.stack[:len(c.stack)-1]
	c.collapse()
	return len(c.stack) > 0
}

// Current returns the entry the cursor is positioned on. It fails with
// ErrIterNotStarted before the first MoveNext and with ErrIterExhausted
// once MoveNext has reported the end.
func (c *Cursor[K, V]) Current() (key K, value V, err error) {
	if !c.started {
		return key, value, ErrIterNotStarted
	}
	if len(c.stack) == 0 {
		return key, value, ErrIterExhausted
	}
	top := c.stack[len(c.stack)-1]
	assert(top.IsLeaf(), "avl: cursor stack not normalized")
	return top.key, top.value, nil
}

// push pushes a subtree unless it is empty.
func (c *Cursor[K, V]) push(n *Node[K, V]) {
	if n != nil {
		c.stack = append(c.stack, n)
	}
}

// collapse expands the leftmost spine of the top subtree until the top
// of the stack is a single entry. A branch is replaced by its right
// subtree, a one-entry node for the branch's own entry, and its left
// subtree, in that order, so the smallest pending key surfaces first.
func (c *Cursor[K, V]) collapse() {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		if top.IsLeaf() {
			return
		}
		c.stack = c.stack[:len(c.stack)-1]
		c.push(top.right)
		c.push(makeLeaf(top.key, top.value))
		c.push(top.left)
	}
}

// Seq returns an in-order iterator sequence over the entries of n.
func Seq[K, V any](n *Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ForEach(n, yield)
	}
}
