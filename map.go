package sortedmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sortedmap/avl"
)

// Map is an immutable sorted map from K to V.
//
// A map created by New, NewWith or one of the bulk builders is a valid
// value and behaves like the empty map. Maps are passed by value and
// never mutated in place: Set and Delete return a new map sharing all
// untouched subtrees with the receiver.
//
// The zero Map carries no comparator; only its read accessors behave
// sensibly (they see an empty map), and updating it panics. Always go
// through a constructor.
type Map[K, V any] struct {
	compare avl.CompareFunc[K]
	root    *avl.Node[K, V]
}

// Item is one key/value entry of a map.
type Item[K, V any] struct {
	Key   K
	Value V
}

// Errors returned by loud accessors; see the avl package for the full
// taxonomy.
var (
	ErrKeyNotFound    = avl.ErrKeyNotFound
	ErrIterNotStarted = avl.ErrIterNotStarted
	ErrIterExhausted  = avl.ErrIterExhausted
)

// New creates an empty map over a naturally ordered key type.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return Map[K, V]{compare: cmp.Compare[K]}
}

// NewWith creates an empty map with an explicit comparator. The
// comparator must implement a strict total order over K and is bound
// to the map for its whole lifetime.
func NewWith[K, V any](compare avl.CompareFunc[K]) Map[K, V] {
	assert(compare != nil, "sortedmap: NewWith requires a comparator")
	return Map[K, V]{compare: compare}
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Len returns the number of entries. Counts are not cached; this
// traverses the tree.
func (m Map[K, V]) Len() int {
	return avl.Count(m.root)
}

// Height returns the height of the backing tree, 0 for an empty map.
func (m Map[K, V]) Height() int {
	return m.root.Height()
}

// Set binds key to value and returns the updated map. An existing
// binding for key is overwritten; the receiver is unaffected.
func (m Map[K, V]) Set(key K, value V) Map[K, V] {
	assert(m.compare != nil, "sortedmap: Set on an uninitialized Map")
	return Map[K, V]{compare: m.compare, root: avl.Insert(m.root, m.compare, key, value)}
}

// Delete removes key and returns the updated map. Deleting an absent
// key is a no-op and returns the receiver unchanged.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	assert(m.compare != nil, "sortedmap: Delete on an uninitialized Map")
	root := avl.Delete(m.root, m.compare, key)
	if root == m.root {
		return m
	}
	return Map[K, V]{compare: m.compare, root: root}
}

// Get returns the value bound to key, with ok reporting presence.
func (m Map[K, V]) Get(key K) (value V, ok bool) {
	if m.root == nil {
		return value, false
	}
	return avl.Lookup(m.root, m.compare, key)
}

// Find returns the value bound to key, or ErrKeyNotFound. Use Get when
// absence is an expected outcome rather than a failure.
func (m Map[K, V]) Find(key K) (V, error) {
	if m.root == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return avl.Find(m.root, m.compare, key)
}

// Contains reports whether key is present.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Min returns the smallest entry, with ok false for an empty map.
func (m Map[K, V]) Min() (key K, value V, ok bool) {
	return avl.Min(m.root)
}

// Max returns the largest entry, with ok false for an empty map.
func (m Map[K, V]) Max() (key K, value V, ok bool) {
	return avl.Max(m.root)
}

// Each visits all entries in ascending key order. Iteration stops
// early when fn returns false.
func (m Map[K, V]) Each(fn func(key K, value V) bool) {
	avl.ForEach(m.root, fn)
}

// EachRange visits the entries with lo ≤ key ≤ hi in ascending key
// order, skipping subtrees outside the range. An empty range (lo > hi)
// visits nothing.
func (m Map[K, V]) EachRange(lo, hi K, fn func(key K, value V) bool) {
	if m.root == nil {
		return
	}
	avl.FoldRange(m.root, m.compare, lo, hi, true, func(cont bool, k K, v V) bool {
		if !cont {
			return false
		}
		return fn(k, v)
	})
}

// All returns an in-order iterator sequence over all entries, for use
// with range-over-func.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return avl.Seq(m.root)
}

// Iterator returns a fresh external cursor over the map. Cursors over
// the same map are independent; a single cursor must not be shared
// between concurrent callers.
func (m Map[K, V]) Iterator() *avl.Cursor[K, V] {
	return avl.NewCursor(m.root)
}

// Items returns all entries in ascending key order.
func (m Map[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, m.Len())
	m.Each(func(k K, v V) bool {
		items = append(items, Item[K, V]{Key: k, Value: v})
		return true
	})
	return items
}

// Keys returns all keys in ascending order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values in ascending key order.
func (m Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	m.Each(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Every reports whether all entries satisfy pred.
func (m Map[K, V]) Every(pred func(key K, value V) bool) bool {
	return avl.All(m.root, pred)
}

// Some reports whether at least one entry satisfies pred.
func (m Map[K, V]) Some(pred func(key K, value V) bool) bool {
	return avl.Any(m.root, pred)
}

// Filter returns a map holding exactly the entries that satisfy pred.
func (m Map[K, V]) Filter(pred func(key K, value V) bool) Map[K, V] {
	if m.root == nil {
		return m
	}
	return Map[K, V]{compare: m.compare, root: avl.Filter(m.root, m.compare, pred)}
}

// Partition splits the map into the entries satisfying pred and those
// that do not.
func (m Map[K, V]) Partition(pred func(key K, value V) bool) (yes, no Map[K, V]) {
	yesRoot, noRoot := avl.Partition(m.root, m.compare, pred)
	return Map[K, V]{compare: m.compare, root: yesRoot},
		Map[K, V]{compare: m.compare, root: noRoot}
}

// String renders all entries in ascending key order. This may be an
// expensive operation for large maps.
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	m.Each(func(k K, v V) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// --- Package-level combinators ---------------------------------------------
//
// Operations that introduce a new type parameter (an accumulator or a
// mapped value type) cannot be methods in Go and live here instead.

// Fold accumulates over the entries of m from the smallest key to the
// largest.
func Fold[K, V, A any](m Map[K, V], acc A, fn func(acc A, key K, value V) A) A {
	return avl.Fold(m.root, acc, fn)
}

// FoldBack accumulates over the entries of m from the largest key to
// the smallest.
func FoldBack[K, V, A any](m Map[K, V], fn func(key K, value V, acc A) A, acc A) A {
	return avl.FoldBack(m.root, fn, acc)
}

// FoldRange folds over the entries with lo ≤ key ≤ hi, pruning
// subtrees outside the range. An empty range returns acc unchanged.
func FoldRange[K, V, A any](m Map[K, V], lo, hi K, acc A, fn func(acc A, key K, value V) A) A {
	if m.root == nil {
		return acc
	}
	return avl.FoldRange(m.root, m.compare, lo, hi, acc, fn)
}

// MapValues returns a map with the same keys and every value mapped
// through fn. The callback receives the key alongside the value.
func MapValues[K, V, W any](m Map[K, V], fn func(key K, value V) W) Map[K, W] {
	return Map[K, W]{compare: m.compare, root: avl.MapValues(m.root, fn)}
}

// TryPick returns the first chooser result, in ascending key order,
// for which chooser reports ok.
func TryPick[K, V, R any](m Map[K, V], chooser func(key K, value V) (R, bool)) (R, bool) {
	return avl.TryPick(m.root, chooser)
}

// Pick is the loud variant of TryPick: it returns ErrKeyNotFound when
// chooser accepts no entry.
func Pick[K, V, R any](m Map[K, V], chooser func(key K, value V) (R, bool)) (R, error) {
	return avl.Pick(m.root, chooser)
}

// Equal reports whether a and b hold the same keys in the same order,
// with values compared through eq. Two maps built by different
// operation sequences but with equal contents compare equal. The
// comparator of a decides key equality.
func Equal[K, V any](a, b Map[K, V], eq func(x, y V) bool) bool {
	ca, cb := a.Iterator(), b.Iterator()
	for {
		na, nb := ca.MoveNext(), cb.MoveNext()
		if na != nb {
			return false
		}
		if !na {
			return true
		}
		ka, va, _ := ca.Current()
		kb, vb, _ := cb.Current()
		if a.compare(ka, kb) != 0 || !eq(va, vb) {
			return false
		}
	}
}

// --- Bulk construction ------------------------------------------------------

// FromItems builds a map over a naturally ordered key type. Entries
// are inserted in the given order, so a later duplicate key overwrites
// an earlier one.
func FromItems[K cmp.Ordered, V any](items ...Item[K, V]) Map[K, V] {
	return FromItemsWith(cmp.Compare[K], items...)
}

// FromItemsWith builds a map with an explicit comparator. Later
// duplicate keys overwrite earlier ones.
func FromItemsWith[K, V any](compare avl.CompareFunc[K], items ...Item[K, V]) Map[K, V] {
	m := NewWith[K, V](compare)
	for _, it := range items {
		m = m.Set(it.Key, it.Value)
	}
	return m
}

// FromSeq drains a key/value sequence into a map. Later duplicate keys
// overwrite earlier ones.
func FromSeq[K cmp.Ordered, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m = m.Set(k, v)
	}
	return m
}

// FromGoMap copies a native Go map into a sorted map.
func FromGoMap[K cmp.Ordered, V any](src map[K]V) Map[K, V] {
	m := New[K, V]()
	for k, v := range src {
		m = m.Set(k, v)
	}
	return m
}
