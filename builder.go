package sortedmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/npillmayer/sortedmap/avl"
)

// Builder incrementally stages entries and finalizes them into a Map.
//
// Builder collects entries in call order and materializes the map only
// when Map() is called. Staging keeps intermediate tree versions from
// being built one per entry when a caller assembles a map in a loop
// anyway. Later duplicate keys overwrite earlier ones, matching the
// bulk constructors.
type Builder[K, V any] struct {
	compare avl.CompareFunc[K]
	staged  []Item[K, V]

	done  bool
	dirty bool
	m     Map[K, V]
}

// NewBuilder creates a builder over a naturally ordered key type.
func NewBuilder[K cmp.Ordered, V any]() *Builder[K, V] {
	return NewBuilderWith[K, V](cmp.Compare[K])
}

// NewBuilderWith creates a builder with an explicit comparator.
func NewBuilderWith[K, V any](compare avl.CompareFunc[K]) *Builder[K, V] {
	assert(compare != nil, "sortedmap: NewBuilderWith requires a comparator")
	return &Builder[K, V]{compare: compare, m: NewWith[K, V](compare)}
}

// Add stages one entry. It is illegal to continue adding entries after
// Map has been called; use Reset to start over.
func (b *Builder[K, V]) Add(key K, value V) error {
	if b == nil {
		return ErrMapCompleted
	}
	if b.done {
		return ErrMapCompleted
	}
	b.staged = append(b.staged, Item[K, V]{Key: key, Value: value})
	b.dirty = true
	return nil
}

// Map returns the map built from all staged entries.
//
// Map may be called multiple times, but it seals the builder: further
// Add calls fail until Reset.
func (b *Builder[K, V]) Map() Map[K, V] {
	if b == nil {
		return Map[K, V]{}
	}
	if b.dirty {
		m := NewWith[K, V](b.compare)
		for _, it := range b.staged {
			m = m.Set(it.Key, it.Value)
		}
		b.m = m
		b.dirty = false
	}
	b.done = true
	if b.m.IsEmpty() {
		T().Debugf("map builder: built map is empty")
	}
	return b.m
}

// Reset drops all staged entries and prepares the builder for a fresh
// build with the same comparator.
func (b *Builder[K, V]) Reset() {
	b.staged = nil
	b.done = false
	b.dirty = false
	b.m = NewWith[K, V](b.compare)
}
