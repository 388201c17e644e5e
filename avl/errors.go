package avl

import "errors"

var (
	// ErrKeyNotFound signals a loud lookup of an absent key.
	ErrKeyNotFound = errors.New("avl: key not found")
	// ErrIterNotStarted signals Cursor.Current before the first MoveNext.
	ErrIterNotStarted = errors.New("avl: iterator not started")
	// ErrIterExhausted signals Cursor.Current after iteration has ended.
	ErrIterExhausted = errors.New("avl: iterator exhausted")
	// ErrInvalidComparator signals a missing comparator capability.
	ErrInvalidComparator = errors.New("avl: invalid comparator")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("avl: invariant violated")
)
