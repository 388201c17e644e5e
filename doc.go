/*
Package sortedmap provides an immutable, persistent sorted map.

A Map pairs a comparator with the root of a balanced search tree and is
used as a value: copies are cheap, "mutating" operations return a new
map, and the original stays intact for every caller that still holds
it. Unmodified subtrees are shared between versions, so deriving a new
map from an old one costs O(log n) space, not a full copy.

This makes a Map convenient for snapshot-style bookkeeping: a consumer
can keep an old version as a frozen snapshot while newer versions
evolve, and readers never need to coordinate with writers.

Performance characteristics differ from Go's native map:

	Operation     |   Map           |  native map
	--------------+-----------------+------------
	Get           |   O(log n)      |   O(1)
	Set/Delete    |   O(log n)      |   O(1) amortized, destructive
	Snapshot      |   O(1)          |   O(n) copy
	Ordered range |   O(n)          |   O(n log n) after sorting keys

The tree engine lives in the avl subpackage; this package adds the
public value type, bulk construction, combinators, and diagnostic
output.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package sortedmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// MapError is an error type for the sortedmap module.
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrMapCompleted signals that a builder has already completed a map and
// it's illegal to further add entries.
const ErrMapCompleted = MapError("forbidden to add entries; map has been completed")

