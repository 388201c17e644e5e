/*
Package avl is the tree engine behind package sortedmap: a persistent,
structurally shared AVL search tree with one cached height per branch
and a rebalancing threshold of 2.

The package operates on bare tree nodes. Every operation takes the
comparator capability explicitly and returns a new root; the input tree
and all of its untouched subtrees stay valid and shared between
versions. Nothing in this package blocks or locks: nodes are never
written after construction, so any number of goroutines may look up,
fold over, or derive new trees from the same root without coordination.
The only mutable object is the Cursor, which is a single-consumer state
machine over an otherwise untouched tree.

Current status:
  - node model: nil = empty, childless node = leaf, cached branch height,
  - path-copy insert/overwrite and delete with successor splice,
  - rebalancing with threshold 2 and single/double rotation selection,
  - quiet (Lookup, Contains) and loud (Find, Pick) lookup variants,
  - fold combinators and a range fold with subtree pruning,
  - filter/partition by fold-and-reinsert,
  - stack-machine Cursor with MoveNext/Current/Reset,
  - structural invariant checker for tests.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
