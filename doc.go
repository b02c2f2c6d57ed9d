/*
Package searchtree provides two in-memory binary search trees over any totally
ordered key type: BalancedTree, an AVL tree which keeps the heights of every
node's subtrees within one of each other, and OrderedTree, a plain unbalanced
binary search tree with an ascending iterator.

Both trees store distinct keys only. Inserting a key which is already present
leaves the tree unchanged.

Ordering is given either by cmp.Compare for cmp.Ordered key types
(NewBalanced, NewOrdered) or by a client supplied three-way CompareFunc
(NewBalancedFunc, NewOrderedFunc).

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to serialize access themselves, e.g. with one mutex per tree.

# Tracing

The package traces to the tracer selected by key 'searchtree'. With the
schuko default selector this is a no-op.
*/
package searchtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'searchtree'
func tracer() tracing.Trace {
	return tracing.Select("searchtree")
}

// debugging reports whether debug traces would be written. Callers check it
// before formatting arguments, which keeps disabled tracing free of
// allocations on the hot paths.
func debugging() bool {
	return tracer().GetTraceLevel() >= tracing.LevelDebug
}
