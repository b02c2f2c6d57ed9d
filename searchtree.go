package searchtree

import (
	"errors"
)

const (
	// height of an absent subtree; a leaf has height 0
	emptyHeight = -1

	// maximum allowed difference between the heights of two sibling subtrees
	maxImbalance = 1
)

var (
	ErrUnderflow = errors.New("searchtree: tree is empty")
	ErrExhausted = errors.New("searchtree: there are no more keys in the tree")
	ErrCorrupt   = errors.New("searchtree: tree invariant violated")
)

type (
	// CompareFunc orders two keys. It returns a negative number if a < b,
	// zero if a == b and a positive number if a > b. It must describe a
	// total order.
	CompareFunc[K any] func(a, b K) int

	avlNode[K any] struct {
		key    K
		left   *avlNode[K]
		right  *avlNode[K]
		height int
	}

	bstNode[K any] struct {
		key   K
		left  *bstNode[K]
		right *bstNode[K]
	}

	// BalancedTree is an AVL tree. The zero value is not usable, create
	// instances with NewBalanced or NewBalancedFunc.
	BalancedTree[K any] struct {
		compare CompareFunc[K]
		root    *avlNode[K]
		size    int
	}

	// OrderedTree is an unbalanced binary search tree. The zero value is not
	// usable, create instances with NewOrdered or NewOrderedFunc.
	OrderedTree[K any] struct {
		compare CompareFunc[K]
		root    *bstNode[K]
		size    int
	}

	// left-descent path; top of the stack is the next key in order
	iterator[K any] struct {
		stack []*bstNode[K]
	}
)
