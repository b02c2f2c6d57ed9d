package searchtree

import (
	"cmp"
)

// Tree is the surface shared by BalancedTree and OrderedTree.
type Tree[K any] interface {
	Insert(key K)
	Contains(key K) bool
	Size() int
	IsEmpty() bool
	Clear()
}

// Iterator walks keys in ascending order. The tree it was created from must
// not be modified while the iterator is in use.
type Iterator[K any] interface {
	HasNext() bool
	Next() (K, error)
}

var (
	_ Tree[int] = (*BalancedTree[int])(nil)
	_ Tree[int] = (*OrderedTree[int])(nil)
)

func NewBalanced[K cmp.Ordered]() *BalancedTree[K] {
	return NewBalancedFunc[K](cmp.Compare[K])
}

func NewBalancedFunc[K any](compare CompareFunc[K]) *BalancedTree[K] {
	if compare == nil {
		panic("searchtree: nil compare function")
	}
	return &BalancedTree[K]{compare: compare}
}

func NewOrdered[K cmp.Ordered]() *OrderedTree[K] {
	return NewOrderedFunc[K](cmp.Compare[K])
}

func NewOrderedFunc[K any](compare CompareFunc[K]) *OrderedTree[K] {
	if compare == nil {
		panic("searchtree: nil compare function")
	}
	return &OrderedTree[K]{compare: compare}
}
