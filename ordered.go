package searchtree

import (
	"iter"
)

func (t *OrderedTree[K]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *OrderedTree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Clear removes all keys from the tree.
func (t *OrderedTree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds key to the tree. Duplicate keys are ignored.
func (t *OrderedTree[K]) Insert(key K) {
	slot := &t.root
	for curr := *slot; curr != nil; curr = *slot {
		c := t.compare(key, curr.key)
		switch {
		case c < 0:
			slot = &curr.left
		case c > 0:
			slot = &curr.right
		default:
			return
		}
	}
	*slot = newBSTNode(key)
	t.size++
}

// Contains reports whether key is present in the tree.
func (t *OrderedTree[K]) Contains(key K) bool {
	return t.root.find(key, t.compare) != nil
}

// Iterator returns an iterator over the keys in ascending order. The tree
// must not be modified while the iterator is in use.
func (t *OrderedTree[K]) Iterator() Iterator[K] {
	it := &iterator[K]{}
	it.pushLeft(t.root)
	return it
}

// All returns the keys in ascending order as a sequence. The tree must not be
// modified during the iteration.
func (t *OrderedTree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := t.Iterator()
		for it.HasNext() {
			key, err := it.Next()
			if err != nil || !yield(key) {
				return
			}
		}
	}
}

func (it *iterator[K]) pushLeft(n *bstNode[K]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *iterator[K]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *iterator[K]) Next() (K, error) {
	if !it.HasNext() {
		var zero K
		return zero, ErrExhausted
	}

	top := len(it.stack) - 1
	n := it.stack[top]
	it.stack[top] = nil
	it.stack = it.stack[:top]

	it.pushLeft(n.right)
	return n.key, nil
}
