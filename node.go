package searchtree

func newAVLNode[K any](key K) *avlNode[K] {
	return &avlNode[K]{key: key, height: 0}
}

func (n *avlNode[K]) getHeight() int {
	if n == nil {
		return emptyHeight
	}
	return n.height
}

func (n *avlNode[K]) updateHeight() {
	n.height = max(n.left.getHeight(), n.right.getHeight()) + 1
}

func (n *avlNode[K]) balance() int {
	return n.left.getHeight() - n.right.getHeight()
}

// rotate with left child; the left child becomes the subtree root
func (n *avlNode[K]) rotateRight() *avlNode[K] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rotate with right child; the right child becomes the subtree root
func (n *avlNode[K]) rotateLeft() *avlNode[K] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// find the leftmost node under n
func (n *avlNode[K]) minimum() *avlNode[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *avlNode[K]) maximum() *avlNode[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *avlNode[K]) find(key K, compare CompareFunc[K]) *avlNode[K] {
	for curr := n; curr != nil; {
		c := compare(key, curr.key)
		if c == 0 {
			return curr
		}
		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return nil
}

func (n *avlNode[K]) walk(fn func(K) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.walk(fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return n.right.walk(fn)
}

func newBSTNode[K any](key K) *bstNode[K] {
	return &bstNode[K]{key: key}
}

func (n *bstNode[K]) find(key K, compare CompareFunc[K]) *bstNode[K] {
	for curr := n; curr != nil; {
		c := compare(key, curr.key)
		if c == 0 {
			return curr
		}
		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return nil
}
