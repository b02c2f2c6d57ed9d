package searchtree

// Size returns the number of distinct keys in the tree.
func (t *BalancedTree[K]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *BalancedTree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the height of the root, -1 for an empty tree.
func (t *BalancedTree[K]) Height() int {
	return t.root.getHeight()
}

// Clear makes the tree logically empty.
func (t *BalancedTree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds key to the tree. Inserting a key which is already present is a
// no-op.
func (t *BalancedTree[K]) Insert(key K) {
	var inserted bool
	t.root = t.recursiveInsert(t.root, key, &inserted)
	if inserted {
		t.size++
	}
}

func (t *BalancedTree[K]) recursiveInsert(node *avlNode[K], key K, inserted *bool) *avlNode[K] {
	if node == nil {
		*inserted = true
		return newAVLNode(key)
	}

	c := t.compare(key, node.key)
	switch {
	case c < 0:
		node.left = t.recursiveInsert(node.left, key, inserted)
	case c > 0:
		node.right = t.recursiveInsert(node.right, key, inserted)
	default:
		return node
	}
	return t.rebalance(node)
}

// Remove deletes key from the tree. Removing an absent key is a no-op.
func (t *BalancedTree[K]) Remove(key K) {
	var removed bool
	t.root = t.recursiveRemove(t.root, key, &removed)
	if removed {
		t.size--
	}
}

func (t *BalancedTree[K]) recursiveRemove(node *avlNode[K], key K, removed *bool) *avlNode[K] {
	if node == nil {
		return nil
	}

	c := t.compare(key, node.key)
	switch {
	case c < 0:
		node.left = t.recursiveRemove(node.left, key, removed)
	case c > 0:
		node.right = t.recursiveRemove(node.right, key, removed)
	case node.left != nil && node.right != nil:
		// the successor has no left child, so removing it below ends in
		// the splice case
		successor := node.right.minimum()
		if debugging() {
			tracer().Debugf("avl remove: replacing %v by successor %v", node.key, successor.key)
		}
		node.key = successor.key
		node.right = t.recursiveRemove(node.right, successor.key, removed)
	default:
		*removed = true
		if node.left != nil {
			return node.left
		}
		return node.right
	}
	return t.rebalance(node)
}

// Contains reports whether key is present in the tree.
func (t *BalancedTree[K]) Contains(key K) bool {
	return t.root.find(key, t.compare) != nil
}

// FindMin returns the smallest key. It returns ErrUnderflow if the tree is
// empty.
func (t *BalancedTree[K]) FindMin() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrUnderflow
	}
	return t.root.minimum().key, nil
}

// FindMax returns the largest key. It returns ErrUnderflow if the tree is
// empty.
func (t *BalancedTree[K]) FindMax() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrUnderflow
	}
	return t.root.maximum().key, nil
}

// Ascend calls fn for every key in ascending order. Iteration stops early if
// fn returns false.
func (t *BalancedTree[K]) Ascend(fn func(key K) bool) {
	if t == nil || fn == nil {
		return
	}
	t.root.walk(fn)
}

// rebalance refreshes the height of node and restores the AVL condition at
// node. It returns the new subtree root.
//
// On a height tie between the inner and outer grandchild subtrees the single
// rotation is chosen.
func (t *BalancedTree[K]) rebalance(node *avlNode[K]) *avlNode[K] {
	node.updateHeight()

	switch b := node.balance(); {
	case b > maxImbalance:
		if node.left.left.getHeight() >= node.left.right.getHeight() {
			traceRotation("right", node.key)
			return node.rotateRight()
		}
		traceRotation("left-right", node.key)
		node.left = node.left.rotateLeft()
		return node.rotateRight()
	case b < -maxImbalance:
		if node.right.right.getHeight() >= node.right.left.getHeight() {
			traceRotation("left", node.key)
			return node.rotateLeft()
		}
		traceRotation("right-left", node.key)
		node.right = node.right.rotateRight()
		return node.rotateLeft()
	}
	return node
}

func traceRotation[K any](kind string, key K) {
	if debugging() {
		tracer().Debugf("avl rotate %s at %v", kind, key)
	}
}
