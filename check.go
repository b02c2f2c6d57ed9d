package searchtree

import "fmt"

// Violation describes a node which breaks one of the tree invariants.
type Violation struct {
	Key      string // key of the offending node, formatted with %v
	Depth    int    // distance from the root
	Cached   int    // height stored in the node
	Computed int    // height recomputed from the subtree
	Balance  int    // recomputed balance factor
	Reason   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: key %s at depth %d (cached height %d, computed %d, balance %d)",
		v.Reason, v.Key, v.Depth, v.Cached, v.Computed, v.Balance)
}

func (v Violation) Error() string {
	return v.String()
}

type avlChecker[K any] struct {
	compare    CompareFunc[K]
	prev       *avlNode[K]
	nodes      int
	violations []Violation
}

// CheckBalance walks the whole tree, recomputes all heights and returns every
// node whose cached height is stale, whose subtrees differ in height by more
// than one, or which is out of order. It never modifies the tree.
func (t *BalancedTree[K]) CheckBalance() []Violation {
	c := &avlChecker[K]{compare: t.compare}
	c.check(t.root, 0)
	for _, v := range c.violations {
		tracer().Errorf("avl check: %s", v)
	}
	return c.violations
}

// Check validates the tree invariants and the key count.
func (t *BalancedTree[K]) Check() error {
	c := &avlChecker[K]{compare: t.compare}
	c.check(t.root, 0)
	if len(c.violations) > 0 {
		return fmt.Errorf("%w: %s", ErrCorrupt, c.violations[0])
	}
	if c.nodes != t.size {
		return fmt.Errorf("%w: size %d, but %d nodes", ErrCorrupt, t.size, c.nodes)
	}
	return nil
}

func (c *avlChecker[K]) check(node *avlNode[K], depth int) int {
	if node == nil {
		return emptyHeight
	}
	c.nodes++

	hl := c.check(node.left, depth+1)
	if c.prev != nil && c.compare(c.prev.key, node.key) >= 0 {
		c.add(node, depth, node.height, node.height, 0, "out of order")
	}
	c.prev = node
	hr := c.check(node.right, depth+1)

	computed := max(hl, hr) + 1
	balance := hl - hr
	if node.height != computed {
		c.add(node, depth, node.height, computed, balance, "stale height")
	}
	if balance > maxImbalance || balance < -maxImbalance {
		c.add(node, depth, node.height, computed, balance, "unbalanced")
	}
	return computed
}

func (c *avlChecker[K]) add(node *avlNode[K], depth, cached, computed, balance int, reason string) {
	c.violations = append(c.violations, Violation{
		Key:      fmt.Sprint(node.key),
		Depth:    depth,
		Cached:   cached,
		Computed: computed,
		Balance:  balance,
		Reason:   reason,
	})
}

// Check validates that keys come out strictly ascending and that the key
// count matches Size.
func (t *OrderedTree[K]) Check() error {
	it := t.Iterator()
	n := 0
	var prev K
	for it.HasNext() {
		key, err := it.Next()
		if err != nil {
			return err
		}
		if n > 0 && t.compare(prev, key) >= 0 {
			tracer().Errorf("bst check: key %v follows %v", key, prev)
			return fmt.Errorf("%w: key %v follows %v", ErrCorrupt, key, prev)
		}
		prev = key
		n++
	}
	if n != t.size {
		return fmt.Errorf("%w: size %d, but %d nodes", ErrCorrupt, t.size, n)
	}
	return nil
}
