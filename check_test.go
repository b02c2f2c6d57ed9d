package searchtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBalanceValidTree(t *testing.T) {
	tree := NewBalanced[int]()
	for i := 0; i < 200; i++ {
		tree.Insert((i * 37) % 211)
	}
	for i := 0; i < 200; i += 3 {
		tree.Remove((i * 37) % 211)
	}

	assert.Empty(t, tree.CheckBalance())
	assert.NoError(t, tree.Check())
}

func TestCheckEmptyTrees(t *testing.T) {
	assert.Empty(t, NewBalanced[int]().CheckBalance())
	assert.NoError(t, NewBalanced[int]().Check())
	assert.NoError(t, NewOrdered[int]().Check())
}

func TestCheckBalanceStaleHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "searchtree")
	defer teardown()

	tree := NewBalanced[int]()
	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)
	tree.root.height = 5

	violations := tree.CheckBalance()
	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, "stale height", v.Reason)
	assert.Equal(t, "2", v.Key)
	assert.Equal(t, 0, v.Depth)
	assert.Equal(t, 5, v.Cached)
	assert.Equal(t, 1, v.Computed)
	assert.Equal(t, 0, v.Balance)

	err := tree.Check()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "stale height")
}

func TestCheckBalanceUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "searchtree")
	defer teardown()

	// right spine 1 → 2 → 3 with correct cached heights
	leaf := &avlNode[int]{key: 3, height: 0}
	mid := &avlNode[int]{key: 2, height: 1, right: leaf}
	root := &avlNode[int]{key: 1, height: 2, right: mid}
	tree := NewBalanced[int]()
	tree.root = root
	tree.size = 3

	violations := tree.CheckBalance()
	require.Len(t, violations, 1)
	assert.Equal(t, "unbalanced", violations[0].Reason)
	assert.Equal(t, "1", violations[0].Key)
	assert.Equal(t, -2, violations[0].Balance)
	assert.ErrorIs(t, tree.Check(), ErrCorrupt)
}

func TestCheckBalanceOutOfOrder(t *testing.T) {
	tree := NewBalanced[int]()
	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)
	tree.root.left.key = 7

	violations := tree.CheckBalance()
	require.NotEmpty(t, violations)
	assert.Equal(t, "out of order", violations[0].Reason)
	assert.ErrorIs(t, tree.Check(), ErrCorrupt)
}

func TestCheckSizeMismatch(t *testing.T) {
	avl := NewBalanced[int]()
	avl.Insert(1)
	avl.size = 4
	assert.Empty(t, avl.CheckBalance())
	assert.ErrorIs(t, avl.Check(), ErrCorrupt)

	bst := NewOrdered[int]()
	bst.Insert(1)
	bst.Insert(2)
	bst.size = 1
	assert.ErrorIs(t, bst.Check(), ErrCorrupt)
}

func TestOrderedCheckOutOfOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "searchtree")
	defer teardown()

	tree := NewOrdered[int]()
	tree.Insert(5)
	tree.Insert(3)
	tree.Insert(8)
	tree.root.right.key = 4

	err := tree.Check()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "key 4 follows 5")
}

func TestViolationError(t *testing.T) {
	v := Violation{Key: "k", Depth: 2, Cached: 1, Computed: 3, Balance: -2, Reason: "unbalanced"}
	var err error = v
	assert.Equal(t, "unbalanced: key k at depth 2 (cached height 1, computed 3, balance -2)", err.Error())
}
