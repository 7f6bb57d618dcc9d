package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prePopulatedBalancedTree() *Tree {
	tree := NewBalancedTree(IntLesser{})
	prePopulateTree(tree)
	return tree
}

func TestBalancedRootNil(t *testing.T) {
	tree := NewBalancedTree(IntLesser{})
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
}

func TestBalancedRootNode(t *testing.T) {
	tree := NewBalancedTree(IntLesser{})
	tree.Insert(1)
	assert.Equal(t, 1, tree.Root().Value)
	assert.Equal(t, 1, tree.Root().Height())
	assert.Equal(t, 1, tree.Len())
}

func TestBalancedInsertRotations(t *testing.T) {
	cases := []struct {
		name   string
		values []int
	}{
		{"left left", []int{30, 20, 10}},
		{"left right", []int{30, 10, 20}},
		{"right right", []int{10, 20, 30}},
		{"right left", []int{10, 30, 20}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := insertAll(NewBalancedTree(IntLesser{}), c.values...)

			assertEqualTree(t, [][]interface{}{
				{20},
				{10, 30},
			}, tree)
			assertHeights(t, map[int]int{20: 2, 10: 1, 30: 1}, tree)
			assert.NoError(t, tree.Verify())
		})
	}
}

func TestBalancedInsertSequence(t *testing.T) {
	tree := insertAll(NewBalancedTree(IntLesser{}), 1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, 3, tree.Root().Height())
	assertEqualTree(t, [][]interface{}{
		{4},
		{2, 6},
		{1, 3, 5, 7},
	}, tree)

	unbalanced := insertAll(NewSearchTree(IntLesser{}), 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, 7, unbalanced.Height())
}

func TestBalancedInsertLongSequence(t *testing.T) {
	tree := NewBalancedTree(IntLesser{})
	for i := 0; i < 1000; i++ {
		tree.Insert(i)
	}

	require.NoError(t, tree.Verify())
	assert.Equal(t, 1000, tree.Len())
	// an AVL tree with n nodes is at most 1.44 log2(n) high
	assert.LessOrEqual(t, tree.Height(), 14)
}

func TestBalancedInsertDuplicateKeepsHeights(t *testing.T) {
	tree := prePopulatedBalancedTree()

	assert.False(t, tree.Insert(2))
	assertHeights(t, map[int]int{5: 4, 2: 3, 7: 2, 1: 2, 0: 1}, tree)
	assert.NoError(t, tree.Verify())
}

func TestBalancedDeleteRootTwoChildren(t *testing.T) {
	tree := insertAll(NewBalancedTree(IntLesser{}), 20, 10, 30, 25, 40)

	assert.True(t, tree.Delete(20))

	assertEqualTree(t, [][]interface{}{
		{25},
		{10, 30},
		{nil, nil, nil, 40},
	}, tree)
	assertHeights(t, map[int]int{25: 3, 10: 1, 30: 2, 40: 1}, tree)
	assert.NoError(t, tree.Verify())
}

func TestBalancedDeleteRotations(t *testing.T) {
	cases := []struct {
		name     string
		values   []int
		delete   int
		expected [][]interface{}
	}{
		{
			name:   "right right",
			values: []int{20, 10, 30, 40},
			delete: 10,
			expected: [][]interface{}{
				{30},
				{20, 40},
			},
		},
		{
			name:   "right left",
			values: []int{20, 10, 30, 25},
			delete: 10,
			expected: [][]interface{}{
				{25},
				{20, 30},
			},
		},
		{
			name:   "left left",
			values: []int{20, 10, 30, 5},
			delete: 30,
			expected: [][]interface{}{
				{10},
				{5, 20},
			},
		},
		{
			name:   "left right",
			values: []int{20, 10, 30, 15},
			delete: 30,
			expected: [][]interface{}{
				{15},
				{10, 20},
			},
		},
		{
			name:   "left child balanced",
			values: []int{20, 10, 30, 5, 15},
			delete: 30,
			expected: [][]interface{}{
				{10},
				{5, 20},
				{nil, nil, 15, nil},
			},
		},
		{
			name:   "right child balanced",
			values: []int{20, 10, 30, 25, 35},
			delete: 10,
			expected: [][]interface{}{
				{30},
				{20, 35},
				{nil, 25, nil, nil},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := insertAll(NewBalancedTree(IntLesser{}), c.values...)

			assert.True(t, tree.Delete(c.delete))
			assertEqualTree(t, c.expected, tree)
			assert.NoError(t, tree.Verify())
		})
	}
}

func TestBalancedDeleteNotExistingNode(t *testing.T) {
	tree := prePopulatedBalancedTree()
	before := tree.Snapshot()

	assert.False(t, tree.Delete(4))
	assert.Equal(t, before, tree.Snapshot())
}

func TestBalancedDeleteAll(t *testing.T) {
	tree := prePopulatedBalancedTree()

	for _, v := range []int{5, 0, 8, 2, 7, 1, 3, 6} {
		require.True(t, tree.Delete(v), "delete %d", v)
		require.NoError(t, tree.Verify())
	}

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
}

func TestBalancedRandomOperationsKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		tree := NewBalancedTree(IntLesser{})
		present := make(map[int]bool)

		for i := 0; i < 1000; i++ {
			v := r.Intn(300)
			if r.Intn(3) == 0 {
				assert.Equal(t, present[v], tree.Delete(v))
				delete(present, v)
			} else {
				assert.Equal(t, !present[v], tree.Insert(v))
				present[v] = true
			}

			require.NoError(t, tree.Verify(), "seed %d step %d", seed, i)
		}

		assert.Equal(t, len(present), tree.Len())
		values := tree.Values(InOrder)
		for i := 1; i < len(values); i++ {
			assert.Less(t, values[i-1], values[i])
		}
	}
}

func TestRotationWithoutChildIsNoop(t *testing.T) {
	n := newNode(1)

	assert.Same(t, n, leftRotate(n))
	assert.Same(t, n, rightRotate(n))
	assert.Equal(t, 1, n.Height())
}

func BenchmarkBalancedTreeSequentialInsert(b *testing.B) {
	tree := NewBalancedTree(IntLesser{})

	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}
