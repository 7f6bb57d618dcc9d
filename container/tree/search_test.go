package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prePopulatedSearchTree() *Tree {
	tree := NewSearchTree(IntLesser{})
	prePopulateTree(tree)
	return tree
}

func TestSearchRootNil(t *testing.T) {
	tree := NewSearchTree(IntLesser{})
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
}

func TestSearchRootNode(t *testing.T) {
	tree := NewSearchTree(IntLesser{})
	tree.Insert(1)
	assert.Equal(t, 1, tree.Root().Value)
	assert.Equal(t, 1, tree.Len())
}

func TestSearchTreeInsertBalanced(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1, 0, 2)

	assertEqualTree(t, [][]interface{}{
		{1},
		{0, 2},
	}, tree)
}

func TestSearchTreeInsert(t *testing.T) {
	tree := NewSearchTree(IntLesser{})

	for i := 0; i < 4; i++ {
		tree.Insert(i)
	}

	assertEqualTree(t, [][]interface{}{
		{0},
		{nil, 1},
		{nil, nil, nil, 2},
		{nil, nil, nil, nil, nil, nil, nil, 3},
	}, tree)
	assert.Equal(t, 4, tree.Height())
}

func TestSearchTreePrePopulated(t *testing.T) {
	tree := prePopulatedSearchTree()

	assert.Equal(t, 8, tree.Len())
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestSearchTreeFind(t *testing.T) {
	tree := prePopulatedSearchTree()

	n := tree.Find(6)
	require.NotNil(t, n)
	assert.Equal(t, 6, n.Value)
	assert.Nil(t, tree.Find(4))
}

func TestSearchTreeDeleteNoChildrenOK(t *testing.T) {
	tree := prePopulatedSearchTree()

	ok := tree.Delete(8)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, nil},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestSearchTreeDeleteNoRightChildOK(t *testing.T) {
	tree := prePopulatedSearchTree()

	ok := tree.Delete(1)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{0, 3, 6, 8},
	}, tree)
}

func TestSearchTreeDeleteTwoChildrenOK(t *testing.T) {
	tree := prePopulatedSearchTree()

	ok := tree.Delete(2)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{3, 7},
		{1, nil, 6, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestSearchTreeDeleteRootOK(t *testing.T) {
	tree := prePopulatedSearchTree()

	ok := tree.Delete(5)
	assert.True(t, ok)

	assertEqualTree(t, [][]interface{}{
		{6},
		{2, 7},
		{1, 3, nil, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
	assert.Equal(t, 7, tree.Len())
}

func TestSearchTreeDeleteLastNode(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1)

	assert.True(t, tree.Delete(1))
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
}

func TestSearchTreeDeleteNotExistingNode(t *testing.T) {
	tree := prePopulatedSearchTree()

	ok := tree.Delete(100)
	assert.False(t, ok)
}

func TestSearchTreeRandomOperationsKeepOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := NewSearchTree(IntLesser{})
	present := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := r.Intn(200)
		if r.Intn(3) == 0 {
			assert.Equal(t, present[v], tree.Delete(v))
			delete(present, v)
		} else {
			assert.Equal(t, !present[v], tree.Insert(v))
			present[v] = true
		}

		require.NoError(t, tree.Verify())
	}

	assert.Equal(t, len(present), tree.Len())
	for v := range present {
		assert.True(t, tree.Contains(v))
	}
}

func BenchmarkSearchTreeRandomInsert(b *testing.B) {
	tree := NewSearchTree(IntLesser{})

	for i := 0; i < b.N; i++ {
		tree.Insert(int(rand.Int31()))
	}
}

func BenchmarkSearchTreePreOrderSequenceInsertAndWalk(b *testing.B) {
	tree := NewSearchTree(IntLesser{})
	gen := balancedTreeGenerator{Highest: uint(b.N << 1)}
	count := 0

	for i := 0; i < b.N; i++ {
		v, ok := gen.Next()
		if !ok {
			panic("generator failed to generate enough numbers")
		}
		tree.Insert(v)
	}

	tree.InOrderWalk(func(n *Node) {
		count++
	})

	assert.Equal(b, tree.Len(), count)
}
